package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewChip8ZeroState covers I1.
func TestNewChip8ZeroState(t *testing.T) {
	cfg := DefaultConfig()
	c := NewChip8(cfg, nil)

	require.Equal(t, cfg.ProgramBase, c.PC())
	require.False(t, c.Buzzer())
	require.Equal(t, AudioPattern{}, c.Audio())
	require.Equal(t, Keyboard{}, c.Keyboard())

	for _, p := range c.Vram() {
		require.EqualValues(t, 0, p)
	}

	for r := uint(0); r <= 0xF; r++ {
		v, err := c.Load(Src{Kind: SrcRegisterKind, Value: r})
		require.NoError(t, err)
		require.EqualValues(t, 0, v)
	}

	for i, b := range FontSmall {
		got, err := c.ReadByte(int(cfg.SmallFontBase) + i)
		require.NoError(t, err)
		require.Equal(t, b, got)
	}
}

// TestOutOfBoundsAccess covers I2.
func TestOutOfBoundsAccess(t *testing.T) {
	cfg := DefaultConfig()
	c := NewChip8(cfg, nil)

	_, err := c.ReadByte(cfg.RAMBytes)
	require.Error(t, err)

	err = c.WriteByte(cfg.RAMBytes, 0)
	require.Error(t, err)

	err = c.Jump(Address(cfg.RAMBytes))
	require.Error(t, err)
}

// TestStackDepthBounded covers I3.
func TestStackDepthBounded(t *testing.T) {
	cfg := DefaultConfig()
	c := NewChip8(cfg, nil)

	for i := 0; i < cfg.StackSize; i++ {
		require.NoError(t, c.StackPush(Address(i)))
	}

	require.Error(t, c.StackPush(0))

	for i := 0; i < cfg.StackSize; i++ {
		_, err := c.StackPop()
		require.NoError(t, err)
	}

	_, err := c.StackPop()
	require.Error(t, err)
}

// TestResetRestoresZeroState covers Reset as a re-application of I1
// after the machine has accumulated state.
func TestResetRestoresZeroState(t *testing.T) {
	cfg := DefaultConfig()
	c := NewChip8(cfg, nil)

	require.NoError(t, c.Store(Dest{Kind: DestRegisterKind, Value: 3}, 0x42))
	require.NoError(t, c.Store(Dest{Kind: DestIKind}, 0x123))
	require.NoError(t, c.SetPixel(0, 0, 1))
	require.NoError(t, c.StackPush(0x250))
	c.PressKey(4)
	c.SetBuzzer(true)
	require.NoError(t, c.Jump(0x300))

	c.Reset()

	require.Equal(t, cfg.ProgramBase, c.PC())
	require.False(t, c.Buzzer())
	require.Equal(t, Keyboard{}, c.Keyboard())

	v, err := c.Load(Src{Kind: SrcRegisterKind, Value: 3})
	require.NoError(t, err)
	require.EqualValues(t, 0, v)

	i, err := c.Load(Src{Kind: SrcIKind})
	require.NoError(t, err)
	require.EqualValues(t, 0, i)

	for _, p := range c.Vram() {
		require.EqualValues(t, 0, p)
	}

	_, err = c.StackPop()
	require.Error(t, err, "stack must be empty after reset")
}

// TestVFIsWrittenExactlyOnce covers I4 for a representative arithmetic
// op: vF is set by SetFlag and never disturbed afterward by the same
// operation.
func TestVFIsWrittenExactlyOnce(t *testing.T) {
	c := NewChip8(DefaultConfig(), nil)

	require.NoError(t, c.Store(Dest{Kind: DestRegisterKind, Value: 0xF}, 0x77))

	op := Operation{
		Code: Add,
		Dest: Dest{Kind: DestRegisterKind, Value: 0},
		Src:  Src{Kind: SrcRegisterKind, Value: 0},
		Aux:  Src{Kind: SrcLiteral8Kind, Value: 1},
	}
	require.NoError(t, Apply(op, c))

	v, err := c.Load(Src{Kind: SrcRegisterKind, Value: 0xF})
	require.NoError(t, err)
	require.EqualValues(t, 0, v)
}

// TestWaitKeyBlocksUntilPressTransition exercises the condition
// variable driven WaitKey semantics from a second goroutine.
func TestWaitKeyBlocksUntilPressTransition(t *testing.T) {
	c := NewChip8(DefaultConfig(), nil)

	result := make(chan Register, 1)
	errs := make(chan error, 1)

	go func() {
		r, err := c.WaitKey()
		errs <- err
		result <- r
	}()

	c.PressKey(9)

	require.NoError(t, <-errs)
	require.EqualValues(t, 9, <-result)
}
