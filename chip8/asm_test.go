package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAssembleRunsAsExpected assembles a short loop and runs it on a
// Simulator, checking both label resolution and that the assembled
// bytes execute with the intended effect.
func TestAssembleRunsAsExpected(t *testing.T) {
	cfg := DefaultConfig()
	set := NewSet(cfg)

	src := `
start:
	LD V0, 0x05
	LD V1, 0x0A
	ADD V0, V1
loop:
	ADD V0, 1
	JP loop
`

	asmed, err := Assemble(set, cfg.ProgramBase, src)
	require.NoError(t, err)
	require.Equal(t, cfg.ProgramBase, asmed.Labels["start"])
	require.Len(t, asmed.ROM, 10)

	sim := NewSimulator(cfg, nil)
	require.NoError(t, sim.LoadProgram(asmed.ROM))

	require.NoError(t, sim.StepN(3))
	require.Equal(t, byte(0x0F), sim.Reg(0))

	require.NoError(t, sim.StepN(2))
	require.EqualValues(t, asmed.Labels["loop"], sim.PC())
}

// TestAssembleSubDistinctFromSubn exercises the assembler against the
// two 8XY5/8XY7 forms, confirming they encode to different codewords
// and decode back to their own distinct OpCode.
func TestAssembleSubDistinctFromSubn(t *testing.T) {
	cfg := DefaultConfig()
	set := NewSet(cfg)

	cases := []struct {
		src  string
		want Codeword
		code OpCode
	}{
		{"SUB VA, VB", 0x8AB5, Sub},
		{"SUBN VA, VB", 0x8AB7, Subn},
	}

	for _, c := range cases {
		asmed, err := Assemble(set, cfg.ProgramBase, c.src)
		require.NoError(t, err)
		require.Len(t, asmed.ROM, 2)

		cw := Codeword(uint16(asmed.ROM[0])<<8 | uint16(asmed.ROM[1]))
		require.Equal(t, c.want, cw, c.src)

		op, err := set.Decode(cw)
		require.NoError(t, err)
		require.Equal(t, c.code, op.Code, c.src)
	}
}

// TestAssembleStashFetchRange exercises the "LD [I], V0-VX" / "LD
// V0-VX, [I]" range syntax.
func TestAssembleStashFetchRange(t *testing.T) {
	cfg := DefaultConfig()
	set := NewSet(cfg)

	asmed, err := Assemble(set, cfg.ProgramBase, "LD [I], V0-VA\nLD V0-VA, [I]")
	require.NoError(t, err)
	require.Len(t, asmed.ROM, 4)

	stash := Codeword(uint16(asmed.ROM[0])<<8 | uint16(asmed.ROM[1]))
	fetch := Codeword(uint16(asmed.ROM[2])<<8 | uint16(asmed.ROM[3]))
	require.Equal(t, Codeword(0xFA55), stash)
	require.Equal(t, Codeword(0xFA65), fetch)
}

// TestAssembleUnknownMnemonicFails covers the error path.
func TestAssembleUnknownMnemonicFails(t *testing.T) {
	cfg := DefaultConfig()
	set := NewSet(cfg)

	_, err := Assemble(set, cfg.ProgramBase, "FROB V0, V1")
	require.Error(t, err)
}

// TestAssembleUndefinedLabelFails covers a forward reference to a
// label that is never defined.
func TestAssembleUndefinedLabelFails(t *testing.T) {
	cfg := DefaultConfig()
	set := NewSet(cfg)

	_, err := Assemble(set, cfg.ProgramBase, "JP nowhere")
	require.Error(t, err)
}
