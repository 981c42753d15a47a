package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// codewords exercises one representative codeword per base CHIP-8
// definition, plus the SYS fallback.
var codewords = []Codeword{
	0x00E0, // CLS
	0x00EE, // RET
	0x1ABC, // JP addr
	0x2ABC, // CALL addr
	0x3A12, // SE Vx, byte
	0x4A12, // SNE Vx, byte
	0x5A30, // SE Vx, Vy
	0x6A55, // LD Vx, byte
	0x7A03, // ADD Vx, byte
	0x8AB0, // LD Vx, Vy
	0x8AB1, // OR Vx, Vy
	0x8AB2, // AND Vx, Vy
	0x8AB3, // XOR Vx, Vy
	0x8AB4, // ADD Vx, Vy
	0x8AB5, // SUB Vx, Vy
	0x8AB6, // SHR Vx
	0x8AB7, // SUBN Vx, Vy
	0x8ABE, // SHL Vx
	0x9AB0, // SNE Vx, Vy
	0xAABC, // LD I, addr
	0xBABC, // JP V0, addr
	0xCA12, // RND Vx, byte
	0xDAB5, // DRW Vx, Vy, nibble
	0xEA9E, // SKP Vx
	0xEAA1, // SKNP Vx
	0xFA07, // LD Vx, DT
	0xFA0A, // LD Vx, K
	0xFA15, // LD DT, Vx
	0xFA18, // LD ST, Vx
	0xFA1E, // ADD I, Vx
	0xFA29, // LD F, Vx
	0xFA33, // LD B, Vx
	0xFA55, // LD [I], Vx
	0xFA65, // LD Vx, [I]
	0x0ABC, // SYS addr (fallback)
}

// TestDecodeEncodeRoundTrip checks P1: decode(encode(decode(cw))) ==
// decode(cw) for every representative codeword in the base ISA.
func TestDecodeEncodeRoundTrip(t *testing.T) {
	set := NewSet(DefaultConfig())

	for _, cw := range codewords {
		op, err := set.Decode(cw)
		require.NoError(t, err, "decoding %#04x", uint16(cw))

		encoded, ok := set.Encode(op)
		require.True(t, ok, "encoding back %s", op.Code)

		roundTripped, err := set.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, op, roundTripped, "round trip of %#04x", uint16(cw))
	}
}

// TestCodewordsUnambiguous checks I5 over the sampled codewords: none
// of them should match more than one definition in the base set.
func TestCodewordsUnambiguous(t *testing.T) {
	set := NewSet(DefaultConfig())

	for _, cw := range codewords {
		require.False(t, set.CodewordExists(cw), "codeword %#04x matches more than one definition", uint16(cw))
	}
}

// TestSysFallbackDoesNotShadowSpecificInstructions confirms the base
// SYS catch-all is tried last, so 00E0 and 00EE still decode to their
// specific opcodes rather than NoOp.
func TestSysFallbackDoesNotShadowSpecificInstructions(t *testing.T) {
	set := NewSet(DefaultConfig())

	cls, err := set.Decode(0x00E0)
	require.NoError(t, err)
	require.Equal(t, Cls, cls.Code)

	ret, err := set.Decode(0x00EE)
	require.NoError(t, err)
	require.Equal(t, Ret, ret.Code)

	sys, err := set.Decode(0x0ABC)
	require.NoError(t, err)
	require.Equal(t, NoOp, sys.Code)
}
