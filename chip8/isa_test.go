package chip8

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBaseISAHasNoAmbiguousCodewords is an exhaustive check of I5 for
// the base CHIP-8 tier: every one of the 65536 possible codewords
// matches at most one definition in the table.
func TestBaseISAHasNoAmbiguousCodewords(t *testing.T) {
	set := NewSet(DefaultConfig())

	for cw := 0; cw <= 0xFFFF; cw++ {
		require.False(t, set.CodewordExists(Codeword(cw)), "codeword %#04x is ambiguous", cw)
	}
}

// TestSysFallbackCoversZeroPrefixedCodewords confirms the SYS fallback
// makes decoding total over its own 0x0xxx range: every codeword whose
// top nibble is 0 decodes to something, whether a specific 00xx
// instruction or the SYS catch-all itself.
func TestSysFallbackCoversZeroPrefixedCodewords(t *testing.T) {
	set := NewSet(DefaultConfig())

	for cw := 0x0000; cw <= 0x0FFF; cw++ {
		_, err := set.Decode(Codeword(cw))
		require.NoErrorf(t, err, "codeword %#04x failed to decode", cw)
	}
}

// TestUndefinedCodewordsReturnInvalidInstruction confirms that, outside
// the 0x0xxx range the SYS fallback covers, decoding is not total: a
// codeword matching no base definition reports InvalidInstruction
// rather than silently succeeding.
func TestUndefinedCodewordsReturnInvalidInstruction(t *testing.T) {
	set := NewSet(DefaultConfig())

	undefined := []Codeword{0x5001, 0x8AB8, 0x9AB1, 0xF0FF}

	for _, cw := range undefined {
		_, err := set.Decode(cw)
		require.Errorf(t, err, "codeword %#04x should be invalid", uint16(cw))

		var chErr *Error
		require.ErrorAs(t, err, &chErr)
		require.Equal(t, InvalidInstruction, chErr.Code)
	}
}

// TestDisassembleFormatsKnownMnemonics spot-checks the disassembler
// against a handful of concrete codewords. It checks for the presence
// of the address, mnemonic, and operand text rather than pinning the
// exact column spacing, which is free to change.
func TestDisassembleFormatsKnownMnemonics(t *testing.T) {
	sim := NewSimulator(DefaultConfig(), nil)

	cases := []struct {
		program []byte
		want    []string
	}{
		{[]byte{0x00, 0xE0}, []string{"0200", "CLS"}},
		{[]byte{0x00, 0xEE}, []string{"0200", "RET"}},
		{[]byte{0x12, 0x34}, []string{"0200", "JP", "0x234"}},
		{[]byte{0x60, 0x55}, []string{"0200", "LD", "v0", "0x55"}},
		{[]byte{0xA1, 0x23}, []string{"0200", "LD", "i", "0x123"}},
	}

	for _, c := range cases {
		require.NoError(t, sim.LoadProgram(c.program))
		line := sim.set.Disassemble(sim, sim.PC())

		for _, want := range c.want {
			require.True(t, strings.Contains(line, want), "%q should contain %q", line, want)
		}
	}
}
