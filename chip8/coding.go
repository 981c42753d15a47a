/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package chip8

// Argument slot indices. A codeword carries at most four logical
// argument slots, mapped onto an Operation's Dest/Src/Aux/Aux2 fields.
const (
	slotDest = 1 << iota
	slotSrc
	slotAux
	slotAux2
)

// codingKind distinguishes the three ways a nibble can appear in a
// Pattern.
type codingKind int

const (
	codingLiteral codingKind = iota
	codingArg
	codingIgnore
)

// Coding describes how one nibble of a codeword participates in
// matching and decoding. A Literal nibble must equal a fixed value. An
// Arg nibble contributes, most-significant-first, to every argument
// slot selected by its mask; a nibble may feed more than one slot,
// which is how instructions like "Add vX, vX, vY" share a nibble
// between the destination and first source.
type Coding struct {
	kind  codingKind
	value uint8
	mask  uint8
}

// Lit matches a codeword nibble that must equal exactly n.
func Lit(n uint8) Coding { return Coding{kind: codingLiteral, value: n & 0xF} }

// Arg accumulates a codeword nibble into every argument slot selected
// by mask (an OR of slotDest/slotSrc/slotAux/slotAux2).
func Arg(mask uint8) Coding { return Coding{kind: codingArg, mask: mask} }

// Ign skips a codeword nibble: it constrains neither matching nor
// decoding. Used for reserved/don't-care nibbles.
func Ign() Coding { return Coding{kind: codingIgnore} }

// Pattern is the four-nibble shape of a codeword, most significant
// nibble first.
type Pattern [4]Coding

// codewordMatcher is a precompiled (code, mask) pair: a codeword C
// matches iff C&mask == code.
type codewordMatcher struct {
	code Codeword
	mask Codeword
}

func newCodewordMatcher(p Pattern) codewordMatcher {
	var code, mask uint16

	for _, c := range p {
		code <<= 4
		mask <<= 4

		if c.kind == codingLiteral {
			code |= uint16(c.value)
			mask |= 0xF
		}
	}

	return codewordMatcher{code: Codeword(code), mask: Codeword(mask)}
}

func (m codewordMatcher) isMatch(cw Codeword) bool {
	return cw&m.mask == m.code&m.mask
}

// decodeArgs walks a codeword's four nibbles against a Pattern,
// accumulating each Arg nibble into the slots its mask selects.
func decodeArgs(cw Codeword, p Pattern) [4]uint {
	var args [4]uint

	for i, c := range p {
		shift := uint(12 - 4*i)
		nibble := uint(cw>>shift) & 0xF

		if c.kind != codingArg {
			continue
		}

		for slot := 0; slot < 4; slot++ {
			if c.mask&(1<<slot) != 0 {
				args[slot] = (args[slot] << 4) | nibble
			}
		}
	}

	return args
}

// encodeArgs is the inverse of decodeArgs: given the four argument
// slot values, it lays each Arg nibble's slice back into the codeword.
// Slots are consumed most-significant-nibble-first per occurrence, so a
// multi-nibble slot (e.g. a 12-bit address) must appear contiguously in
// the pattern, matching how every instruction table in this package is
// written.
func encodeArgs(p Pattern, args [4]uint) Codeword {
	var cw uint16

	// count how many nibbles remain (including this one) for each slot
	// so multi-nibble values are split with the right significance.
	remaining := [4]int{}
	for _, c := range p {
		if c.kind == codingArg {
			for slot := 0; slot < 4; slot++ {
				if c.mask&(1<<slot) != 0 {
					remaining[slot]++
				}
			}
		}
	}

	for _, c := range p {
		cw <<= 4

		switch c.kind {
		case codingLiteral:
			cw |= uint16(c.value)
		case codingArg:
			var nibble uint
			for slot := 0; slot < 4; slot++ {
				if c.mask&(1<<slot) != 0 {
					remaining[slot]--
					nibble = (args[slot] >> uint(4*remaining[slot])) & 0xF
				}
			}
			cw |= uint16(nibble)
		case codingIgnore:
			// leave as zero
		}
	}

	return Codeword(cw)
}
