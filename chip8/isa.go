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

// defMatcher pairs a Definition with its precompiled codeword matcher.
type defMatcher struct {
	def     Definition
	matcher codewordMatcher
}

// Set is the instruction table actually used to decode and encode
// codewords, built from whichever ISA tiers a Config enables.
type Set struct {
	table []defMatcher
}

// NewSet builds the instruction set selected by cfg. Base CHIP-8's
// catch-all SYS definition is always appended last so that it never
// shadows a more specific SUPERCHIP/XO-CHIP definition sharing its
// 0x0xxx prefix.
func NewSet(cfg Config) *Set {
	s := &Set{}

	if cfg.ISAChip8 {
		s.append(chip8Definitions)
	}

	if cfg.ISASuperchip {
		s.append(superchipDefinitions)
	}

	if cfg.ISAXOChip {
		s.append(xochipDefinitions)
	}

	if cfg.ISAChip8 {
		s.append([]Definition{sysCallFallback})
	}

	return s
}

func (s *Set) append(defs []Definition) {
	for _, d := range defs {
		s.table = append(s.table, defMatcher{def: d, matcher: newCodewordMatcher(d.Pattern)})
	}
}

// Decode returns the first definition in table order whose pattern
// matches cw, specified into a concrete Operation.
func (s *Set) Decode(cw Codeword) (Operation, error) {
	for _, dm := range s.table {
		if dm.matcher.isMatch(cw) {
			return dm.def.specify(cw), nil
		}
	}

	return Operation{}, errInvalidInstruction(cw)
}

// Encode finds the definition matching op's opcode and operand kinds
// and encodes op back into a codeword.
func (s *Set) Encode(op Operation) (Codeword, bool) {
	for _, dm := range s.table {
		if dm.def.matchesKind(op) {
			return dm.def.encode(op), true
		}
	}

	return 0, false
}

// CodewordExists reports whether more than one definition in the set
// matches cw. A true result indicates a bug in the instruction tables
// (see invariant I5), not a runtime condition callers should expect.
// Fallback definitions are deliberately placed after, and deliberately
// overlap, the specific definitions they catch for; they are excluded
// from the count so that by-design shadowing isn't reported as I5
// breakage.
func (s *Set) CodewordExists(cw Codeword) bool {
	count := 0

	for _, dm := range s.table {
		if dm.matcher.isMatch(cw) && !dm.def.Fallback {
			count++
		}
	}

	return count > 1
}
