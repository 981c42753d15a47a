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

import "fmt"

// Disassemble formats the instruction at addr as one line of assembly
// text ("ADDR - MNEMONIC operands"), without mutating sim. It exists to
// demonstrate that the instruction set and machine state are equally
// usable by a disassembler as by the simulator's own fetch-decode-
// execute loop; it is not part of the execution path.
func (s *Set) Disassemble(sim *Simulator, addr Address) string {
	op, err := sim.DecodeAt(addr)
	if err != nil {
		return fmt.Sprintf("%04X - ???", uint16(addr))
	}

	return fmt.Sprintf("%04X - %s", uint16(addr), s.mnemonic(op))
}

// mnemonic finds the definition op was decoded from (or could be
// encoded by) and formats op's operands in that definition's assembly
// syntax.
func (s *Set) mnemonic(op Operation) string {
	for _, dm := range s.table {
		if dm.def.matchesKind(op) {
			return formatOperation(dm.def.Mnemonic, op)
		}
	}

	return op.Code.String()
}

// formatOperation renders op's operands following the conventional
// CHIP-8 assembly syntax for mnemonic. Every opcode variant is listed
// explicitly rather than generically walking Dest/Src/Aux/Aux2, since
// which of those fields are meaningful (and in what order they're
// written) varies per opcode.
func formatOperation(mnemonic string, op Operation) string {
	switch op.Code {
	case NoOp:
		return mnemonic
	case Cls, Ret:
		return mnemonic
	case Jump, Call:
		return fmt.Sprintf("%-6s %s", mnemonic, op.Src)
	case JumpV0:
		return fmt.Sprintf("%-6s V0, %s", mnemonic, op.Src)
	case SkipEq, SkipNotEq:
		return fmt.Sprintf("%-6s %s, %s", mnemonic, op.Src, op.Aux)
	case SkipKey, SkipNotKey:
		return fmt.Sprintf("%-6s %s", mnemonic, op.Src)
	case Load:
		return fmt.Sprintf("%-6s %s, %s", mnemonic, op.Dest, op.Src)
	case Add:
		if op.Dest.Kind == DestIKind {
			return fmt.Sprintf("%-6s I, %s", mnemonic, op.Aux)
		}

		return fmt.Sprintf("%-6s %s, %s", mnemonic, op.Dest, op.Aux)
	case Sub, Subn, Or, And, Xor, Rand:
		return fmt.Sprintf("%-6s %s, %s", mnemonic, op.Dest, op.Aux)
	case Shr, Shl:
		return fmt.Sprintf("%-6s %s", mnemonic, op.Dest)
	case Sprite:
		return fmt.Sprintf("%-6s %s, %s, %s", mnemonic, op.Src, op.Aux, op.Aux2)
	case Font, Bcd:
		return fmt.Sprintf("%-6s %s", mnemonic, op.Src)
	case WaitKey:
		return fmt.Sprintf("%-6s %s, K", mnemonic, op.Dest)
	case Stash:
		return fmt.Sprintf("%-6s [I], V0-V%X", mnemonic, op.Src.Value)
	case Fetch:
		return fmt.Sprintf("%-6s V0-V%X, [I]", mnemonic, op.Src.Value)
	default:
		return mnemonic
	}
}
