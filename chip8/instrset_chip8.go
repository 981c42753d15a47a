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

// chip8Definitions is the base CHIP-8 table: 34 instructions, which
// with sysCallFallback (0NNN, below) make up the canonical 35.
// Bit patterns are grounded on the mask/pattern pairs the teacher's own
// disassembler tests against each mnemonic.
var chip8Definitions = []Definition{
	{ // 00E0 - CLS
		Kind:     OperationKind{Code: Cls},
		Pattern:  Pattern{Lit(0x0), Lit(0x0), Lit(0xE), Lit(0x0)},
		Mnemonic: "CLS",
	},
	{ // 00EE - RET
		Kind:     OperationKind{Code: Ret},
		Pattern:  Pattern{Lit(0x0), Lit(0x0), Lit(0xE), Lit(0xE)},
		Mnemonic: "RET",
	},
	{ // 1NNN - JP addr
		Kind:     OperationKind{Code: Jump, Src: SrcAddress12Kind},
		Pattern:  Pattern{Lit(0x1), Arg(slotSrc), Arg(slotSrc), Arg(slotSrc)},
		Mnemonic: "JP",
	},
	{ // 2NNN - CALL addr
		Kind:     OperationKind{Code: Call, Src: SrcAddress12Kind},
		Pattern:  Pattern{Lit(0x2), Arg(slotSrc), Arg(slotSrc), Arg(slotSrc)},
		Mnemonic: "CALL",
	},
	{ // 3XNN - SE Vx, byte
		Kind:     OperationKind{Code: SkipEq, Src: SrcRegisterKind, Aux: SrcLiteral8Kind},
		Pattern:  Pattern{Lit(0x3), Arg(slotSrc), Arg(slotAux), Arg(slotAux)},
		Mnemonic: "SE",
	},
	{ // 4XNN - SNE Vx, byte
		Kind:     OperationKind{Code: SkipNotEq, Src: SrcRegisterKind, Aux: SrcLiteral8Kind},
		Pattern:  Pattern{Lit(0x4), Arg(slotSrc), Arg(slotAux), Arg(slotAux)},
		Mnemonic: "SNE",
	},
	{ // 5XY0 - SE Vx, Vy
		Kind:     OperationKind{Code: SkipEq, Src: SrcRegisterKind, Aux: SrcRegisterKind},
		Pattern:  Pattern{Lit(0x5), Arg(slotSrc), Arg(slotAux), Lit(0x0)},
		Mnemonic: "SE",
	},
	{ // 6XNN - LD Vx, byte
		Kind:     OperationKind{Code: Load, Dest: DestRegisterKind, Src: SrcLiteral8Kind},
		Pattern:  Pattern{Lit(0x6), Arg(slotDest), Arg(slotSrc), Arg(slotSrc)},
		Mnemonic: "LD",
	},
	{ // 7XNN - ADD Vx, byte
		Kind:     OperationKind{Code: Add, Dest: DestRegisterKind, Src: SrcRegisterKind, Aux: SrcLiteral8Kind},
		Pattern:  Pattern{Lit(0x7), Arg(slotDest | slotSrc), Arg(slotAux), Arg(slotAux)},
		Mnemonic: "ADD",
	},
	{ // 8XY0 - LD Vx, Vy
		Kind:     OperationKind{Code: Load, Dest: DestRegisterKind, Src: SrcRegisterKind},
		Pattern:  Pattern{Lit(0x8), Arg(slotDest), Arg(slotSrc), Lit(0x0)},
		Mnemonic: "LD",
	},
	{ // 8XY1 - OR Vx, Vy
		Kind:     OperationKind{Code: Or, Dest: DestRegisterKind, Src: SrcRegisterKind, Aux: SrcRegisterKind},
		Pattern:  Pattern{Lit(0x8), Arg(slotDest | slotSrc), Arg(slotAux), Lit(0x1)},
		Mnemonic: "OR",
	},
	{ // 8XY2 - AND Vx, Vy
		Kind:     OperationKind{Code: And, Dest: DestRegisterKind, Src: SrcRegisterKind, Aux: SrcRegisterKind},
		Pattern:  Pattern{Lit(0x8), Arg(slotDest | slotSrc), Arg(slotAux), Lit(0x2)},
		Mnemonic: "AND",
	},
	{ // 8XY3 - XOR Vx, Vy
		Kind:     OperationKind{Code: Xor, Dest: DestRegisterKind, Src: SrcRegisterKind, Aux: SrcRegisterKind},
		Pattern:  Pattern{Lit(0x8), Arg(slotDest | slotSrc), Arg(slotAux), Lit(0x3)},
		Mnemonic: "XOR",
	},
	{ // 8XY4 - ADD Vx, Vy
		Kind:     OperationKind{Code: Add, Dest: DestRegisterKind, Src: SrcRegisterKind, Aux: SrcRegisterKind},
		Pattern:  Pattern{Lit(0x8), Arg(slotDest | slotSrc), Arg(slotAux), Lit(0x4)},
		Mnemonic: "ADD",
	},
	{ // 8XY5 - SUB Vx, Vy
		Kind:     OperationKind{Code: Sub, Dest: DestRegisterKind, Src: SrcRegisterKind, Aux: SrcRegisterKind},
		Pattern:  Pattern{Lit(0x8), Arg(slotDest | slotSrc), Arg(slotAux), Lit(0x5)},
		Mnemonic: "SUB",
	},
	{ // 8XY6 - SHR Vx {, Vy}
		Kind:     OperationKind{Code: Shr, Dest: DestRegisterKind, Src: SrcRegisterKind},
		Pattern:  Pattern{Lit(0x8), Arg(slotDest), Arg(slotSrc), Lit(0x6)},
		Mnemonic: "SHR",
	},
	{ // 8XY7 - SUBN Vx, Vy
		Kind:     OperationKind{Code: Subn, Dest: DestRegisterKind, Src: SrcRegisterKind, Aux: SrcRegisterKind},
		Pattern:  Pattern{Lit(0x8), Arg(slotDest | slotAux), Arg(slotSrc), Lit(0x7)},
		Mnemonic: "SUBN",
	},
	{ // 8XYE - SHL Vx {, Vy}
		Kind:     OperationKind{Code: Shl, Dest: DestRegisterKind, Src: SrcRegisterKind},
		Pattern:  Pattern{Lit(0x8), Arg(slotDest), Arg(slotSrc), Lit(0xE)},
		Mnemonic: "SHL",
	},
	{ // 9XY0 - SNE Vx, Vy
		Kind:     OperationKind{Code: SkipNotEq, Src: SrcRegisterKind, Aux: SrcRegisterKind},
		Pattern:  Pattern{Lit(0x9), Arg(slotSrc), Arg(slotAux), Lit(0x0)},
		Mnemonic: "SNE",
	},
	{ // ANNN - LD I, addr
		Kind:     OperationKind{Code: Load, Dest: DestIKind, Src: SrcLiteral12Kind},
		Pattern:  Pattern{Lit(0xA), Arg(slotSrc), Arg(slotSrc), Arg(slotSrc)},
		Mnemonic: "LD",
	},
	{ // BNNN - JP V0, addr
		Kind:     OperationKind{Code: JumpV0, Src: SrcAddress12Kind},
		Pattern:  Pattern{Lit(0xB), Arg(slotSrc), Arg(slotSrc), Arg(slotSrc)},
		Mnemonic: "JP",
	},
	{ // CXNN - RND Vx, byte
		Kind:     OperationKind{Code: Rand, Dest: DestRegisterKind, Src: SrcRandomKind, Aux: SrcLiteral8Kind},
		Pattern:  Pattern{Lit(0xC), Arg(slotDest), Arg(slotAux), Arg(slotAux)},
		Mnemonic: "RND",
	},
	{ // DXYN - DRW Vx, Vy, nibble
		Kind:     OperationKind{Code: Sprite, Src: SrcRegisterKind, Aux: SrcRegisterKind, Aux2: SrcLiteral4Kind},
		Pattern:  Pattern{Lit(0xD), Arg(slotSrc), Arg(slotAux), Arg(slotAux2)},
		Mnemonic: "DRW",
	},
	{ // EX9E - SKP Vx
		Kind:     OperationKind{Code: SkipKey, Src: SrcRegisterKind},
		Pattern:  Pattern{Lit(0xE), Arg(slotSrc), Lit(0x9), Lit(0xE)},
		Mnemonic: "SKP",
	},
	{ // EXA1 - SKNP Vx
		Kind:     OperationKind{Code: SkipNotKey, Src: SrcRegisterKind},
		Pattern:  Pattern{Lit(0xE), Arg(slotSrc), Lit(0xA), Lit(0x1)},
		Mnemonic: "SKNP",
	},
	{ // FX07 - LD Vx, DT
		Kind:     OperationKind{Code: Load, Dest: DestRegisterKind, Src: SrcDelayTimerKind},
		Pattern:  Pattern{Lit(0xF), Arg(slotDest), Lit(0x0), Lit(0x7)},
		Mnemonic: "LD",
	},
	{ // FX0A - LD Vx, K
		Kind:     OperationKind{Code: WaitKey, Dest: DestRegisterKind},
		Pattern:  Pattern{Lit(0xF), Arg(slotDest), Lit(0x0), Lit(0xA)},
		Mnemonic: "LD",
	},
	{ // FX15 - LD DT, Vx
		Kind:     OperationKind{Code: Load, Dest: DestDelayTimerKind, Src: SrcRegisterKind},
		Pattern:  Pattern{Lit(0xF), Arg(slotSrc), Lit(0x1), Lit(0x5)},
		Mnemonic: "LD",
	},
	{ // FX18 - LD ST, Vx
		Kind:     OperationKind{Code: Load, Dest: DestSoundTimerKind, Src: SrcRegisterKind},
		Pattern:  Pattern{Lit(0xF), Arg(slotSrc), Lit(0x1), Lit(0x8)},
		Mnemonic: "LD",
	},
	{ // FX1E - ADD I, Vx
		Kind:     OperationKind{Code: Add, Dest: DestIKind, Src: SrcIKind, Aux: SrcRegisterKind},
		Pattern:  Pattern{Lit(0xF), Arg(slotAux), Lit(0x1), Lit(0xE)},
		Mnemonic: "ADD",
	},
	{ // FX29 - LD F, Vx
		Kind:     OperationKind{Code: Font, Src: SrcRegisterKind, Aux: SrcConstKind, AuxConst: 0},
		Pattern:  Pattern{Lit(0xF), Arg(slotSrc), Lit(0x2), Lit(0x9)},
		Mnemonic: "LD",
	},
	{ // FX33 - LD B, Vx
		Kind:     OperationKind{Code: Bcd, Src: SrcRegisterKind},
		Pattern:  Pattern{Lit(0xF), Arg(slotSrc), Lit(0x3), Lit(0x3)},
		Mnemonic: "LD",
	},
	{ // FX55 - LD [I], Vx
		Kind:     OperationKind{Code: Stash, Dest: DestRegisterKind, Src: SrcRegisterKind, Aux: SrcConstKind, AuxConst: 1},
		Pattern:  Pattern{Lit(0xF), Arg(slotSrc), Lit(0x5), Lit(0x5)},
		Mnemonic: "LD",
	},
	{ // FX65 - LD Vx, [I]
		Kind:     OperationKind{Code: Fetch, Dest: DestRegisterKind, Src: SrcRegisterKind, Aux: SrcConstKind, AuxConst: 1},
		Pattern:  Pattern{Lit(0xF), Arg(slotSrc), Lit(0x6), Lit(0x5)},
		Mnemonic: "LD",
	},
}

// sysCallFallback matches any 0NNN codeword not claimed by a more
// specific definition (CLS, RET, or one of the SUPERCHIP 00xx
// instructions). It must be tried last within the enabled set, since
// its pattern otherwise shadows every 00xx instruction that follows
// it; NewSet appends it after every other enabled tier for exactly
// this reason.
var sysCallFallback = Definition{
	Kind:     OperationKind{Code: NoOp},
	Pattern:  Pattern{Lit(0x0), Arg(slotSrc), Arg(slotSrc), Arg(slotSrc)},
	Mnemonic: "SYS",
	Fallback: true,
}
