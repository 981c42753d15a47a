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

// superchipDefinitions adds the nine community-standard SUPERCHIP
// instructions on top of base CHIP-8. Only big-font lookup is fully
// implemented. The scroll, resolution-switch, and exit instructions
// decode to their own opcodes but execute as logged no-ops; the two
// HP-RPL flag instructions decode to a plain NoOp, which logs nothing
// and keeps no operand.
var superchipDefinitions = []Definition{
	{ // 00CN - SCD nibble (scroll down N lines)
		Kind:     OperationKind{Code: ScrollDown, Src: SrcLiteral4Kind},
		Pattern:  Pattern{Lit(0x0), Lit(0x0), Lit(0xC), Arg(slotSrc)},
		Mnemonic: "SCD",
	},
	{ // 00FB - SCR (scroll right 4 pixels)
		Kind:     OperationKind{Code: ScrollRight},
		Pattern:  Pattern{Lit(0x0), Lit(0x0), Lit(0xF), Lit(0xB)},
		Mnemonic: "SCR",
	},
	{ // 00FC - SCL (scroll left 4 pixels)
		Kind:     OperationKind{Code: ScrollLeft},
		Pattern:  Pattern{Lit(0x0), Lit(0x0), Lit(0xF), Lit(0xC)},
		Mnemonic: "SCL",
	},
	{ // 00FD - EXIT
		Kind:     OperationKind{Code: ExitInterpreter},
		Pattern:  Pattern{Lit(0x0), Lit(0x0), Lit(0xF), Lit(0xD)},
		Mnemonic: "EXIT",
	},
	{ // 00FE - LOW
		Kind:     OperationKind{Code: LowRes},
		Pattern:  Pattern{Lit(0x0), Lit(0x0), Lit(0xF), Lit(0xE)},
		Mnemonic: "LOW",
	},
	{ // 00FF - HIGH
		Kind:     OperationKind{Code: HighRes},
		Pattern:  Pattern{Lit(0x0), Lit(0x0), Lit(0xF), Lit(0xF)},
		Mnemonic: "HIGH",
	},
	{ // FX30 - LD HF, Vx (point I at the big font glyph for Vx)
		Kind:     OperationKind{Code: Font, Src: SrcRegisterKind, Aux: SrcConstKind, AuxConst: 1},
		Pattern:  Pattern{Lit(0xF), Arg(slotSrc), Lit(0x3), Lit(0x0)},
		Mnemonic: "LD",
	},
	{ // FX75 - LD R, Vx (store v0..vx to HP-RPL user flags)
		Kind:     OperationKind{Code: NoOp},
		Pattern:  Pattern{Lit(0xF), Arg(slotSrc), Lit(0x7), Lit(0x5)},
		Mnemonic: "LD R",
	},
	{ // FX85 - LD Vx, R (read HP-RPL user flags into v0..vx)
		Kind:     OperationKind{Code: NoOp},
		Pattern:  Pattern{Lit(0xF), Arg(slotSrc), Lit(0x8), Lit(0x5)},
		Mnemonic: "LD",
	},
}
