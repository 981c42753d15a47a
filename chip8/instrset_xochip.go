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

// xochipDefinitions adds the six XO-CHIP instructions on top of base
// CHIP-8 (and, typically, SUPERCHIP). The range-form Stash/Fetch are
// fully implemented since they reuse the same generic semantics as the
// base FX55/FX65 pair with the increment flag cleared. The long
// (16-bit immediate) I load, plane-select, and audio-pattern-store
// instructions decode to their own opcodes but execute as logged
// no-ops; the pitch instruction decodes to a plain NoOp, which logs
// nothing. A full multi-plane display and audio engine is outside this
// library's scope.
var xochipDefinitions = []Definition{
	{ // 5XY2 - save vX..vY to [I] without advancing I
		Kind: OperationKind{
			Code: Stash, Dest: DestRegisterKind, Src: SrcRegisterKind,
			Aux: SrcConstKind, AuxConst: 0,
		},
		Pattern:  Pattern{Lit(0x5), Arg(slotDest), Arg(slotSrc), Lit(0x2)},
		Mnemonic: "SAVE",
	},
	{ // 5XY3 - load vX..vY from [I] without advancing I
		Kind: OperationKind{
			Code: Fetch, Dest: DestRegisterKind, Src: SrcRegisterKind,
			Aux: SrcConstKind, AuxConst: 0,
		},
		Pattern:  Pattern{Lit(0x5), Arg(slotDest), Arg(slotSrc), Lit(0x3)},
		Mnemonic: "LOAD",
	},
	{ // F000 NNNN - LD I, long (16-bit immediate; the NNNN word is not read and PC does not skip it)
		Kind:     OperationKind{Code: LoadI16},
		Pattern:  Pattern{Lit(0xF), Lit(0x0), Lit(0x0), Lit(0x0)},
		Mnemonic: "LD I, long",
	},
	{ // FX01 - select bit-plane(s) X for drawing
		Kind:     OperationKind{Code: SelectPlane, Src: SrcRegisterKind},
		Pattern:  Pattern{Lit(0xF), Arg(slotSrc), Lit(0x0), Lit(0x1)},
		Mnemonic: "PLANE",
	},
	{ // F002 - write 16 bytes at I into the audio pattern buffer
		Kind:     OperationKind{Code: StoreAudioPattern},
		Pattern:  Pattern{Lit(0xF), Lit(0x0), Lit(0x0), Lit(0x2)},
		Mnemonic: "AUDIO",
	},
	{ // FX3A - set playback pitch from Vx
		Kind:     OperationKind{Code: NoOp, Src: SrcRegisterKind},
		Pattern:  Pattern{Lit(0xF), Arg(slotSrc), Lit(0x3), Lit(0xA)},
		Mnemonic: "PITCH",
	},
}
