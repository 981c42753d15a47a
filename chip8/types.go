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

// Package chip8 implements a CHIP-8 instruction decoder, encoder, and
// execution engine that can be driven synchronously or through a
// threaded controller. It is designed to be reusable by an assembler,
// a disassembler, or a graphical front end.
package chip8

// Address is a 16-bit memory address or program counter value.
type Address uint16

// Codeword is a 16-bit, big-endian encoded instruction.
type Codeword uint16

// Register identifies one of the sixteen general-purpose v-registers.
type Register uint8

// Pixel is a single frame-buffer cell: 0 (off) or 1 (on).
type Pixel uint8

// Keyboard is the state of all sixteen CHIP-8 keys, indexed 0x0-0xF.
type Keyboard [16]bool

// AudioPattern is the 16-byte XO-CHIP audio playback pattern.
type AudioPattern [16]byte

// Vram is a flat, row-major snapshot of the frame buffer.
type Vram []Pixel
