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

// Execute is the capability operation semantics are written against.
// It decouples the meaning of an instruction from any particular
// concrete machine-state layout: anything implementing Execute can
// run the operations in this package. Chip8 (state.go) is the only
// implementation in this repository, but the interface exists so that,
// for example, a debugger could wrap it with tracing.
type Execute interface {
	// Config returns this machine's configuration.
	Config() Config

	// Load reads the value denoted by src.
	Load(src Src) (uint, error)

	// Store writes value to the location denoted by dest.
	Store(dest Dest, value uint) error

	// StackPush pushes an address onto the call stack.
	StackPush(addr Address) error

	// StackPop pops an address off the call stack.
	StackPop() (Address, error)

	// PC returns the current program counter.
	PC() Address

	// AdvancePC advances the program counter by one instruction.
	AdvancePC()

	// Jump sets the program counter directly.
	Jump(addr Address) error

	// SetFlag writes the vF flag register.
	SetFlag(set bool)

	// SetPixel writes a single frame-buffer pixel directly (used by
	// Cls to clear the screen).
	SetPixel(x, y int, p Pixel) error

	// XorPixel XORs p into the pixel at (x, y), wrapping both axes,
	// and reports whether a lit pixel was turned off (collision).
	XorPixel(x, y int, p Pixel) (collided bool, err error)

	// Keyboard returns a snapshot of the sixteen key states.
	Keyboard() Keyboard

	// SetKeyboard overwrites the keyboard state and wakes any
	// in-progress WaitKey.
	SetKeyboard(k Keyboard)

	// Vram returns a snapshot of the frame buffer.
	Vram() Vram

	// Buzzer returns the current buzzer state.
	Buzzer() bool

	// SetBuzzer sets the buzzer state.
	SetBuzzer(on bool)

	// Audio returns the current XO-CHIP audio pattern.
	Audio() AudioPattern

	// SetAudio overwrites the XO-CHIP audio pattern.
	SetAudio(p AudioPattern)

	// WaitKey blocks until a key transitions from released to
	// pressed and returns its index.
	WaitKey() (Register, error)

	// ReadByte and WriteByte give indexed access to a RAM region
	// starting at I. Load/Store's Src/Dest vocabulary addresses single
	// locations; Sprite, Bcd, Stash, and Fetch instead need a run of
	// consecutive bytes relative to I, so they go through these
	// instead of through IndirectI.
	ReadByte(offsetFromI int) (byte, error)
	WriteByte(offsetFromI int, v byte) error
}
