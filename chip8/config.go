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

import "log"

// Config describes the fixed parameters of a machine: its memory layout,
// which ISA tiers are enabled, and any behavioral quirks. A Config is
// immutable for the lifetime of the machine it configures.
type Config struct {
	// Name identifies the configuration for diagnostic logging only.
	Name string

	// RAMBytes is the total addressable RAM size.
	RAMBytes int

	// StackSize is the maximum call-stack depth.
	StackSize int

	// ScreenWidth and ScreenHeight give the frame-buffer dimensions.
	ScreenWidth, ScreenHeight int

	// ProgramBase is the address at which LoadProgram places a ROM and
	// where the program counter starts after Reset.
	ProgramBase Address

	// SmallFontBase and BigFontBase are the addresses at which the
	// small (4x5) and big (4x10) glyph tables are installed.
	SmallFontBase, BigFontBase Address

	// SmallFont and BigFont are the glyph bitmaps installed at the
	// addresses above. They default to FontSmall/FontBig when nil.
	SmallFont, BigFont []byte

	// QuirkShift selects in-place shift semantics (SUPERCHIP-style,
	// ignoring the source register) when true, or two-operand shift
	// semantics (original CHIP-8) when false.
	QuirkShift bool

	// ISAChip8, ISASuperchip, and ISAXOChip independently enable each
	// instruction-set tier. At least one should be true.
	ISAChip8, ISASuperchip, ISAXOChip bool

	// Logger receives non-fatal diagnostic messages (e.g. executing a
	// placeholder instruction). Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig is the base CHIP-8 configuration: 4 KiB of RAM, a
// 12-level stack, a 64x32 display, programs based at 0x200, and only
// the base instruction set enabled.
func DefaultConfig() Config {
	return Config{
		Name:          "chip8",
		RAMBytes:      0x1000,
		StackSize:     12,
		ScreenWidth:   64,
		ScreenHeight:  32,
		ProgramBase:   0x200,
		SmallFontBase: 0x000,
		BigFontBase:   0x050,
		ISAChip8:      true,
	}
}

func (c *Config) smallFont() []byte {
	if c.SmallFont != nil {
		return c.SmallFont
	}

	return FontSmall[:]
}

func (c *Config) bigFont() []byte {
	if c.BigFont != nil {
		return c.BigFont
	}

	return FontBig[:]
}

func (c *Config) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
