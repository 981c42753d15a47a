// Package presets supplies ready-made chip8.Config values for the three
// ISA tiers this library understands. None of this is part of the core:
// per the library's own scope, preset configuration tables are an
// external collaborator, not something the simulator or instruction set
// need to know about.
package presets

import "github.com/ochip8/vm/chip8"

// COSMACVIP is the classic 4 KiB base CHIP-8 configuration: two-operand
// shift semantics, no SUPERCHIP or XO-CHIP instructions enabled.
func COSMACVIP() chip8.Config {
	cfg := chip8.DefaultConfig()
	cfg.Name = "cosmac-vip"

	return cfg
}

// SUPERCHIP extends the base set with the big-font lookup and the
// in-place shift quirk SUPERCHIP interpreters popularized.
func SUPERCHIP() chip8.Config {
	cfg := chip8.DefaultConfig()
	cfg.Name = "superchip"
	cfg.ISASuperchip = true
	cfg.QuirkShift = true

	return cfg
}

// XOCHIP layers the range-form Stash/Fetch and audio-pattern
// placeholders on top of SUPERCHIP, with a larger address space to hold
// bigger ROMs.
func XOCHIP() chip8.Config {
	cfg := SUPERCHIP()
	cfg.Name = "xo-chip"
	cfg.ISAXOChip = true
	cfg.RAMBytes = 0x10000

	return cfg
}

// ByName looks up a preset by its conventional command-line name
// ("cosmac-vip", "superchip", "xo-chip"), returning false if name does
// not match one of them.
func ByName(name string) (chip8.Config, bool) {
	switch name {
	case "cosmac-vip", "chip8", "":
		return COSMACVIP(), true
	case "superchip", "schip":
		return SUPERCHIP(), true
	case "xo-chip", "xochip":
		return XOCHIP(), true
	default:
		return chip8.Config{}, false
	}
}
