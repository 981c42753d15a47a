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

// Mode is the Simulator's execution state.
type Mode int

const (
	// ModeReset is the state immediately after construction or Reset,
	// before the first Step.
	ModeReset Mode = iota

	// ModeIdle means the simulator is not actively being driven (e.g.
	// a controller is paused).
	ModeIdle

	// ModeRunning means a controller is actively ticking timers and
	// stepping the simulator.
	ModeRunning
)

// Simulator owns a machine state and the instruction set decoded
// against it. It is the synchronous fetch-decode-execute engine;
// SimulatorTask (controller.go) wraps one to serialize access across
// goroutines.
type Simulator struct {
	core  *Chip8
	set   *Set
	mode  Mode
	steps uint64
}

// NewSimulator constructs a Simulator from cfg. If seed is non-nil it
// is used as a deterministic source for the Random operand.
func NewSimulator(cfg Config, seed []byte) *Simulator {
	return &Simulator{
		core: NewChip8(cfg, seed),
		set:  NewSet(cfg),
		mode: ModeReset,
	}
}

// Reset reinitializes the machine state and returns the simulator to
// ModeReset.
func (s *Simulator) Reset() {
	s.core.Reset()
	s.mode = ModeReset
	s.steps = 0
}

// Mode returns the simulator's current execution mode.
func (s *Simulator) Mode() Mode { return s.mode }

// SetMode sets the simulator's execution mode. The mode changes only
// through SetMode and Reset; SimulatorTask does not call SetMode.
func (s *Simulator) SetMode(m Mode) { s.mode = m }

// LoadProgram copies program into RAM at the configured program base
// and leaves PC there.
func (s *Simulator) LoadProgram(program []byte) error {
	cfg := s.core.Config()

	if err := s.core.LoadBytes(program, cfg.ProgramBase); err != nil {
		return err
	}

	s.core.pc = cfg.ProgramBase

	return nil
}

// LoadBytes copies b into RAM at addr without touching PC.
func (s *Simulator) LoadBytes(b []byte, addr Address) error {
	return s.core.LoadBytes(b, addr)
}

// CurrentCodeword fetches, without advancing PC, the codeword at the
// current program counter.
func (s *Simulator) CurrentCodeword() (Codeword, error) {
	return s.decodeWordAt(s.core.pc)
}

func (s *Simulator) decodeWordAt(addr Address) (Codeword, error) {
	hi, err := s.core.readRAM(addr)
	if err != nil {
		return 0, err
	}

	lo, err := s.core.readRAM(addr + 1)
	if err != nil {
		return 0, err
	}

	return Codeword(uint16(hi)<<8 | uint16(lo)), nil
}

// DecodeAt fetches and decodes the instruction at addr without
// mutating simulator state.
func (s *Simulator) DecodeAt(addr Address) (Operation, error) {
	cw, err := s.decodeWordAt(addr)
	if err != nil {
		return Operation{}, err
	}

	return s.set.Decode(cw)
}

// Step fetches the codeword at PC, advances PC by one instruction,
// decodes it, and executes it. It stops and returns the first error
// encountered; PC has already advanced by the time a decode or
// execute error is returned, matching real CHIP-8 interpreters'
// behavior of not retrying a faulted fetch.
func (s *Simulator) Step() error {
	cw, err := s.decodeWordAt(s.core.pc)
	if err != nil {
		return err
	}

	s.core.AdvancePC()

	op, err := s.set.Decode(cw)
	if err != nil {
		return err
	}

	if err := Apply(op, s.core); err != nil {
		return err
	}

	s.steps++

	return nil
}

// StepN executes n instructions, stopping at the first error.
func (s *Simulator) StepN(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}

	return nil
}

// TimerTick decrements the delay and sound timers by one each,
// saturating at zero, and updates the buzzer observable to match
// whether the sound timer is still running.
func (s *Simulator) TimerTick() {
	if s.core.dt > 0 {
		s.core.dt--
	}

	if s.core.st > 0 {
		s.core.st--
	}

	s.core.SetBuzzer(s.core.st > 0)
}

// Reg returns the value of general register r.
func (s *Simulator) Reg(r Register) byte { return s.core.v[r] }

// SetReg sets general register r.
func (s *Simulator) SetReg(r Register, v byte) { s.core.v[r] = v }

// PC returns the current program counter.
func (s *Simulator) PC() Address { return s.core.pc }

// I returns the current index register.
func (s *Simulator) I() uint { return s.core.i }

// Load, Store, Vram, Keyboard, SetKeyboard, Buzzer, and Audio delegate
// directly to the underlying machine state, giving callers that hold a
// bare Simulator (rather than a SimulatorTask) the same Execute-shaped
// surface without exposing it behind the Execute interface itself.
func (s *Simulator) Load(src Src) (uint, error)   { return s.core.Load(src) }
func (s *Simulator) Store(d Dest, v uint) error   { return s.core.Store(d, v) }
func (s *Simulator) Vram() Vram                   { return s.core.Vram() }
func (s *Simulator) Keyboard() Keyboard           { return s.core.Keyboard() }
func (s *Simulator) SetKeyboard(k Keyboard)       { s.core.SetKeyboard(k) }
func (s *Simulator) PressKey(key int)             { s.core.PressKey(key) }
func (s *Simulator) ReleaseKey(key int)           { s.core.ReleaseKey(key) }
func (s *Simulator) Buzzer() bool                 { return s.core.Buzzer() }
func (s *Simulator) Audio() AudioPattern          { return s.core.Audio() }
func (s *Simulator) Config() Config               { return s.core.Config() }
