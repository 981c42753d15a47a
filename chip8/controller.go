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

// command is posted to the SimulatorTask's single worker goroutine.
// send wraps each call's work so that the worker closes a per-call
// reply channel once the work returns; closing never blocks, so the
// worker never waits on a caller. The caller blocks until that close.
type command struct {
	run func(sim *Simulator)
}

// SimulatorTask wraps a Simulator behind a single worker goroutine,
// serializing every mutation through a command channel. Multiple
// goroutines may call its methods concurrently: each call posts one
// command and blocks for its reply, so commands from any number of
// callers execute one at a time, in the order the worker receives
// them. The frame buffer, keyboard, buzzer, and audio pattern remain
// reachable without going through the channel at all, since Chip8
// already guards them with their own locks.
type SimulatorTask struct {
	sim  *Simulator
	cmds chan command
	done chan struct{}
}

// Spawn starts a SimulatorTask's worker goroutine over a freshly
// constructed Simulator.
func Spawn(cfg Config, seed []byte) *SimulatorTask {
	t := &SimulatorTask{
		sim:  NewSimulator(cfg, seed),
		cmds: make(chan command),
		done: make(chan struct{}),
	}

	go t.run()

	return t
}

func (t *SimulatorTask) run() {
	defer close(t.done)

	for cmd := range t.cmds {
		cmd.run(t.sim)
	}
}

// Stop closes the command channel and waits for the worker to drain
// and exit. No further command methods may be called afterward.
func (t *SimulatorTask) Stop() {
	close(t.cmds)
	<-t.done
}

func (t *SimulatorTask) send(run func(sim *Simulator)) {
	reply := make(chan struct{})

	t.cmds <- command{run: func(sim *Simulator) {
		run(sim)
		close(reply)
	}}

	<-reply
}

// Step executes one instruction.
func (t *SimulatorTask) Step() error {
	var err error

	t.send(func(sim *Simulator) { err = sim.Step() })

	return err
}

// StepN executes n instructions, stopping at the first error.
func (t *SimulatorTask) StepN(n int) error {
	var err error

	t.send(func(sim *Simulator) { err = sim.StepN(n) })

	return err
}

// Tick decrements the delay and sound timers by one each.
func (t *SimulatorTask) Tick() {
	t.send(func(sim *Simulator) { sim.TimerTick() })
}

// Load reads the value denoted by src.
func (t *SimulatorTask) Load(src Src) (uint, error) {
	var (
		v   uint
		err error
	)

	t.send(func(sim *Simulator) { v, err = sim.Load(src) })

	return v, err
}

// Store writes value to the location denoted by dest.
func (t *SimulatorTask) Store(dest Dest, value uint) error {
	var err error

	t.send(func(sim *Simulator) { err = sim.Store(dest, value) })

	return err
}

// LoadBytes copies b into RAM at addr.
func (t *SimulatorTask) LoadBytes(b []byte, addr Address) error {
	var err error

	t.send(func(sim *Simulator) { err = sim.LoadBytes(b, addr) })

	return err
}

// LoadProgram copies program into RAM at the configured program base.
func (t *SimulatorTask) LoadProgram(program []byte) error {
	var err error

	t.send(func(sim *Simulator) { err = sim.LoadProgram(program) })

	return err
}

// ResetSim reinitializes the underlying machine state.
func (t *SimulatorTask) ResetSim() {
	t.send(func(sim *Simulator) { sim.Reset() })
}

// Vram returns a snapshot of the frame buffer. It does not go through
// the command queue: Chip8's vram lock makes this safe to call while
// the worker is mid-step.
func (t *SimulatorTask) Vram() Vram { return t.sim.Vram() }

// Keyboard returns a snapshot of the keyboard state.
func (t *SimulatorTask) Keyboard() Keyboard { return t.sim.Keyboard() }

// SetKeyboard overwrites the keyboard state, waking any in-progress
// WaitKey.
func (t *SimulatorTask) SetKeyboard(k Keyboard) { t.sim.SetKeyboard(k) }

// PressKey and ReleaseKey update a single key's state.
func (t *SimulatorTask) PressKey(key int)   { t.sim.PressKey(key) }
func (t *SimulatorTask) ReleaseKey(key int) { t.sim.ReleaseKey(key) }

// Buzzer returns the current buzzer state.
func (t *SimulatorTask) Buzzer() bool { return t.sim.Buzzer() }

// Audio returns the current XO-CHIP audio pattern.
func (t *SimulatorTask) Audio() AudioPattern { return t.sim.Audio() }

// Config returns the machine's configuration.
func (t *SimulatorTask) Config() Config { return t.sim.Config() }

// Disassemble formats the instruction at addr as one line of assembly
// text, routed through the command queue so it never races the worker
// goroutine's RAM access.
func (t *SimulatorTask) Disassemble(addr Address) string {
	var s string

	t.send(func(sim *Simulator) { s = sim.set.Disassemble(sim, addr) })

	return s
}

// PC returns the current program counter.
func (t *SimulatorTask) PC() Address {
	var pc Address

	t.send(func(sim *Simulator) { pc = sim.PC() })

	return pc
}
