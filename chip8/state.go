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

import (
	"math/rand"
	"sync"
	"time"
)

// Chip8 is the concrete machine state: RAM, registers, stack, and
// timers are owned exclusively by whichever goroutine drives a
// Simulator built on it. The frame buffer, keyboard, buzzer, and audio
// pattern are each guarded by their own reader/writer lock so a second
// goroutine can observe or inject them concurrently. No method here
// ever holds more than one of those locks at a time, so no lock-ordering
// deadlock can arise within this type.
type Chip8 struct {
	config Config

	ram   []byte
	v     [16]byte
	i     uint
	pc    Address
	stack []Address
	dt    byte
	st    byte

	rng     *rand.Rand
	rngSeed []byte
	rngPos  int

	vramMu sync.RWMutex
	vram   Vram

	keysMu   sync.RWMutex
	keysCond *sync.Cond
	keys     Keyboard

	buzzerMu sync.RWMutex
	buzzer   bool

	audioMu sync.RWMutex
	audio   AudioPattern
}

// NewChip8 constructs a machine state from cfg. If seed is non-nil, the
// Random operand draws its bytes from seed in order and reads as 0 once
// the seed is exhausted (it does not wrap), giving deterministic,
// replayable randomness for tests; otherwise it draws from a
// process-local, non-deterministic source.
func NewChip8(cfg Config, seed []byte) *Chip8 {
	c := &Chip8{
		config:  cfg,
		ram:     make([]byte, cfg.RAMBytes),
		stack:   make([]Address, 0, cfg.StackSize),
		pc:      cfg.ProgramBase,
		vram:    make(Vram, cfg.ScreenWidth*cfg.ScreenHeight),
		rngSeed: seed,
	}

	c.keysCond = sync.NewCond(&c.keysMu)

	if seed == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c.installFonts()

	return c
}

func (c *Chip8) installFonts() {
	copy(c.ram[c.config.SmallFontBase:], c.config.smallFont())
	copy(c.ram[c.config.BigFontBase:], c.config.bigFont())
}

// Reset restores the machine to its post-construction state: RAM is
// recleared and the configured fonts reinstalled, every register and
// timer is zeroed, the stack is emptied, PC returns to the program
// base, and the frame buffer, keyboard, buzzer, and audio pattern are
// all cleared.
func (c *Chip8) Reset() {
	for i := range c.ram {
		c.ram[i] = 0
	}

	c.installFonts()

	c.v = [16]byte{}
	c.i = 0
	c.pc = c.config.ProgramBase
	c.stack = c.stack[:0]
	c.dt, c.st = 0, 0
	c.rngPos = 0

	c.vramMu.Lock()
	for i := range c.vram {
		c.vram[i] = 0
	}
	c.vramMu.Unlock()

	c.keysMu.Lock()
	c.keys = Keyboard{}
	c.keysMu.Unlock()

	c.buzzerMu.Lock()
	c.buzzer = false
	c.buzzerMu.Unlock()

	c.audioMu.Lock()
	c.audio = AudioPattern{}
	c.audioMu.Unlock()
}

// LoadBytes copies b into RAM starting at addr, bounds-checked.
func (c *Chip8) LoadBytes(b []byte, addr Address) error {
	if int(addr)+len(b) > len(c.ram) {
		return errOutOfBounds(addr)
	}

	copy(c.ram[addr:], b)

	return nil
}

// nextRandom draws the next pseudo-random byte. With a deterministic
// seed, the sequence is consumed once in order and yields 0 for every
// draw past its end, rather than wrapping, so replayed traces stay
// exactly reproducible regardless of how many random draws a program
// happens to make.
func (c *Chip8) nextRandom() byte {
	if c.rngSeed != nil {
		if c.rngPos >= len(c.rngSeed) {
			return 0
		}

		b := c.rngSeed[c.rngPos]
		c.rngPos++

		return b
	}

	return byte(c.rng.Intn(256))
}

// Config implements Execute.
func (c *Chip8) Config() Config { return c.config }

// Load implements Execute.
func (c *Chip8) Load(src Src) (uint, error) {
	switch src.Kind {
	case SrcConstKind, SrcAddress12Kind, SrcLiteral12Kind, SrcLiteral8Kind, SrcLiteral4Kind:
		return src.Value, nil
	case SrcRegisterKind:
		if src.Value > 0xF {
			return 0, errInvalidOperand("register index out of range")
		}
		return uint(c.v[src.Value]), nil
	case SrcIKind:
		return c.i, nil
	case SrcIndirectIKind:
		b, err := c.readRAM(Address(c.i))
		return uint(b), err
	case SrcDelayTimerKind:
		return uint(c.dt), nil
	case SrcSoundTimerKind:
		return uint(c.st), nil
	case SrcRandomKind:
		return uint(c.nextRandom()), nil
	case SrcPCKind:
		return uint(c.pc), nil
	default:
		return 0, errInvalidOperand("unreadable source kind")
	}
}

// Store implements Execute.
func (c *Chip8) Store(dest Dest, value uint) error {
	switch dest.Kind {
	case DestRegisterKind:
		if dest.Value > 0xF {
			return errInvalidOperand("register index out of range")
		}
		c.v[dest.Value] = byte(value)
		return nil
	case DestIKind:
		c.i = value
		return nil
	case DestIndirectIKind:
		return c.writeRAM(Address(c.i), byte(value))
	case DestDelayTimerKind:
		c.dt = byte(value)
		return nil
	case DestSoundTimerKind:
		c.st = byte(value)
		return nil
	case DestPCKind:
		c.pc = Address(value)
		return nil
	default:
		return errInvalidOperand("unwritable destination kind")
	}
}

func (c *Chip8) readRAM(addr Address) (byte, error) {
	if int(addr) >= len(c.ram) {
		return 0, errOutOfBounds(addr)
	}

	return c.ram[addr], nil
}

func (c *Chip8) writeRAM(addr Address, v byte) error {
	if int(addr) >= len(c.ram) {
		return errOutOfBounds(addr)
	}

	c.ram[addr] = v

	return nil
}

// ReadByte implements Execute.
func (c *Chip8) ReadByte(offsetFromI int) (byte, error) {
	return c.readRAM(Address(int(c.i) + offsetFromI))
}

// WriteByte implements Execute.
func (c *Chip8) WriteByte(offsetFromI int, v byte) error {
	return c.writeRAM(Address(int(c.i)+offsetFromI), v)
}

// StackPush implements Execute.
func (c *Chip8) StackPush(addr Address) error {
	if len(c.stack) >= c.config.StackSize {
		return errOutOfBounds(addr)
	}

	c.stack = append(c.stack, addr)

	return nil
}

// StackPop implements Execute.
func (c *Chip8) StackPop() (Address, error) {
	if len(c.stack) == 0 {
		return 0, errPopEmptyStack()
	}

	addr := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	return addr, nil
}

// PC implements Execute.
func (c *Chip8) PC() Address { return c.pc }

// AdvancePC implements Execute.
func (c *Chip8) AdvancePC() { c.pc += 2 }

// Jump implements Execute.
func (c *Chip8) Jump(addr Address) error {
	if int(addr) >= len(c.ram) {
		return errOutOfBounds(addr)
	}

	c.pc = addr

	return nil
}

// SetFlag implements Execute.
func (c *Chip8) SetFlag(set bool) {
	if set {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
}

func (c *Chip8) pixelIndex(x, y int) int {
	w, h := c.config.ScreenWidth, c.config.ScreenHeight

	x = ((x % w) + w) % w
	y = ((y % h) + h) % h

	return y*w + x
}

// SetPixel implements Execute.
func (c *Chip8) SetPixel(x, y int, p Pixel) error {
	c.vramMu.Lock()
	defer c.vramMu.Unlock()

	c.vram[c.pixelIndex(x, y)] = p

	return nil
}

// XorPixel implements Execute.
func (c *Chip8) XorPixel(x, y int, p Pixel) (bool, error) {
	c.vramMu.Lock()
	defer c.vramMu.Unlock()

	idx := c.pixelIndex(x, y)
	before := c.vram[idx]
	after := before ^ p
	c.vram[idx] = after

	return before == 1 && after == 0, nil
}

// Keyboard implements Execute.
func (c *Chip8) Keyboard() Keyboard {
	c.keysMu.RLock()
	defer c.keysMu.RUnlock()

	return c.keys
}

// SetKeyboard implements Execute.
func (c *Chip8) SetKeyboard(k Keyboard) {
	c.keysMu.Lock()
	c.keys = k
	c.keysMu.Unlock()

	c.keysCond.Broadcast()
}

// PressKey sets a single key down and wakes any pending WaitKey.
func (c *Chip8) PressKey(key int) {
	c.keysMu.Lock()
	if key >= 0 && key < 16 {
		c.keys[key] = true
	}
	c.keysMu.Unlock()

	c.keysCond.Broadcast()
}

// ReleaseKey sets a single key up.
func (c *Chip8) ReleaseKey(key int) {
	c.keysMu.Lock()
	if key >= 0 && key < 16 {
		c.keys[key] = false
	}
	c.keysMu.Unlock()

	c.keysCond.Broadcast()
}

// Vram implements Execute.
func (c *Chip8) Vram() Vram {
	c.vramMu.RLock()
	defer c.vramMu.RUnlock()

	snap := make(Vram, len(c.vram))
	copy(snap, c.vram)

	return snap
}

// Buzzer implements Execute.
func (c *Chip8) Buzzer() bool {
	c.buzzerMu.RLock()
	defer c.buzzerMu.RUnlock()

	return c.buzzer
}

// SetBuzzer implements Execute.
func (c *Chip8) SetBuzzer(on bool) {
	c.buzzerMu.Lock()
	c.buzzer = on
	c.buzzerMu.Unlock()
}

// Audio implements Execute.
func (c *Chip8) Audio() AudioPattern {
	c.audioMu.RLock()
	defer c.audioMu.RUnlock()

	return c.audio
}

// SetAudio implements Execute.
func (c *Chip8) SetAudio(p AudioPattern) {
	c.audioMu.Lock()
	c.audio = p
	c.audioMu.Unlock()
}

// WaitKey implements Execute. It blocks the calling goroutine until a
// key transitions from released to pressed, which can only happen
// through SetKeyboard/PressKey called from another goroutine.
func (c *Chip8) WaitKey() (Register, error) {
	c.keysMu.Lock()
	defer c.keysMu.Unlock()

	prev := c.keys

	for {
		c.keysCond.Wait()

		for i := 0; i < 16; i++ {
			if c.keys[i] && !prev[i] {
				return Register(i), nil
			}
		}

		prev = c.keys
	}
}
