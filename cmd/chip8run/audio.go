package main

import (
	"math"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
)

// Audio parameters for the square-wave buzzer tone.
const (
	sampleRate = 44100
	frequency  = 440
	amplitude  = 0.3
)

// Beeper plays a square-wave tone for as long as the chip8 machine's
// buzzer observable is on. It is a pure-Go SDL audio callback, not a
// cgo one: this task never invokes a build toolchain to verify its
// output, and cgo compilation depends on a host C toolchain this
// process has no way to check.
type Beeper struct {
	deviceID sdl.AudioDeviceID
	playing  bool
	phase    float64
	mu       sync.Mutex
}

// NewBeeper opens an SDL audio device and starts it running; the
// callback writes silence until Update turns the tone on.
func NewBeeper() (*Beeper, error) {
	b := &Beeper{}

	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  512,
		Callback: sdl.AudioCallback(b.callback),
	}

	var obtained sdl.AudioSpec

	deviceID, err := sdl.OpenAudioDevice("", false, spec, &obtained, 0)
	if err != nil {
		return nil, err
	}

	b.deviceID = deviceID
	sdl.PauseAudioDevice(b.deviceID, false)

	return b, nil
}

// Update starts or stops the tone to match on, the machine's current
// buzzer state.
func (b *Beeper) Update(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.playing = on
}

// Close stops the tone and releases the audio device.
func (b *Beeper) Close() {
	b.mu.Lock()
	b.playing = false
	b.mu.Unlock()

	if b.deviceID != 0 {
		sdl.CloseAudioDevice(b.deviceID)
	}
}

func (b *Beeper) callback(_ interface{}, stream []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.playing {
		for i := range stream {
			stream[i] = 0
		}

		return
	}

	phaseIncrement := 2 * math.Pi * frequency / sampleRate

	for i := 0; i+1 < len(stream); i += 2 {
		var sample int16

		if math.Sin(b.phase) >= 0 {
			sample = int16(amplitude * 32767)
		} else {
			sample = int16(-amplitude * 32767)
		}

		stream[i] = byte(sample)
		stream[i+1] = byte(sample >> 8)

		b.phase += phaseIncrement
		if b.phase >= 2*math.Pi {
			b.phase -= 2 * math.Pi
		}
	}
}
