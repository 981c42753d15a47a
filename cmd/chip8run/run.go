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

package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ochip8/vm/chip8"
	"github.com/ochip8/vm/presets"
	"github.com/spf13/cobra"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	// Window is the global SDL window.
	Window *sdl.Window

	// Renderer is the global SDL renderer.
	Renderer *sdl.Renderer

	// Task drives the chip8 machine on its own goroutine; everything
	// here reaches it only through its command channel or its shared
	// observable locks, exactly as spec'd for the threaded controller.
	Task *chip8.SimulatorTask

	// Debug is the scrollback log shown in the side panel.
	Debug *Logger

	// Paused is true while single-stepping instead of free-running.
	Paused bool

	// romPath is the file most recently loaded, kept for the Backspace
	// reboot.
	romPath string
)

func init() {
	// SDL requires its event pump to run on the thread that created the
	// window; Go's scheduler otherwise feels free to migrate goroutines.
	runtime.LockOSThread()
}

func runEmulator(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		romPath = args[0]
	} else {
		path, err := dialog.File().Title("Load CHIP-8 ROM").Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "no rom selected: %v\n", err)
			os.Exit(1)
		}

		romPath = path
	}

	cfg, ok := presets.ByName(presetName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown preset %q\n", presetName)
		os.Exit(1)
	}

	if quirkShift {
		cfg.QuirkShift = true
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading rom: %v\n", err)
		os.Exit(1)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	Debug = NewLog()
	Debug.Log(fmt.Sprintf("chip8run: %s preset", cfg.Name))
	Debug.Log(fmt.Sprintf("loaded %d bytes from %s", len(rom), romPath))

	Task = chip8.Spawn(cfg, nil)
	defer Task.Stop()

	if err := Task.LoadProgram(rom); err != nil {
		Debug.Logln(err.Error())
	}

	createWindow()
	defer destroyWindow()

	loadFont()

	beeper, err := NewBeeper()
	if err != nil {
		Debug.Logln("audio disabled:", err.Error())
	} else {
		defer beeper.Close()
	}

	// Roughly 540Hz instruction rate and the conventional 60Hz timer /
	// redraw cadence, matching the teacher's own clock/video split.
	clock := time.NewTicker(time.Second / 540)
	defer clock.Stop()

	video := time.NewTicker(time.Second / 60)
	defer video.Stop()

	Debug.Logln("running; ESC quits, F1 for help")

	for processEvents() {
		select {
		case <-video.C:
			Task.Tick()

			if beeper != nil {
				beeper.Update(Task.Buzzer())
			}

			redraw()
		case <-clock.C:
			if !Paused {
				if err := Task.Step(); err != nil {
					Debug.Log(err.Error())
					Paused = true
				}
			}
		}
	}
}

func createWindow() {
	var err error

	Window, Renderer, err = sdl.CreateWindowAndRenderer(614, 380, sdl.WINDOW_OPENGL)
	if err != nil {
		panic(err)
	}

	Window.SetTitle("chip8run")

	initScreen()
}

func destroyWindow() {
	if Renderer != nil {
		Renderer.Destroy()
	}

	if Window != nil {
		Window.Destroy()
	}
}
