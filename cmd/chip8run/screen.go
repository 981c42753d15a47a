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

	"github.com/ochip8/vm/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

// Screen is the render target holding the scaled-up video memory.
var Screen *sdl.Texture

// initScreen creates the render target sized to the machine's
// configured frame buffer.
func initScreen() {
	cfg := Task.Config()

	var err error

	Screen, err = Renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, int32(cfg.ScreenWidth), int32(cfg.ScreenHeight))
	if err != nil {
		panic(err)
	}
}

// refreshScreen repaints Screen from a fresh Vram snapshot.
func refreshScreen() {
	cfg := Task.Config()
	vram := Task.Vram()

	if err := Renderer.SetRenderTarget(Screen); err != nil {
		panic(err)
	}

	// the background color for the screen
	Renderer.SetDrawColor(143, 145, 133, 255)
	Renderer.Clear()

	// set the pixel color
	Renderer.SetDrawColor(17, 29, 43, 255)

	for p, pixel := range vram {
		if pixel != chip8.Pixel(0) {
			x := p % cfg.ScreenWidth
			y := p / cfg.ScreenWidth

			Renderer.DrawPoint(x, y)
		}
	}

	// restore the render target
	Renderer.SetRenderTarget(nil)
}

// copyScreen stretches Screen into the destination rect on the window.
func copyScreen(x, y, w, h int32) {
	cfg := Task.Config()

	src := sdl.Rect{W: int32(cfg.ScreenWidth), H: int32(cfg.ScreenHeight)}

	Renderer.Copy(Screen, &src, &sdl.Rect{X: x, Y: y, W: w, H: h})
}

// redraw paints the video display and the debug side panel for the
// current frame.
func redraw() {
	refreshScreen()

	Renderer.SetDrawColor(0, 0, 0, 255)
	Renderer.Clear()

	copyScreen(4, 4, 384, 192)

	drawDebugPanel()

	Renderer.Present()
}

func drawDebugPanel() {
	pc := Task.PC()

	DrawText(fmt.Sprintf("PC %04X  %s", uint16(pc), Task.Disassemble(pc)), 4, 204)

	for i, line := range Debug.Window(12) {
		DrawText(line, 4, 224+i*9)
	}

	if Paused {
		DrawText("-- PAUSED --", 4, 360)
	}
}
