package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"doomlike/internal/player"
)

var moveKeys = []struct {
	key glfw.Key
	dir player.Direction
}{
	{glfw.KeyW, player.Forward},
	{glfw.KeyS, player.Backward},
	{glfw.KeyA, player.Left},
	{glfw.KeyD, player.Right},
}

// processInput polls the keyboard. Escape only flags the window; the loop
// notices it on its next check.
func (g *Game) processInput(dt float64) {
	if g.window.GetKey(glfw.KeyEscape) == glfw.Press {
		g.window.SetShouldClose(true)
	}

	moved, blocked := false, false
	for _, mk := range moveKeys {
		if g.window.GetKey(mk.key) != glfw.Press {
			continue
		}
		if g.player.Move(mk.dir, dt, g.level) {
			moved = true
		} else {
			blocked = true
		}
	}
	g.feedback.Update(dt, moved, blocked)
	g.sound.Reap()
}

// registerCallbacks binds the window notifications to this game.
func (g *Game) registerCallbacks() {
	g.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		g.width, g.height = width, height
		g.renderer.ResizeViewport(width, height)
		g.logger.Debug("framebuffer resized", "width", width, "height", height)
	})
	g.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		dx, dy := g.mouse.Delta(x, y)
		g.player.Look(dx, dy)
	})
	g.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			// The cursor is released while unfocused; start over when it
			// comes back so the jump is not turned into a look.
			g.mouse.Reset()
		}
	})
}
