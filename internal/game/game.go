// Package game owns the window, the GL resources and the frame loop.
package game

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"doomlike/internal/audio"
	"doomlike/internal/config"
	"doomlike/internal/level"
	"doomlike/internal/player"
)

// Game ties the window, player, level and renderer together. All of it
// runs on the locked main thread.
type Game struct {
	cfg    config.Config
	logger *log.Logger

	window   *glfw.Window
	width    int // framebuffer size
	height   int
	level    *level.Map
	player   *player.Player
	renderer *Renderer
	sound    *audio.System
	feedback *audio.Feedback
	mouse    player.MouseTracker
}

// Run opens the window, loads everything and plays until the window is
// closed. Errors are fatal initialisation failures.
func Run(cfg config.Config, logger *log.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Info("opengl", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	// GL state.
	gl.Enable(gl.DEPTH_TEST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(cfg.Render.ClearColor[0], cfg.Render.ClearColor[1], cfg.Render.ClearColor[2], 1.0)

	g := &Game{
		cfg:    cfg,
		logger: logger,
		window: window,
	}
	g.width, g.height = window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(g.width), int32(g.height))

	g.level = level.Load(cfg.Map.Path, logger)

	start := cfg.Player.Start
	g.player = player.New(mgl32.Vec3{start[0], start[1], start[2]})
	g.player.Speed = cfg.Player.Speed
	g.player.Sensitivity = cfg.Player.Sensitivity
	g.player.Radius = cfg.Player.Radius

	g.renderer, err = NewRenderer(cfg.Render, g.width, g.height, logger)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer g.renderer.Destroy()

	if cfg.Audio.Enabled {
		g.sound, err = audio.New(cfg.Audio.Volume, logger)
		if err != nil {
			logger.Warn("audio init failed (continuing without sound)", "error", err)
			g.sound = nil
		}
	}
	defer g.sound.Close()
	g.feedback = audio.NewFeedback(g.sound, cfg.Audio.StepInterval)

	g.registerCallbacks()
	logger.Info("game started", "map", cfg.Map.Path, "walls", g.level.WallCount())

	g.loop()
	return nil
}

func (g *Game) loop() {
	last := glfw.GetTime()
	for !g.window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if maxDt := g.cfg.Loop.MaxFrameDelta; maxDt > 0 && dt > maxDt {
			dt = maxDt
		}

		g.processInput(dt)
		g.player.Update(dt, g.level)

		if g.width > 0 && g.height > 0 {
			gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
			g.renderer.Render(g.player, g.level)
		}

		g.window.SwapBuffers()
		glfw.PollEvents()
	}
}
