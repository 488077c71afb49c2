// Package config provides YAML configuration loading for the game.
package config

import (
	"errors"
	"fmt"
)

// Config is the complete runtime configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Player PlayerConfig `yaml:"player"`
	Render RenderConfig `yaml:"render"`
	Map    MapConfig    `yaml:"map"`
	Loop   LoopConfig   `yaml:"loop"`
	Audio  AudioConfig  `yaml:"audio"`
}

// WindowConfig defines the initial window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// PlayerConfig defines the player's start position and movement tuning.
type PlayerConfig struct {
	Start       [3]float32 `yaml:"start"`
	Speed       float32    `yaml:"speed"`       // units per second
	Sensitivity float32    `yaml:"sensitivity"` // degrees per cursor pixel
	Radius      float32    `yaml:"radius"`      // collision cylinder radius
}

// RenderConfig defines projection and asset paths.
type RenderConfig struct {
	Fov        float32    `yaml:"fov"` // vertical, degrees
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	ClearColor [3]float32 `yaml:"clear_color"`
	ShaderVert string     `yaml:"shader_vert"`
	ShaderFrag string     `yaml:"shader_frag"`
	Textures   []string   `yaml:"textures"`
}

// MapConfig points at the level file.
type MapConfig struct {
	Path string `yaml:"path"`
}

// LoopConfig tunes the frame loop.
type LoopConfig struct {
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // seconds, 0 = unclamped
}

// AudioConfig tunes sound feedback.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Volume       float64 `yaml:"volume"`
	StepInterval float64 `yaml:"step_interval"` // seconds of walking per footstep
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed %v", ErrInvalid, c.Player.Speed)
	case c.Player.Sensitivity <= 0:
		return fmt.Errorf("%w: player sensitivity %v", ErrInvalid, c.Player.Sensitivity)
	case c.Player.Radius <= 0:
		return fmt.Errorf("%w: player radius %v", ErrInvalid, c.Player.Radius)
	case c.Render.Fov <= 0 || c.Render.Fov >= 180:
		return fmt.Errorf("%w: fov %v", ErrInvalid, c.Render.Fov)
	case c.Render.Near <= 0 || c.Render.Near >= c.Render.Far:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, c.Render.Near, c.Render.Far)
	case c.Loop.MaxFrameDelta < 0:
		return fmt.Errorf("%w: max_frame_delta %v", ErrInvalid, c.Loop.MaxFrameDelta)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %v", ErrInvalid, c.Audio.Volume)
	}
	return nil
}
