package config

import (
	_ "embed"
)

//go:embed defaults/doomlike.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "Doom-like Game",
			VSync:  true,
		},
		Player: PlayerConfig{
			Start:       [3]float32{2, 0, 2},
			Speed:       2.5,
			Sensitivity: 0.1,
			Radius:      0.3,
		},
		Render: RenderConfig{
			Fov:        45,
			Near:       0.1,
			Far:        100,
			ClearColor: [3]float32{0.1, 0.1, 0.1},
			ShaderVert: "shaders/basic.vert",
			ShaderFrag: "shaders/basic.frag",
			Textures: []string{
				"resources/wall1.jpg",
				"resources/wall2.png",
				"resources/floor.jpg",
			},
		},
		Map: MapConfig{
			Path: "maps/level1.txt",
		},
		Loop: LoopConfig{
			MaxFrameDelta: 0.1,
		},
		Audio: AudioConfig{
			Enabled:      true,
			Volume:       0.6,
			StepInterval: 0.45,
		},
	}
}
