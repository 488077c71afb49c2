package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("parse(defaultYAML) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestLoadCustomPathOverridesFields(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 640
player:
  speed: 4
render:
  textures: ["a.png"]
map:
  path: "maps/other.txt"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	expected := Default()
	expected.Window.Width = 640
	expected.Player.Speed = 4
	expected.Render.Textures = []string{"a.png"}
	expected.Map.Path = "maps/other.txt"
	if !reflect.DeepEqual(cfg, expected) {
		t.Errorf("Load() = %+v, expected %+v", cfg, expected)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"bad yaml", "window: [unterminated", false},
		{"wrong array length", "player:\n  start: [1, 2]\n", false},
		{"zero width", "window:\n  width: 0\n", true},
		{"negative speed", "player:\n  speed: -1\n", true},
		{"fov too wide", "render:\n  fov: 180\n", true},
		{"near beyond far", "render:\n  near: 50\n  far: 10\n", true},
		{"negative frame delta", "loop:\n  max_frame_delta: -0.5\n", true},
		{"loud", "audio:\n  volume: 2\n", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("Load() succeeded, expected error")
			}
			if got := errors.Is(err, ErrInvalid); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with missing custom path succeeded")
	}
}

func TestLoadWithoutCustomPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join("configs", "doomlike.yaml"), []byte("window:\n  title: local\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Window.Title != "local" {
		t.Errorf("Window.Title = %q, expected %q", cfg.Window.Title, "local")
	}
}

func TestLoadRejectsBrokenSearchPathFile(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"bad yaml", "window: [unterminated", false},
		{"invalid value", "player:\n  speed: -1\n", true},
	}
	for _, tc := range tests {
		t.Run("user/"+tc.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			t.Chdir(t.TempDir())
			if err := os.MkdirAll(filepath.Join(home, ".doomlike"), 0o755); err != nil {
				t.Fatalf("MkdirAll() failed: %v", err)
			}
			if err := os.WriteFile(filepath.Join(home, ".doomlike", "config.yaml"), []byte(tc.body), 0o644); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			// A valid local file must not hide the broken user file.
			if err := os.MkdirAll("configs", 0o755); err != nil {
				t.Fatalf("MkdirAll() failed: %v", err)
			}
			if err := os.WriteFile(filepath.Join("configs", "doomlike.yaml"), []byte("window:\n  title: local\n"), 0o644); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			_, err := Load("")
			if err == nil {
				t.Fatal("Load() succeeded, expected error")
			}
			if got := errors.Is(err, ErrInvalid); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
		t.Run("local/"+tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Chdir(t.TempDir())
			if err := os.MkdirAll("configs", 0o755); err != nil {
				t.Fatalf("MkdirAll() failed: %v", err)
			}
			if err := os.WriteFile(filepath.Join("configs", "doomlike.yaml"), []byte(tc.body), 0o644); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			if _, err := Load(""); err == nil {
				t.Fatal("Load() succeeded, expected error")
			}
		})
	}
}
