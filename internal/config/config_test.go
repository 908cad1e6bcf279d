package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Physics.Gravity != 2 || cfg.Physics.TerminalVelocity != 50 {
		t.Fatalf("unexpected physics defaults: %+v", cfg.Physics)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Window.Width != 400 {
		t.Fatalf("expected default window width 400, got %d", res.Config.Window.Width)
	}
	if len(res.Files) != 0 {
		t.Fatalf("expected no files loaded, got %v", res.Files)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "# empty\n")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Screen.Width != 1920 {
		t.Fatalf("expected default screen width, got %d", res.Config.Screen.Width)
	}
}

func TestLoadFromPath_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := strings.Join([]string{
		"screen:",
		"  monitors_left: 1",
		"physics:",
		"  gravity: 3.5",
		"  initial_velocity:",
		"    y: -10",
		"sound:",
		"  enabled: true",
		"",
	}, "\n")
	writeFile(t, path, data)

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.Screen.MonitorsLeft != 1 || cfg.Screen.Width != 1920 {
		t.Fatalf("screen = %+v", cfg.Screen)
	}
	if cfg.Physics.Gravity != 3.5 || cfg.Physics.Drag != 0.99 {
		t.Fatalf("physics = %+v", cfg.Physics)
	}
	if cfg.Physics.InitialVelocity != (Vec2{X: 20, Y: -10}) {
		t.Fatalf("initial velocity = %+v", cfg.Physics.InitialVelocity)
	}
	if !cfg.Sound.Enabled || cfg.Sound.Volume != 0.5 {
		t.Fatalf("sound = %+v", cfg.Sound)
	}
}

func TestLoadFromPath_StrictUnknownKeyErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "unknown_key: 1\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown_key") && !strings.Contains(err.Error(), "field") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to include file path, got %v", err)
	}
}

func TestLoadFromPath_ValidationErrorHasSourcePosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "window:\n  width: 400\n  colour: \"zz0000\"\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if verr.Path != "window.colour" {
		t.Fatalf("path = %q, want window.colour", verr.Path)
	}
	if verr.Source.Line != 3 {
		t.Fatalf("source line = %d, want 3", verr.Source.Line)
	}
	if !strings.Contains(err.Error(), ":3:") {
		t.Fatalf("expected file:line:col prefix, got %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"zero screen width", func(c *Config) { c.Screen.Width = 0 }, "screen.width"},
		{"negative monitors", func(c *Config) { c.Screen.MonitorsRight = -1 }, "screen.monitors_right"},
		{"zero window height", func(c *Config) { c.Window.Height = 0 }, "window.height"},
		{"short colour", func(c *Config) { c.Window.Colour = "fff" }, "window.colour"},
		{"zero sensitivity", func(c *Config) { c.Window.Sensitivity = 0 }, "window.sensitivity"},
		{"volume above one", func(c *Config) { c.Sound.Volume = 1.5 }, "sound.volume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Path != tt.path {
				t.Fatalf("path = %q, want %q", verr.Path, tt.path)
			}
		})
	}
}

func TestValidate_DetectAllowsZeroScreen(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Screen.Detect = true
	cfg.Screen.Width = 0
	cfg.Screen.Height = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected detect to allow zero screen size, got %v", err)
	}
}

func TestLoadFromPath_IncludeDirectoryOrderAndMainOverrides(t *testing.T) {
	dir := t.TempDir()

	configD := filepath.Join(dir, "config.d")
	if err := os.MkdirAll(configD, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(configD, "10-base.yaml"), "physics:\n  gravity: 5\n  drag: 0.5\n")
	writeFile(t, filepath.Join(configD, "20-override.yaml"), "physics:\n  gravity: 6\n")

	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "include:\n  - config.d\nwindow:\n  title: Bouncy\n")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Physics.Gravity != 6 {
		t.Fatalf("expected gravity 6, got %v", res.Config.Physics.Gravity)
	}
	if res.Config.Physics.Drag != 0.5 {
		t.Fatalf("expected drag 0.5 from base include, got %v", res.Config.Physics.Drag)
	}
	if res.Config.Window.Title != "Bouncy" {
		t.Fatalf("expected title from main file, got %q", res.Config.Window.Title)
	}
	if len(res.Files) != 3 {
		t.Fatalf("expected 3 loaded files, got %v", res.Files)
	}
}

func TestLoadFromPath_IncludeCycleDetection(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	writeFile(t, a, "include: b.yaml\n")
	writeFile(t, b, "include: a.yaml\n")

	_, err := LoadFromPath(a)
	if err == nil {
		t.Fatalf("expected cycle error")
	}
	if !strings.Contains(err.Error(), "include cycle") {
		t.Fatalf("expected cycle error, got %v", err)
	}
}

func TestExplain_FileAndDefaultSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "physics:\n  jump_height: 80\n")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	val, src, err := Explain(res, "physics.jump_height")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if val != 80.0 {
		t.Fatalf("value = %#v, want 80", val)
	}
	if src.Kind != SourceFile || src.Line != 2 {
		t.Fatalf("source = %#v, want file line 2", src)
	}

	val, src, err = Explain(res, "window.colour")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if val != "000000" || src.Kind != SourceDefault {
		t.Fatalf("got %#v from %#v, want default colour", val, src)
	}

	if _, _, err := Explain(res, "physics.nope"); err == nil {
		t.Fatalf("expected unknown path error")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Window.Colour = "ff8800"
	cfg.Screen.MonitorsRight = 2

	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Window.Colour != "ff8800" || res.Config.Screen.MonitorsRight != 2 {
		t.Fatalf("round trip lost values: %+v", res.Config)
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    Colour
		wantErr bool
	}{
		{"000000", Colour{}, false},
		{"ffffff", Colour{R: 1, G: 1, B: 1}, false},
		{"#FF0000", Colour{R: 1}, false},
		{"0x00ff00", Colour{G: 1}, false},
		{"fff", Colour{}, true},
		{"gg0000", Colour{}, true},
		{"", Colour{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColour(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
