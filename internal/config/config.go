package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Screen describes the virtual screen span the window bounces inside.
type Screen struct {
	Width         int  `yaml:"width"`
	Height        int  `yaml:"height"`
	MonitorsRight int  `yaml:"monitors_right"`
	MonitorsLeft  int  `yaml:"monitors_left"`
	Detect        bool `yaml:"detect"`        // Query the display server for size and span.
	UseWorkArea   bool `yaml:"use_work_area"` // Floor at the bottom of the work area (panels excluded).
}

// Window describes the animated window.
type Window struct {
	Title       string  `yaml:"title"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Colour      string  `yaml:"colour"` // 6 hex digits, no prefix
	Sensitivity float64 `yaml:"sensitivity"`
	Decorated   bool    `yaml:"decorated"`
}

// Vec2 is a YAML-friendly 2D vector.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Physics holds the free-body tuning. Velocities are pixels per frame.
type Physics struct {
	Drag             float64 `yaml:"drag"`              // Horizontal velocity multiplier on floor contact.
	HorizontalBounce float64 `yaml:"horizontal_bounce"` // Attenuation on wall contact (0-1).
	VerticalBounce   float64 `yaml:"vertical_bounce"`   // Attenuation on floor contact (0-1).
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	Gravity          float64 `yaml:"gravity"`
	JumpHeight       float64 `yaml:"jump_height"`
	ArrowKeysAdd     float64 `yaml:"arrow_keys_add"`
	InitialVelocity  Vec2    `yaml:"initial_velocity"`
}

// Sound configures impact sounds.
type Sound struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float64 `yaml:"volume"`     // 0-1
	MinImpact float64 `yaml:"min_impact"` // px/frame below which contacts are silent
}

// Config is the effective configuration.
type Config struct {
	LogLevel string  `yaml:"log_level"`
	Screen   Screen  `yaml:"screen"`
	Window   Window  `yaml:"window"`
	Physics  Physics `yaml:"physics"`
	Sound    Sound   `yaml:"sound"`
}

// DefaultConfig returns the stock configuration: a 400x400 black window on a
// single 1920x1080 screen.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Screen: Screen{
			Width:  1920,
			Height: 1080,
		},
		Window: Window{
			Title:       "Physics Window",
			Width:       400,
			Height:      400,
			Colour:      "000000",
			Sensitivity: 1.0,
		},
		Physics: Physics{
			Drag:             0.99,
			HorizontalBounce: 0.99,
			VerticalBounce:   0.95,
			TerminalVelocity: 50,
			Gravity:          2,
			JumpHeight:       50,
			ArrowKeysAdd:     20,
			InitialVelocity:  Vec2{X: 20, Y: 20},
		},
		Sound: Sound{
			Enabled:   false,
			Volume:    0.5,
			MinImpact: 8,
		},
	}
}

// DefaultConfigPath returns ~/.config/windowfun/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "windowfun", "config.yaml"), nil
}

// Save writes the configuration to path, creating parent directories.
//
// Note: this marshals the effective config and will not preserve comments
// from an existing file.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate performs numeric sanity checks on the effective configuration.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}

	if !c.Screen.Detect {
		if c.Screen.Width <= 0 {
			return &ValidationError{Path: "screen.width", Err: fmt.Errorf("width must be > 0 unless detect is enabled")}
		}
		if c.Screen.Height <= 0 {
			return &ValidationError{Path: "screen.height", Err: fmt.Errorf("height must be > 0 unless detect is enabled")}
		}
	}
	if c.Screen.MonitorsRight < 0 {
		return &ValidationError{Path: "screen.monitors_right", Err: fmt.Errorf("monitors_right must be >= 0")}
	}
	if c.Screen.MonitorsLeft < 0 {
		return &ValidationError{Path: "screen.monitors_left", Err: fmt.Errorf("monitors_left must be >= 0")}
	}

	if c.Window.Width <= 0 {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Window.Height <= 0 {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("height must be > 0")}
	}
	if _, err := ParseColour(c.Window.Colour); err != nil {
		return &ValidationError{Path: "window.colour", Err: err}
	}
	if c.Window.Sensitivity <= 0 {
		return &ValidationError{Path: "window.sensitivity", Err: fmt.Errorf("sensitivity must be > 0")}
	}

	if c.Physics.TerminalVelocity < 0 {
		return &ValidationError{Path: "physics.terminal_velocity", Err: fmt.Errorf("terminal_velocity must be >= 0")}
	}
	if c.Physics.JumpHeight < 0 {
		return &ValidationError{Path: "physics.jump_height", Err: fmt.Errorf("jump_height must be >= 0")}
	}

	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return &ValidationError{Path: "sound.volume", Err: fmt.Errorf("volume must be between 0 and 1")}
	}
	if c.Sound.MinImpact < 0 {
		return &ValidationError{Path: "sound.min_impact", Err: fmt.Errorf("min_impact must be >= 0")}
	}

	if warnings := c.validationWarnings(); len(warnings) > 0 {
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
	}

	return nil
}

func (c *Config) validationWarnings() []string {
	if c == nil {
		return nil
	}

	var warnings []string

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"physics.drag", c.Physics.Drag},
		{"physics.horizontal_bounce", c.Physics.HorizontalBounce},
		{"physics.vertical_bounce", c.Physics.VerticalBounce},
	} {
		if f.value < 0 || f.value > 1 {
			warnings = append(warnings, fmt.Sprintf("%s is %g; values outside 0-1 add energy on every contact", f.name, f.value))
		}
	}

	if strings.TrimSpace(c.Window.Title) == "" {
		warnings = append(warnings, "window.title is empty")
	}

	return warnings
}
