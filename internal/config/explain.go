package config

import (
	"fmt"
	"sort"
)

var explainPaths = map[string]func(*Config) any{
	"log_level":                  func(c *Config) any { return c.LogLevel },
	"screen.width":               func(c *Config) any { return c.Screen.Width },
	"screen.height":              func(c *Config) any { return c.Screen.Height },
	"screen.monitors_right":      func(c *Config) any { return c.Screen.MonitorsRight },
	"screen.monitors_left":       func(c *Config) any { return c.Screen.MonitorsLeft },
	"screen.detect":              func(c *Config) any { return c.Screen.Detect },
	"screen.use_work_area":       func(c *Config) any { return c.Screen.UseWorkArea },
	"window.title":               func(c *Config) any { return c.Window.Title },
	"window.width":               func(c *Config) any { return c.Window.Width },
	"window.height":              func(c *Config) any { return c.Window.Height },
	"window.colour":              func(c *Config) any { return c.Window.Colour },
	"window.sensitivity":         func(c *Config) any { return c.Window.Sensitivity },
	"window.decorated":           func(c *Config) any { return c.Window.Decorated },
	"physics.drag":               func(c *Config) any { return c.Physics.Drag },
	"physics.horizontal_bounce":  func(c *Config) any { return c.Physics.HorizontalBounce },
	"physics.vertical_bounce":    func(c *Config) any { return c.Physics.VerticalBounce },
	"physics.terminal_velocity":  func(c *Config) any { return c.Physics.TerminalVelocity },
	"physics.gravity":            func(c *Config) any { return c.Physics.Gravity },
	"physics.jump_height":        func(c *Config) any { return c.Physics.JumpHeight },
	"physics.arrow_keys_add":     func(c *Config) any { return c.Physics.ArrowKeysAdd },
	"physics.initial_velocity.x": func(c *Config) any { return c.Physics.InitialVelocity.X },
	"physics.initial_velocity.y": func(c *Config) any { return c.Physics.InitialVelocity.Y },
	"sound.enabled":              func(c *Config) any { return c.Sound.Enabled },
	"sound.volume":               func(c *Config) any { return c.Sound.Volume },
	"sound.min_impact":           func(c *Config) any { return c.Sound.MinImpact },
}

// ExplainPaths lists every path Explain understands, sorted.
func ExplainPaths() []string {
	out := make([]string, 0, len(explainPaths))
	for p := range explainPaths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Explain returns the effective value at the given YAML-like path and its source.
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	lookup, ok := explainPaths[path]
	if !ok {
		return nil, Source{}, fmt.Errorf("unknown path: %s", path)
	}
	value := lookup(res.Config)

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}
