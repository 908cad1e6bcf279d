package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

type RawScreen struct {
	Width         *int  `yaml:"width"`
	Height        *int  `yaml:"height"`
	MonitorsRight *int  `yaml:"monitors_right"`
	MonitorsLeft  *int  `yaml:"monitors_left"`
	Detect        *bool `yaml:"detect"`
	UseWorkArea   *bool `yaml:"use_work_area"`
}

type RawWindow struct {
	Title       *string  `yaml:"title"`
	Width       *int     `yaml:"width"`
	Height      *int     `yaml:"height"`
	Colour      *string  `yaml:"colour"`
	Sensitivity *float64 `yaml:"sensitivity"`
	Decorated   *bool    `yaml:"decorated"`
}

type RawVec2 struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}

type RawPhysics struct {
	Drag             *float64 `yaml:"drag"`
	HorizontalBounce *float64 `yaml:"horizontal_bounce"`
	VerticalBounce   *float64 `yaml:"vertical_bounce"`
	TerminalVelocity *float64 `yaml:"terminal_velocity"`
	Gravity          *float64 `yaml:"gravity"`
	JumpHeight       *float64 `yaml:"jump_height"`
	ArrowKeysAdd     *float64 `yaml:"arrow_keys_add"`
	InitialVelocity  *RawVec2 `yaml:"initial_velocity"`
}

type RawSound struct {
	Enabled   *bool    `yaml:"enabled"`
	Volume    *float64 `yaml:"volume"`
	MinImpact *float64 `yaml:"min_impact"`
}

type RawConfig struct {
	Include  IncludeList `yaml:"include"`
	LogLevel *string     `yaml:"log_level"`
	Screen   *RawScreen  `yaml:"screen"`
	Window   *RawWindow  `yaml:"window"`
	Physics  *RawPhysics `yaml:"physics"`
	Sound    *RawSound   `yaml:"sound"`
}

// merge overlays the set fields of other onto r.
func (r RawConfig) merge(other RawConfig) RawConfig {
	out := r
	out.Include = nil
	if other.LogLevel != nil {
		out.LogLevel = other.LogLevel
	}
	if other.Screen != nil {
		s := RawScreen{}
		if r.Screen != nil {
			s = *r.Screen
		}
		overlay(&s.Width, other.Screen.Width)
		overlay(&s.Height, other.Screen.Height)
		overlay(&s.MonitorsRight, other.Screen.MonitorsRight)
		overlay(&s.MonitorsLeft, other.Screen.MonitorsLeft)
		overlay(&s.Detect, other.Screen.Detect)
		overlay(&s.UseWorkArea, other.Screen.UseWorkArea)
		out.Screen = &s
	}
	if other.Window != nil {
		w := RawWindow{}
		if r.Window != nil {
			w = *r.Window
		}
		overlay(&w.Title, other.Window.Title)
		overlay(&w.Width, other.Window.Width)
		overlay(&w.Height, other.Window.Height)
		overlay(&w.Colour, other.Window.Colour)
		overlay(&w.Sensitivity, other.Window.Sensitivity)
		overlay(&w.Decorated, other.Window.Decorated)
		out.Window = &w
	}
	if other.Physics != nil {
		p := RawPhysics{}
		if r.Physics != nil {
			p = *r.Physics
		}
		overlay(&p.Drag, other.Physics.Drag)
		overlay(&p.HorizontalBounce, other.Physics.HorizontalBounce)
		overlay(&p.VerticalBounce, other.Physics.VerticalBounce)
		overlay(&p.TerminalVelocity, other.Physics.TerminalVelocity)
		overlay(&p.Gravity, other.Physics.Gravity)
		overlay(&p.JumpHeight, other.Physics.JumpHeight)
		overlay(&p.ArrowKeysAdd, other.Physics.ArrowKeysAdd)
		if other.Physics.InitialVelocity != nil {
			v := RawVec2{}
			if p.InitialVelocity != nil {
				v = *p.InitialVelocity
			}
			overlay(&v.X, other.Physics.InitialVelocity.X)
			overlay(&v.Y, other.Physics.InitialVelocity.Y)
			p.InitialVelocity = &v
		}
		out.Physics = &p
	}
	if other.Sound != nil {
		s := RawSound{}
		if r.Sound != nil {
			s = *r.Sound
		}
		overlay(&s.Enabled, other.Sound.Enabled)
		overlay(&s.Volume, other.Sound.Volume)
		overlay(&s.MinImpact, other.Sound.MinImpact)
		out.Sound = &s
	}
	return out
}

func overlay[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
