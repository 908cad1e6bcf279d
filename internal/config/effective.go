package config

import "fmt"

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if (e.Source.Kind == SourceFile || e.Source.Kind == SourceLegacy) && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig overlays raw onto DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}

	if s := raw.Screen; s != nil {
		setIf(&cfg.Screen.Width, s.Width)
		setIf(&cfg.Screen.Height, s.Height)
		setIf(&cfg.Screen.MonitorsRight, s.MonitorsRight)
		setIf(&cfg.Screen.MonitorsLeft, s.MonitorsLeft)
		setIf(&cfg.Screen.Detect, s.Detect)
		setIf(&cfg.Screen.UseWorkArea, s.UseWorkArea)
	}

	if w := raw.Window; w != nil {
		setIf(&cfg.Window.Title, w.Title)
		setIf(&cfg.Window.Width, w.Width)
		setIf(&cfg.Window.Height, w.Height)
		setIf(&cfg.Window.Colour, w.Colour)
		setIf(&cfg.Window.Sensitivity, w.Sensitivity)
		setIf(&cfg.Window.Decorated, w.Decorated)
	}

	if p := raw.Physics; p != nil {
		setIf(&cfg.Physics.Drag, p.Drag)
		setIf(&cfg.Physics.HorizontalBounce, p.HorizontalBounce)
		setIf(&cfg.Physics.VerticalBounce, p.VerticalBounce)
		setIf(&cfg.Physics.TerminalVelocity, p.TerminalVelocity)
		setIf(&cfg.Physics.Gravity, p.Gravity)
		setIf(&cfg.Physics.JumpHeight, p.JumpHeight)
		setIf(&cfg.Physics.ArrowKeysAdd, p.ArrowKeysAdd)
		if v := p.InitialVelocity; v != nil {
			setIf(&cfg.Physics.InitialVelocity.X, v.X)
			setIf(&cfg.Physics.InitialVelocity.Y, v.Y)
		}
	}

	if s := raw.Sound; s != nil {
		setIf(&cfg.Sound.Enabled, s.Enabled)
		setIf(&cfg.Sound.Volume, s.Volume)
		setIf(&cfg.Sound.MinImpact, s.MinImpact)
	}

	return cfg, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
