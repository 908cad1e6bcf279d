package host

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/1broseidon/windowfun/internal/config"
	"github.com/1broseidon/windowfun/internal/physics"
	"github.com/1broseidon/windowfun/internal/platform"
)

// DetectFunc queries the display server for the screen span.
type DetectFunc func(useWorkArea bool) (platform.Span, error)

// ResolveScreen returns the screen span to bounce inside. With detection
// enabled the detected span wins; when detection fails the configured values
// are used unless they are unset.
func ResolveScreen(cfg config.Screen, detect DetectFunc, logger *slog.Logger) (platform.Span, error) {
	configured := platform.Span{
		Width:         cfg.Width,
		Height:        cfg.Height,
		MonitorsRight: cfg.MonitorsRight,
		MonitorsLeft:  cfg.MonitorsLeft,
	}
	if !cfg.Detect || detect == nil {
		return configured, nil
	}

	span, err := detect(cfg.UseWorkArea)
	if err != nil {
		if configured.Width <= 0 || configured.Height <= 0 {
			return platform.Span{}, err
		}
		logger.Warn("display detection failed, using configured screen", "error", err)
		return configured, nil
	}
	logger.Info("detected screen",
		"width", span.Width,
		"height", span.Height,
		"monitors_right", span.MonitorsRight,
		"monitors_left", span.MonitorsLeft,
	)
	return span, nil
}

// PhysicsParams converts the configuration into loop tuning. Configured
// bounce values are attenuations; the loop stores them negated so a bounce
// reverses direction.
func PhysicsParams(cfg *config.Config, span platform.Span) physics.Params {
	p := cfg.Physics
	return physics.Params{
		ScreenWidth:      float32(span.Width),
		ScreenHeight:     float32(span.Height),
		MonitorsRight:    float32(span.MonitorsRight),
		MonitorsLeft:     float32(span.MonitorsLeft),
		Size:             mgl32.Vec2{float32(cfg.Window.Width), float32(cfg.Window.Height)},
		Drag:             float32(p.Drag),
		HorizontalBounce: -float32(p.HorizontalBounce),
		VerticalBounce:   -float32(p.VerticalBounce),
		TerminalVelocity: float32(p.TerminalVelocity),
		Gravity:          float32(p.Gravity),
		JumpHeight:       float32(p.JumpHeight),
		ArrowKeysAdd:     float32(p.ArrowKeysAdd),
		InitialVelocity:  mgl32.Vec2{float32(p.InitialVelocity.X), float32(p.InitialVelocity.Y)},
	}
}
