package config

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LegacyFileName is the line-oriented config file read from the working
// directory by earlier releases.
const LegacyFileName = "windowfun_config.txt"

// LegacyTemplate is the stock legacy file: label lines followed by values.
const LegacyTemplate = `Monitor Size:
1920
1080
Monitors to the right of primary:
0
Monitors to the left of primary:
0
Window Size:
400
400
Window Colour Hex (without # or 0x):
000000
Drag (horizontal velocity multipler when coliding with the floor):
0.99
Horizontal Bounce Multipler:
0.99
Vertical Bounce Multiplier:
0.95
Max Velocity From Gravity:
50.0
Gravity:
2.0
`

type legacyField struct {
	line  int // zero-based
	path  string
	apply func(raw *RawConfig, value string) error
}

var legacyFields = []legacyField{
	{1, "screen.width", legacyInt(func(r *RawConfig) **int { return &ensureScreen(r).Width })},
	{2, "screen.height", legacyInt(func(r *RawConfig) **int { return &ensureScreen(r).Height })},
	{4, "screen.monitors_right", legacyInt(func(r *RawConfig) **int { return &ensureScreen(r).MonitorsRight })},
	{6, "screen.monitors_left", legacyInt(func(r *RawConfig) **int { return &ensureScreen(r).MonitorsLeft })},
	{8, "window.width", legacyInt(func(r *RawConfig) **int { return &ensureWindow(r).Width })},
	{9, "window.height", legacyInt(func(r *RawConfig) **int { return &ensureWindow(r).Height })},
	{11, "window.colour", func(r *RawConfig, value string) error {
		if _, err := ParseColour(value); err != nil {
			return err
		}
		v := value
		ensureWindow(r).Colour = &v
		return nil
	}},
	{13, "physics.drag", legacyFloat(func(r *RawConfig) **float64 { return &ensurePhysics(r).Drag })},
	{15, "physics.horizontal_bounce", legacyFloat(func(r *RawConfig) **float64 { return &ensurePhysics(r).HorizontalBounce })},
	{17, "physics.vertical_bounce", legacyFloat(func(r *RawConfig) **float64 { return &ensurePhysics(r).VerticalBounce })},
	{19, "physics.terminal_velocity", legacyFloat(func(r *RawConfig) **float64 { return &ensurePhysics(r).TerminalVelocity })},
	{21, "physics.gravity", legacyFloat(func(r *RawConfig) **float64 { return &ensurePhysics(r).Gravity })},
}

// ParseLegacy reads the line-oriented config format. Values are taken by line
// position; missing or malformed values keep their defaults and are reported
// as warnings.
func ParseLegacy(r io.Reader, file string) (RawConfig, map[string]Source, []string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return RawConfig{}, nil, nil, fmt.Errorf("%s: failed to read: %w", file, err)
	}

	raw := RawConfig{}
	sources := map[string]Source{}
	var warnings []string

	for _, f := range legacyFields {
		if f.line >= len(lines) {
			warnings = append(warnings, fmt.Sprintf("%s:%d: %s: missing, using default", file, f.line+1, f.path))
			continue
		}
		if err := f.apply(&raw, lines[f.line]); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s:%d: %s: %v, using default", file, f.line+1, f.path, err))
			continue
		}
		sources[f.path] = Source{Kind: SourceLegacy, File: file, Line: f.line + 1, Column: 1}
	}

	return raw, sources, warnings, nil
}

// LoadLegacyFile imports a legacy config file.
func LoadLegacyFile(path string) (*LoadResult, error) {
	canon, err := canonicalPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(canon)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read: %w", canon, err)
	}
	defer f.Close()

	raw, sources, warnings, err := ParseLegacy(f, canon)
	if err != nil {
		return nil, err
	}
	return finish(raw, sources, []string{canon}, warnings)
}

func legacyInt(field func(*RawConfig) **int) func(*RawConfig, string) error {
	return func(r *RawConfig, value string) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", value)
		}
		if v != math.Trunc(v) {
			return fmt.Errorf("%q is not a whole number", value)
		}
		n := int(v)
		*field(r) = &n
		return nil
	}
}

func legacyFloat(field func(*RawConfig) **float64) func(*RawConfig, string) error {
	return func(r *RawConfig, value string) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", value)
		}
		*field(r) = &v
		return nil
	}
}

func ensureScreen(r *RawConfig) *RawScreen {
	if r.Screen == nil {
		r.Screen = &RawScreen{}
	}
	return r.Screen
}

func ensureWindow(r *RawConfig) *RawWindow {
	if r.Window == nil {
		r.Window = &RawWindow{}
	}
	return r.Window
}

func ensurePhysics(r *RawConfig) *RawPhysics {
	if r.Physics == nil {
		r.Physics = &RawPhysics{}
	}
	return r.Physics
}
