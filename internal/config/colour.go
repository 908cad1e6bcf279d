package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Colour is an RGB colour with components in [0, 1].
type Colour struct {
	R float32
	G float32
	B float32
}

// ParseColour parses six hex digits, with or without a leading '#' or "0x".
func ParseColour(s string) (Colour, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	if len(hex) != 6 {
		return Colour{}, fmt.Errorf("colour %q must be 6 hex digits", s)
	}

	var out [3]float32
	for i := range out {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Colour{}, fmt.Errorf("colour %q: invalid hex digits %q", s, hex[i*2:i*2+2])
		}
		out[i] = float32(v) / 255
	}
	return Colour{R: out[0], G: out[1], B: out[2]}, nil
}
