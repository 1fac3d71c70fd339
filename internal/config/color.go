// ABOUTME: Hex color parsing for scrim colors: #RGB, #RRGGBB, #RRGGBBAA
// ABOUTME: Alpha-aware because scrims are translucent by nature

package config

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseHexColor parses "#RGB", "#RRGGBB", or "#RRGGBBAA" (case
// insensitive, leading '#' optional) into a non-premultiplied color.
// The short form has no alpha slot; both it and the six-digit form are
// fully opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "#")

	switch len(hex) {
	case 3:
		r, err1 := nibble(hex[0])
		g, err2 := nibble(hex[1])
		b, err3 := nibble(hex[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		return color.NRGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xff}, nil
	case 6, 8:
		var parts [4]uint8
		parts[3] = 0xff
		for i := 0; i < len(hex)/2; i++ {
			hi, err1 := nibble(hex[2*i])
			lo, err2 := nibble(hex[2*i+1])
			if err1 != nil || err2 != nil {
				return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
			}
			parts[i] = hi<<4 | lo
		}
		return color.NRGBA{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
}

func nibble(b byte) (uint8, error) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', nil
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", b)
	}
}
