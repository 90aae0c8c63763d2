package a11y

import (
	"math"
	"strconv"
	"strings"
)

// minContrastRatio is the WCAG 2.1 AA threshold for normal
// text.
const minContrastRatio = 4.5

// namedColors covers the CSS keywords that show up in test
// fixtures. Anything unrecognized is skipped by the contrast
// rule rather than guessed at.
var namedColors = map[string][3]uint8{
	"black":  {0, 0, 0},
	"white":  {255, 255, 255},
	"red":    {255, 0, 0},
	"green":  {0, 128, 0},
	"blue":   {0, 0, 255},
	"yellow": {255, 255, 0},
	"gray":   {128, 128, 128},
	"grey":   {128, 128, 128},
	"silver": {192, 192, 192},
	"orange": {255, 165, 0},
	"purple": {128, 0, 128},
}

// parseColor reads #rgb, #rrggbb, rgb(r, g, b), and the named
// colors above. The second return value is false when the
// value cannot be parsed.
func parseColor(value string) ([3]uint8, bool) {
	value = strings.ToLower(strings.TrimSpace(value))

	if rgb, ok := namedColors[value]; ok {
		return rgb, true
	}

	if strings.HasPrefix(value, "#") {
		return parseHexColor(value[1:])
	}

	if strings.HasPrefix(value, "rgb(") &&
		strings.HasSuffix(value, ")") {
		return parseRGBFunc(value[4 : len(value)-1])
	}

	return [3]uint8{}, false
}

func parseHexColor(hex string) ([3]uint8, bool) {
	switch len(hex) {
	case 3:
		hex = string([]byte{
			hex[0], hex[0], hex[1], hex[1], hex[2], hex[2],
		})
	case 6:
	default:
		return [3]uint8{}, false
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return [3]uint8{}, false
	}
	return [3]uint8{
		uint8(n >> 16), uint8(n >> 8), uint8(n),
	}, true
}

func parseRGBFunc(body string) ([3]uint8, bool) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return [3]uint8{}, false
	}

	var rgb [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return [3]uint8{}, false
		}
		rgb[i] = uint8(n)
	}
	return rgb, true
}

// relativeLuminance implements the WCAG 2.1 definition.
func relativeLuminance(rgb [3]uint8) float64 {
	channel := func(c uint8) float64 {
		s := float64(c) / 255.0
		if s <= 0.03928 {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	}
	return 0.2126*channel(rgb[0]) +
		0.7152*channel(rgb[1]) +
		0.0722*channel(rgb[2])
}

// contrastRatio returns the WCAG contrast ratio between two
// colors, always >= 1.
func contrastRatio(a, b [3]uint8) float64 {
	la := relativeLuminance(a)
	lb := relativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
