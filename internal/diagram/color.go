package diagram

import (
	"image/color"
	"strconv"
	"strings"
)

// Palette is the set of colors the keyboard color cycle walks through.
var Palette = []string{
	"#ffcc00", "#ff0000", "#4caf50", "#2196f3",
	"#9c27b0", "#ff9800", "#00bcd4", "#795548",
}

// ParseColor reads "#rgb" or "#rrggbb".
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

// NormalizeColor returns s as lower-case "#rrggbb", or fallback when s does
// not parse.
func NormalizeColor(s, fallback string) string {
	c, ok := ParseColor(s)
	if !ok {
		return fallback
	}
	const hex = "0123456789abcdef"
	return string([]byte{'#',
		hex[c.R>>4], hex[c.R&0xf],
		hex[c.G>>4], hex[c.G&0xf],
		hex[c.B>>4], hex[c.B&0xf],
	})
}

// NextColor returns the palette entry after current, wrapping around.
func NextColor(current string) string {
	current = NormalizeColor(current, "")
	for i, c := range Palette {
		if c == current {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}
