package interpolate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// colorInterpolator blends two colors in HCL space, matching the
// blend choice the pack's own LED frame-crossfade code makes.
type colorInterpolator struct {
	from colorful.Color
	to   colorful.Color
}

func (c *colorInterpolator) Value(t float64) (any, bool) {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	blended := c.from.BlendHcl(c.to, t)
	r, g, b := blended.Clamped().RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), true
}

// ColorFactory matches when both endpoints parse as a hex, rgb(), or
// hsl() color string.
func ColorFactory(from, to any, _ Options) (Interpolator, bool) {
	fs, fok := from.(string)
	ts, tok := to.(string)
	if !fok || !tok {
		return nil, false
	}
	fc, ok1 := parseColor(fs)
	tc, ok2 := parseColor(ts)
	if !ok1 || !ok2 {
		return nil, false
	}
	return &colorInterpolator{from: fc, to: tc}, true
}

func parseColor(s string) (colorful.Color, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGBFunc(s)
	}
	if strings.HasPrefix(s, "hsl(") || strings.HasPrefix(s, "hsla(") {
		return parseHSLFunc(s)
	}
	return colorful.Color{}, false
}

// parseRGBFunc parses "rgb(r, g, b)" / "rgba(r, g, b, a)" with 0-255
// channel values; alpha is accepted but ignored since colorful.Color
// carries no alpha channel.
func parseRGBFunc(s string) (colorful.Color, bool) {
	open := strings.IndexByte(s, '(')
	closeI := strings.LastIndexByte(s, ')')
	if open < 0 || closeI < 0 || closeI < open {
		return colorful.Color{}, false
	}
	parts := strings.Split(s[open+1:closeI], ",")
	if len(parts) < 3 {
		return colorful.Color{}, false
	}
	vals := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return colorful.Color{}, false
		}
		vals[i] = v
	}
	return colorful.Color{R: vals[0] / 255, G: vals[1] / 255, B: vals[2] / 255}, true
}

// parseHSLFunc parses "hsl(h, s%, l%)" / "hsla(h, s%, l%, a)"; hue is in
// degrees, saturation/lightness are percentages (the "%" suffix is
// optional). Alpha is accepted but ignored, same as parseRGBFunc.
func parseHSLFunc(s string) (colorful.Color, bool) {
	open := strings.IndexByte(s, '(')
	closeI := strings.LastIndexByte(s, ')')
	if open < 0 || closeI < 0 || closeI < open {
		return colorful.Color{}, false
	}
	parts := strings.Split(s[open+1:closeI], ",")
	if len(parts) < 3 {
		return colorful.Color{}, false
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return colorful.Color{}, false
	}
	sat, ok := parsePercent(parts[1])
	if !ok {
		return colorful.Color{}, false
	}
	lig, ok := parsePercent(parts[2])
	if !ok {
		return colorful.Color{}, false
	}
	return colorful.Hsl(h, sat, lig), true
}

// parsePercent parses a bare or "%"-suffixed number into a 0-1 fraction.
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v / 100, true
}
