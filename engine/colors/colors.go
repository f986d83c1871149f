package colors

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is linear RGBA in [0,1].
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.1, 0.1, 0.1, 1}
	Magenta  = Color{1, 0, 1, 1}
)

var named = map[string]Color{
	"white":    White,
	"black":    Black,
	"red":      Red,
	"green":    Green,
	"blue":     Blue,
	"gray":     Gray,
	"darkgray": DarkGray,
	"magenta":  Magenta,
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

func (c Color) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", c[0], c[1], c[2], c[3])
}

// Parse accepts a palette name ("darkgray") or 3 or 4 comma separated
// components ("0.1,0.1,0.1" or "0.1,0.1,0.1,1"). Alpha defaults to 1.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("color %q: want a name or 3-4 components", s)
	}
	c := Color{3: 1}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		if v < 0 || v > 1 {
			return Color{}, fmt.Errorf("color %q: component %d out of range", s, i)
		}
		c[i] = float32(v)
	}
	return c, nil
}

// Decode lets envconfig read colors from the environment.
func (c *Color) Decode(value string) error {
	parsed, err := Parse(value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
