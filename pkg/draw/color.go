package draw

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" hex notation.
func ParseColor(s string) (Color, error) {
	hexPart, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hexPart) != 6 && len(hexPart) != 8) {
		return Color{}, fmt.Errorf("draw: invalid color %q, want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hexPart, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("draw: invalid color %q: %w", s, err)
	}
	if len(hexPart) == 6 {
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// String renders the color in the notation ParseColor accepts.
func (c Color) String() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler for config files.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for config files.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
