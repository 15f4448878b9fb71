package pathset

import (
	"fmt"
	"math/bits"
	"strings"
)

// Color identifies one path color.
type Color uint8

const (
	Red Color = iota
	Orange
	Yellow
	Green
	Blue
	Purple
)

// NumColors is the size of the color enumeration.
const NumColors = 6

var colorNames = [NumColors]string{"red", "orange", "yellow", "green", "blue", "purple"}

// Valid reports whether c is in the enumeration.
func (c Color) Valid() bool {
	return c < NumColors
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ParseColor converts a color name (case-insensitive) back to a Color.
func ParseColor(text string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, text)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ColorSet is a set of enabled colors, one bit per Color.
type ColorSet uint8

// AllColors contains every color of the enumeration.
const AllColors ColorSet = 1<<NumColors - 1

// NewColorSet builds a set from the listed colors; invalid colors are ignored.
func NewColorSet(colors ...Color) ColorSet {
	var s ColorSet
	for _, c := range colors {
		s = s.With(c)
	}
	return s
}

// With returns s plus c.
func (s ColorSet) With(c Color) ColorSet {
	if !c.Valid() {
		return s
	}
	return s | 1<<c
}

// Has reports whether c is enabled.
func (s ColorSet) Has(c Color) bool {
	return c.Valid() && s&(1<<c) != 0
}

// Len returns the cardinality of the set.
func (s ColorSet) Len() int {
	return bits.OnesCount8(uint8(s & AllColors))
}

// Colors lists the enabled colors in enumeration order.
func (s ColorSet) Colors() []Color {
	out := make([]Color, 0, s.Len())
	for c := Color(0); c < NumColors; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String renders the set as comma-separated names, e.g. "red,blue".
func (s ColorSet) String() string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Colors() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

// ParseColorSet parses the String form. An empty text yields the empty set.
func ParseColorSet(text string) (ColorSet, error) {
	var s ColorSet
	if strings.TrimSpace(text) == "" {
		return s, nil
	}
	for _, part := range strings.Split(text, ",") {
		c, err := ParseColor(part)
		if err != nil {
			return 0, err
		}
		s = s.With(c)
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s ColorSet) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ColorSet) UnmarshalText(text []byte) error {
	v, err := ParseColorSet(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
