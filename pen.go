package turtle

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// PenColor identifies the color the turtle draws with. The mapping to an
// actual display color belongs to the renderer.
type PenColor uint8

// Pen colors.
const (
	Black PenColor = iota
	White
	Red
	Orange
	Yellow
	Green
	Blue
	Purple

	numPenColors
)

var penColorNames = [numPenColors]string{
	Black:  "black",
	White:  "white",
	Red:    "red",
	Orange: "orange",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Purple: "purple",
}

// String returns the lower-case color name.
func (c PenColor) String() string {
	if c.Valid() {
		return penColorNames[c]
	}
	return fmt.Sprintf("PenColor(%d)", uint8(c))
}

// Valid reports whether c is one of the defined pen colors.
func (c PenColor) Valid() bool {
	return c < numPenColors
}

// PenColors returns every pen color in declaration order.
func PenColors() []PenColor {
	colors := make([]PenColor, numPenColors)
	for i := range colors {
		colors[i] = PenColor(i)
	}
	return colors
}

// ParsePenColor looks a pen color up by name. Matching ignores case and
// surrounding whitespace.
func ParsePenColor(name string) (PenColor, error) {
	folded := cases.Fold().String(strings.TrimSpace(name))
	for i, n := range penColorNames {
		if n == folded {
			return PenColor(i), nil
		}
	}
	return Black, fmt.Errorf("%w: unknown pen color %q", ErrInvalidArgument, name)
}
