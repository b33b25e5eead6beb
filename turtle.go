package turtle

import (
	"math"
	"slices"
)

// Turtle is a pen-carrying agent on a 2D plane. Moving it forward traces a
// LineSegment in the current pen color; the segments accumulate in drawing
// order until Reset.
//
// A Turtle is not safe for concurrent mutation. Draw from one goroutine and
// hand Lines to a renderer once drawing is complete.
type Turtle struct {
	// heading is in radians, measured clockwise from the +y axis.
	// It is never normalized.
	heading  float64
	position Point
	pen      PenColor
	lines    []LineSegment
}

// New creates a turtle at the origin facing +y with a black pen.
func New() *Turtle {
	t := &Turtle{}
	t.Reset()
	return t
}

// Reset moves the turtle back to the origin with heading 0 and a black pen,
// and clears the drawing history.
func (t *Turtle) Reset() {
	t.heading = 0
	t.position = Point{}
	t.pen = Black
	t.lines = t.lines[:0]
}

// SetPen changes the color used by subsequent calls to Forward.
func (t *Turtle) SetPen(c PenColor) {
	t.pen = c
}

// Pen returns the current pen color.
func (t *Turtle) Pen() PenColor {
	return t.pen
}

// Turn rotates the turtle by degrees. Positive values turn clockwise.
func (t *Turtle) Turn(degrees float64) {
	t.heading += degToRad(degrees)
}

// Forward moves the turtle distance units along its heading and records the
// traced segment. A negative distance moves backward.
func (t *Turtle) Forward(distance float64) {
	dest := Point{
		X: t.position.X + math.Sin(t.heading)*distance,
		Y: t.position.Y + math.Cos(t.heading)*distance,
	}
	t.lines = append(t.lines, NewLineSegment(t.pen, t.position, dest))
	t.position = dest
}

// Location returns the turtle's current position.
func (t *Turtle) Location() Point {
	return t.position
}

// Heading returns the turtle's heading in degrees, clockwise from +y.
func (t *Turtle) Heading() float64 {
	return radToDeg(t.heading)
}

// Lines returns a copy of the segments drawn since the last Reset.
func (t *Turtle) Lines() []LineSegment {
	return slices.Clone(t.lines)
}

// Len returns the number of segments drawn since the last Reset.
func (t *Turtle) Len() int {
	return len(t.lines)
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }
