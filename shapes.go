package turtle

import (
	"fmt"
	"math"
)

// minCircleSides is the fewest polygon sides accepted as a circle approximation.
const minCircleSides = 10

// ChordLength returns the length of the chord subtending angle degrees on a
// circle of radius r. It requires r > 0 and 0 < angle < 180.
func ChordLength(r, angle float64) (float64, error) {
	if !(r > 0) {
		return 0, fmt.Errorf("%w: radius %v must be > 0", ErrInvalidArgument, r)
	}
	if !(angle > 0 && angle < 180) {
		return 0, fmt.Errorf("%w: angle %v must be in (0, 180)", ErrInvalidArgument, angle)
	}
	return chord(r, angle), nil
}

func chord(r, angle float64) float64 {
	return 2 * r * math.Sin(degToRad(angle)/2)
}

// HeadingToPoint returns the change in heading, in degrees, that turns t to
// face p. The result lies in (-180, 180]; positive means a clockwise turn, as
// with Turn. It returns 0 when p is the turtle's own location.
func HeadingToPoint(t *Turtle, p Point) float64 {
	d := p.Sub(t.Location())
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	// Heading is measured from +y, so the arguments are (x, y) rather than (y, x).
	target := radToDeg(math.Atan2(d.X, d.Y))
	return normalizeDelta(target - t.Heading())
}

// normalizeDelta maps an angle in degrees into (-180, 180].
func normalizeDelta(deg float64) float64 {
	deg = math.Mod(deg, 360)
	switch {
	case deg <= -180:
		deg += 360
	case deg > 180:
		deg -= 360
	}
	return deg
}

// DistanceToPoint returns the distance from t's location to p.
func DistanceToPoint(t *Turtle, p Point) float64 {
	return t.Location().Distance(p)
}

// DrawSquare draws a square with the given side length, turning right at
// each corner. The turtle ends where it started.
func DrawSquare(t *Turtle, side float64) {
	polygon(t, side, 4)
}

// DrawRegularPolygon draws a regular polygon with n sides of the given length
// using right turns only. It requires side > 0 and n >= 3.
func DrawRegularPolygon(t *Turtle, side float64, n int) error {
	if !(side > 0) {
		return fmt.Errorf("%w: side length %v must be > 0", ErrInvalidArgument, side)
	}
	if n < 3 {
		return fmt.Errorf("%w: polygon needs at least 3 sides, got %d", ErrInvalidArgument, n)
	}
	polygon(t, side, n)
	return nil
}

func polygon(t *Turtle, side float64, n int) {
	angle := 360 / float64(n)
	for range n {
		t.Forward(side)
		t.Turn(angle)
	}
}

// DrawApproximateCircle draws a circle of radius r as a regular polygon with
// the given number of sides, using right turns only. It requires r > 0 and
// sides >= 10. The turtle ends at its starting location with its heading
// advanced by 360 degrees.
func DrawApproximateCircle(t *Turtle, r float64, sides int) error {
	if !(r > 0) {
		return fmt.Errorf("%w: radius %v must be > 0", ErrInvalidArgument, r)
	}
	if sides < minCircleSides {
		return fmt.Errorf("%w: circle needs at least %d sides, got %d",
			ErrInvalidArgument, minCircleSides, sides)
	}
	circle(t, r, sides)
	return nil
}

func circle(t *Turtle, r float64, sides int) {
	angle := 360 / float64(sides)
	step := chord(r, angle)
	Logger().Debug("turtle: approximate circle",
		"radius", r, "sides", sides, "step", step)
	polygon(t, step, sides)
}

// DrawThroughPoints moves the turtle through pts in order, drawing a straight
// segment to each one. An empty slice draws nothing.
func DrawThroughPoints(t *Turtle, pts []Point) {
	for _, p := range pts {
		t.Turn(HeadingToPoint(t, p))
		t.Forward(DistanceToPoint(t, p))
	}
	if len(pts) > 0 {
		Logger().Debug("turtle: drew through points",
			"points", len(pts), "end", t.Location())
	}
}
