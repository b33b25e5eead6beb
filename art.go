package turtle

import "math"

// Art draws a rosette of colored circles framed by a five-pointed star.
// The turtle is reset first.
func Art(t *Turtle) {
	t.Reset()

	// Rosette: one circle per petal, rotating around the origin.
	const petals = 12
	palette := []PenColor{Red, Orange, Yellow, Green, Blue, Purple}
	for i := range petals {
		t.SetPen(palette[i%len(palette)])
		circle(t, 90, 36)
		t.Turn(360 / petals)
	}

	// Star: visit every second vertex of a pentagon, closing on the first.
	const starRadius = 260
	t.SetPen(Black)
	vertices := make([]Point, 0, 6)
	for i := range 6 {
		a := degToRad(float64(i*2%5) * 72)
		vertices = append(vertices, Pt(starRadius*math.Sin(a), starRadius*math.Cos(a)))
	}
	DrawThroughPoints(t, vertices)

	// Square frame around everything.
	t.SetPen(Blue)
	DrawThroughPoints(t, []Point{Pt(-300, -300)})
	t.Turn(-t.Heading())
	DrawSquare(t, 600)
}
