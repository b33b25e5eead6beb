package turtle

// LineSegment is a line traced by the turtle. It is immutable: the fields
// are fixed when the turtle moves and only exposed through accessors.
type LineSegment struct {
	start Point
	end   Point
	color PenColor
}

// NewLineSegment creates a segment from start to end drawn with color.
func NewLineSegment(color PenColor, start, end Point) LineSegment {
	return LineSegment{start: start, end: end, color: color}
}

// Start returns the point the segment was drawn from.
func (s LineSegment) Start() Point { return s.start }

// End returns the point the segment was drawn to.
func (s LineSegment) End() Point { return s.end }

// Color returns the pen color active when the segment was drawn.
func (s LineSegment) Color() PenColor { return s.color }

// Length returns the Euclidean length of the segment.
func (s LineSegment) Length() float64 {
	return s.start.Distance(s.end)
}
