package turtle_test

import (
	"fmt"

	"github.com/gogpu/turtle"
)

func ExampleChordLength() {
	c, err := turtle.ChordLength(1, 90)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f\n", c)

	_, err = turtle.ChordLength(1, 180)
	fmt.Println(err)
	// Output:
	// 1.4142
	// turtle: invalid argument: angle 180 must be in (0, 180)
}

func ExampleHeadingToPoint() {
	t := turtle.New()
	t.Forward(1)
	t.Turn(30)
	fmt.Printf("%.1f\n", turtle.HeadingToPoint(t, turtle.Pt(1, 1)))
	fmt.Printf("%.1f\n", turtle.HeadingToPoint(t, turtle.Pt(-1, 1)))
	// Output:
	// 60.0
	// -120.0
}

func ExampleDrawThroughPoints() {
	t := turtle.New()
	t.SetPen(turtle.Blue)
	turtle.DrawThroughPoints(t, []turtle.Point{turtle.Pt(3, 4), turtle.Pt(3, 0)})
	for _, seg := range t.Lines() {
		fmt.Printf("%s %.2f\n", seg.Color(), seg.Length())
	}
	// Output:
	// blue 5.00
	// blue 4.00
}
