// Package turtle models a pen-carrying turtle on a 2D plane and the geometry
// needed to compose shapes from its two motions.
//
// # Overview
//
// A [Turtle] has a position, a heading and a pen color. [Turtle.Turn] changes
// the heading; [Turtle.Forward] moves along it and records a [LineSegment].
// Headings are measured in degrees clockwise from the +y axis, so heading 0
// points up and heading 90 points along +x.
//
// The package-level functions compute the turns and distances needed to draw
// polygons, circle approximations and paths through arbitrary points, then feed
// them back into the turtle. The turtle itself never calls them.
//
// # Quick Start
//
//	t := turtle.New()
//	t.SetPen(turtle.Red)
//	if err := turtle.DrawApproximateCircle(t, 100, 36); err != nil {
//	    log.Fatal(err)
//	}
//	segments := t.Lines()
//
// # Rendering
//
// The core stores untransformed plane coordinates and never draws anything.
// Pass the result of [Turtle.Lines] to the render sub-package to rasterize or
// replay it.
//
// # Logging
//
// Nothing is logged by default. Use [SetLogger] to enable diagnostics.
package turtle
