// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render rasterizes the line segments recorded by a turtle.
//
// The turtle core never draws. Once drawing is complete, pass a snapshot from
// [turtle.Turtle.Lines] to a [Renderer]; the renderer only reads the slice.
//
// # Coordinates
//
// Segments live on an untransformed plane with Y increasing upward and the
// turtle's start at the origin. The renderer places the origin at the centre
// of the canvas and flips Y:
//
//	px = x + width/2
//	py = height - (y + height/2)
//
// # Usage
//
//	r, err := render.New(render.WithSize(800, 800), render.WithCaption("spiral"))
//	if err != nil {
//	    return err
//	}
//	if err := r.SavePNG("spiral.png", t.Lines()); err != nil {
//	    return err
//	}
//
// [Renderer.Animate] replays the segments one at a time for frame-by-frame
// playback.
package render
