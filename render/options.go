// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image/color"

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := render.New(render.WithSize(400, 300), render.WithLineWidth(3))
type Option func(*options)

type options struct {
	width, height int
	background    color.Color
	lineWidth     float64
	palette       Palette
	caption       string
}

// defaultOptions matches the classic 800x800 white turtle canvas.
func defaultOptions() options {
	return options{
		width:      800,
		height:     800,
		background: color.White,
		lineWidth:  1.5,
		palette:    DefaultPalette(),
	}
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithLineWidth sets the stroke width in pixels.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		o.lineWidth = w
	}
}

// WithPalette overrides the pen color mapping. Colors missing from p are
// drawn black.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithCaption draws a title in the top-left corner of every frame.
func WithCaption(text string) Option {
	return func(o *options) {
		o.caption = text
	}
}
