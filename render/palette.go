// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"

	"github.com/gogpu/turtle"
)

// Palette maps pen colors to display colors.
type Palette map[turtle.PenColor]color.NRGBA

// DefaultPalette returns the standard display colors. Purple is shown as
// magenta.
func DefaultPalette() Palette {
	return Palette{
		turtle.Black:  {R: 0, G: 0, B: 0, A: 255},
		turtle.White:  {R: 255, G: 255, B: 255, A: 255},
		turtle.Red:    {R: 255, G: 0, B: 0, A: 255},
		turtle.Orange: {R: 255, G: 200, B: 0, A: 255},
		turtle.Yellow: {R: 255, G: 255, B: 0, A: 255},
		turtle.Green:  {R: 0, G: 255, B: 0, A: 255},
		turtle.Blue:   {R: 0, G: 0, B: 255, A: 255},
		turtle.Purple: {R: 255, G: 0, B: 255, A: 255},
	}
}

// Color returns the display color for c, falling back to opaque black for
// colors the palette does not define.
func (p Palette) Color(c turtle.PenColor) color.NRGBA {
	if v, ok := p[c]; ok {
		return v
	}
	return color.NRGBA{A: 255}
}
