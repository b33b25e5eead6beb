// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	captionSize   = 18
	captionMargin = 12
)

var captionColor = color.NRGBA{R: 40, G: 40, B: 40, A: 255}

// captionFont parses the embedded Go Regular font once.
var captionFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// drawCaption writes text, title-cased, in the top-left corner of dst.
func drawCaption(dst *image.RGBA, text string) error {
	f, err := captionFont()
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	ascent := face.Metrics().Ascent.Ceil()
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(captionColor),
		Face: face,
		Dot:  fixed.P(captionMargin, captionMargin+ascent),
	}
	drawer.DrawString(cases.Title(language.English).String(text))
	return nil
}
