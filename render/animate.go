// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"time"

	"github.com/gogpu/turtle"
)

// DefaultFrameDelay is the pause between segments used by classic turtle
// playback.
const DefaultFrameDelay = 100 * time.Millisecond

// FrameFunc receives the canvas after segment i has been drawn. The same
// target is reused for every frame; copy it to keep a frame beyond the call.
// Returning an error stops playback.
type FrameFunc func(frame *Target, i int) error

// Animate replays segments one at a time, calling fn after each and waiting
// delay between frames. A delay of zero or less replays as fast as fn allows.
// It returns ctx.Err() if the context is cancelled before playback ends.
func (r *Renderer) Animate(ctx context.Context, segments []turtle.LineSegment, delay time.Duration, fn FrameFunc) error {
	t := r.newFrame()
	s := newStroker(r)

	var tick <-chan time.Time
	if delay > 0 {
		ticker := time.NewTicker(delay)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i, seg := range segments {
		if err := ctx.Err(); err != nil {
			turtle.Logger().Warn("render: playback interrupted", "frame", i, "of", len(segments))
			return err
		}
		s.stroke(t, seg)
		if err := fn(t, i); err != nil {
			return err
		}
		if tick == nil || i == len(segments)-1 {
			continue
		}
		select {
		case <-ctx.Done():
			turtle.Logger().Warn("render: playback interrupted", "frame", i+1, "of", len(segments))
			return ctx.Err()
		case <-tick:
		}
	}
	turtle.Logger().Info("render: playback complete", "frames", len(segments))
	return nil
}
