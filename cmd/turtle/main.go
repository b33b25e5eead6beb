// Command turtle draws a turtle shape and saves it as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/render"
)

func main() {
	var (
		shape   = flag.String("shape", "art", "shape to draw: square, circle, points or art")
		output  = flag.String("output", "turtle.png", "output file")
		size    = flag.Int("size", 800, "canvas size in pixels")
		pen     = flag.String("pen", "black", "pen color")
		radius  = flag.Float64("radius", 200, "circle radius")
		sides   = flag.Int("sides", 36, "circle sides")
		side    = flag.Float64("side", 300, "square side length")
		points  = flag.String("points", "0,0;150,100;-100,200;0,0", "points as x,y pairs separated by ';'")
		frames  = flag.String("frames", "", "directory to write one PNG per playback frame")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	t := turtle.New()
	if err := draw(t, *shape, *pen, *radius, *sides, *side, *points); err != nil {
		log.Fatalf("Failed to draw %s: %v", *shape, err)
	}
	lines := t.Lines()

	r, err := render.New(render.WithSize(*size, *size), render.WithCaption(*shape))
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	if err := r.SavePNG(*output, lines); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("%s saved to %s (%d segments)\n", *shape, *output, len(lines))

	if *frames != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := writeFrames(ctx, r, *frames, lines); err != nil {
			log.Fatalf("Failed to write frames: %v", err)
		}
		log.Printf("%d frames written to %s\n", len(lines), *frames)
	}
}

func draw(t *turtle.Turtle, shape, pen string, radius float64, sides int, side float64, points string) error {
	c, err := turtle.ParsePenColor(pen)
	if err != nil {
		return err
	}
	t.SetPen(c)

	switch shape {
	case "square":
		return turtle.DrawRegularPolygon(t, side, 4)
	case "circle":
		return turtle.DrawApproximateCircle(t, radius, sides)
	case "points":
		pts, err := parsePoints(points)
		if err != nil {
			return err
		}
		turtle.DrawThroughPoints(t, pts)
		return nil
	case "art":
		turtle.Art(t)
		return nil
	default:
		return fmt.Errorf("unknown shape %q", shape)
	}
}

// parsePoints reads "x,y;x,y;..." into points.
func parsePoints(s string) ([]turtle.Point, error) {
	var pts []turtle.Point
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("point %q: want x,y", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", pair, err)
		}
		pts = append(pts, turtle.Pt(x, y))
	}
	return pts, nil
}

// writeFrames replays lines without delay, saving each frame as frame_NNNN.png.
func writeFrames(ctx context.Context, r *render.Renderer, dir string, lines []turtle.LineSegment) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	return r.Animate(ctx, lines, 0, func(frame *render.Target, i int) error {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		f, err := os.Create(path) //nolint:gosec // path is built from a user-provided directory
		if err != nil {
			return err
		}
		if err := png.Encode(f, frame.Image()); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	})
}
