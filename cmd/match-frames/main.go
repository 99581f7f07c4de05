package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/Garsondee/pitch-grid/internal/match"
	"github.com/Garsondee/pitch-grid/internal/render"
)

func main() {
	var trackPath string
	var outDir string
	var width int
	var height int
	var frames int
	var step time.Duration

	flag.StringVar(&trackPath, "track", "", "YAML keyframe track (built-in demo when empty)")
	flag.StringVar(&outDir, "out", "frames", "directory for numbered PNG frames")
	flag.IntVar(&width, "width", 525, "frame width in pixels")
	flag.IntVar(&height, "height", 340, "frame height in pixels")
	flag.IntVar(&frames, "frames", 0, "stop after this many frames (0 = whole track)")
	flag.DurationVar(&step, "step", 200*time.Millisecond, "match time advanced per frame")
	flag.Parse()

	track := match.DemoTrack()
	if trackPath != "" {
		t, err := match.LoadTrack(trackPath)
		if err != nil {
			log.Fatal(err)
		}
		track = t
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := newRecorder(track, outDir, width, height, step, frames)
	loop := &match.Loop{Frame: r.frame}
	if err := loop.Run(ctx); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %d frames to %s (background builds=%d)\n", r.written, outDir, r.view.Cache().Builds())
}

// recorder renders one snapshot per loop frame and writes it as a PNG.
type recorder struct {
	track  *match.Track
	view   *match.View
	dst    *render.RGBACanvas
	outDir string
	step   time.Duration
	limit  int

	clock   time.Duration
	written int
}

func newRecorder(track *match.Track, outDir string, w, h int, step time.Duration, limit int) *recorder {
	return &recorder{
		track:  track,
		view:   match.NewView(w, h, render.NewRGBACanvas),
		dst:    render.NewRGBACanvas(w, h).(*render.RGBACanvas),
		outDir: outDir,
		step:   step,
		limit:  limit,
	}
}

// frame draws the snapshot at the current clock. It returns match.ErrStop
// once the frame limit or the end of the track is reached.
func (r *recorder) frame(_ time.Time) error {
	if r.done() {
		return match.ErrStop
	}
	r.view.Draw(r.dst, r.track.At(r.clock))

	path := filepath.Join(r.outDir, fmt.Sprintf("frame_%04d.png", r.written))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frame: %w", err)
	}
	if err := r.dst.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	r.written++
	r.clock += r.step
	return nil
}

func (r *recorder) done() bool {
	if r.limit > 0 {
		return r.written >= r.limit
	}
	return r.step <= 0 || r.clock > r.track.Duration()
}
