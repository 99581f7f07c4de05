package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/pitch-grid/internal/config"
	"github.com/Garsondee/pitch-grid/internal/grid"
	"github.com/Garsondee/pitch-grid/internal/paint"
	"github.com/Garsondee/pitch-grid/internal/render"
)

// reportStats summarises one scripted paint session.
type reportStats struct {
	mapped  int
	pending int
	counts  map[string]int
	targets int
	text    string
}

func main() {
	var cols int
	var rows int
	var cellSize int
	var pngPath string
	var commit bool

	flag.IntVar(&cols, "cols", 21, "grid columns")
	flag.IntVar(&rows, "rows", 14, "grid rows")
	flag.IntVar(&cellSize, "cell", 32, "cell size in pixels")
	flag.StringVar(&pngPath, "png", "", "write the rendered overlay to this PNG file")
	flag.BoolVar(&commit, "commit", false, "commit pending paint before reporting")
	flag.Parse()

	cfg := config.Default()
	cfg.Cols, cfg.Rows, cfg.CellSize = cols, rows, cellSize
	if err := cfg.Validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	g := grid.Grid{Cols: cols, Rows: rows}
	s, err := runScript(g, float64(cellSize))
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if commit {
		s.Commit()
	}

	stats := collectStats(s, cfg.ZoneName)
	fmt.Printf("=== Paint Session Report ===\n")
	fmt.Printf("grid=%dx%d cell=%dpx\n\n", cols, rows, cellSize)
	printStats(stats)

	if pngPath == "" {
		return
	}
	if err := writePNG(pngPath, s, cfg); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("\nwrote %s\n", pngPath)
}

// runScript plays a fixed gesture sequence: a click assigns the first zone,
// a primary drag copies it along the top row with a back-and-forth wobble,
// and a secondary drag clears part of that row again.
func runScript(g grid.Grid, cellSize float64) (*paint.Session, error) {
	s := paint.NewSession(g,
		paint.WithCellSize(cellSize, cellSize),
		paint.WithActiveZone(0),
		paint.WithMapped(1, grid.Cell{C: g.Cols / 2, R: g.Rows / 2}),
	)

	src := grid.Cell{C: 0, R: 0}
	if err := s.PressCell(paint.ButtonPrimary, src); err != nil {
		return nil, err
	}
	s.Controller.Release()

	span := min(g.Cols, 6)
	path := []grid.Cell{src}
	for c := 1; c < span; c++ {
		path = append(path, grid.Cell{C: c, R: 0}, grid.Cell{C: c - 1, R: 0}, grid.Cell{C: c, R: 0})
	}
	if err := s.Drag(paint.ButtonPrimary, path...); err != nil {
		return nil, err
	}

	var clearPath []grid.Cell
	for c := span - 1; c >= span/2; c-- {
		clearPath = append(clearPath, grid.Cell{C: c, R: 0})
	}
	if err := s.Drag(paint.ButtonSecondary, clearPath...); err != nil {
		return nil, err
	}
	return s, nil
}

func collectStats(s *paint.Session, zoneName func(int) string) reportStats {
	mapped, pending := s.Board.Counts()
	counts := map[string]int{}
	for _, k := range []string{paint.EventClick, paint.EventAssign, paint.EventCopy, paint.EventClear, paint.EventCommit, paint.EventError} {
		counts[k] = s.Log.Count(k)
	}
	return reportStats{
		mapped:  mapped,
		pending: pending,
		counts:  counts,
		targets: uniqueCells(s.Log.Targets(paint.EventCopy)),
		text:    s.Board.Text(zoneName),
	}
}

func uniqueCells(cells []grid.Cell) int {
	seen := map[grid.Cell]struct{}{}
	for _, c := range cells {
		seen[c] = struct{}{}
	}
	return len(seen)
}

func printStats(st reportStats) {
	kinds := make([]string, 0, len(st.counts))
	for k := range st.counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s=%d", k, st.counts[k]))
	}
	fmt.Printf("events: %s\n", strings.Join(parts, " "))
	fmt.Printf("unique_copy_targets=%d mapped=%d pending=%d\n", st.targets, st.mapped, st.pending)
	fmt.Println("\n--- Board ---")
	if st.text == "" {
		fmt.Println("(empty)")
		return
	}
	fmt.Print(st.text)
}

func writePNG(path string, s *paint.Session, cfg *config.Config) error {
	r := render.NewOverlayRenderer(s.Board.Grid(), render.NewRGBACanvas, cfg.GridLines)
	cs := float32(cfg.CellSize)
	w, h := r.PixelSize(cs, cs)
	dst := render.NewRGBACanvas(w, h).(*render.RGBACanvas)
	r.Draw(dst, render.Frame{
		CellW:      cs,
		CellH:      cs,
		Mapped:     s.Board.MappedCells(),
		Pending:    s.Board.PendingCells(),
		ShowLabels: cfg.ShowLabels,
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := dst.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
