package render

import (
	"image/color"
	"math"
)

// Reference pitch dimensions in metres.
const (
	PitchLength = 105.0
	PitchWidth  = 68.0

	centreCircleRadius = 9.15
	penaltyAreaDepth   = 16.5
	penaltyAreaWidth   = 40.32
	goalAreaDepth      = 5.5
	goalAreaWidth      = 18.32
	penaltySpotDist    = 11.0
	cornerArcRadius    = 1.0
	spotRadius         = 0.25
	lineWidthMetres    = 0.12
)

// DrawPitch draws the static pitch markings scaled to fill a w x h pixel
// area. Length runs along the x axis. The scale may differ per axis.
func DrawPitch(dst Canvas, w, h float32, line color.Color) {
	sx := w / PitchLength
	sy := h / PitchWidth
	lw := float32(math.Max(1, float64(lineWidthMetres*sx)))
	m := func(x, y float64) (float32, float32) {
		return float32(x) * sx, float32(y) * sy
	}
	rect := func(x, y, rw, rh float64) {
		px, py := m(x, y)
		dst.StrokeRect(px, py, float32(rw)*sx, float32(rh)*sy, lw, line)
	}
	spot := func(x, y float64) {
		px, py := m(x, y)
		r := float32(spotRadius) * sx
		if r < lw {
			r = lw
		}
		dst.FillCircle(px, py, r, line)
	}

	// Touch and goal lines, inset by half a line so the stroke stays visible.
	half := lw / 2
	dst.StrokeRect(half, half, w-lw, h-lw, lw, line)

	// Halfway line, centre circle and spot.
	cx, cy := m(PitchLength/2, PitchWidth/2)
	dst.StrokeLine(cx, 0, cx, h, lw, line)
	StrokeArc(dst, cx, cy, centreCircleRadius*sx, centreCircleRadius*sy, 0, 2*math.Pi, lw, line)
	spot(PitchLength/2, PitchWidth/2)

	// Penalty arc spans the part of the circle outside the penalty area.
	arc := math.Acos((penaltyAreaDepth - penaltySpotDist) / centreCircleRadius)

	for _, end := range []struct {
		goalX float64 // x of the goal line
		dir   float64 // +1 towards the pitch from the left end, -1 from the right
	}{{0, 1}, {PitchLength, -1}} {
		x0 := func(depth float64) float64 {
			if end.dir > 0 {
				return end.goalX
			}
			return end.goalX - depth
		}
		rect(x0(penaltyAreaDepth), (PitchWidth-penaltyAreaWidth)/2, penaltyAreaDepth, penaltyAreaWidth)
		rect(x0(goalAreaDepth), (PitchWidth-goalAreaWidth)/2, goalAreaDepth, goalAreaWidth)

		spotX := end.goalX + end.dir*penaltySpotDist
		spot(spotX, PitchWidth/2)
		px, py := m(spotX, PitchWidth/2)
		base := 0.0
		if end.dir < 0 {
			base = math.Pi
		}
		StrokeArc(dst, px, py, centreCircleRadius*sx, centreCircleRadius*sy, base-arc, base+arc, lw, line)
	}

	// Corner arcs.
	corners := []struct {
		x, y   float64
		a0, a1 float64
	}{
		{0, 0, 0, math.Pi / 2},
		{PitchLength, 0, math.Pi / 2, math.Pi},
		{PitchLength, PitchWidth, math.Pi, 3 * math.Pi / 2},
		{0, PitchWidth, 3 * math.Pi / 2, 2 * math.Pi},
	}
	for _, c := range corners {
		px, py := m(c.x, c.y)
		StrokeArc(dst, px, py, cornerArcRadius*sx, cornerArcRadius*sy, c.a0, c.a1, lw, line)
	}
}
