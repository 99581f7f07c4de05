package match

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/Garsondee/pitch-grid/internal/grid"
	"gopkg.in/yaml.v3"
)

// Phase is the match phase carried by a snapshot. Phase transitions are
// decided upstream; this package only carries the value.
type Phase string

const (
	PhasePreMatch   Phase = "pre_match"
	PhaseFirstHalf  Phase = "first_half"
	PhaseHalfTime   Phase = "half_time"
	PhaseSecondHalf Phase = "second_half"
	PhaseFullTime   Phase = "full_time"
)

// Team identifies a side.
type Team int

const (
	TeamHome Team = iota
	TeamAway
)

// Player is a tracked player position in normalised pitch coordinates.
type Player struct {
	Number int        `yaml:"number"`
	Team   Team       `yaml:"team"`
	Pos    grid.Point `yaml:"pos"`
}

// Snapshot is the state of the match at one instant.
type Snapshot struct {
	Clock   time.Duration
	Phase   Phase
	Ball    grid.Point
	Players []Player
}

// Keyframe is a snapshot anchored at a time offset in seconds.
type Keyframe struct {
	At      float64    `yaml:"at"`
	Phase   Phase      `yaml:"phase"`
	Ball    grid.Point `yaml:"ball"`
	Players []Player   `yaml:"players"`
}

// Track is a scripted replay: snapshots between keyframes are linearly
// interpolated. Players are matched between keyframes by team and number.
type Track struct {
	Keyframes []Keyframe `yaml:"keyframes"`
}

// LoadTrack reads a YAML replay file.
func LoadTrack(path string) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read track file: %w", err)
	}
	var t Track
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse track YAML: %w", err)
	}
	if len(t.Keyframes) == 0 {
		return nil, fmt.Errorf("track %s: no keyframes", path)
	}
	sort.SliceStable(t.Keyframes, func(i, j int) bool { return t.Keyframes[i].At < t.Keyframes[j].At })
	return &t, nil
}

// Duration is the time of the last keyframe.
func (t *Track) Duration() time.Duration {
	if len(t.Keyframes) == 0 {
		return 0
	}
	return seconds(t.Keyframes[len(t.Keyframes)-1].At)
}

// At returns the interpolated snapshot at clock. Times before the first or
// after the last keyframe hold the nearest keyframe.
func (t *Track) At(clock time.Duration) Snapshot {
	if len(t.Keyframes) == 0 {
		return Snapshot{Clock: clock, Phase: PhasePreMatch, Ball: grid.Point{X: 0.5, Y: 0.5}}
	}
	s := clock.Seconds()
	kf := t.Keyframes
	if s <= kf[0].At {
		return kf[0].snapshot(clock)
	}
	last := kf[len(kf)-1]
	if s >= last.At {
		return last.snapshot(clock)
	}
	i := sort.Search(len(kf), func(i int) bool { return kf[i].At > s }) - 1
	a, b := kf[i], kf[i+1]
	f := (s - a.At) / (b.At - a.At)

	out := Snapshot{
		Clock: clock,
		Phase: a.Phase,
		Ball:  lerp(a.Ball, b.Ball, f),
	}
	type id struct {
		team Team
		num  int
	}
	next := make(map[id]grid.Point, len(b.Players))
	for _, p := range b.Players {
		next[id{p.Team, p.Number}] = p.Pos
	}
	for _, p := range a.Players {
		if to, ok := next[id{p.Team, p.Number}]; ok {
			p.Pos = lerp(p.Pos, to, f)
		}
		out.Players = append(out.Players, p)
	}
	return out
}

func (k Keyframe) snapshot(clock time.Duration) Snapshot {
	players := make([]Player, len(k.Players))
	copy(players, k.Players)
	return Snapshot{Clock: clock, Phase: k.Phase, Ball: k.Ball, Players: players}
}

func lerp(a, b grid.Point, f float64) grid.Point {
	return grid.Point{X: a.X + (b.X-a.X)*f, Y: a.Y + (b.Y-a.Y)*f}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// DemoTrack is a short built-in replay: kick-off, a switch of play down the
// right and a cross into the box.
func DemoTrack() *Track {
	lineup := func(x, y float64) []Player {
		return []Player{
			{Number: 1, Team: TeamHome, Pos: grid.Point{X: 0.05, Y: 0.5}},
			{Number: 4, Team: TeamHome, Pos: grid.Point{X: x - 0.15, Y: 0.35}},
			{Number: 5, Team: TeamHome, Pos: grid.Point{X: x - 0.15, Y: 0.65}},
			{Number: 8, Team: TeamHome, Pos: grid.Point{X: x, Y: y}},
			{Number: 9, Team: TeamHome, Pos: grid.Point{X: x + 0.1, Y: 0.5}},
			{Number: 1, Team: TeamAway, Pos: grid.Point{X: 0.95, Y: 0.5}},
			{Number: 4, Team: TeamAway, Pos: grid.Point{X: x + 0.2, Y: 0.4}},
			{Number: 5, Team: TeamAway, Pos: grid.Point{X: x + 0.2, Y: 0.6}},
			{Number: 6, Team: TeamAway, Pos: grid.Point{X: x + 0.05, Y: y + 0.1}},
		}
	}
	return &Track{Keyframes: []Keyframe{
		{At: 0, Phase: PhaseFirstHalf, Ball: grid.Point{X: 0.5, Y: 0.5}, Players: lineup(0.48, 0.5)},
		{At: 3, Phase: PhaseFirstHalf, Ball: grid.Point{X: 0.6, Y: 0.2}, Players: lineup(0.55, 0.25)},
		{At: 6, Phase: PhaseFirstHalf, Ball: grid.Point{X: 0.82, Y: 0.12}, Players: lineup(0.7, 0.2)},
		{At: 8, Phase: PhaseFirstHalf, Ball: grid.Point{X: 0.9, Y: 0.47}, Players: lineup(0.78, 0.4)},
		{At: 10, Phase: PhaseFirstHalf, Ball: grid.Point{X: 0.5, Y: 0.5}, Players: lineup(0.48, 0.5)},
	}}
}
