package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrBadGrid     = errors.New("grid must have at least one column and one row")
	ErrBadCellSize = errors.New("cell size must be positive")
	ErrBadZone     = errors.New("invalid zone")
)

// Zone is a named association painted onto cells.
type Zone struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // #rrggbb or #rrggbbaa
}

// Config is the pitch grid configuration file.
type Config struct {
	Cols       int    `yaml:"cols"`
	Rows       int    `yaml:"rows"`
	CellSize   int    `yaml:"cellSize"`
	ShowLabels bool   `yaml:"showLabels"`
	GridLines  bool   `yaml:"gridLines"`
	Zones      []Zone `yaml:"zones"`
}

// Default returns the stock configuration: a 21 x 14 grid of 40px cells,
// which keeps cells square on a 105 x 68 pitch.
func Default() *Config {
	return &Config{
		Cols:       21,
		Rows:       14,
		CellSize:   40,
		ShowLabels: true,
		GridLines:  true,
		Zones: []Zone{
			{Name: "defence", Color: "#3c78d8b4"},
			{Name: "midfield", Color: "#6aa84fb4"},
			{Name: "attack", Color: "#cc4125b4"},
			{Name: "wing", Color: "#f1c232b4"},
			{Name: "press", Color: "#8e7cc3b4"},
		},
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrBadGrid, c.Cols, c.Rows)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadCellSize, c.CellSize)
	}
	for i, z := range c.Zones {
		if z.Name == "" {
			return fmt.Errorf("%w: zone %d has no name", ErrBadZone, i)
		}
		if _, err := ParseColor(z.Color); err != nil {
			return fmt.Errorf("%w: zone %q: %v", ErrBadZone, z.Name, err)
		}
	}
	return nil
}

// ZoneColors returns the parsed colour of every zone, in order.
func (c *Config) ZoneColors() []color.RGBA {
	out := make([]color.RGBA, len(c.Zones))
	for i, z := range c.Zones {
		out[i], _ = ParseColor(z.Color)
	}
	return out
}

// ZoneName returns the zone's name, or "zoneN" for unknown indices.
func (c *Config) ZoneName(i int) string {
	if i >= 0 && i < len(c.Zones) {
		return c.Zones[i].Name
	}
	return "zone" + strconv.Itoa(i)
}

// ParseColor parses #rrggbb or #rrggbbaa (straight alpha) into a
// premultiplied colour.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("colour %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	n := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}
