// Package params holds the caller-supplied parameters of level generation:
// the generation mode, seed and series, board radius, reveal-count ranges and
// targets, path density, enabled colors, symmetry and the fill-all flag.
//
// Out-of-range counts and ranges are corrected silently and deterministically
// by Normalize. Validate reports only what normalization cannot correct.
// Parameters load from YAML documents; fields absent from a document keep
// their Defaults values.
package params

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/pathset"
)

// Mode selects how a level is generated.
type Mode int

const (
	// ModeRandomConnect grows connected colored paths from the board anchor.
	ModeRandomConnect Mode = iota
	// ModeBlank returns an all-blank board.
	ModeBlank
)

var modeNames = map[Mode]string{
	ModeRandomConnect: "random_connect",
	ModeBlank:         "blank",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode is the inverse of String.
func ParseMode(text string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, text)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// GenerationParameters is immutable per generation call; generators copy it.
type GenerationParameters struct {
	Mode         Mode             `yaml:"mode" json:"mode"`
	Seed         uint64           `yaml:"seed" json:"seed"`
	Series       uint64           `yaml:"series" json:"series"`
	Radius       int              `yaml:"radius" json:"radius"`
	FixedRange   IntRange         `yaml:"fixed_range" json:"fixed_range"`
	HiddenRange  IntRange         `yaml:"hidden_range" json:"hidden_range"`
	FixedCount   int              `yaml:"fixed_count" json:"fixed_count"`
	HiddenCount  int              `yaml:"hidden_count" json:"hidden_count"`
	PathDensity  float64          `yaml:"path_density" json:"path_density"`
	Colors       pathset.ColorSet `yaml:"colors" json:"colors"`
	Symmetry     hexgrid.Symmetry `yaml:"symmetry" json:"symmetry"`
	FillAllTiles bool             `yaml:"fill_all_tiles" json:"fill_all_tiles"`
}

// Default values.
const (
	DefaultRadius      = 3
	DefaultFixedCount  = 4
	DefaultHiddenCount = 12
	DefaultPathDensity = 0.5
)

// Defaults returns the parameter set used by simple generation.
func Defaults() GenerationParameters {
	return GenerationParameters{
		Mode:        ModeRandomConnect,
		Radius:      DefaultRadius,
		FixedRange:  IntRange{Min: 2, Max: 12},
		HiddenRange: IntRange{Min: 8, Max: 30},
		FixedCount:  DefaultFixedCount,
		HiddenCount: DefaultHiddenCount,
		PathDensity: DefaultPathDensity,
		Colors:      pathset.NewColorSet(pathset.Red, pathset.Blue),
		Symmetry:    hexgrid.SymmetryNone,
	}
}

// Title returns the decorative parameters of the title-screen background:
// a fully revealed three-color board with 3-fold symmetry.
func Title(seed uint64) GenerationParameters {
	tc := hexgrid.TileCount(3)
	return GenerationParameters{
		Mode:        ModeRandomConnect,
		Seed:        seed,
		Radius:      3,
		FixedRange:  IntRange{Min: 0, Max: tc},
		HiddenRange: IntRange{Min: 0, Max: 0},
		PathDensity: 0.6,
		Colors:      pathset.NewColorSet(pathset.Red, pathset.Yellow, pathset.Blue),
		Symmetry:    hexgrid.SymmetryRotate3,
	}
}

// TileCount returns the number of tiles on the board, 0 for a negative radius.
func (p GenerationParameters) TileCount() int {
	if p.Radius < 0 {
		return 0
	}
	return hexgrid.TileCount(p.Radius)
}

// Normalize applies the silent clamping policy in place:
//   - both ranges are ordered and clamped to [0, tile_count];
//   - explicit counts are clamped into their ranges;
//   - density is clamped to [0, 1] (NaN becomes 0);
//   - colors outside the enumeration are dropped.
//
// Normalize is idempotent.
func (p *GenerationParameters) Normalize() {
	tc := p.TileCount()
	p.FixedRange = p.FixedRange.Normalize(0, tc)
	p.HiddenRange = p.HiddenRange.Normalize(0, tc)
	p.FixedCount = p.FixedRange.Clamp(p.FixedCount)
	p.HiddenCount = p.HiddenRange.Clamp(p.HiddenCount)
	switch {
	case math.IsNaN(p.PathDensity) || p.PathDensity < 0:
		p.PathDensity = 0
	case p.PathDensity > 1:
		p.PathDensity = 1
	}
	p.Colors &= pathset.AllColors
}

// Validate reports problems Normalize cannot correct. It does not check
// capacity (fixed+hidden ≤ tile_count); that is a generation-time failure.
func (p GenerationParameters) Validate() error {
	if !p.Mode.Valid() {
		return fmt.Errorf("%w: mode: %w", ErrInvalidParameter, ErrUnknownMode)
	}
	if p.Radius < 0 {
		return fmt.Errorf("%w: radius %d: %w", ErrInvalidParameter, p.Radius, hexgrid.ErrNegativeRadius)
	}
	if !p.Symmetry.Valid() {
		return fmt.Errorf("%w: symmetry: %w", ErrInvalidParameter, hexgrid.ErrUnknownSymmetry)
	}
	if p.Mode == ModeRandomConnect && p.Colors&pathset.AllColors == 0 {
		return fmt.Errorf("%w: no colors enabled", ErrInvalidParameter)
	}
	return nil
}

// Parse decodes a YAML document over Defaults, normalizes and validates it.
func Parse(data []byte) (*GenerationParameters, error) {
	p := Defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("params: decode: %w", err)
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile reads a YAML parameter file.
func LoadFile(path string) (*GenerationParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("params: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("params: load %s: %w", path, err)
	}
	return p, nil
}
