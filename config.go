package tetrabsp

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ClosedWallPolicy decides how two-sided walls that are currently closed (like a shut door) are treated
// when they're reached during a walk.
type ClosedWallPolicy int

const (
	// ClosedWallsSeeThrough treats closed walls as openings: the partition behind them is still expanded and
	// nothing is marked solid. This never hides anything behind the wall.
	ClosedWallsSeeThrough ClosedWallPolicy = iota
	// ClosedWallsOcclude treats closed walls like one-sided walls: their span is marked solid and the
	// partition behind them is not expanded.
	ClosedWallsOcclude
)

var closedWallPolicyNames = []string{"see-through", "occlude"}

func (p ClosedWallPolicy) String() string {
	if p < 0 || int(p) >= len(closedWallPolicyNames) {
		return fmt.Sprintf("ClosedWallPolicy(%d)", int(p))
	}
	return closedWallPolicyNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p ClosedWallPolicy) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(closedWallPolicyNames) {
		return nil, fmt.Errorf("%w: unknown closed wall policy %d", ErrInvalidConfig, int(p))
	}
	return []byte(closedWallPolicyNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ClosedWallPolicy) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range closedWallPolicyNames {
		if n == name {
			*p = ClosedWallPolicy(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown closed wall policy %q", ErrInvalidConfig, name)
}

// Config holds the settings for a Viewer. Use DefaultConfig() to get a Config with sensible values,
// and LoadConfig() to read one from TOML.
type Config struct {
	// Horizontal field of view in degrees, used when BeginFrame is given a zero field of view.
	// Must be greater than 0 and less than 180. Defaults to 90.
	FieldOfView float64 `toml:"field_of_view"`
	// The maximum number of draw-segments alive at once in a frame. When it's reached, no further
	// partitions are expanded and the frame is marked degraded. Defaults to 1024.
	MaxDrawSegs int `toml:"max_draw_segs"`
	// The maximum number of disjoint solid ranges the Clipper may hold. 0 means unlimited. Defaults to 256.
	MaxSolidRanges int `toml:"max_solid_ranges"`
	// How closed two-sided walls are handled. Defaults to ClosedWallsSeeThrough.
	ClosedWalls ClosedWallPolicy `toml:"closed_walls"`
	// If draw-segments whose span became fully solid while they waited should be dropped instead of
	// rendered and expanded. Defaults to true.
	CullCovered bool `toml:"cull_covered"`
	// Distance from a line under which a point counts as lying on it. Defaults to 0.0001.
	SideEpsilon float64 `toml:"side_epsilon"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		FieldOfView:    90,
		MaxDrawSegs:    1024,
		MaxSolidRanges: 256,
		ClosedWalls:    ClosedWallsSeeThrough,
		CullCovered:    true,
		SideEpsilon:    0.0001,
	}
}

// Validate returns an error wrapping ErrInvalidConfig if the Config can't be used.
func (c Config) Validate() error {

	if c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		return fmt.Errorf("%w: field_of_view must be in (0, 180), got %v", ErrInvalidConfig, c.FieldOfView)
	}

	if c.MaxDrawSegs <= 0 {
		return fmt.Errorf("%w: max_draw_segs must be positive, got %d", ErrInvalidConfig, c.MaxDrawSegs)
	}

	if c.MaxSolidRanges < 0 {
		return fmt.Errorf("%w: max_solid_ranges can't be negative, got %d", ErrInvalidConfig, c.MaxSolidRanges)
	}

	if c.ClosedWalls != ClosedWallsSeeThrough && c.ClosedWalls != ClosedWallsOcclude {
		return fmt.Errorf("%w: unknown closed wall policy %d", ErrInvalidConfig, int(c.ClosedWalls))
	}

	if c.SideEpsilon < 0 {
		return fmt.Errorf("%w: side_epsilon can't be negative, got %v", ErrInvalidConfig, c.SideEpsilon)
	}

	return nil

}

// LoadConfig reads a TOML document into a Config. Keys that are left out keep their default values;
// unknown keys are an error.
func LoadConfig(r io.Reader) (Config, error) {

	cfg := DefaultConfig()

	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil

}

// LoadConfigFile reads a TOML file into a Config; see LoadConfig.
func LoadConfigFile(path string) (Config, error) {

	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), err
	}
	defer f.Close()

	return LoadConfig(f)

}

// ToTOML returns the Config encoded as a TOML document.
func (c Config) ToTOML() ([]byte, error) {
	return toml.Marshal(c)
}
