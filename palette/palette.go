// Package palette produces sets of visually distinct colors.
//
// A Generator maps (count, seed) to count hex colors. Generators are
// deterministic: the same count and seed always give the same palette, which
// keeps bundle colors stable across rebuilds of unchanged data.
//
// HCL is the default generator. It samples candidate colors inside a window
// of the CIE-HCL color space with a random source seeded from the seed
// string, then greedily keeps the candidate farthest (CIE Lab distance) from
// the colors already kept.
//
// Cached wraps any Generator with a bounded LRU so long-running processes
// building many bundles reuse palettes for recurring attribute keys.
package palette

import (
	"errors"
	"hash/fnv"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Sentinel errors returned by generators.
var (
	// ErrBadCount indicates a non-positive color count.
	ErrBadCount = errors.New("palette: count must be positive")

	// ErrBadSettings indicates an empty or inverted color-space window.
	ErrBadSettings = errors.New("palette: invalid color space settings")

	// ErrColorSpaceTooNarrow indicates fewer valid candidates than requested colors.
	ErrColorSpaceTooNarrow = errors.New("palette: color space too narrow for requested count")
)

// Generator returns count distinct colors as "#rrggbb" strings.
type Generator interface {
	Generate(count int, seed string) ([]string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(count int, seed string) ([]string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(count int, seed string) ([]string, error) { return f(count, seed) }

// Settings bounds the HCL window colors are drawn from.
// Hue is in degrees [0, 360]; chroma and lightness use the 0–100 scale.
// Quality is the number of candidates sampled per requested color.
type Settings struct {
	HMin    float64 `json:"hmin" mapstructure:"hmin"`
	HMax    float64 `json:"hmax" mapstructure:"hmax"`
	CMin    float64 `json:"cmin" mapstructure:"cmin"`
	CMax    float64 `json:"cmax" mapstructure:"cmax"`
	LMin    float64 `json:"lmin" mapstructure:"lmin"`
	LMax    float64 `json:"lmax" mapstructure:"lmax"`
	Quality int     `json:"quality" mapstructure:"quality"`
}

// DefaultSettings returns the pastel window used for categorical colors.
func DefaultSettings() Settings {
	return Settings{
		HMin:    0,
		HMax:    360,
		CMin:    25.59,
		CMax:    55.59,
		LMin:    60.94,
		LMax:    90.94,
		Quality: 50,
	}
}

// Validate reports ErrBadSettings for inverted or out-of-range windows.
func (s Settings) Validate() error {
	switch {
	case s.HMin < 0 || s.HMax > 360 || s.HMin >= s.HMax:
		return ErrBadSettings
	case s.CMin < 0 || s.CMin > s.CMax:
		return ErrBadSettings
	case s.LMin < 0 || s.LMax > 100 || s.LMin > s.LMax:
		return ErrBadSettings
	case s.Quality <= 0:
		return ErrBadSettings
	}

	return nil
}

// HCL is the default Generator.
type HCL struct {
	settings Settings
}

// NewHCL validates s and returns a generator.
func NewHCL(s Settings) (*HCL, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &HCL{settings: s}, nil
}

// maxRejections bounds sampling attempts per wanted candidate.
const maxRejections = 20

// Generate implements Generator.
//
// Stage 1 (Seed): FNV-64a of seed feeds a PCG source.
// Stage 2 (Sample): draw count×Quality valid in-gamut candidates.
// Stage 3 (Select): farthest-point selection by Lab distance.
// Complexity: O(count² · Quality) distance evaluations, O(count · Quality)
// Lab conversions.
func (p *HCL) Generate(count int, seed string) ([]string, error) {
	if count <= 0 {
		return nil, ErrBadCount
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	sum := h.Sum64()
	rng := rand.New(rand.NewPCG(sum, sum^0x9e3779b97f4a7c15))

	s := p.settings
	want := count * s.Quality
	candidates := make([]colorful.Color, 0, want)
	for tries := 0; len(candidates) < want && tries < want*maxRejections; tries++ {
		c := colorful.Hcl(
			s.HMin+rng.Float64()*(s.HMax-s.HMin),
			(s.CMin+rng.Float64()*(s.CMax-s.CMin))/100,
			(s.LMin+rng.Float64()*(s.LMax-s.LMin))/100,
		)
		if c.IsValid() {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) < count {
		return nil, ErrColorSpaceTooNarrow
	}

	// Lab coordinates are computed once per candidate; selection compares
	// squared Euclidean distances, which order the same as DistanceLab.
	labs := make([][3]float64, len(candidates))
	for i, c := range candidates {
		l, a, b := c.Lab()
		labs[i] = [3]float64{l, a, b}
	}

	chosen := make([]colorful.Color, 0, count)
	chosen = append(chosen, candidates[0])
	// nearest[i] is the squared distance from candidate i to its closest chosen color.
	nearest := make([]float64, len(candidates))
	for i := range labs {
		nearest[i] = sqDist(labs[i], labs[0])
	}
	for len(chosen) < count {
		best := 0
		for i := range candidates {
			if nearest[i] > nearest[best] {
				best = i
			}
		}
		chosen = append(chosen, candidates[best])
		pick := labs[best]
		for i := range labs {
			if d := sqDist(labs[i], pick); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	out := make([]string, len(chosen))
	for i, c := range chosen {
		out[i] = c.Clamped().Hex()
	}

	return out, nil
}

func sqDist(p, q [3]float64) float64 {
	dl, da, db := p[0]-q[0], p[1]-q[1], p[2]-q[2]
	return dl*dl + da*da + db*db
}
