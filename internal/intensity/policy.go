// Package intensity maps daily activity counts to heatmap levels.
package intensity

import (
	"fmt"

	"github.com/alexanderramin/heatmap/internal/domain"
)

// Policy classifies counts with inclusive upper bounds for levels 1..3.
// Zero is always LevelNone; anything above Bounds[2] is LevelMax.
type Policy struct {
	Name   string
	Bounds [3]int
}

// Realistic is the profile used by realistic mock data: 1–2, 3–5, 6–8, 9+.
var Realistic = Policy{Name: "realistic", Bounds: [3]int{2, 5, 8}}

// Uniform is the profile used by uniform mock data: 1–3, 4–6, 7–9, 10+.
var Uniform = Policy{Name: "uniform", Bounds: [3]int{3, 6, 9}}

// PolicyByName resolves "realistic" or "uniform".
func PolicyByName(name string) (Policy, error) {
	switch name {
	case Realistic.Name:
		return Realistic, nil
	case Uniform.Name:
		return Uniform, nil
	default:
		return Policy{}, fmt.Errorf("%w: unknown classification policy %q", domain.ErrInvalidArgument, name)
	}
}

// Classify returns the level for count. Negative counts are rejected.
func (p Policy) Classify(count int) (domain.Level, error) {
	if count < 0 {
		return domain.LevelNone, fmt.Errorf("%w: count %d is negative", domain.ErrInvalidArgument, count)
	}
	return p.level(count), nil
}

// ClassifyClamped treats negative counts as zero.
func (p Policy) ClassifyClamped(count int) domain.Level {
	if count < 0 {
		count = 0
	}
	return p.level(count)
}

func (p Policy) level(count int) domain.Level {
	switch {
	case count == 0:
		return domain.LevelNone
	case count <= p.Bounds[0]:
		return domain.LevelLow
	case count <= p.Bounds[1]:
		return domain.LevelMedium
	case count <= p.Bounds[2]:
		return domain.LevelHigh
	default:
		return domain.LevelMax
	}
}
