// SPDX-License-Identifier: MIT

package spherical

import (
	"fmt"
	"math"
)

// Criterion selects the angular distance used by Closest.
type Criterion int

const (
	// ByAzimuth uses the shortest circular azimuth distance.
	ByAzimuth Criterion = iota
	// ByElevation uses the absolute elevation difference.
	ByElevation
	// BySurface combines both as sqrt(Δaz² + Δel²).
	BySurface
)

func (c Criterion) String() string {
	switch c {
	case ByAzimuth:
		return "azimuth"
	case ByElevation:
		return "elevation"
	case BySurface:
		return "surface"
	}
	return fmt.Sprintf("Criterion(%d)", int(c))
}

// Distance returns the angular distance between a and b under c. Both
// directions are wrapped first.
func (c Criterion) Distance(a, b Direction) (float64, error) {
	a, b = a.Wrapped(), b.Wrapped()
	daz := math.Abs(a.Azimuth - b.Azimuth)
	daz = math.Min(daz, 2*math.Pi-daz)
	del := math.Abs(a.Elevation - b.Elevation)
	switch c {
	case ByAzimuth:
		return daz, nil
	case ByElevation:
		return del, nil
	case BySurface:
		return math.Hypot(daz, del), nil
	}
	return 0, fmt.Errorf("Distance: %v: %w", c, ErrUnknownCriterion)
}

// Closest returns the index of the candidate nearest to query under c.
// Ties resolve to the lowest index.
//
// Errors: ErrNoCandidates, ErrUnknownCriterion.
// Complexity: O(len(candidates)).
func Closest(query Direction, candidates []Direction, c Criterion) (int, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("Closest: %w", ErrNoCandidates)
	}
	best, bestDist := 0, math.Inf(1)
	for i, cand := range candidates {
		d, err := c.Distance(query, cand)
		if err != nil {
			return 0, fmt.Errorf("Closest: %w", err)
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}
