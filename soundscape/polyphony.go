// SPDX-License-Identifier: MIT

package soundscape

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// DefaultHop is the polyphony sampling step in seconds.
const DefaultHop = 0.01

// giniFloor keeps every sample positive before the coefficient is computed.
const giniFloor = 1e-6

// MaxPolyphony returns the largest number of foreground events sounding at
// once. An event ending exactly when another starts does not overlap it.
// Background events are ignored.
//
// Complexity: O(n log n) for n foreground events.
func (s *Scene) MaxPolyphony() int {
	type mark struct {
		t     float64
		delta int
	}
	var marks []mark
	for _, e := range s.Foreground() {
		marks = append(marks, mark{e.EventTime, 1}, mark{e.End(), -1})
	}
	slices.SortFunc(marks, func(a, b mark) int {
		if c := cmp.Compare(a.t, b.t); c != 0 {
			return c
		}
		return cmp.Compare(a.delta, b.delta)
	})
	best, cur := 0, 0
	for _, m := range marks {
		cur += m.delta
		best = max(best, cur)
	}
	return best
}

// PolyphonyGini samples the foreground polyphony every hop seconds and
// returns one minus the Gini coefficient of that series: close to 1 for a
// flat polyphony, close to 0 when activity is concentrated. A scene without
// foreground events yields 0.
//
// Errors: ErrInvalidHop.
// Complexity: O(duration/hop · log(duration/hop) + n·duration/hop).
func (s *Scene) PolyphonyGini(hop float64) (float64, error) {
	if !(hop > 0) || hop > s.Duration || math.IsInf(hop, 0) {
		return 0, fmt.Errorf("PolyphonyGini(%g): %w", hop, ErrInvalidHop)
	}
	fg := s.Foreground()
	if len(fg) == 0 {
		return 0, nil
	}

	n := int(math.Floor(s.Duration/hop)) + 1
	values := make([]float64, n)
	for _, e := range fg {
		start := nearestSample(e.EventTime, hop, n)
		end := nearestSample(e.End(), hop, n) - 1
		for i := start; i <= end; i++ {
			values[i]++
		}
	}
	values = values[:n-1]

	for i := range values {
		values[i] += giniFloor
	}
	slices.Sort(values)
	var num, sum float64
	k := float64(len(values))
	for i, v := range values {
		num += (2*float64(i+1) - k - 1) * v
		sum += v
	}
	return 1 - num/(k*sum), nil
}

// nearestSample returns the index in [0, n) of the sample time i*hop closest
// to t; the lower index wins a tie.
func nearestSample(t, hop float64, n int) int {
	lo := int(math.Floor(t / hop))
	lo = min(max(lo, 0), n-1)
	hi := min(lo+1, n-1)
	if math.Abs(float64(hi)*hop-t) < math.Abs(float64(lo)*hop-t) {
		return hi
	}
	return lo
}
