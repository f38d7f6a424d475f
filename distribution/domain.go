// SPDX-License-Identifier: MIT
// Package distribution - field domains.
//
// One Domain per semantic field type, shared by every spec variant that carries
// such a field. Check applies the same rules everywhere:
//
//	const      value must lie in the domain
//	choose     non-empty, every value must lie in the domain
//	uniform    both bounds must lie in the domain
//	normal     accepted; warning when the domain is bounded
//	truncnorm  both truncation bounds must lie in the domain

package distribution

import (
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Domain is an interval of admissible values for a scalar field.
// Infinite bounds are expressed with math.Inf.
type Domain struct {
	Min, Max         float64
	OpenMin, OpenMax bool
}

// Predefined domains.
var (
	// Time covers source offsets and onset times: [0, ∞).
	Time = Domain{Min: 0, Max: math.Inf(1)}
	// Duration: (0, ∞).
	Duration = Domain{Min: 0, Max: math.Inf(1), OpenMin: true}
	// Azimuth: [0, 2π]. Sampled azimuths are wrapped into [0, 2π) afterwards.
	Azimuth = Domain{Min: 0, Max: 2 * math.Pi}
	// Elevation: [-π/2, π/2].
	Elevation = Domain{Min: -math.Pi / 2, Max: math.Pi / 2}
	// Spread: [0, 1].
	Spread = Domain{Min: 0, Max: 1}
	// Real is unbounded (SNR, pitch shift).
	Real = Domain{Min: math.Inf(-1), Max: math.Inf(1)}
	// Positive: (0, ∞) (time stretch, decay time, room sides).
	Positive = Domain{Min: 0, Max: math.Inf(1), OpenMin: true}
	// Unit: [0, 1] (wall reflectivity).
	Unit = Domain{Min: 0, Max: 1}
)

// Contains reports whether x lies in d. NaN is never contained.
func (d Domain) Contains(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	if x < d.Min || (d.OpenMin && x == d.Min) {
		return false
	}
	if x > d.Max || (d.OpenMax && x == d.Max) {
		return false
	}
	return true
}

// Bounded reports whether at least one side of d is finite.
func (d Domain) Bounded() bool {
	return !math.IsInf(d.Min, -1) || !math.IsInf(d.Max, 1)
}

// String renders d in interval notation, e.g. "(0, +Inf)".
func (d Domain) String() string {
	lo, hi := "[", "]"
	if d.OpenMin || math.IsInf(d.Min, 0) {
		lo = "("
	}
	if d.OpenMax || math.IsInf(d.Max, 0) {
		hi = ")"
	}
	return lo + strconv.FormatFloat(d.Min, 'g', -1, 64) + ", " + strconv.FormatFloat(d.Max, 'g', -1, 64) + hi
}

// Check validates dist for a field with domain d.
// Returns at most one warning (normal on a bounded domain).
//
// Errors:
//   - ErrInvalidDistribution for malformed or nil descriptors.
//   - ErrInvalidFieldValue when the descriptor cannot produce in-domain values.
//
// Complexity: O(len(choose values)).
func (d Domain) Check(field string, dist Dist[float64]) ([]Warning, error) {
	if err := Validate(dist); err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	switch v := dist.(type) {
	case Const[float64]:
		if !d.Contains(v.Value) {
			return nil, d.outside(field, "const value", v.Value)
		}
	case Choose[float64]:
		if len(v.Values) == 0 {
			return nil, fmt.Errorf("%s: empty choose list: %w", field, ErrInvalidFieldValue)
		}
		for _, x := range v.Values {
			if !d.Contains(x) {
				return nil, d.outside(field, "choose value", x)
			}
		}
	case Uniform:
		if !d.Contains(v.Min) {
			return nil, d.outside(field, "uniform min", v.Min)
		}
		if !d.Contains(v.Max) {
			return nil, d.outside(field, "uniform max", v.Max)
		}
	case Normal:
		if d.Bounded() {
			return []Warning{Warnf(field,
				"normal(%g, %g) can produce values outside %s; they are kept as drawn", v.Mean, v.Std, d)}, nil
		}
	case TruncNorm:
		if !d.Contains(v.Min) {
			return nil, d.outside(field, "truncnorm min", v.Min)
		}
		if !d.Contains(v.Max) {
			return nil, d.outside(field, "truncnorm max", v.Max)
		}
	}
	return nil, nil
}

// Sample draws one value after Check, so the caller gets the field-specific
// error and warnings in a single step. Out-of-domain normal draws are kept.
func (d Domain) Sample(s *Sampler, field string, dist Dist[float64]) (float64, []Warning, error) {
	warns, err := d.Check(field, dist)
	if err != nil {
		return 0, nil, err
	}
	v, err := Sample(s, dist)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", field, err)
	}
	return v, warns, nil
}

func (d Domain) outside(field, what string, x float64) error {
	return fmt.Errorf("%s: %s %g outside %s: %w", field, what, x, d, ErrInvalidFieldValue)
}

// CheckChoice validates a label descriptor against the allowed set.
// An empty choose list is accepted when allowed is non-empty: it means "any
// allowed value" and is resolved with ChoiceSupport.
//
// Complexity: O(len(values)·len(allowed)).
func CheckChoice(field string, dist Dist[string], allowed []string) error {
	if err := Validate(dist); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	values, _ := Values(dist)
	if len(values) == 0 && len(allowed) == 0 {
		return fmt.Errorf("%s: nothing to choose from: %w", field, ErrInvalidFieldValue)
	}
	for _, v := range values {
		if !slices.Contains(allowed, v) {
			return fmt.Errorf("%s: %q not in %v: %w", field, v, allowed, ErrInvalidFieldValue)
		}
	}
	return nil
}

// ChoiceSupport returns the effective candidate list of a label descriptor:
// its own values, or all of allowed for an empty choose.
func ChoiceSupport(dist Dist[string], allowed []string) []string {
	values, _ := Values(dist)
	if len(values) == 0 {
		return slices.Clone(allowed)
	}
	return values
}

// CheckDiscrete validates a descriptor that only admits finite supports, such
// as vector-valued or integer fields. Every value is passed to check.
//
// Errors:
//   - ErrInvalidDistribution for continuous kinds or an empty choose list.
//   - whatever check returns, wrapped with field.
func CheckDiscrete[T any](field string, dist Dist[T], check func(T) error) error {
	if err := Validate(dist); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	values, ok := Values(dist)
	if !ok {
		return fmt.Errorf("%s: %s not supported, use const or choose: %w", field, dist.Kind(), ErrInvalidDistribution)
	}
	if len(values) == 0 {
		return fmt.Errorf("%s: empty choose list: %w", field, ErrInvalidDistribution)
	}
	for _, v := range values {
		if err := check(v); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	return nil
}
