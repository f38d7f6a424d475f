// SPDX-License-Identifier: MIT
// Package distribution - descriptor variants.
//
// Every variant implements Dist[T] through two unexported methods, which keeps
// the set closed: only this package can add variants. The continuous variants
// draw float64 values and therefore only satisfy Dist[float64].

package distribution

import (
	"fmt"
	"math"
	"math/rand"
)

// Dist is a declarative distribution descriptor producing values of type T.
type Dist[T any] interface {
	// Kind reports the variant.
	Kind() Kind

	validate() error
	draw(r *rand.Rand) (T, error)
}

// Const always yields Value.
type Const[T any] struct {
	Value T
}

// Choose yields one of Values uniformly at random. An empty Values list is a
// valid descriptor meaning "all values of the caller's domain"; drawing from it
// directly is an error.
type Choose[T any] struct {
	Values []T
}

// Uniform yields values in [Min, Max).
type Uniform struct {
	Min, Max float64
}

// Normal yields values from N(Mean, Std²). The draw is unbounded.
type Normal struct {
	Mean, Std float64
}

// TruncNorm yields values from N(Mean, Std²) restricted to [Min, Max].
type TruncNorm struct {
	Mean, Std float64
	Min, Max  float64
}

// Compile-time variant checks.
var (
	_ Dist[float64] = Const[float64]{}
	_ Dist[string]  = Choose[string]{}
	_ Dist[float64] = Uniform{}
	_ Dist[float64] = Normal{}
	_ Dist[float64] = TruncNorm{}
)

// NewConst, NewChoose etc. are shorthands returning the interface type, which
// reads better in struct literals than a bare variant.

// NewConst returns Const[T]{v} as a Dist[T].
func NewConst[T any](v T) Dist[T] { return Const[T]{Value: v} }

// NewChoose returns Choose[T]{values} as a Dist[T]. The slice is copied.
func NewChoose[T any](values ...T) Dist[T] {
	return Choose[T]{Values: append([]T(nil), values...)}
}

// NewUniform returns Uniform{min, max}.
func NewUniform(min, max float64) Dist[float64] { return Uniform{Min: min, Max: max} }

// NewNormal returns Normal{mean, std}.
func NewNormal(mean, std float64) Dist[float64] { return Normal{Mean: mean, Std: std} }

// NewTruncNorm returns TruncNorm{mean, std, min, max}.
func NewTruncNorm(mean, std, min, max float64) Dist[float64] {
	return TruncNorm{Mean: mean, Std: std, Min: min, Max: max}
}

func (Const[T]) Kind() Kind  { return KindConst }
func (Choose[T]) Kind() Kind { return KindChoose }
func (Uniform) Kind() Kind   { return KindUniform }
func (Normal) Kind() Kind    { return KindNormal }
func (TruncNorm) Kind() Kind { return KindTruncNorm }

func (Const[T]) validate() error  { return nil }
func (Choose[T]) validate() error { return nil }

func (u Uniform) validate() error {
	if !finite(u.Min) || !finite(u.Max) {
		return fmt.Errorf("uniform(%g, %g): bounds must be finite: %w", u.Min, u.Max, ErrInvalidDistribution)
	}
	if u.Min > u.Max {
		return fmt.Errorf("uniform(%g, %g): min > max: %w", u.Min, u.Max, ErrInvalidDistribution)
	}
	return nil
}

func (n Normal) validate() error {
	if !finite(n.Mean) || !finite(n.Std) {
		return fmt.Errorf("normal(%g, %g): parameters must be finite: %w", n.Mean, n.Std, ErrInvalidDistribution)
	}
	if n.Std < 0 {
		return fmt.Errorf("normal(%g, %g): negative std: %w", n.Mean, n.Std, ErrInvalidDistribution)
	}
	return nil
}

func (t TruncNorm) validate() error {
	if !finite(t.Mean) || !finite(t.Std) || !finite(t.Min) || !finite(t.Max) {
		return fmt.Errorf("%s: parameters must be finite: %w", t, ErrInvalidDistribution)
	}
	if t.Std < 0 {
		return fmt.Errorf("%s: negative std: %w", t, ErrInvalidDistribution)
	}
	if t.Min > t.Max {
		return fmt.Errorf("%s: trunc_min > trunc_max: %w", t, ErrInvalidDistribution)
	}
	return nil
}

func (c Const[T]) draw(*rand.Rand) (T, error) { return c.Value, nil }

func (c Choose[T]) draw(r *rand.Rand) (T, error) {
	var zero T
	if len(c.Values) == 0 {
		return zero, fmt.Errorf("choose: empty list: %w", ErrInvalidDistribution)
	}
	return c.Values[r.Intn(len(c.Values))], nil
}

func (u Uniform) draw(r *rand.Rand) (float64, error) {
	if u.Max == u.Min {
		return u.Min, nil
	}
	return u.Min + r.Float64()*(u.Max-u.Min), nil
}

func (n Normal) draw(r *rand.Rand) (float64, error) {
	return n.Mean + n.Std*r.NormFloat64(), nil
}

func (t TruncNorm) draw(r *rand.Rand) (float64, error) {
	return truncNormInv(t.Mean, t.Std, t.Min, t.Max, r.Float64()), nil
}

// String renders t the way it is written in scene files.
func (t TruncNorm) String() string {
	return fmt.Sprintf("truncnorm(%g, %g, %g, %g)", t.Mean, t.Std, t.Min, t.Max)
}

// Validate checks the shape of d. A nil descriptor is invalid.
// Complexity: O(1).
func Validate[T any](d Dist[T]) error {
	if d == nil {
		return fmt.Errorf("Validate: nil descriptor: %w", ErrInvalidDistribution)
	}
	return d.validate()
}

// Sample validates d and draws one value from it using s.
// Complexity: O(1).
func Sample[T any](s *Sampler, d Dist[T]) (T, error) {
	var zero T
	if err := Validate(d); err != nil {
		return zero, err
	}
	return d.draw(s.rng)
}

// Values returns the finite support of a Const or Choose descriptor and
// reports false for continuous kinds.
func Values[T any](d Dist[T]) ([]T, bool) {
	switch v := d.(type) {
	case Const[T]:
		return []T{v.Value}, true
	case Choose[T]:
		return v.Values, true
	}
	return nil, false
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
