// SPDX-License-Identifier: MIT

package reverb

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/ambiscape/catalog"
	"github.com/katalvlaran/ambiscape/distribution"
)

// Resolver validates and instantiates reverb specs against its constant
// tables and, for measured reverbs, a catalog.
type Resolver struct {
	cfg config
}

// NewResolver builds a Resolver from options.
func NewResolver(opts ...Option) *Resolver {
	return &Resolver{cfg: newConfig(opts...)}
}

// MicArrayNames returns the configured array names in declaration order.
func (r *Resolver) MicArrayNames() []string {
	names := make([]string, len(r.cfg.mics))
	for i, m := range r.cfg.mics {
		names[i] = m.Name
	}
	return names
}

// MicArray looks up an array by name.
func (r *Resolver) MicArray(name string) (MicArray, bool) {
	i := slices.IndexFunc(r.cfg.mics, func(m MicArray) bool { return m.Name == name })
	if i < 0 {
		return MicArray{}, false
	}
	return r.cfg.mics[i].clone(), true
}

// Validate checks spec without drawing.
//
// Simulated: both T60 and Reflectivity set yields a warning (T60 wins);
// neither set is ErrConflictingSpec.
//
// Errors:
//   - ErrUnknownSpec, ErrConflictingSpec.
//   - distribution.ErrInvalidDistribution, distribution.ErrInvalidFieldValue.
//   - catalog.ErrCatalog when a measured spec has no catalog to check against.
func (r *Resolver) Validate(spec Spec) ([]distribution.Warning, error) {
	switch s := spec.(type) {
	case SimulatedSpec:
		return r.validateSimulated(s)
	case *SimulatedSpec:
		if s != nil {
			return r.validateSimulated(*s)
		}
	case MeasuredSpec:
		return nil, r.validateMeasured(s)
	case *MeasuredSpec:
		if s != nil {
			return nil, r.validateMeasured(*s)
		}
	}
	return nil, fmt.Errorf("Validate(%T): %w", spec, ErrUnknownSpec)
}

func (r *Resolver) validateSimulated(s SimulatedSpec) ([]distribution.Warning, error) {
	if err := distribution.CheckDiscrete(FieldIRLength, s.IRLength, positiveInt); err != nil {
		return nil, fmt.Errorf("Validate: %w", err)
	}
	if err := distribution.CheckDiscrete(FieldRoomDimensions, s.RoomDimensions, positiveSides); err != nil {
		return nil, fmt.Errorf("Validate: %w", err)
	}

	var warns []distribution.Warning
	switch {
	case s.T60 == nil && s.Reflectivity == nil:
		return nil, fmt.Errorf("Validate: neither %s nor %s set: %w", FieldT60, FieldReflectivity, ErrConflictingSpec)
	case s.T60 != nil:
		w, err := distribution.Positive.Check(FieldT60, s.T60)
		if err != nil {
			return nil, fmt.Errorf("Validate: %w", err)
		}
		warns = append(warns, w...)
		if s.Reflectivity != nil {
			warns = append(warns, distribution.Warnf(FieldReflectivity,
				"both %s and %s set, using %s", FieldT60, FieldReflectivity, FieldT60))
		}
	default:
		if err := distribution.CheckDiscrete(FieldReflectivity, s.Reflectivity, unitWalls); err != nil {
			return nil, fmt.Errorf("Validate: %w", err)
		}
	}

	if err := distribution.CheckChoice(FieldSourceType, s.SourceType, r.cfg.sourceTypes); err != nil {
		return nil, fmt.Errorf("Validate: %w", err)
	}
	if err := distribution.CheckChoice(FieldMicrophoneType, s.MicrophoneType, r.MicArrayNames()); err != nil {
		return nil, fmt.Errorf("Validate: %w", err)
	}
	return warns, nil
}

func (r *Resolver) validateMeasured(s MeasuredSpec) error {
	names, err := r.reverbNames()
	if err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if err := distribution.CheckChoice(FieldName, s.Name, names); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if err := distribution.CheckChoice(FieldWrap, s.Wrap, WrapPolicies()); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	return nil
}

func (r *Resolver) reverbNames() ([]string, error) {
	if r.cfg.reverbs == nil {
		return nil, fmt.Errorf("no measured reverb catalog: %w", catalog.ErrCatalog)
	}
	return r.cfg.reverbs.Names()
}

// Instantiate validates spec and draws every field once from s, in field
// declaration order. Reflectivity is not drawn when T60 is set.
//
// Errors: anything Validate returns; catalog.ErrCatalog from the reverb catalog.
func (r *Resolver) Instantiate(spec Spec, s *distribution.Sampler) (Instantiated, []distribution.Warning, error) {
	warns, err := r.Validate(spec)
	if err != nil {
		return Instantiated{}, nil, fmt.Errorf("Instantiate: %w", err)
	}
	switch spec.Kind() {
	case Simulated:
		sim, err := r.drawSimulated(deref[SimulatedSpec](spec), s)
		if err != nil {
			return Instantiated{}, nil, fmt.Errorf("Instantiate: %w", err)
		}
		return Instantiated{Kind: Simulated, Simulated: sim}, warns, nil
	default:
		mea, err := r.drawMeasured(deref[MeasuredSpec](spec), s)
		if err != nil {
			return Instantiated{}, nil, fmt.Errorf("Instantiate: %w", err)
		}
		return Instantiated{Kind: Measured, Measured: mea}, warns, nil
	}
}

// deref accepts both value and pointer specs; Validate has already rejected
// anything else.
func deref[T any](spec Spec) T {
	if p, ok := any(spec).(*T); ok {
		return *p
	}
	return any(spec).(T)
}

func (r *Resolver) drawSimulated(s SimulatedSpec, smp *distribution.Sampler) (*SimulatedReverb, error) {
	irLen, err := distribution.Sample(smp, s.IRLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FieldIRLength, err)
	}
	dims, err := distribution.Sample(smp, s.RoomDimensions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FieldRoomDimensions, err)
	}
	out := &SimulatedReverb{
		IRLength:         irLen,
		RoomDimensions:   dims,
		ReceiverPosition: receiverPosition(dims),
		Generator:        r.cfg.generator,
	}
	if s.T60 != nil {
		t60, err := distribution.Sample(smp, s.T60)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", FieldT60, err)
		}
		out.T60 = &t60
	} else {
		refl, err := distribution.Sample(smp, s.Reflectivity)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", FieldReflectivity, err)
		}
		out.Reflectivity = &refl
	}
	if out.SourceType, err = sampleChoice(smp, s.SourceType, r.cfg.sourceTypes); err != nil {
		return nil, fmt.Errorf("%s: %w", FieldSourceType, err)
	}
	micName, err := sampleChoice(smp, s.MicrophoneType, r.MicArrayNames())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FieldMicrophoneType, err)
	}
	out.Microphone, _ = r.MicArray(micName)
	return out, nil
}

func (r *Resolver) drawMeasured(s MeasuredSpec, smp *distribution.Sampler) (*MeasuredReverb, error) {
	names, err := r.reverbNames()
	if err != nil {
		return nil, err
	}
	name, err := sampleChoice(smp, s.Name, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FieldName, err)
	}
	wrap, err := sampleChoice(smp, s.Wrap, WrapPolicies())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FieldWrap, err)
	}
	dirs, err := r.cfg.reverbs.Directions(name)
	if err != nil {
		return nil, err
	}
	order, err := r.cfg.reverbs.AmbisonicsOrder(name)
	if err != nil {
		return nil, err
	}
	return &MeasuredReverb{Name: name, Wrap: Wrap(wrap), Order: order, Directions: dirs}, nil
}

// MaxOrder returns the highest ambisonics order guaranteed by every value
// spec can resolve to: the minimum over the candidate microphone arrays or
// measured sets.
//
// Errors: anything Validate returns; catalog.ErrCatalog.
func (r *Resolver) MaxOrder(spec Spec) (int, error) {
	if _, err := r.Validate(spec); err != nil {
		return 0, fmt.Errorf("MaxOrder: %w", err)
	}
	best := math.MaxInt
	switch spec.Kind() {
	case Simulated:
		s := deref[SimulatedSpec](spec)
		for _, name := range distribution.ChoiceSupport(s.MicrophoneType, r.MicArrayNames()) {
			m, _ := r.MicArray(name)
			best = min(best, m.MaxOrder())
		}
	default:
		s := deref[MeasuredSpec](spec)
		names, err := r.reverbNames()
		if err != nil {
			return 0, fmt.Errorf("MaxOrder: %w", err)
		}
		for _, name := range distribution.ChoiceSupport(s.Name, names) {
			o, err := r.cfg.reverbs.AmbisonicsOrder(name)
			if err != nil {
				return 0, fmt.Errorf("MaxOrder: %w", err)
			}
			best = min(best, o)
		}
	}
	return best, nil
}

// sampleChoice draws from d, or uniformly from allowed when d is an empty choose.
func sampleChoice(smp *distribution.Sampler, d distribution.Dist[string], allowed []string) (string, error) {
	if values, _ := distribution.Values(d); len(values) == 0 {
		d = distribution.NewChoose(allowed...)
	}
	return distribution.Sample(smp, d)
}

func positiveInt(n int) error {
	if n <= 0 {
		return fmt.Errorf("%d must be > 0: %w", n, distribution.ErrInvalidFieldValue)
	}
	return nil
}

func positiveSides(d [3]float64) error {
	for _, x := range d {
		if !distribution.Positive.Contains(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%v: sides must be finite and > 0: %w", d, distribution.ErrInvalidFieldValue)
		}
	}
	return nil
}

func unitWalls(w [6]float64) error {
	for _, x := range w {
		if !distribution.Unit.Contains(x) {
			return fmt.Errorf("%v: reflectivity must lie in %s: %w", w, distribution.Unit, distribution.ErrInvalidFieldValue)
		}
	}
	return nil
}
