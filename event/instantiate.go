// SPDX-License-Identifier: MIT

package event

import (
	"fmt"

	"github.com/katalvlaran/ambiscape/catalog"
	"github.com/katalvlaran/ambiscape/distribution"
	"github.com/katalvlaran/ambiscape/spherical"
)

// Instantiator draws concrete events from templates against one source
// catalog and scene length.
type Instantiator struct {
	sources       catalog.Sources
	sceneDuration float64
}

// NewInstantiator binds a catalog and a scene duration.
//
// Errors: ErrInvalidSceneDuration; catalog.ErrCatalog for a nil catalog.
func NewInstantiator(sources catalog.Sources, sceneDuration float64) (*Instantiator, error) {
	if sources == nil {
		return nil, fmt.Errorf("NewInstantiator: nil catalog: %w", catalog.ErrCatalog)
	}
	if !(sceneDuration > 0) {
		return nil, fmt.Errorf("NewInstantiator(%g): %w", sceneDuration, ErrInvalidSceneDuration)
	}
	return &Instantiator{sources: sources, sceneDuration: sceneDuration}, nil
}

// SceneDuration returns the bound scene length in seconds.
func (in *Instantiator) SceneDuration() float64 { return in.sceneDuration }

// Instantiate resolves spec into the idx-th event of its role.
//
// Source selection: a const path is resolved as is. A choose is resolved over
// its own paths, or over every catalog file when empty; with allowRepeated
// false, files already in ledger are excluded from a choose. The chosen file
// is added to ledger on success.
//
// Azimuth is wrapped into [0, 2π). No other drawn value is changed.
//
// Errors:
//   - anything Spec.Validate returns.
//   - catalog.ErrCatalog for a path that does not resolve.
//   - ErrSourceExhausted when no candidate file remains.
func (in *Instantiator) Instantiate(
	spec Spec,
	idx int,
	ledger *Ledger,
	allowRepeated bool,
	s *distribution.Sampler,
) (Instantiated, []distribution.Warning, error) {
	warns, err := spec.Validate()
	if err != nil {
		return Instantiated{}, nil, fmt.Errorf("Instantiate: %w", err)
	}
	id, err := ID(spec.Role, idx)
	if err != nil {
		return Instantiated{}, nil, fmt.Errorf("Instantiate: %w", err)
	}

	src, err := in.pickSource(spec.SourceFile, ledger, allowRepeated, s)
	if err != nil {
		return Instantiated{}, nil, fmt.Errorf("Instantiate(%s): %w", id, err)
	}

	fields := spec.scalars()
	drawn := make(map[string]float64, len(fields))
	for _, f := range fields {
		v, err := distribution.Sample(s, f.dist)
		if err != nil {
			return Instantiated{}, nil, fmt.Errorf("Instantiate(%s): %s: %w", id, f.name, err)
		}
		drawn[f.name] = v
	}

	e := Instantiated{
		ID:         id,
		Role:       spec.Role,
		SourceFile: src,
		SourceTime: drawn[FieldSourceTime],
		EventTime:  drawn[FieldEventTime],
		Duration:   drawn[FieldDuration],
		Azimuth:    spherical.WrapAzimuth(drawn[FieldAzimuth]),
		Elevation:  drawn[FieldElevation],
		Spread:     drawn[FieldSpread],
		SNR:        drawn[FieldSNR],
	}
	if v, ok := drawn[FieldPitchShift]; ok {
		e.PitchShift = &v
	}
	if v, ok := drawn[FieldTimeStretch]; ok {
		e.TimeStretch = &v
	}

	warns = append(warns, in.timingWarnings(e)...)
	if ledger != nil {
		ledger.Add(src)
	}
	return e, warns, nil
}

func (in *Instantiator) pickSource(
	d distribution.Dist[string],
	ledger *Ledger,
	allowRepeated bool,
	s *distribution.Sampler,
) (string, error) {
	if c, ok := d.(distribution.Const[string]); ok {
		return in.sources.Resolve(c.Value)
	}

	values, _ := distribution.Values(d)
	var candidates []string
	if len(values) == 0 {
		all, err := in.sources.Files()
		if err != nil {
			return "", err
		}
		candidates = all
	} else {
		candidates = make([]string, 0, len(values))
		for _, v := range values {
			p, err := in.sources.Resolve(v)
			if err != nil {
				return "", err
			}
			candidates = append(candidates, p)
		}
	}

	if !allowRepeated && ledger != nil {
		kept := candidates[:0:0]
		for _, p := range candidates {
			if !ledger.Contains(p) {
				kept = append(kept, p)
			}
		}
		candidates = kept
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%s: %w", FieldSourceFile, ErrSourceExhausted)
	}
	return distribution.Sample(s, distribution.NewChoose(candidates...))
}

// timingWarnings reports overruns of the source and of the scene. Background
// beds are looped to the scene length, so their source overruns are expected
// and not reported.
func (in *Instantiator) timingWarnings(e Instantiated) []distribution.Warning {
	var warns []distribution.Warning
	if srcDur, ok := in.sources.Duration(e.SourceFile); ok && e.Role != Background {
		if e.Duration > srcDur {
			warns = append(warns, distribution.Warnf(FieldDuration,
				"%s: duration %g exceeds source duration %g", e.ID, e.Duration, srcDur))
		}
		if e.SourceTime+e.Duration > srcDur {
			warns = append(warns, distribution.Warnf(FieldSourceTime,
				"%s: source_time %g + duration %g exceeds source duration %g", e.ID, e.SourceTime, e.Duration, srcDur))
		}
	}
	stretched := e.StretchedDuration()
	if stretched > in.sceneDuration {
		warns = append(warns, distribution.Warnf(FieldDuration,
			"%s: duration %g exceeds scene duration %g", e.ID, stretched, in.sceneDuration))
	}
	if e.EventTime+stretched > in.sceneDuration {
		warns = append(warns, distribution.Warnf(FieldEventTime,
			"%s: event ends at %g, after scene end %g", e.ID, e.EventTime+stretched, in.sceneDuration))
	}
	return warns
}
