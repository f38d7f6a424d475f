// SPDX-License-Identifier: MIT

package event

import (
	"fmt"

	"github.com/katalvlaran/ambiscape/distribution"
)

// Field names used in errors and warnings.
const (
	FieldSourceFile  = "source_file"
	FieldSourceTime  = "source_time"
	FieldEventTime   = "event_time"
	FieldDuration    = "event_duration"
	FieldAzimuth     = "event_azimuth"
	FieldElevation   = "event_elevation"
	FieldSpread      = "event_spread"
	FieldSNR         = "snr"
	FieldPitchShift  = "pitch_shift"
	FieldTimeStretch = "time_stretch"
)

// Spec is a sound-event template. PitchShift and TimeStretch are optional:
// nil means "no transformation".
//
// A Choose with no values for SourceFile means "any file of the catalog".
type Spec struct {
	Role Role

	SourceFile distribution.Dist[string]
	SourceTime distribution.Dist[float64]
	EventTime  distribution.Dist[float64]
	Duration   distribution.Dist[float64]
	Azimuth    distribution.Dist[float64]
	Elevation  distribution.Dist[float64]
	Spread     distribution.Dist[float64]
	SNR        distribution.Dist[float64]

	PitchShift  distribution.Dist[float64]
	TimeStretch distribution.Dist[float64]
}

type scalarField struct {
	name   string
	dist   distribution.Dist[float64]
	domain distribution.Domain
}

// scalars lists the numeric fields in draw order. Optional fields are omitted
// when nil.
func (s Spec) scalars() []scalarField {
	fs := []scalarField{
		{FieldSourceTime, s.SourceTime, distribution.Time},
		{FieldEventTime, s.EventTime, distribution.Time},
		{FieldDuration, s.Duration, distribution.Duration},
		{FieldAzimuth, s.Azimuth, distribution.Azimuth},
		{FieldElevation, s.Elevation, distribution.Elevation},
		{FieldSpread, s.Spread, distribution.Spread},
		{FieldSNR, s.SNR, distribution.Real},
	}
	if s.PitchShift != nil {
		fs = append(fs, scalarField{FieldPitchShift, s.PitchShift, distribution.Real})
	}
	if s.TimeStretch != nil {
		fs = append(fs, scalarField{FieldTimeStretch, s.TimeStretch, distribution.Positive})
	}
	return fs
}

// Validate checks every descriptor against its field domain. Source file
// existence is a catalog concern and is checked by the Instantiator.
//
// Errors:
//   - ErrUnknownRole.
//   - distribution.ErrInvalidDistribution, distribution.ErrInvalidFieldValue.
func (s Spec) Validate() ([]distribution.Warning, error) {
	if _, err := s.Role.Prefix(); err != nil {
		return nil, fmt.Errorf("Validate: %w", err)
	}
	if err := validateSourceFile(s.SourceFile); err != nil {
		return nil, fmt.Errorf("Validate: %w", err)
	}
	var warns []distribution.Warning
	for _, f := range s.scalars() {
		w, err := f.domain.Check(f.name, f.dist)
		if err != nil {
			return nil, fmt.Errorf("Validate: %w", err)
		}
		warns = append(warns, w...)
	}
	return warns, nil
}

func validateSourceFile(d distribution.Dist[string]) error {
	if err := distribution.Validate(d); err != nil {
		return fmt.Errorf("%s: %w", FieldSourceFile, err)
	}
	values, ok := distribution.Values(d)
	if !ok {
		return fmt.Errorf("%s: %s not supported, use const or choose: %w",
			FieldSourceFile, d.Kind(), distribution.ErrInvalidDistribution)
	}
	for _, v := range values {
		if v == "" {
			return fmt.Errorf("%s: empty path: %w", FieldSourceFile, distribution.ErrInvalidFieldValue)
		}
	}
	return nil
}
