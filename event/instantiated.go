// SPDX-License-Identifier: MIT

package event

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/katalvlaran/ambiscape/spherical"
)

// Instantiated is a concrete event. Every field holds a number except the
// optional transformations, which stay nil when the template left them unset.
type Instantiated struct {
	ID          string   `json:"event_id"`
	Role        Role     `json:"role"`
	SourceFile  string   `json:"source_file"`
	SourceTime  float64  `json:"source_time"`
	EventTime   float64  `json:"event_time"`
	Duration    float64  `json:"event_duration"`
	Azimuth     float64  `json:"event_azimuth"`
	Elevation   float64  `json:"event_elevation"`
	Spread      float64  `json:"event_spread"`
	SNR         float64  `json:"snr"`
	PitchShift  *float64 `json:"pitch_shift"`
	TimeStretch *float64 `json:"time_stretch"`
}

// StretchedDuration is Duration scaled by TimeStretch, or Duration when no
// stretch is set.
func (e Instantiated) StretchedDuration() float64 {
	if e.TimeStretch == nil {
		return e.Duration
	}
	return e.Duration * *e.TimeStretch
}

// End returns the scene time at which the (stretched) event stops.
func (e Instantiated) End() float64 { return e.EventTime + e.StretchedDuration() }

// Direction returns the event's incidence direction.
func (e Instantiated) Direction() spherical.Direction {
	return spherical.Direction{Azimuth: e.Azimuth, Elevation: e.Elevation}
}

// Clone returns a deep copy; the optional fields do not alias.
func (e Instantiated) Clone() (Instantiated, error) {
	var out Instantiated
	if err := copier.CopyWithOption(&out, &e, copier.Option{DeepCopy: true}); err != nil {
		return Instantiated{}, fmt.Errorf("Clone(%s): %w", e.ID, err)
	}
	return out, nil
}

// Retimed returns a copy placed at eventTime with the given duration, used
// when a renderer trims an event to the scene bounds.
func (e Instantiated) Retimed(eventTime, duration float64) (Instantiated, error) {
	out, err := e.Clone()
	if err != nil {
		return Instantiated{}, err
	}
	out.EventTime = eventTime
	out.Duration = duration
	return out, nil
}
