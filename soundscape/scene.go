// SPDX-License-Identifier: MIT

package soundscape

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/katalvlaran/ambiscape/ambisonics"
	"github.com/katalvlaran/ambiscape/distribution"
	"github.com/katalvlaran/ambiscape/event"
	"github.com/katalvlaran/ambiscape/matrix"
	"github.com/katalvlaran/ambiscape/reverb"
)

// Scene is the resolved description handed to a renderer. Events hold the
// background events first, then the foreground events, each group in
// declaration order.
type Scene struct {
	ID                  uuid.UUID              `json:"id"`
	Seed                int64                  `json:"seed,omitempty"`
	Duration            float64                `json:"duration"`
	Order               int                    `json:"ambisonics_order"`
	RefDB               float64                `json:"ref_db"`
	SampleRate          int                    `json:"sample_rate"`
	FadeIn              float64                `json:"fade_in_len"`
	FadeOut             float64                `json:"fade_out_len"`
	AllowRepeatedSource bool                   `json:"allow_repeated_source"`
	ForegroundPath      string                 `json:"fg_path,omitempty"`
	BackgroundPath      string                 `json:"bg_path,omitempty"`
	Events              []event.Instantiated   `json:"events"`
	Reverb              *reverb.Instantiated   `json:"reverb,omitempty"`
	Warnings            []distribution.Warning `json:"warnings,omitempty"`
}

// Foreground returns the foreground events in declaration order.
func (s *Scene) Foreground() []event.Instantiated { return s.byRole(event.Foreground) }

// Background returns the background events in declaration order.
func (s *Scene) Background() []event.Instantiated { return s.byRole(event.Background) }

func (s *Scene) byRole(r event.Role) []event.Instantiated {
	var out []event.Instantiated
	for _, e := range s.Events {
		if e.Role == r {
			out = append(out, e)
		}
	}
	return out
}

// Event looks an event up by identifier.
func (s *Scene) Event(id string) (event.Instantiated, bool) {
	for _, e := range s.Events {
		if e.ID == id {
			return e, true
		}
	}
	return event.Instantiated{}, false
}

// GainMatrix returns the encoding gains of every event: one row per entry of
// Events, one column per ACN channel. Spread is clamped into [0, 1] first,
// since a normal draw may leave it outside.
//
// Errors: ErrNilScene; matrix.ErrInvalidDimensions for a scene without
// events; ambisonics errors for tau outside [0, 1].
// Complexity: O(len(Events)·order³).
func (s *Scene) GainMatrix(tau float64) (*matrix.Dense, error) {
	if s == nil {
		return nil, fmt.Errorf("GainMatrix: %w", ErrNilScene)
	}
	n, err := ambisonics.ChannelCount(s.Order)
	if err != nil {
		return nil, fmt.Errorf("GainMatrix: %w", err)
	}
	m, err := matrix.NewDense(len(s.Events), n)
	if err != nil {
		return nil, fmt.Errorf("GainMatrix: %w", err)
	}
	for i, e := range s.Events {
		alpha := min(max(e.Spread, 0), 1)
		g, err := ambisonics.Gains(e.Direction(), alpha, tau, s.Order)
		if err != nil {
			return nil, fmt.Errorf("GainMatrix: %s: %w", e.ID, err)
		}
		if err = m.SetRow(i, g); err != nil {
			return nil, fmt.Errorf("GainMatrix: %s: %w", e.ID, err)
		}
	}
	return m, nil
}

// Clone returns a deep copy.
//
// Errors: ErrNilScene; copier errors.
func (s *Scene) Clone() (*Scene, error) {
	if s == nil {
		return nil, fmt.Errorf("Clone: %w", ErrNilScene)
	}
	out := new(Scene)
	if err := copier.CopyWithOption(out, s, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("Clone: %w", err)
	}
	return out, nil
}

// Encode writes s as indented JSON.
func (s *Scene) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return nil
}
