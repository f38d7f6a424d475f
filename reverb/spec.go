// SPDX-License-Identifier: MIT

package reverb

import "github.com/katalvlaran/ambiscape/distribution"

// Field names used in errors and warnings.
const (
	FieldIRLength       = "ir_length"
	FieldRoomDimensions = "room_dimensions"
	FieldT60            = "t60"
	FieldReflectivity   = "reflectivity"
	FieldSourceType     = "source_type"
	FieldMicrophoneType = "microphone_type"
	FieldName           = "name"
	FieldWrap           = "wrap"
)

// Spec is either a SimulatedSpec or a MeasuredSpec.
type Spec interface {
	Kind() Kind
}

// Kind names the reverb variant.
type Kind string

const (
	Simulated Kind = "simulated"
	Measured  Kind = "measured"
)

// SimulatedSpec describes a simulated shoebox room. Exactly one of T60 and
// Reflectivity should be set; nil means unset. Integer and vector fields
// accept const and choose only.
//
// Reflectivity is ordered x0, x1, y0, y1, z0, z1 (wall pairs per axis).
type SimulatedSpec struct {
	IRLength       distribution.Dist[int]
	RoomDimensions distribution.Dist[[3]float64]
	T60            distribution.Dist[float64]
	Reflectivity   distribution.Dist[[6]float64]
	SourceType     distribution.Dist[string]
	MicrophoneType distribution.Dist[string]
}

// Kind returns Simulated.
func (SimulatedSpec) Kind() Kind { return Simulated }

// MeasuredSpec names a recorded impulse-response set. An empty choose for
// Name or Wrap means "any available".
type MeasuredSpec struct {
	Name distribution.Dist[string]
	Wrap distribution.Dist[string]
}

// Kind returns Measured.
func (MeasuredSpec) Kind() Kind { return Measured }
