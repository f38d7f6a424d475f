// SPDX-License-Identifier: MIT

package reverb

import (
	"math"
	"slices"

	"github.com/katalvlaran/ambiscape/spherical"
)

// Sphere types of a microphone array baffle.
const (
	SphereOpen  = "open"
	SphereRigid = "rigid"
)

// MicArray is a spherical microphone array used as the virtual receiver of a
// simulated room.
type MicArray struct {
	Name       string                `json:"name"`
	SphereType string                `json:"sphere_type"`
	Radius     float64               `json:"radius"`
	Capsules   []spherical.Direction `json:"capsules"`
}

// MaxOrder returns floor(sqrt(Q) - 1) for Q capsules: (L+1)² components
// cannot outnumber the capsules.
func (m MicArray) MaxOrder() int {
	return int(math.Floor(math.Sqrt(float64(len(m.Capsules))) - 1))
}

func (m MicArray) clone() MicArray {
	m.Capsules = slices.Clone(m.Capsules)
	return m
}

// Tetrahedral capsule elevation, atan(1/√2).
const tetraElevation = 0.61547970867038726

// DefaultMicArrays returns the built-in arrays: Soundfield and TetraMic
// (first-order tetrahedra) and Eigenmike em32 (32 capsules on a rigid sphere).
// Each call returns fresh slices.
func DefaultMicArrays() []MicArray {
	const pi = math.Pi
	return []MicArray{
		{
			Name: "soundfield", SphereType: SphereOpen, Radius: 0.042,
			Capsules: []spherical.Direction{
				{Azimuth: 0, Elevation: pi / 4},
				{Azimuth: pi / 2, Elevation: -pi / 4},
				{Azimuth: pi, Elevation: pi / 4},
				{Azimuth: 3 * pi / 2, Elevation: -pi / 4},
			},
		},
		{
			Name: "tetramic", SphereType: SphereOpen, Radius: 0.02,
			Capsules: []spherical.Direction{
				{Azimuth: 0, Elevation: tetraElevation},
				{Azimuth: pi / 2, Elevation: -tetraElevation},
				{Azimuth: pi, Elevation: tetraElevation},
				{Azimuth: 3 * pi / 2, Elevation: -tetraElevation},
			},
		},
		{
			Name: "em32", SphereType: SphereRigid, Radius: 0.042,
			Capsules: []spherical.Direction{
				{Azimuth: 0, Elevation: 0.3665191429188092},
				{Azimuth: 0.5585053606381855, Elevation: 0},
				{Azimuth: 0, Elevation: -0.3665191429188092},
				{Azimuth: 5.7246799465414, Elevation: 0},
				{Azimuth: 0, Elevation: 1.0122909661567112},
				{Azimuth: pi / 4, Elevation: tetraElevation},
				{Azimuth: 1.2042771838760873, Elevation: 0},
				{Azimuth: pi / 4, Elevation: -tetraElevation},
				{Azimuth: 0, Elevation: -1.0122909661567112},
				{Azimuth: 7 * pi / 4, Elevation: -tetraElevation},
				{Azimuth: 5.078908123303498, Elevation: 0},
				{Azimuth: 7 * pi / 4, Elevation: tetraElevation},
				{Azimuth: 1.5882496193148399, Elevation: 1.2042771838760873},
				{Azimuth: pi / 2, Elevation: 0.5585053606381855},
				{Azimuth: pi / 2, Elevation: -0.5410520681182421},
				{Azimuth: 1.5533430342749535, Elevation: -1.2042771838760873},
				{Azimuth: pi, Elevation: 0.3665191429188092},
				{Azimuth: 3.7000980142279785, Elevation: 0},
				{Azimuth: pi, Elevation: -0.3665191429188092},
				{Azimuth: 2.5830872929516078, Elevation: 0},
				{Azimuth: pi, Elevation: 1.0122909661567112},
				{Azimuth: 5 * pi / 4, Elevation: tetraElevation},
				{Azimuth: 4.34586983746588, Elevation: 0},
				{Azimuth: 5 * pi / 4, Elevation: -tetraElevation},
				{Azimuth: pi, Elevation: -1.0122909661567112},
				{Azimuth: 3 * pi / 4, Elevation: -tetraElevation},
				{Azimuth: 1.9373154697137058, Elevation: 0},
				{Azimuth: 3 * pi / 4, Elevation: tetraElevation},
				{Azimuth: 4.694935687864747, Elevation: 1.2042771838760873},
				{Azimuth: 4.71238898038469, Elevation: 0.5585053606381855},
				{Azimuth: 4.71238898038469, Elevation: -0.5585053606381855},
				{Azimuth: 4.729842272904633, Elevation: -1.2042771838760873},
			},
		},
	}
}

// Source directivity codes understood by the room generator.
const (
	SourceOmni          = "o"
	SourceCardioid      = "c"
	SourceSubcardioid   = "s"
	SourceHypercardioid = "h"
	SourceBidirectional = "b"
)

// DefaultSourceTypes returns the five directivity codes.
func DefaultSourceTypes() []string {
	return []string{SourceOmni, SourceCardioid, SourceSubcardioid, SourceHypercardioid, SourceBidirectional}
}

// Generator holds the fixed parameters handed to the room generator with
// every simulated reverb.
type Generator struct {
	SoundSpeed      float64 `json:"sound_speed"`
	Harmonics       int     `json:"harmonics"`
	Oversampling    int     `json:"oversampling"`
	SourceRadius    float64 `json:"source_radius"`
	HighPass        int     `json:"high_pass"`
	ReflectionOrder int     `json:"reflection_order"`
	AngleDependence int     `json:"angle_dependence"`
}

// DefaultGenerator: 343 m/s, 30 harmonics, no oversampling, sources 1 m
// from the receiver, high-pass on, unlimited reflection order, reflection
// coefficients independent of the angle.
func DefaultGenerator() Generator {
	return Generator{
		SoundSpeed:      343,
		Harmonics:       30,
		Oversampling:    1,
		SourceRadius:    1,
		HighPass:        1,
		ReflectionOrder: -1,
		AngleDependence: 0,
	}
}
