// SPDX-License-Identifier: MIT

package reverb

import (
	"fmt"

	"github.com/katalvlaran/ambiscape/distribution"
	"github.com/katalvlaran/ambiscape/spherical"
)

// Instantiated is a resolved reverb. Exactly one of Simulated and Measured
// is set, matching Kind.
type Instantiated struct {
	Kind      Kind             `json:"kind"`
	Simulated *SimulatedReverb `json:"simulated,omitempty"`
	Measured  *MeasuredReverb  `json:"measured,omitempty"`
}

// MaxOrder returns the highest ambisonics order the reverb can carry.
func (r Instantiated) MaxOrder() int {
	switch {
	case r.Simulated != nil:
		return r.Simulated.MaxOrder()
	case r.Measured != nil:
		return r.Measured.Order
	}
	return -1
}

// CheckOrder fails when order exceeds MaxOrder.
//
// Errors: ErrOrderUnsupported.
func (r Instantiated) CheckOrder(order int) error {
	if limit := r.MaxOrder(); order > limit {
		return fmt.Errorf("CheckOrder(%d): %s reverb supports up to %d: %w", order, r.Kind, limit, ErrOrderUnsupported)
	}
	return nil
}

// SimulatedReverb holds the concrete room parameters. T60 and Reflectivity
// are mutually exclusive; the unused one is nil.
type SimulatedReverb struct {
	IRLength         int         `json:"ir_length"`
	RoomDimensions   [3]float64  `json:"room_dimensions"`
	T60              *float64    `json:"t60,omitempty"`
	Reflectivity     *[6]float64 `json:"reflectivity,omitempty"`
	SourceType       string      `json:"source_type"`
	Microphone       MicArray    `json:"microphone"`
	ReceiverPosition [3]float64  `json:"receiver_position"`
	Generator        Generator   `json:"generator"`
}

// MaxOrder is the microphone's maximum order.
func (r SimulatedReverb) MaxOrder() int { return r.Microphone.MaxOrder() }

// SourcePosition places a source in direction dir at the generator's
// source radius from the receiver.
func (r SimulatedReverb) SourcePosition(dir spherical.Direction) [3]float64 {
	p := spherical.ToCartesian(dir, r.Generator.SourceRadius)
	rp := r.ReceiverPosition
	return [3]float64{rp[0] + p.X, rp[1] + p.Y, rp[2] + p.Z}
}

// receiverPosition is the room centre.
func receiverPosition(dims [3]float64) [3]float64 {
	return [3]float64{dims[0] / 2, dims[1] / 2, dims[2] / 2}
}

// MeasuredReverb holds a recorded set with its loudspeaker directions.
type MeasuredReverb struct {
	Name       string                `json:"name"`
	Wrap       Wrap                  `json:"wrap"`
	Order      int                   `json:"ambisonics_order"`
	Directions []spherical.Direction `json:"directions"`
}

// Assign returns the index of the loudspeaker an event in direction dir is
// rendered through. WrapRandom draws one from s; the other policies are
// deterministic and ignore s.
//
// Errors: ErrUnknownWrap; spherical.ErrNoCandidates for an empty set.
func (m MeasuredReverb) Assign(dir spherical.Direction, s *distribution.Sampler) (int, error) {
	if len(m.Directions) == 0 {
		return 0, fmt.Errorf("Assign(%s): %w", m.Name, spherical.ErrNoCandidates)
	}
	c, nearest, err := m.Wrap.Criterion()
	if err != nil {
		return 0, fmt.Errorf("Assign(%s): %w", m.Name, err)
	}
	if !nearest {
		return s.Intn(len(m.Directions)), nil
	}
	idx, err := spherical.Closest(dir, m.Directions, c)
	if err != nil {
		return 0, fmt.Errorf("Assign(%s): %w", m.Name, err)
	}
	return idx, nil
}
