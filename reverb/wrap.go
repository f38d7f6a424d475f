// SPDX-License-Identifier: MIT

package reverb

import (
	"fmt"

	"github.com/katalvlaran/ambiscape/spherical"
)

// Wrap is the policy mapping an event direction onto a measured loudspeaker.
type Wrap string

const (
	// WrapRandom assigns a uniformly drawn loudspeaker.
	WrapRandom Wrap = "random"
	// WrapAzimuth picks the loudspeaker nearest in azimuth.
	WrapAzimuth Wrap = "wrap_azimuth"
	// WrapElevation picks the loudspeaker nearest in elevation.
	WrapElevation Wrap = "wrap_elevation"
	// WrapSurface picks the loudspeaker nearest on the (az, el) plane.
	WrapSurface Wrap = "wrap_surface"
)

// WrapPolicies lists the supported policies.
func WrapPolicies() []string {
	return []string{string(WrapRandom), string(WrapAzimuth), string(WrapElevation), string(WrapSurface)}
}

// Criterion returns the nearest-neighbour criterion of w. WrapRandom has none
// and reports false.
//
// Errors: ErrUnknownWrap.
func (w Wrap) Criterion() (spherical.Criterion, bool, error) {
	switch w {
	case WrapRandom:
		return 0, false, nil
	case WrapAzimuth:
		return spherical.ByAzimuth, true, nil
	case WrapElevation:
		return spherical.ByElevation, true, nil
	case WrapSurface:
		return spherical.BySurface, true, nil
	}
	return 0, false, fmt.Errorf("Criterion(%q): %w", string(w), ErrUnknownWrap)
}
