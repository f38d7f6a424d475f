// SPDX-License-Identifier: MIT

package soundscape

import "errors"

var (
	// ErrInvalidDuration is returned for a non-positive or non-finite scene duration.
	ErrInvalidDuration = errors.New("soundscape: duration must be finite and > 0")

	// ErrInvalidHop is returned by PolyphonyGini for a hop outside (0, duration].
	ErrInvalidHop = errors.New("soundscape: hop must be in (0, duration]")

	// ErrNilScene is returned when a method is called on a nil *Scene.
	ErrNilScene = errors.New("soundscape: nil scene")
)
