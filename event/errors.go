// SPDX-License-Identifier: MIT

package event

import "errors"

var (
	// ErrSourceExhausted is returned when no source file candidate remains.
	ErrSourceExhausted = errors.New("event: no source file candidate remains")

	// ErrMalformedID is returned by ParseID for identifiers outside the fg<N>/bg<N> form.
	ErrMalformedID = errors.New("event: malformed event id")

	// ErrUnknownRole is returned for a Role outside Foreground/Background.
	ErrUnknownRole = errors.New("event: unknown role")

	// ErrInvalidSceneDuration is returned for a non-positive scene duration.
	ErrInvalidSceneDuration = errors.New("event: scene duration must be > 0")
)
