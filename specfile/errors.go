// SPDX-License-Identifier: MIT

package specfile

import "errors"

var (
	// ErrSyntax is returned for a document that does not match the layout.
	ErrSyntax = errors.New("specfile: syntax error")

	// ErrReverbVariant is returned when a reverb block sets both or neither
	// of simulated and measured.
	ErrReverbVariant = errors.New("specfile: reverb must set exactly one of simulated, measured")
)
