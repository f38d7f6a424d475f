// SPDX-License-Identifier: MIT

package catalog

import "errors"

var (
	// ErrCatalog is returned for missing or malformed folders and files.
	ErrCatalog = errors.New("catalog: missing or malformed catalog entry")

	// ErrNotWAV is returned by the WAV probe for non-RIFF/WAVE input.
	ErrNotWAV = errors.New("catalog: not a RIFF/WAVE file")
)
