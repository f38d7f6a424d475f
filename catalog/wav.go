// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// WAVDuration reads the headers of a WAV file and returns its duration in
// seconds. Sample data is not decoded. Files without samples are rejected.
//
// Errors: ErrNotWAV for malformed headers, or the underlying I/O error.
func WAVDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, fmt.Errorf("WAVDuration(%q): %w", path, ErrNotWAV)
	}
	d, err := dec.Duration()
	if err != nil {
		return 0, fmt.Errorf("WAVDuration(%q): %v: %w", path, err, ErrNotWAV)
	}
	return d.Seconds(), nil
}
