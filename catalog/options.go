// SPDX-License-Identifier: MIT
// Package: catalog
//
// Functional options. Constructors validate and panic on meaningless input;
// catalog operations themselves never panic.

package catalog

import "strings"

// Option customizes a catalog.
type Option func(*config)

// DurationProbe reports the duration in seconds of the audio file at path.
type DurationProbe func(path string) (float64, error)

type config struct {
	exts  []string
	probe DurationProbe
}

// DefaultExtensions is the audio suffix set used when WithExtensions is absent.
var DefaultExtensions = []string{".wav"}

func newConfig(opts ...Option) config {
	cfg := config{
		exts:  append([]string(nil), DefaultExtensions...),
		probe: WAVDuration,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithExtensions replaces the accepted file suffixes (case-insensitive).
// Panics when no extension is given.
func WithExtensions(exts ...string) Option {
	if len(exts) == 0 {
		panic("catalog: WithExtensions()")
	}
	lower := make([]string, len(exts))
	for i, e := range exts {
		lower[i] = strings.ToLower(e)
	}
	return func(c *config) { c.exts = lower }
}

// WithDurationProbe overrides how source durations are measured.
// Panics on nil.
func WithDurationProbe(p DurationProbe) Option {
	if p == nil {
		panic("catalog: WithDurationProbe(nil)")
	}
	return func(c *config) { c.probe = p }
}
