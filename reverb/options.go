// SPDX-License-Identifier: MIT

package reverb

import (
	"slices"

	"github.com/katalvlaran/ambiscape/catalog"
)

// Option customizes a Resolver.
type Option func(*config)

type config struct {
	mics        []MicArray
	sourceTypes []string
	generator   Generator
	reverbs     catalog.Reverbs
}

// Defaults: DefaultMicArrays, DefaultSourceTypes, DefaultGenerator and no
// measured-reverb catalog.
func newConfig(opts ...Option) config {
	cfg := config{
		mics:        DefaultMicArrays(),
		sourceTypes: DefaultSourceTypes(),
		generator:   DefaultGenerator(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMicArrays replaces the virtual microphone catalog.
// Panics when empty, on an unnamed or capsule-less array, or on duplicate names.
func WithMicArrays(arrays ...MicArray) Option {
	if len(arrays) == 0 {
		panic("reverb: WithMicArrays()")
	}
	own := make([]MicArray, len(arrays))
	seen := make(map[string]bool, len(arrays))
	for i, m := range arrays {
		if m.Name == "" || len(m.Capsules) == 0 || seen[m.Name] {
			panic("reverb: WithMicArrays: invalid or duplicate array " + m.Name)
		}
		seen[m.Name] = true
		own[i] = m.clone()
	}
	return func(c *config) { c.mics = own }
}

// WithSourceTypes replaces the accepted directivity codes. Panics when empty.
func WithSourceTypes(codes ...string) Option {
	if len(codes) == 0 {
		panic("reverb: WithSourceTypes()")
	}
	own := slices.Clone(codes)
	return func(c *config) { c.sourceTypes = own }
}

// WithGenerator overrides the fixed room-generator parameters.
// Panics on a non-positive sound speed or source radius.
func WithGenerator(g Generator) Option {
	if !(g.SoundSpeed > 0) || !(g.SourceRadius > 0) {
		panic("reverb: WithGenerator: sound speed and source radius must be > 0")
	}
	return func(c *config) { c.generator = g }
}

// WithReverbs sets the measured-reverb catalog. Panics on nil.
func WithReverbs(r catalog.Reverbs) Option {
	if r == nil {
		panic("reverb: WithReverbs(nil)")
	}
	return func(c *config) { c.reverbs = r }
}
