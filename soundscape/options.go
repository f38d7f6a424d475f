// SPDX-License-Identifier: MIT

package soundscape

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/ambiscape/catalog"
	"github.com/katalvlaran/ambiscape/distribution"
	"github.com/katalvlaran/ambiscape/reverb"
)

// Scene defaults.
const (
	DefaultSampleRate = 48000
	DefaultRefDB      = -30.0
	DefaultFade       = 0.01
)

// Option customizes New.
type Option func(*config)

type config struct {
	sampleRate    int
	refDB         float64
	fadeIn        float64
	fadeOut       float64
	sourceOpts    []catalog.Option
	resolverOpts  []reverb.Option
	reverbCatalog catalog.Reverbs
	reverbDir     string
}

func newConfig(opts ...Option) config {
	cfg := config{
		sampleRate: DefaultSampleRate,
		refDB:      DefaultRefDB,
		fadeIn:     DefaultFade,
		fadeOut:    DefaultFade,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSampleRate sets the rendering sample rate in Hz. Panics when rate <= 0.
func WithSampleRate(rate int) Option {
	if rate <= 0 {
		panic("soundscape: WithSampleRate must be > 0")
	}
	return func(c *config) { c.sampleRate = rate }
}

// WithRefDB sets the background reference level in dB LUFS. Panics on NaN/Inf.
func WithRefDB(db float64) Option {
	if math.IsNaN(db) || math.IsInf(db, 0) {
		panic("soundscape: WithRefDB must be finite")
	}
	return func(c *config) { c.refDB = db }
}

// WithFades sets the fade-in and fade-out lengths in seconds.
// Panics on negative or non-finite values.
func WithFades(in, out float64) Option {
	if !(in >= 0) || !(out >= 0) || math.IsInf(in, 0) || math.IsInf(out, 0) {
		panic("soundscape: WithFades must be finite and >= 0")
	}
	return func(c *config) { c.fadeIn, c.fadeOut = in, out }
}

// WithSourceOptions forwards options to both source catalogs built by New.
func WithSourceOptions(opts ...catalog.Option) Option {
	return func(c *config) { c.sourceOpts = append(c.sourceOpts, opts...) }
}

// WithResolverOptions forwards options to the reverb resolver.
func WithResolverOptions(opts ...reverb.Option) Option {
	return func(c *config) { c.resolverOpts = append(c.resolverOpts, opts...) }
}

// WithReverbs sets the measured-reverb catalog. Panics on nil.
func WithReverbs(r catalog.Reverbs) Option {
	if r == nil {
		panic("soundscape: WithReverbs(nil)")
	}
	return func(c *config) { c.reverbCatalog, c.reverbDir = r, "" }
}

// WithReverbDir opens a catalog.ReverbDir at path during New.
// Panics on an empty path.
func WithReverbDir(path string) Option {
	if path == "" {
		panic("soundscape: WithReverbDir(\"\")")
	}
	return func(c *config) { c.reverbCatalog, c.reverbDir = nil, path }
}

// GenerateOption customizes a single Generate call.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	seed          int64
	sampler       *distribution.Sampler
	allowRepeated bool
	warnings      bool
	logger        *slog.Logger
}

func newGenerateConfig(opts ...GenerateOption) generateConfig {
	cfg := generateConfig{
		seed:          distribution.DefaultSeed,
		allowRepeated: true,
		warnings:      true,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sampler == nil {
		cfg.sampler = distribution.NewSampler(cfg.seed)
	}
	return cfg
}

// WithSeed seeds a fresh Sampler. Seed 0 maps to distribution.DefaultSeed.
func WithSeed(seed int64) GenerateOption {
	return func(c *generateConfig) {
		if seed == 0 {
			seed = distribution.DefaultSeed
		}
		c.seed, c.sampler = seed, nil
	}
}

// WithSampler draws from a caller-owned Sampler; its state advances.
// The scene records seed 0 because the stream origin is unknown.
// Panics on nil.
func WithSampler(s *distribution.Sampler) GenerateOption {
	if s == nil {
		panic("soundscape: WithSampler(nil)")
	}
	return func(c *generateConfig) { c.seed, c.sampler = 0, s }
}

// WithAllowRepeatedSource controls whether a choose may pick a file already
// used by an earlier event of the same role. Default true.
func WithAllowRepeatedSource(allow bool) GenerateOption {
	return func(c *generateConfig) { c.allowRepeated = allow }
}

// WithoutWarnings silences warning logs. Warnings are still recorded in the Scene.
func WithoutWarnings() GenerateOption {
	return func(c *generateConfig) { c.warnings = false }
}

// WithLogger replaces the otelslog logger. Panics on nil.
func WithLogger(l *slog.Logger) GenerateOption {
	if l == nil {
		panic("soundscape: WithLogger(nil)")
	}
	return func(c *generateConfig) { c.logger = l }
}
