// SPDX-License-Identifier: MIT

package soundscape

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ambiscape/ambisonics"
	"github.com/katalvlaran/ambiscape/catalog"
	"github.com/katalvlaran/ambiscape/distribution"
	"github.com/katalvlaran/ambiscape/event"
	"github.com/katalvlaran/ambiscape/reverb"
)

// Soundscape is a scene template: global settings plus event and reverb
// specs. It is not safe for concurrent mutation; Generate only reads it.
type Soundscape struct {
	duration float64
	order    int
	fgPath   string
	bgPath   string
	fg       catalog.Sources
	bg       catalog.Sources
	resolver *reverb.Resolver
	cfg      config

	bgSpecs []event.Spec
	fgSpecs []event.Spec
	reverb  reverb.Spec
}

// New builds a Soundscape over two source folders.
//
// Errors: ErrInvalidDuration, ambisonics.ErrInvalidOrder, catalog.ErrCatalog.
func New(duration float64, order int, fgPath, bgPath string, opts ...Option) (*Soundscape, error) {
	cfg := newConfig(opts...)
	fg, err := catalog.NewDir(fgPath, cfg.sourceOpts...)
	if err != nil {
		return nil, fmt.Errorf("New: foreground: %w", err)
	}
	bg, err := catalog.NewDir(bgPath, cfg.sourceOpts...)
	if err != nil {
		return nil, fmt.Errorf("New: background: %w", err)
	}
	sc, err := newSoundscape(duration, order, fg, bg, cfg)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	sc.fgPath, sc.bgPath = fg.Root(), bg.Root()
	return sc, nil
}

// FromSources builds a Soundscape over arbitrary catalogs.
// WithSourceOptions is ignored.
//
// Errors: as New.
func FromSources(duration float64, order int, fg, bg catalog.Sources, opts ...Option) (*Soundscape, error) {
	if fg == nil || bg == nil {
		return nil, fmt.Errorf("FromSources: nil catalog: %w", catalog.ErrCatalog)
	}
	sc, err := newSoundscape(duration, order, fg, bg, newConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("FromSources: %w", err)
	}
	return sc, nil
}

func newSoundscape(duration float64, order int, fg, bg catalog.Sources, cfg config) (*Soundscape, error) {
	if !(duration > 0) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("duration %g: %w", duration, ErrInvalidDuration)
	}
	if _, err := ambisonics.ChannelCount(order); err != nil {
		return nil, err
	}
	ropts := cfg.resolverOpts
	switch {
	case cfg.reverbCatalog != nil:
		ropts = append(ropts, reverb.WithReverbs(cfg.reverbCatalog))
	case cfg.reverbDir != "":
		rd, err := catalog.NewReverbDir(cfg.reverbDir)
		if err != nil {
			return nil, err
		}
		ropts = append(ropts, reverb.WithReverbs(rd))
	}
	return &Soundscape{
		duration: duration,
		order:    order,
		fg:       fg,
		bg:       bg,
		resolver: reverb.NewResolver(ropts...),
		cfg:      cfg,
	}, nil
}

// Duration returns the scene length in seconds.
func (sc *Soundscape) Duration() float64 { return sc.duration }

// Order returns the ambisonics order.
func (sc *Soundscape) Order() int { return sc.order }

// Resolver exposes the reverb resolver, e.g. to list microphone arrays.
func (sc *Soundscape) Resolver() *reverb.Resolver { return sc.resolver }

// BackgroundSpec returns the template AddBackground stores: the file plays
// from scene time 0 for the whole scene, centred, at 0 dB SNR, with spread 1.
func (sc *Soundscape) BackgroundSpec(sourceFile distribution.Dist[string], sourceTime distribution.Dist[float64]) event.Spec {
	return event.Spec{
		Role:       event.Background,
		SourceFile: sourceFile,
		SourceTime: sourceTime,
		EventTime:  distribution.NewConst(0.0),
		Duration:   distribution.NewConst(sc.duration),
		Azimuth:    distribution.NewConst(0.0),
		Elevation:  distribution.NewConst(0.0),
		Spread:     distribution.NewConst(1.0),
		SNR:        distribution.NewConst(0.0),
	}
}

// AddBackground appends a background template.
//
// Errors: anything event.Spec.Validate returns.
func (sc *Soundscape) AddBackground(sourceFile distribution.Dist[string], sourceTime distribution.Dist[float64]) ([]distribution.Warning, error) {
	spec := sc.BackgroundSpec(sourceFile, sourceTime)
	warns, err := spec.Validate()
	if err != nil {
		return nil, fmt.Errorf("AddBackground: %w", err)
	}
	sc.bgSpecs = append(sc.bgSpecs, spec)
	return warns, nil
}

// AddEvent appends a foreground template. The role is forced to Foreground.
//
// Errors: anything event.Spec.Validate returns.
func (sc *Soundscape) AddEvent(spec event.Spec) ([]distribution.Warning, error) {
	spec.Role = event.Foreground
	warns, err := spec.Validate()
	if err != nil {
		return nil, fmt.Errorf("AddEvent: %w", err)
	}
	sc.fgSpecs = append(sc.fgSpecs, spec)
	return warns, nil
}

// ResetBackground drops every background template.
func (sc *Soundscape) ResetBackground() { sc.bgSpecs = nil }

// ResetForeground drops every foreground template.
func (sc *Soundscape) ResetForeground() { sc.fgSpecs = nil }

// SetSimulatedReverb replaces the active reverb with a simulated room.
//
// Errors: anything reverb.Resolver.Validate returns;
// reverb.ErrOrderUnsupported when a candidate microphone cannot carry the
// scene order.
func (sc *Soundscape) SetSimulatedReverb(spec reverb.SimulatedSpec) ([]distribution.Warning, error) {
	return sc.setReverb(spec)
}

// SetMeasuredReverb replaces the active reverb with a recorded set.
//
// Errors: as SetSimulatedReverb, plus catalog.ErrCatalog.
func (sc *Soundscape) SetMeasuredReverb(spec reverb.MeasuredSpec) ([]distribution.Warning, error) {
	return sc.setReverb(spec)
}

func (sc *Soundscape) setReverb(spec reverb.Spec) ([]distribution.Warning, error) {
	warns, err := sc.resolver.Validate(spec)
	if err != nil {
		return nil, fmt.Errorf("Set%sReverb: %w", title(spec.Kind()), err)
	}
	limit, err := sc.resolver.MaxOrder(spec)
	if err != nil {
		return nil, fmt.Errorf("Set%sReverb: %w", title(spec.Kind()), err)
	}
	if sc.order > limit {
		return nil, fmt.Errorf("Set%sReverb: order %d above %d: %w",
			title(spec.Kind()), sc.order, limit, reverb.ErrOrderUnsupported)
	}
	sc.reverb = spec
	return warns, nil
}

func title(k reverb.Kind) string {
	if k == reverb.Simulated {
		return "Simulated"
	}
	return "Measured"
}

// ClearReverb removes the active reverb.
func (sc *Soundscape) ClearReverb() { sc.reverb = nil }

// HasReverb reports whether a reverb is active.
func (sc *Soundscape) HasReverb() bool { return sc.reverb != nil }

// NumBackground returns the number of background templates.
func (sc *Soundscape) NumBackground() int { return len(sc.bgSpecs) }

// NumForeground returns the number of foreground templates.
func (sc *Soundscape) NumForeground() int { return len(sc.fgSpecs) }
