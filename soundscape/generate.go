// SPDX-License-Identifier: MIT

package soundscape

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/ambiscape/catalog"
	"github.com/katalvlaran/ambiscape/event"
)

// Generate resolves every template into a Scene. Nothing is returned on
// error. ctx is checked between events.
//
// Errors: anything event.Instantiator.Instantiate or reverb.Resolver.Instantiate
// returns; ctx.Err().
func (sc *Soundscape) Generate(ctx context.Context, opts ...GenerateOption) (*Scene, error) {
	cfg := newGenerateConfig(opts...)

	ctx, span := tracer.Start(ctx, "generate soundscape", trace.WithAttributes(
		attribute.Float64("soundscape.duration", sc.duration),
		attribute.Int("soundscape.order", sc.order),
		attribute.Int("soundscape.background_specs", len(sc.bgSpecs)),
		attribute.Int("soundscape.foreground_specs", len(sc.fgSpecs)),
		attribute.Bool("soundscape.allow_repeated_source", cfg.allowRepeated),
	))
	defer span.End()

	scene, err := sc.generate(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	attrs := metric.WithAttributes(attribute.Int("soundscape.order", sc.order))
	scenesCounter.Add(ctx, 1, attrs)
	eventsCounter.Add(ctx, int64(len(scene.Events)), attrs)
	warningsCounter.Add(ctx, int64(len(scene.Warnings)), attrs)
	span.SetAttributes(
		attribute.String("scene.id", scene.ID.String()),
		attribute.Int("scene.events", len(scene.Events)),
		attribute.Int("scene.warnings", len(scene.Warnings)),
	)

	if cfg.warnings {
		for _, w := range scene.Warnings {
			cfg.logger.WarnContext(ctx, w.Message,
				slog.String("scene_id", scene.ID.String()),
				slog.String("field", w.Field))
		}
	}
	return scene, nil
}

func (sc *Soundscape) generate(ctx context.Context, cfg generateConfig) (*Scene, error) {
	s := cfg.sampler
	scene := &Scene{
		Seed:                cfg.seed,
		Duration:            sc.duration,
		Order:               sc.order,
		RefDB:               sc.cfg.refDB,
		SampleRate:          sc.cfg.sampleRate,
		FadeIn:              sc.cfg.fadeIn,
		FadeOut:             sc.cfg.fadeOut,
		AllowRepeatedSource: cfg.allowRepeated,
		ForegroundPath:      sc.fgPath,
		BackgroundPath:      sc.bgPath,
		Events:              make([]event.Instantiated, 0, len(sc.bgSpecs)+len(sc.fgSpecs)),
	}

	for _, role := range []struct {
		sources catalog.Sources
		specs   []event.Spec
	}{
		{sc.bg, sc.bgSpecs},
		{sc.fg, sc.fgSpecs},
	} {
		in, err := event.NewInstantiator(role.sources, sc.duration)
		if err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		ledger := event.NewLedger()
		for i, spec := range role.specs {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("Generate: %w", err)
			}
			e, warns, err := in.Instantiate(spec, i, ledger, cfg.allowRepeated, s)
			if err != nil {
				return nil, fmt.Errorf("Generate: %w", err)
			}
			scene.Events = append(scene.Events, e)
			scene.Warnings = append(scene.Warnings, warns...)
		}
	}

	if sc.reverb != nil {
		r, warns, err := sc.resolver.Instantiate(sc.reverb, s)
		if err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		if err := r.CheckOrder(sc.order); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		scene.Reverb = &r
		scene.Warnings = append(scene.Warnings, warns...)
	}

	id, err := uuid.NewRandomFromReader(s)
	if err != nil {
		return nil, fmt.Errorf("Generate: scene id: %w", err)
	}
	scene.ID = id
	return scene, nil
}
