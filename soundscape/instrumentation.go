// SPDX-License-Identifier: MIT

package soundscape

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/katalvlaran/ambiscape/soundscape"

var (
	tracer = otel.Tracer(scopeName)
	meter  = otel.Meter(scopeName)
	logger = otelslog.NewLogger(scopeName)
)

var (
	scenesCounter, _ = meter.Int64Counter("ambiscape.scenes",
		metric.WithDescription("Scenes generated"), metric.WithUnit("{scene}"))
	eventsCounter, _ = meter.Int64Counter("ambiscape.events",
		metric.WithDescription("Events instantiated"), metric.WithUnit("{event}"))
	warningsCounter, _ = meter.Int64Counter("ambiscape.warnings",
		metric.WithDescription("Warnings raised while generating"), metric.WithUnit("{warning}"))
)
