package match

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/jcorbe333/Meowlee/match"

type matchMetrics struct {
	hits      metric.Int64Counter
	kos       metric.Int64Counter
	knockback metric.Float64Histogram
}

// defaultMeter uses the global provider, a no-op until one is installed.
func defaultMeter() metric.Meter {
	return otel.Meter(instrumentationName)
}

func newMatchMetrics(m metric.Meter) (*matchMetrics, error) {
	var (
		mm  matchMetrics
		err error
	)

	mm.hits, err = m.Int64Counter(
		"meowlee.hits",
		metric.WithDescription("Attacks that landed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating hits counter: %w", err)
	}

	mm.kos, err = m.Int64Counter(
		"meowlee.kos",
		metric.WithDescription("Stocks lost to the blast zone"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kos counter: %w", err)
	}

	mm.knockback, err = m.Float64Histogram(
		"meowlee.knockback",
		metric.WithDescription("Launch speed of landed hits"),
		metric.WithUnit("px/s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating knockback histogram: %w", err)
	}

	return &mm, nil
}

func (mm *matchMetrics) recordHit(ctx context.Context, e HitEvent) {
	attrs := metric.WithAttributes(attribute.String("attacker", e.AttackerID))
	mm.hits.Add(ctx, 1, attrs)
	mm.knockback.Record(ctx, e.Knockback, attrs)
}

func (mm *matchMetrics) recordKO(ctx context.Context, e KOEvent) {
	mm.kos.Add(ctx, 1, metric.WithAttributes(
		attribute.String("victim", e.VictimID),
		attribute.Bool("eliminated", e.Eliminated),
	))
}
