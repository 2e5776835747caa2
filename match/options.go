package match

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
)

type options struct {
	log   zerolog.Logger
	meter metric.Meter
}

type Option func(*options)

// WithLogger sets the match logger. Matches are silent by default.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithMeter sets the meter hit and KO metrics are recorded on. The default
// is the global OpenTelemetry meter.
func WithMeter(m metric.Meter) Option {
	return func(o *options) {
		o.meter = m
	}
}
