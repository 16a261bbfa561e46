package labeler

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("github.com/royalcat/rlabel/labeler")

type metrics struct {
	placed    metric.Int64Counter
	rejected  metric.Int64Counter
	displaced metric.Int64Counter
}

func newMetrics() (*metrics, error) {
	placed, err := meter.Int64Counter("labels_placed_total")
	if err != nil {
		return nil, err
	}
	rejected, err := meter.Int64Counter("labels_rejected_total")
	if err != nil {
		return nil, err
	}
	displaced, err := meter.Int64Counter("labels_displaced_total")
	if err != nil {
		return nil, err
	}
	return &metrics{
		placed:    placed,
		rejected:  rejected,
		displaced: displaced,
	}, nil
}
