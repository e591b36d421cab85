package shapeviz

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gekko3d/shapeviz"

type Metrics struct {
	frames    metric.Int64Counter
	rebuilds  metric.Int64Counter
	colorLegs metric.Int64Counter
}

func NewMetrics(m metric.Meter) (*Metrics, error) {
	var (
		ms  Metrics
		err error
	)
	ms.frames, err = m.Int64Counter(
		"shapeviz.frames",
		metric.WithDescription("Frames handed to the render backend"),
	)
	if err != nil {
		return nil, err
	}
	ms.rebuilds, err = m.Int64Counter(
		"shapeviz.shape.rebuilds",
		metric.WithDescription("Shapes constructed after a variant or parameter change"),
	)
	if err != nil {
		return nil, err
	}
	ms.colorLegs, err = m.Int64Counter(
		"shapeviz.color.legs",
		metric.WithDescription("Completed color ping-pong legs"),
	)
	if err != nil {
		return nil, err
	}
	return &ms, nil
}

func (m *Metrics) frame(ctx context.Context) {
	if m == nil {
		return
	}
	m.frames.Add(ctx, 1)
}

func (m *Metrics) rebuild(ctx context.Context, variant string) {
	if m == nil {
		return
	}
	m.rebuilds.Add(ctx, 1, metric.WithAttributes(attribute.String("variant", variant)))
}

func (m *Metrics) legs(ctx context.Context, n uint64) {
	if m == nil || n == 0 {
		return
	}
	m.colorLegs.Add(ctx, int64(n))
}

// MetricsModule registers counters on Meter, or on the global otel meter provider.
type MetricsModule struct {
	Meter metric.Meter
}

func (mod MetricsModule) Install(app *App, cmd *Commands) {
	meter := mod.Meter
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}
	ms, err := NewMetrics(meter)
	if err != nil {
		app.Logger().Warnf("metrics disabled: %v", err)
		return
	}
	app.metrics = ms
}
