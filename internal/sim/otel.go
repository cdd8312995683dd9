package sim

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/bossfear701/HighLife/internal/sim"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// simMetrics records on the global meter; it is a no-op unless the host
// installs a MeterProvider.
type simMetrics struct {
	ticks    metric.Int64Counter
	bumps    metric.Int64Counter
	missions metric.Int64Counter
	level    metric.Int64Gauge
}

func newSimMetrics(log zerolog.Logger) *simMetrics {
	m := meter()
	fallback := noop.NewMeterProvider().Meter(instrumentationName)
	sm := &simMetrics{}

	var err error
	sm.ticks, err = m.Int64Counter("highlife.ticks",
		metric.WithDescription("Simulation steps executed"))
	if err != nil {
		log.Warn().Err(err).Str("instrument", "highlife.ticks").Msg("Metric unavailable")
		sm.ticks, _ = fallback.Int64Counter("highlife.ticks")
	}
	sm.bumps, err = m.Int64Counter("highlife.bumps",
		metric.WithDescription("Vehicle contacts with the player's car"))
	if err != nil {
		log.Warn().Err(err).Str("instrument", "highlife.bumps").Msg("Metric unavailable")
		sm.bumps, _ = fallback.Int64Counter("highlife.bumps")
	}
	sm.missions, err = m.Int64Counter("highlife.missions.completed",
		metric.WithDescription("Missions completed"))
	if err != nil {
		log.Warn().Err(err).Str("instrument", "highlife.missions.completed").Msg("Metric unavailable")
		sm.missions, _ = fallback.Int64Counter("highlife.missions.completed")
	}
	sm.level, err = m.Int64Gauge("highlife.wanted.level",
		metric.WithDescription("Current wanted level"))
	if err != nil {
		log.Warn().Err(err).Str("instrument", "highlife.wanted.level").Msg("Metric unavailable")
		sm.level, _ = fallback.Int64Gauge("highlife.wanted.level")
	}
	return sm
}

func (m *simMetrics) tick() {
	m.ticks.Add(context.Background(), 1)
}

func (m *simMetrics) bump(kind VehicleKind) {
	m.bumps.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("kind", kind.String())))
}

func (m *simMetrics) missionDone(id int) {
	m.missions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.Int("mission", id)))
}

func (m *simMetrics) wanted(level int) {
	m.level.Record(context.Background(), int64(level))
}
