package ports

import (
	"context"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/sitrep"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/trends"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/weather"
)

// RecordSink persists long-format SitRep records
type RecordSink interface {
	WriteRecords(ctx context.Context, records []sitrep.Record) error
}

// WeatherSink persists daily weather observations
type WeatherSink interface {
	WriteObservations(ctx context.Context, obs []weather.DailyObservation) error
}

// TrendsSink persists search-interest points
type TrendsSink interface {
	WritePoints(ctx context.Context, points []trends.InterestPoint) error
}
