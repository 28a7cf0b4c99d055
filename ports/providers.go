package ports

import (
	"context"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/trends"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/weather"
)

// WeatherProvider fetches historical daily climate variables for one city
type WeatherProvider interface {
	FetchDaily(ctx context.Context, city weather.City, dates core.DateRange) ([]weather.DailyObservation, error)
}

// TrendsProvider fetches relative search interest for one keyword
type TrendsProvider interface {
	FetchInterest(ctx context.Context, keyword string, dates core.DateRange) ([]trends.InterestPoint, error)
}
