package csvsink

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/weather"
)

var weatherHeader = []string{
	"date", "city", "latitude", "longitude",
	"temperature_2m_max", "temperature_2m_min", "temperature_2m_mean",
	"precipitation_sum", "rain_sum", "snowfall_sum",
	"precipitation_hours", "wind_speed_10m_max",
}

// WeatherCSV persists daily weather observations to a delimited file.
type WeatherCSV struct {
	path string
}

func NewWeatherCSV(path string) *WeatherCSV {
	return &WeatherCSV{path: path}
}

// WriteObservations writes the header and one row per observation
func (s *WeatherCSV) WriteObservations(ctx context.Context, obs []weather.DailyObservation) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(weatherHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, o := range obs {
		row := []string{
			o.Date.String(),
			o.City,
			strconv.FormatFloat(o.Latitude, 'f', 4, 64),
			strconv.FormatFloat(o.Longitude, 'f', 4, 64),
			formatMeasure(o.TempMax),
			formatMeasure(o.TempMin),
			formatMeasure(o.TempMean),
			formatMeasure(o.PrecipitationSum),
			formatMeasure(o.RainSum),
			formatMeasure(o.SnowfallSum),
			formatMeasure(o.PrecipitationHours),
			formatMeasure(o.WindSpeedMax),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", s.path, err)
	}

	log.Printf("[WeatherCSV] wrote %d observations to %s", len(obs), s.path)
	return nil
}

func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
