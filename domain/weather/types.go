package weather

import (
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
)

// City identifies a fetch location
type City struct {
	Name      string  `json:"name" yaml:"name"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// DefaultCities is the standard winter-pressures city list: major UK cities
// spread across regions, Norwich covering the East.
func DefaultCities() []City {
	return []City{
		{Name: "London", Latitude: 51.5074, Longitude: -0.1278},
		{Name: "Manchester", Latitude: 53.4808, Longitude: -2.2426},
		{Name: "Birmingham", Latitude: 52.4862, Longitude: -1.8904},
		{Name: "Leeds", Latitude: 53.8008, Longitude: -1.5491},
		{Name: "Edinburgh", Latitude: 55.9533, Longitude: -3.1883},
		{Name: "Liverpool", Latitude: 53.4084, Longitude: -2.9916},
		{Name: "Bristol", Latitude: 51.4545, Longitude: -2.5879},
		{Name: "Norwich", Latitude: 52.6369, Longitude: 1.1398},
	}
}

// DailyObservation is one city-day of historical climate variables
type DailyObservation struct {
	Date               core.Day `json:"date"`
	City               string   `json:"city"`
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
	TempMax            float64  `json:"temp_max"`
	TempMin            float64  `json:"temp_min"`
	TempMean           float64  `json:"temp_mean"`
	PrecipitationSum   float64  `json:"precipitation_sum"`
	RainSum            float64  `json:"rain_sum"`
	SnowfallSum        float64  `json:"snowfall_sum"`
	PrecipitationHours float64  `json:"precipitation_hours"`
	WindSpeedMax       float64  `json:"wind_speed_max"`
}
