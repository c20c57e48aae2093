package game

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/appengine-ltd/frostline/internal/calendar"
)

type WeatherType string

const (
	WeatherClear    WeatherType = "clear"
	WeatherSunny    WeatherType = "sunny"
	WeatherCloudy   WeatherType = "cloudy"
	WeatherWindy    WeatherType = "windy"
	WeatherRain     WeatherType = "rain"
	WeatherStorm    WeatherType = "storm"
	WeatherSnow     WeatherType = "snow"
	WeatherBlizzard WeatherType = "blizzard"
)

func WeatherLabel(w WeatherType) string {
	switch w {
	case WeatherClear:
		return "Clear"
	case WeatherSunny:
		return "Sunny"
	case WeatherCloudy:
		return "Cloudy"
	case WeatherWindy:
		return "Windy"
	case WeatherRain:
		return "Rain"
	case WeatherStorm:
		return "Storm"
	case WeatherSnow:
		return "Snow"
	case WeatherBlizzard:
		return "Blizzard"
	default:
		return "Unknown"
	}
}

type WeatherState struct {
	Day          int
	Type         WeatherType
	TemperatureC int
	WindKph      int
}

// ClimateProfile pins a scenario's temperature band so weather, season and
// thermal targets stay coherent.
type ClimateProfile struct {
	Name          string
	BaseTempC     int
	TempVarianceC int
	SeasonBiasC   map[calendar.Season]int
}

func (c ClimateProfile) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("climate profile needs a name")
	}
	if c.TempVarianceC < 0 {
		return fmt.Errorf("temperature variance must not be negative, got %d", c.TempVarianceC)
	}
	return nil
}

func TemperateClimate() ClimateProfile {
	return ClimateProfile{
		Name:          "temperate",
		BaseTempC:     12,
		TempVarianceC: 6,
		SeasonBiasC: map[calendar.Season]int{
			calendar.Spring: 0,
			calendar.Summer: 10,
			calendar.Autumn: -2,
			calendar.Winter: -14,
		},
	}
}

func BorealClimate() ClimateProfile {
	return ClimateProfile{
		Name:          "boreal",
		BaseTempC:     2,
		TempVarianceC: 8,
		SeasonBiasC: map[calendar.Season]int{
			calendar.Spring: -2,
			calendar.Summer: 12,
			calendar.Autumn: -4,
			calendar.Winter: -24,
		},
	}
}

// WeatherModel resolves daily weather deterministically from a seed. The
// latest day's result is cached since the simulation asks every turn.
type WeatherModel struct {
	seed     int64
	climate  ClimateProfile
	noise    opensimplex.Noise
	cached   WeatherState
	cachedOK bool
}

func NewWeatherModel(seed int64, climate ClimateProfile) (*WeatherModel, error) {
	if err := climate.Validate(); err != nil {
		return nil, fmt.Errorf("weather model: %w", err)
	}
	return &WeatherModel{
		seed:    seed,
		climate: climate,
		noise:   opensimplex.NewNormalized(seed),
	}, nil
}

// ForDay resolves the weather for an absolute day number.
func (m *WeatherModel) ForDay(day int, season calendar.Season) WeatherState {
	if m.cachedOK && m.cached.Day == day {
		return m.cached
	}

	tempC := m.airTemperatureForDay(day, season)
	weather := m.weatherTypeForDay(day, season, tempC)
	tempC += weatherTempAdjustmentC(weather)

	m.cached = WeatherState{
		Day:          day,
		Type:         weather,
		TemperatureC: tempC,
		WindKph:      m.windForDay(day, weather),
	}
	m.cachedOK = true
	return m.cached
}

// airTemperatureForDay is the base temperature before weather adjustment:
// climate baseline, seasonal bias, and a smooth multi-day swing.
func (m *WeatherModel) airTemperatureForDay(day int, season calendar.Season) int {
	base := m.climate.BaseTempC + m.climate.SeasonBiasC[season]
	n := m.noise.Eval2(float64(day)*0.13, 0.5)
	swing := int(math.Round((n*2 - 1) * float64(m.climate.TempVarianceC)))
	return base + swing
}

func (m *WeatherModel) weatherTypeForDay(day int, season calendar.Season, tempC int) WeatherType {
	rng := seededRNG(m.seed, fmt.Sprintf("weather:%d", day))
	roll := rng.IntN(100)

	sunny, fair, cloudy, windy := 20, 25, 20, 10
	if season == calendar.Winter {
		sunny, fair, cloudy = 10, 20, 25
	}

	switch {
	case roll < sunny:
		return WeatherSunny
	case roll < sunny+fair:
		return WeatherClear
	case roll < sunny+fair+cloudy:
		return WeatherCloudy
	case roll < sunny+fair+cloudy+windy:
		return WeatherWindy
	}

	heavy := rng.IntN(4) == 0
	if tempC <= 0 {
		if heavy {
			return WeatherBlizzard
		}
		return WeatherSnow
	}
	if heavy {
		return WeatherStorm
	}
	return WeatherRain
}

func weatherTempAdjustmentC(w WeatherType) int {
	switch w {
	case WeatherSunny:
		return 2
	case WeatherWindy:
		return -1
	case WeatherRain:
		return -2
	case WeatherStorm, WeatherSnow:
		return -3
	case WeatherBlizzard:
		return -6
	default:
		return 0
	}
}

func (m *WeatherModel) windForDay(day int, w WeatherType) int {
	rng := seededRNG(m.seed, fmt.Sprintf("wind:%d", day))
	switch w {
	case WeatherWindy:
		return 25 + rng.IntN(16)
	case WeatherStorm:
		return 30 + rng.IntN(21)
	case WeatherBlizzard:
		return 40 + rng.IntN(21)
	case WeatherRain, WeatherSnow:
		return 10 + rng.IntN(11)
	default:
		return rng.IntN(11)
	}
}
