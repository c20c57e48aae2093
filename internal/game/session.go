package game

import (
	"fmt"
	"time"

	"github.com/appengine-ltd/frostline/internal/body"
	"github.com/appengine-ltd/frostline/internal/calendar"
)

type SessionConfig struct {
	PlayerName     string
	Seed           int64
	SeasonDays     int
	StartSeason    calendar.Season
	Climate        ClimateProfile
	Tuning         body.Tuning
	ShelterQuality int
}

func (c SessionConfig) Validate() error {
	if c.PlayerName == "" {
		return fmt.Errorf("player name must not be empty")
	}
	if c.SeasonDays < 1 {
		return fmt.Errorf("season length must be at least one day, got %d", c.SeasonDays)
	}
	if c.StartSeason < calendar.Spring || c.StartSeason > calendar.Winter {
		return fmt.Errorf("invalid start season: %d", c.StartSeason)
	}
	if c.ShelterQuality < 0 || c.ShelterQuality > 3 {
		return fmt.Errorf("shelter quality must be 0..3, got %d", c.ShelterQuality)
	}
	if err := c.Climate.Validate(); err != nil {
		return err
	}
	return c.Tuning.Validate()
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		PlayerName:  "survivor",
		SeasonDays:  14,
		StartSeason: calendar.Autumn,
		Climate:     TemperateClimate(),
		Tuning:      body.DefaultTuning(),
	}
}

// Session ties the calendar, weather, fire and player together into one
// runnable simulation. The session is advanced turn by turn; each turn the
// fire burns down, the environment is snapshotted and the player ticks.
type Session struct {
	Config   SessionConfig
	Calendar calendar.Calendar
	Weather  *WeatherModel
	Fire     FireState
	Player   *Character
}

func NewSession(config SessionConfig) (*Session, error) {
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cal, err := calendar.New(config.SeasonDays)
	if err != nil {
		return nil, err
	}
	cal = cal.Advance(int(config.StartSeason) * cal.SeasonTurns())

	weather, err := NewWeatherModel(config.Seed, config.Climate)
	if err != nil {
		return nil, err
	}

	player, err := NewCharacter(config.PlayerName, config.Tuning)
	if err != nil {
		return nil, err
	}

	return &Session{
		Config:   config,
		Calendar: cal,
		Weather:  weather,
		Player:   player,
	}, nil
}

// AdvanceTurns runs the simulation forward by n turns.
func (s *Session) AdvanceTurns(n int) {
	for i := 0; i < n; i++ {
		s.Fire.BurnTick()
		s.Player.Tick(s.CurrentEnvironment(), s.Fire)
		s.Calendar = s.Calendar.Advance(1)
	}
}

// CurrentEnvironment snapshots the external conditions for this turn.
func (s *Session) CurrentEnvironment() Environment {
	day := s.Calendar.Turn() / calendar.TurnsPerDay
	return Environment{
		Weather:        s.Weather.ForDay(day, s.Calendar.Season()),
		Phase:          s.Calendar.PartOfDay(),
		ShelterQuality: s.Config.ShelterQuality,
	}
}
