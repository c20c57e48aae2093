package calendar

import (
	"fmt"
	"math"
)

// One turn is six seconds of game time.
const (
	TurnSeconds    = 6
	TurnsPerMinute = 60 / TurnSeconds
	TurnsPerHour   = 60 * TurnsPerMinute
	TurnsPerDay    = 24 * TurnsPerHour
)

// Minutes converts minutes of game time to turns.
func Minutes(n int) int { return n * TurnsPerMinute }

// Hours converts hours of game time to turns.
func Hours(n int) int { return n * TurnsPerHour }

// Days converts days of game time to turns.
func Days(n int) int { return n * TurnsPerDay }

type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter

	seasonCount
)

func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	default:
		return "unknown"
	}
}

type DayPhase int

const (
	Night DayPhase = iota
	Dawn
	Day
	Dusk
)

func (p DayPhase) String() string {
	switch p {
	case Night:
		return "night"
	case Dawn:
		return "dawn"
	case Day:
		return "day"
	case Dusk:
		return "dusk"
	default:
		return "unknown"
	}
}

type MoonPhase int

const (
	MoonNew MoonPhase = iota
	MoonWaxingCrescent
	MoonHalfWaxing
	MoonWaxingGibbous
	MoonFull
	MoonWaningGibbous
	MoonHalfWaning
	MoonWaningCrescent

	moonPhaseCount
)

func (m MoonPhase) String() string {
	switch m {
	case MoonNew:
		return "new moon"
	case MoonWaxingCrescent:
		return "waxing crescent"
	case MoonHalfWaxing:
		return "first quarter"
	case MoonWaxingGibbous:
		return "waxing gibbous"
	case MoonFull:
		return "full moon"
	case MoonWaningGibbous:
		return "waning gibbous"
	case MoonHalfWaning:
		return "last quarter"
	case MoonWaningCrescent:
		return "waning crescent"
	default:
		return "unknown"
	}
}

// QuartersLit is how many quarters of the moon face are illuminated, 0 to 4.
func (m MoonPhase) QuartersLit() int {
	switch m {
	case MoonNew:
		return 0
	case MoonWaxingCrescent, MoonWaningCrescent:
		return 1
	case MoonHalfWaxing, MoonHalfWaning:
		return 2
	case MoonWaxingGibbous, MoonWaningGibbous:
		return 3
	case MoonFull:
		return 4
	default:
		return 0
	}
}

// Sunrise and sunset anchors, in hours past midnight. Within a season the
// actual time interpolates linearly between the bracketing anchors.
const (
	sunriseWinter  = 8
	sunriseEquinox = 7
	sunriseSummer  = 5
	sunsetWinter   = 17
	sunsetEquinox  = 19
	sunsetSummer   = 20

	twilightTurns = TurnsPerHour
)

// baseDaylightLevel is the ambient light at an equinox noon; solstices vary
// it by a quarter each way.
const baseDaylightLevel = 100.0

const moonlightPerQuarter = 2.5

// Calendar is a point in game time. The zero turn is midnight on the first
// day of spring. Season length is injected by the options system so tests
// and scenarios can run shorter years.
type Calendar struct {
	turn       int
	seasonDays int
}

func New(seasonDays int) (Calendar, error) {
	if seasonDays < 1 {
		return Calendar{}, fmt.Errorf("season length must be at least one day, got %d", seasonDays)
	}
	return Calendar{seasonDays: seasonDays}, nil
}

func (c Calendar) Turn() int { return c.turn }

// Advance returns the calendar moved forward by the given number of turns.
func (c Calendar) Advance(turns int) Calendar {
	c.turn += turns
	return c
}

func (c Calendar) SeasonDays() int  { return c.seasonDays }
func (c Calendar) SeasonTurns() int { return Days(c.seasonDays) }
func (c Calendar) YearTurns() int   { return int(seasonCount) * c.SeasonTurns() }

// TurnOfDay is the number of turns past midnight.
func (c Calendar) TurnOfDay() int { return c.turn % TurnsPerDay }

func (c Calendar) Second() int { return (c.turn * TurnSeconds) % 60 }
func (c Calendar) Minute() int { return (c.turn / TurnsPerMinute) % 60 }
func (c Calendar) Hour() int   { return (c.turn / TurnsPerHour) % 24 }

// Day is the day within the current season, zero-based.
func (c Calendar) Day() int { return (c.turn / TurnsPerDay) % c.seasonDays }

func (c Calendar) Season() Season {
	return Season((c.turn / c.SeasonTurns()) % int(seasonCount))
}

func (c Calendar) Year() int { return c.turn / c.YearTurns() }

// SecondsPastMidnight of the current day.
func (c Calendar) SecondsPastMidnight() int {
	return c.TurnOfDay() * TurnSeconds
}

// interpolateWithinSeason blends a value from the start of the current
// season to its end by day progress.
func (c Calendar) interpolateWithinSeason(start, end float64) float64 {
	progress := float64(c.Day()) / float64(c.seasonDays)
	return start + (end-start)*progress
}

// Sunrise is the turn of day the sun comes up.
func (c Calendar) Sunrise() int {
	var hour float64
	switch c.Season() {
	case Spring:
		hour = c.interpolateWithinSeason(sunriseEquinox, sunriseSummer)
	case Summer:
		hour = c.interpolateWithinSeason(sunriseSummer, sunriseEquinox)
	case Autumn:
		hour = c.interpolateWithinSeason(sunriseEquinox, sunriseWinter)
	case Winter:
		hour = c.interpolateWithinSeason(sunriseWinter, sunriseEquinox)
	}
	return int(hour * TurnsPerHour)
}

// Sunset is the turn of day the sun goes down.
func (c Calendar) Sunset() int {
	var hour float64
	switch c.Season() {
	case Spring:
		hour = c.interpolateWithinSeason(sunsetEquinox, sunsetSummer)
	case Summer:
		hour = c.interpolateWithinSeason(sunsetSummer, sunsetEquinox)
	case Autumn:
		hour = c.interpolateWithinSeason(sunsetEquinox, sunsetWinter)
	case Winter:
		hour = c.interpolateWithinSeason(sunsetWinter, sunsetEquinox)
	}
	return int(hour * TurnsPerHour)
}

func (c Calendar) PartOfDay() DayPhase {
	t := c.TurnOfDay()
	switch {
	case t < c.Sunrise()-twilightTurns:
		return Night
	case t < c.Sunrise():
		return Dawn
	case t < c.Sunset():
		return Day
	case t < c.Sunset()+twilightTurns:
		return Dusk
	default:
		return Night
	}
}

func (c Calendar) IsNight() bool { return c.PartOfDay() == Night }
func (c Calendar) IsDawn() bool  { return c.PartOfDay() == Dawn }
func (c Calendar) IsDay() bool   { return c.PartOfDay() == Day }
func (c Calendar) IsDusk() bool  { return c.PartOfDay() == Dusk }

// Moon completes one full cycle every two thirds of a season. The phase
// flips at noon so it holds steady through a night.
func (c Calendar) Moon() MoonPhase {
	phaseChangePerDay := float64(moonPhaseCount) / (float64(c.seasonDays) * 2.0 / 3.0)
	currentDay := (c.turn + Days(1)/2) / Days(1)
	phase := int(math.Round(float64(currentDay)*phaseChangePerDay)) % int(moonPhaseCount)
	return MoonPhase(phase)
}

// DaylightLevel is the full-sun light level for the current date: baseline
// at the equinoxes, a quarter brighter at the summer solstice and a quarter
// dimmer at the winter one.
func (c Calendar) DaylightLevel() float64 {
	const (
		equinoxModifier = 1.0
		winterModifier  = 0.75
		summerModifier  = 1.25
	)

	modifier := equinoxModifier
	switch c.Season() {
	case Spring:
		modifier = c.interpolateWithinSeason(equinoxModifier, summerModifier)
	case Summer:
		modifier = c.interpolateWithinSeason(summerModifier, equinoxModifier)
	case Autumn:
		modifier = c.interpolateWithinSeason(equinoxModifier, winterModifier)
	case Winter:
		modifier = c.interpolateWithinSeason(winterModifier, equinoxModifier)
	}

	return modifier * baseDaylightLevel
}

// twilightRatio ramps from 0 to 1 across dawn, holds 1 through the day,
// ramps back down across dusk and is 0 at night.
func (c Calendar) twilightRatio() float64 {
	t := c.TurnOfDay()
	sunrise := c.Sunrise()
	sunset := c.Sunset()
	switch {
	case t >= sunrise && t < sunset:
		return 1
	case t >= sunrise-twilightTurns && t < sunrise:
		return float64(t-(sunrise-twilightTurns)) / float64(twilightTurns)
	case t >= sunset && t < sunset+twilightTurns:
		return 1 - float64(t-sunset)/float64(twilightTurns)
	default:
		return 0
	}
}

// Sunlight is the current outdoor light level: seasonal daylight scaled
// through twilight, plus moonlight and a sliver of starlight at night.
func (c Calendar) Sunlight() float64 {
	ratio := c.twilightRatio()
	daylight := c.DaylightLevel() * ratio
	moonlight := (float64(c.Moon().QuartersLit())*moonlightPerQuarter + 1) * (1 - ratio)
	return daylight + moonlight
}

// PrintTime renders the calendar for status output.
func (c Calendar) PrintTime() string {
	return fmt.Sprintf("%02d:%02d, day %d of %s, year %d",
		c.Hour(), c.Minute(), c.Day()+1, c.Season(), c.Year()+1)
}
