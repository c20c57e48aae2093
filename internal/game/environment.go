package game

import (
	"github.com/appengine-ltd/frostline/internal/body"
	"github.com/appengine-ltd/frostline/internal/calendar"
)

// comfortableAmbientC is the outdoor temperature at which an unclothed,
// sheltered character rests at the neutral body temperature.
const comfortableAmbientC = 20

// Environment is the per-tick snapshot of external conditions the thermal
// model converges toward.
type Environment struct {
	Weather WeatherState
	Phase   calendar.DayPhase
	// ShelterQuality runs from 0 (fully exposed) to 3 (insulated shelter).
	ShelterQuality int
}

// bodyUnitsPerDegree is how hard one degree of ambient deviation pulls a
// part away from the baseline. Hands and feet swing furthest, the trunk
// least.
func bodyUnitsPerDegree(p body.BodyPart) int {
	switch p {
	case body.HandL, body.HandR, body.FootL, body.FootR:
		return 55
	case body.ArmL, body.ArmR, body.LegL, body.LegR:
		return 35
	default:
		return 25
	}
}

// effectiveAmbientC folds wind chill, shelter and the time of day into the
// reported air temperature.
func (e Environment) effectiveAmbientC() int {
	temp := e.Weather.TemperatureC

	if temp < comfortableAmbientC {
		chill := e.Weather.WindKph/10 - e.ShelterQuality
		if chill > 0 {
			temp -= chill
		}
	}

	switch e.Phase {
	case calendar.Night:
		temp -= 3
	case calendar.Dawn, calendar.Dusk:
		temp--
	}

	if temp < comfortableAmbientC {
		temp += e.ShelterQuality * 2
		if temp > comfortableAmbientC {
			temp = comfortableAmbientC
		}
	}
	return temp
}

// convergingTargetFor maps the environment to the equilibrium temperature
// for one body part. Clothing offsets cold but never pushes a part above
// the baseline, and works against the character in heat. The mouth is
// always bare.
func convergingTargetFor(p body.BodyPart, e Environment, clothingWarmth int, tuning body.Tuning) int {
	deviation := e.effectiveAmbientC() - comfortableAmbientC
	target := tuning.NormalTemperature + deviation*bodyUnitsPerDegree(p)

	if p == body.Mouth {
		return target
	}
	switch {
	case deviation < 0:
		target += clothingWarmth
		if target > tuning.NormalTemperature {
			target = tuning.NormalTemperature
		}
	case deviation > 0:
		target += clothingWarmth / 5
	}
	return target
}
