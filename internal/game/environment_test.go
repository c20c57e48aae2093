package game

import (
	"testing"

	"github.com/appengine-ltd/frostline/internal/body"
	"github.com/appengine-ltd/frostline/internal/calendar"
)

func coldEnvironment() Environment {
	return Environment{
		Weather: WeatherState{Type: WeatherSnow, TemperatureC: -15, WindKph: 20},
		Phase:   calendar.Day,
	}
}

func TestExtremitiesGetColderTargetsThanCore(t *testing.T) {
	tuning := body.DefaultTuning()
	env := coldEnvironment()

	hand := convergingTargetFor(body.HandL, env, 0, tuning)
	arm := convergingTargetFor(body.ArmL, env, 0, tuning)
	torso := convergingTargetFor(body.Torso, env, 0, tuning)

	if !(hand < arm && arm < torso) {
		t.Fatalf("want hand < arm < torso in cold, got %d/%d/%d", hand, arm, torso)
	}
	if torso >= tuning.NormalTemperature {
		t.Fatalf("cold torso target %d not below baseline %d", torso, tuning.NormalTemperature)
	}
}

func TestClothingOffsetsColdButNotPastBaseline(t *testing.T) {
	tuning := body.DefaultTuning()
	env := coldEnvironment()

	bare := convergingTargetFor(body.Torso, env, 0, tuning)
	dressed := convergingTargetFor(body.Torso, env, 900, tuning)
	overdressed := convergingTargetFor(body.Torso, env, 100000, tuning)

	if dressed <= bare {
		t.Fatalf("clothing did not warm the target: bare %d, dressed %d", bare, dressed)
	}
	if overdressed > tuning.NormalTemperature {
		t.Fatalf("clothing pushed target %d above baseline %d", overdressed, tuning.NormalTemperature)
	}
}

func TestMouthIgnoresClothing(t *testing.T) {
	tuning := body.DefaultTuning()
	env := coldEnvironment()

	bare := convergingTargetFor(body.Mouth, env, 0, tuning)
	covered := convergingTargetFor(body.Mouth, env, 900, tuning)
	if bare != covered {
		t.Fatalf("mouth target moved with clothing: %d vs %d", bare, covered)
	}
}

func TestHotEnvironmentPullsAboveBaseline(t *testing.T) {
	tuning := body.DefaultTuning()
	env := Environment{
		Weather: WeatherState{Type: WeatherSunny, TemperatureC: 35},
		Phase:   calendar.Day,
	}

	bare := convergingTargetFor(body.Torso, env, 0, tuning)
	if bare <= tuning.NormalTemperature {
		t.Fatalf("hot target %d not above baseline", bare)
	}
	dressed := convergingTargetFor(body.Torso, env, 900, tuning)
	if dressed <= bare {
		t.Fatalf("clothing should work against the character in heat: %d vs %d", dressed, bare)
	}
}

func TestShelterAndWindChill(t *testing.T) {
	tuning := body.DefaultTuning()
	exposed := coldEnvironment()
	sheltered := coldEnvironment()
	sheltered.ShelterQuality = 3

	et := convergingTargetFor(body.Torso, exposed, 0, tuning)
	st := convergingTargetFor(body.Torso, sheltered, 0, tuning)
	if st <= et {
		t.Fatalf("shelter target %d not warmer than exposed %d", st, et)
	}

	still := coldEnvironment()
	still.Weather.WindKph = 0
	if convergingTargetFor(body.Torso, still, 0, tuning) <= et {
		t.Fatalf("wind chill missing: still air should read warmer")
	}
}

func TestNightColderThanDay(t *testing.T) {
	tuning := body.DefaultTuning()
	day := coldEnvironment()
	night := coldEnvironment()
	night.Phase = calendar.Night

	dt := convergingTargetFor(body.Torso, day, 0, tuning)
	nt := convergingTargetFor(body.Torso, night, 0, tuning)
	if nt >= dt {
		t.Fatalf("night target %d not below day target %d", nt, dt)
	}
}
