package game

import "fmt"

const (
	maxFireIntensity = 10

	// fuelKgPerIntensityTurn: a fire of intensity 1 burns through roughly
	// half a kilogram of wood per game hour.
	fuelKgPerIntensityTurn = 0.0008
)

type FireState struct {
	Lit       bool
	Intensity int
	FuelKg    float64
}

func (f *FireState) Light(intensity int, fuelKg float64) error {
	if f.Lit {
		return fmt.Errorf("the fire is already lit")
	}
	if intensity < 1 || intensity > maxFireIntensity {
		return fmt.Errorf("fire intensity must be 1..%d, got %d", maxFireIntensity, intensity)
	}
	if fuelKg <= 0 {
		return fmt.Errorf("need fuel to light a fire, got %.1fkg", fuelKg)
	}
	f.Lit = true
	f.Intensity = intensity
	f.FuelKg = fuelKg
	return nil
}

func (f *FireState) Tend(fuelKg float64) error {
	if !f.Lit {
		return fmt.Errorf("no fire to tend")
	}
	if fuelKg <= 0 {
		return fmt.Errorf("tending needs fuel, got %.1fkg", fuelKg)
	}
	f.FuelKg += fuelKg
	f.Intensity = clamp(f.Intensity+1, 1, maxFireIntensity)
	return nil
}

func (f *FireState) Douse() {
	*f = FireState{}
}

// BurnTick consumes one turn's worth of fuel. The fire gutters down as fuel
// runs low and goes out at zero.
func (f *FireState) BurnTick() {
	if !f.Lit {
		return
	}
	f.FuelKg -= float64(f.Intensity) * fuelKgPerIntensityTurn
	if f.FuelKg <= 0 {
		f.Douse()
		return
	}
	if f.Intensity > 1 && f.FuelKg < float64(f.Intensity)*0.5 {
		f.Intensity--
	}
}

// WarmthIntensity is the fire input to the thermal model for this turn.
func (f FireState) WarmthIntensity() int {
	if !f.Lit {
		return 0
	}
	return f.Intensity
}
