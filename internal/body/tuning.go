package body

import "fmt"

// Tuning holds the balance constants for one simulator instance.
// Temperatures are in hundredths of a degree, so characters with different
// metabolisms can run different rates without sharing state.
type Tuning struct {
	// EqualizationFactor is the fraction of a temperature differential that
	// flows between adjacent parts per tick.
	EqualizationFactor float64
	// ConvergenceRate is the fraction of the gap to the environment target
	// closed per tick.
	ConvergenceRate float64
	// NormalTemperature is the neutral baseline every part rests at.
	NormalTemperature int
	// ComfortCeiling is the temperature beyond which voluntary warmth
	// sources stop being applied.
	ComfortCeiling int
	// FrostbiteThreshold is the temperature below which frostbite exposure
	// accumulates.
	FrostbiteThreshold int
}

func DefaultTuning() Tuning {
	return Tuning{
		EqualizationFactor: 0.0001,
		ConvergenceRate:    0.1,
		NormalTemperature:  3700,
		ComfortCeiling:     3900,
		FrostbiteThreshold: 2800,
	}
}

func (t Tuning) Validate() error {
	if t.EqualizationFactor <= 0 {
		return fmt.Errorf("equalization factor must be positive, got %g", t.EqualizationFactor)
	}
	if t.EqualizationFactor >= 1 {
		return fmt.Errorf("equalization factor must be below 1, got %g", t.EqualizationFactor)
	}
	if t.ConvergenceRate <= 0 {
		return fmt.Errorf("convergence rate must be positive, got %g", t.ConvergenceRate)
	}
	if t.ConvergenceRate >= 1 {
		return fmt.Errorf("convergence rate must be below 1, got %g", t.ConvergenceRate)
	}
	if t.ComfortCeiling < t.NormalTemperature {
		return fmt.Errorf("comfort ceiling %d below normal temperature %d", t.ComfortCeiling, t.NormalTemperature)
	}
	if t.FrostbiteThreshold >= t.NormalTemperature {
		return fmt.Errorf("frostbite threshold %d not below normal temperature %d", t.FrostbiteThreshold, t.NormalTemperature)
	}
	return nil
}
