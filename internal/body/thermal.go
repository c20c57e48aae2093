package body

import (
	"fmt"
	"math"
)

// PartTemperature is the persistent thermal state for one body part.
type PartTemperature struct {
	// Current is the simulated temperature of the part.
	Current int
	// Converging is the environment-driven equilibrium the part drifts
	// toward. Recomputed by the ambient model every tick.
	Converging int
	// Bonus is heat offered this tick by comfort-seeking behaviour, such as
	// warming at a fire. Cleared and re-derived every tick.
	Bonus int
	// FrostbiteCounter accumulates sustained cold exposure. The damage
	// system owns its meaning; the simulator never changes it.
	FrostbiteCounter int
}

// Simulator drives the per-tick heat model for one character. Each tick runs
// three phases in order: bonus warmth, equalization between adjacent parts,
// then convergence toward the environment targets.
//
// Not safe for concurrent use; every character owns exactly one.
type Simulator struct {
	tuning Tuning
	parts  [PartCount]PartTemperature
}

func NewSimulator(tuning Tuning) (*Simulator, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("thermal tuning: %w", err)
	}
	s := &Simulator{tuning: tuning}
	s.SetToNormal()
	return s, nil
}

func (s *Simulator) Tuning() Tuning {
	return s.tuning
}

// Part returns a copy of the state for one body part.
func (s *Simulator) Part(p BodyPart) PartTemperature {
	return s.parts[p]
}

// SetConverging writes the environment target for one part. The ambient
// model calls this for every part before each tick.
func (s *Simulator) SetConverging(p BodyPart, target int) {
	s.parts[p].Converging = target
}

// AddFrostbite adjusts a part's frostbite counter, clamped at zero. Only the
// exposure-tracking collaborator calls this.
func (s *Simulator) AddFrostbite(p BodyPart, delta int) {
	counter := s.parts[p].FrostbiteCounter + delta
	if counter < 0 {
		counter = 0
	}
	s.parts[p].FrostbiteCounter = counter
}

// Tick advances the model by one turn. Converging targets must already be
// written for this turn.
func (s *Simulator) Tick(fireIntensity int, sitting bool) {
	s.ResetBonus()
	s.AddFireBonus(fireIntensity, sitting)
	s.ApplyBonusWarmth()
	s.EqualizeAllParts()
	s.UpdateTemperatures()
}

// ResetBonus clears every part's bonus heat so each tick starts from that
// tick's inputs alone.
func (s *Simulator) ResetBonus() {
	for i := range s.parts {
		s.parts[i].Bonus = 0
	}
}

// AddFireBonus adds warmth from huddling over a fire. The effect scales with
// fire intensity and is strongest for parts that can be held near the flame:
// hands most of all, then arms, while the body core only responds to larger
// fires. Feet get the full bonus only when sitting, since a standing
// character cannot lift them over the fire.
func (s *Simulator) AddFireBonus(fireIntensity int, sitting bool) {
	if fireIntensity <= 0 {
		return
	}

	// Body core, can't easily extend over fire.
	coreBonus := fireIntensity * fireIntensity * 150
	s.parts[Head].Bonus += coreBonus
	s.parts[Torso].Bonus += coreBonus
	s.parts[Mouth].Bonus += coreBonus
	s.parts[LegL].Bonus += coreBonus
	s.parts[LegR].Bonus += coreBonus

	armBonus := fireIntensity * 600
	s.parts[ArmL].Bonus += armBonus
	s.parts[ArmR].Bonus += armBonus

	handBonus := fireIntensity * 1500
	s.parts[HandL].Bonus += handBonus
	s.parts[HandR].Bonus += handBonus

	footScale := 300
	if sitting {
		footScale = 1000
	}
	footBonus := fireIntensity * footScale
	s.parts[FootL].Bonus += footBonus
	s.parts[FootR].Bonus += footBonus
}

// ApplyBonusWarmth folds this tick's bonus heat into each part's current
// temperature. The contribution is capped at the comfort ceiling: nobody
// keeps their hands over a fire once they are uncomfortably hot. The Bonus
// field keeps the uncapped offer so callers can inspect it.
func (s *Simulator) ApplyBonusWarmth() {
	for i := range s.parts {
		part := &s.parts[i]
		if part.Bonus <= 0 {
			continue
		}
		room := s.tuning.ComfortCeiling - part.Current
		if room <= 0 {
			continue
		}
		gain := part.Bonus
		if gain > room {
			gain = room
		}
		part.Current += gain
	}
}

// EqualizeAllParts moves heat between adjacent body parts to simulate blood
// flow. Every edge of the adjacency graph is processed in both directions
// within the same tick.
func (s *Simulator) EqualizeAllParts() {
	for _, edge := range heatFlowEdges {
		s.equalizeSinglePart(edge[0], edge[1])
		s.equalizeSinglePart(edge[1], edge[0])
	}
}

// equalizeSinglePart shifts heat in one direction only: the sink warms when
// the source is warmer and cools when it is colder. The source is never
// mutated here; the reverse transfer happens in its own call.
func (s *Simulator) equalizeSinglePart(sink, source BodyPart) {
	diff := s.parts[source].Current - s.parts[sink].Current
	flow := int(math.Floor(float64(diff) * s.tuning.EqualizationFactor))
	s.parts[sink].Current += flow
}

// UpdateTemperatures converges each part toward its environment target by
// one proportional step. A part already at its target is left alone, and a
// step never crosses the target.
func (s *Simulator) UpdateTemperatures() {
	for i := range s.parts {
		part := &s.parts[i]
		diff := part.Converging - part.Current
		if diff == 0 {
			continue
		}
		step := int(math.Floor(float64(diff) * s.tuning.ConvergenceRate))
		if step == 0 {
			// Rounding would otherwise stall one unit short of the target.
			step = 1
		}
		next := part.Current + step
		if (diff > 0 && next > part.Converging) || (diff < 0 && next < part.Converging) {
			next = part.Converging
		}
		part.Current = next
	}
}

// SetToNormal resets every part to the neutral baseline with no bonus heat
// and no frostbite accumulation. Idempotent; used to switch thermal effects
// off in place without discarding the state array.
func (s *Simulator) SetToNormal() {
	for i := range s.parts {
		s.parts[i] = PartTemperature{
			Current:    s.tuning.NormalTemperature,
			Converging: s.tuning.NormalTemperature,
		}
	}
}
