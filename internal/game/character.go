package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/appengine-ltd/frostline/internal/body"
)

type Posture string

const (
	PostureStanding Posture = "standing"
	PostureSitting  Posture = "sitting"
)

// ClothingWarmth is per-part insulation, in body temperature units.
type ClothingWarmth [body.PartCount]int

func NoClothing() ClothingWarmth {
	return ClothingWarmth{}
}

// ExpeditionClothing is a full cold-weather outfit. Hands and feet carry
// less insulation than the trunk, which is why extremities still freeze
// first.
func ExpeditionClothing() ClothingWarmth {
	var set ClothingWarmth
	for _, p := range body.Parts() {
		switch p {
		case body.Mouth:
			set[p] = 0
		case body.Head:
			set[p] = 600
		case body.Torso:
			set[p] = 900
		case body.ArmL, body.ArmR, body.LegL, body.LegR:
			set[p] = 700
		case body.HandL, body.HandR:
			set[p] = 400
		case body.FootL, body.FootR:
			set[p] = 500
		}
	}
	return set
}

// Character owns one thermal simulator for its lifetime. A character is
// ticked from a single goroutine; nothing here is shared between
// characters.
type Character struct {
	ID       uuid.UUID
	Name     string
	Posture  Posture
	Clothing ClothingWarmth
	Thermal  *body.Simulator
}

func NewCharacter(name string, tuning body.Tuning) (*Character, error) {
	sim, err := body.NewSimulator(tuning)
	if err != nil {
		return nil, fmt.Errorf("character %q: %w", name, err)
	}
	return &Character{
		ID:      uuid.New(),
		Name:    name,
		Posture: PostureStanding,
		Thermal: sim,
	}, nil
}

// Tick advances the character by one turn: refresh the environment targets,
// run the thermal phases with this turn's fire inputs, then account the
// exposure counters.
func (c *Character) Tick(env Environment, fire FireState) {
	c.refreshConvergingTargets(env)
	c.Thermal.Tick(fire.WarmthIntensity(), c.Posture == PostureSitting)
	c.trackFrostbite()
}

func (c *Character) refreshConvergingTargets(env Environment) {
	tuning := c.Thermal.Tuning()
	for _, p := range body.Parts() {
		c.Thermal.SetConverging(p, convergingTargetFor(p, env, c.Clothing[p], tuning))
	}
}

// trackFrostbite counts turns a part spends below the frostbite threshold.
// Warm turns decay the counter by one instead of clearing it, so a quick
// warm-up doesn't erase sustained exposure. The damage system decides what
// the counter means.
func (c *Character) trackFrostbite() {
	threshold := c.Thermal.Tuning().FrostbiteThreshold
	for _, p := range body.Parts() {
		if c.Thermal.Part(p).Current < threshold {
			c.Thermal.AddFrostbite(p, 1)
		} else {
			c.Thermal.AddFrostbite(p, -1)
		}
	}
}

func (c *Character) ColdestPart() (body.BodyPart, int) {
	coldest := body.Head
	lowest := c.Thermal.Part(body.Head).Current
	for _, p := range body.Parts() {
		if cur := c.Thermal.Part(p).Current; cur < lowest {
			coldest, lowest = p, cur
		}
	}
	return coldest, lowest
}
