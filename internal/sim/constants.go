package sim

import "time"

// Game constants
const (
	DefaultPetName = "Tama"
	MaxStat        = 100
	MinStat        = 0

	// Base decay rates at difficulty 1 (points per second)
	FunDecayRate    = 1.5
	SleepDecayRate  = 1.0
	HealthDecayRate = 0.6

	// RampSeconds controls the difficulty curve: decay doubles every
	// RampSeconds of simulated session time.
	RampSeconds = 120.0

	// Cross-stat coupling
	NoFunSleepMult       = 5.0 // sleep decay multiplier while fun is empty
	NoSleepHealthMult    = 8.0 // health decay multiplier while sleep is empty
	TiredHealthMaxFactor = 4.0 // health decay scales up to 1+this as sleep falls

	// Action effects
	EatHealthGain  = 15
	EatFunGain     = 2
	EatSleepCost   = 2
	PlayHealthCost = 1
	PlayFunGain    = 12
	PlaySleepCost  = 6
	PokeHealthCost = 10

	// Waking up, natural or forced
	WakeSleepGain = 40
	WakeFunCost   = 2

	// Hover gives fun while the pointer rests on the pet (points per second)
	HoverFunRate = 0.6

	// Timings
	ActionCooldown  = 1000 * time.Millisecond
	PokeCooldown    = 800 * time.Millisecond
	SleepDuration   = 5000 * time.Millisecond
	EatingOverlay   = 150 * time.Millisecond
	PlayingOverlay  = 300 * time.Millisecond
	SadOverlay      = 1000 * time.Millisecond
	DefaultTickRate = 300 * time.Millisecond
)
