package sim

import "time"

// Action identifies a player command.
type Action int

const (
	ActionEat Action = iota
	ActionPlay
	ActionSleep
	ActionPoke
)

func (a Action) String() string {
	switch a {
	case ActionEat:
		return "eat"
	case ActionPlay:
		return "play"
	case ActionSleep:
		return "sleep"
	default:
		return "poke"
	}
}

// ActionSpec is the static effect record for one action. Deltas are applied
// atomically and clamped immediately; decay never runs in the same instant.
type ActionSpec struct {
	HealthDelta     int
	FunDelta        int
	SleepDelta      int
	Cooldown        time.Duration
	Overlay         Overlay
	OverlayDuration time.Duration
}

// ActionSpecs is the rule table for every discrete action. The sleep action
// has no deltas of its own; its effect is entering the Sleeping mode (the
// payoff lands on wake-up).
var ActionSpecs = map[Action]ActionSpec{
	ActionEat: {
		HealthDelta:     EatHealthGain,
		FunDelta:        EatFunGain,
		SleepDelta:      -EatSleepCost,
		Cooldown:        ActionCooldown,
		Overlay:         OverlayEating,
		OverlayDuration: EatingOverlay,
	},
	ActionPlay: {
		HealthDelta:     -PlayHealthCost,
		FunDelta:        PlayFunGain,
		SleepDelta:      -PlaySleepCost,
		Cooldown:        ActionCooldown,
		Overlay:         OverlayPlaying,
		OverlayDuration: PlayingOverlay,
	},
	ActionSleep: {
		Cooldown: ActionCooldown,
	},
	ActionPoke: {
		HealthDelta:     -PokeHealthCost,
		Cooldown:        PokeCooldown,
		Overlay:         OverlaySad,
		OverlayDuration: SadOverlay,
	},
}

// Apply adds the spec's deltas to the stats and clamps.
func (spec ActionSpec) Apply(stats Stats) Stats {
	stats.Health += spec.HealthDelta
	stats.Fun += spec.FunDelta
	stats.Sleep += spec.SleepDelta
	return stats.Clamp()
}
