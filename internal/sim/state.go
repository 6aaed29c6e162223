package sim

import "time"

// Testable time function, swapped out in tests
var TimeNow = func() time.Time { return time.Now().UTC() }

// Stats are the pet's three vital stats, each bounded to [MinStat, MaxStat].
type Stats struct {
	Health int `json:"health"`
	Sleep  int `json:"sleep"`
	Fun    int `json:"fun"`
}

// SessionClock tracks the timing anchors of the current life.
// ElapsedSec is cumulative simulated seconds and can be shorter than the
// wall-clock span when offline catch-up is capped.
type SessionClock struct {
	StartedAt  time.Time `json:"started_at"`
	LastTick   time.Time `json:"last_tick"`
	ElapsedSec float64   `json:"elapsed_sec"`
}

// Mode is the pet's primary sub-state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeSleeping
	ModeDead
)

func (m Mode) String() string {
	switch m {
	case ModeSleeping:
		return "sleeping"
	case ModeDead:
		return "dead"
	default:
		return "idle"
	}
}

// Overlay is a transient visual/behavioral state layered on the primary
// mode. At most one overlay is active at a time.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayEating
	OverlayPlaying
	OverlaySad
)

func (o Overlay) String() string {
	switch o {
	case OverlayEating:
		return "eating"
	case OverlayPlaying:
		return "playing"
	case OverlaySad:
		return "sad"
	default:
		return "none"
	}
}

// Cooldowns holds the remaining lockout per action, decremented each tick.
type Cooldowns struct {
	Eat   time.Duration
	Play  time.Duration
	Sleep time.Duration
	Poke  time.Duration
}

// Snapshot is the read-only view the presentation layer consumes after
// every tick and action. It is sufficient to drive all visuals without
// reaching into engine internals.
type Snapshot struct {
	Health    int
	Sleep     int
	Fun       int
	Mode      Mode
	Overlay   Overlay
	Dead      bool
	Hovering  bool
	Cooldowns Cooldowns
	AliveFor  time.Duration
}

// NewStats returns the stats of a freshly adopted pet.
func NewStats() Stats {
	return Stats{Health: MaxStat, Sleep: MaxStat, Fun: MaxStat}
}

func clampStat(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// Clamp bounds every stat to [MinStat, MaxStat].
func (s Stats) Clamp() Stats {
	s.Health = clampStat(s.Health)
	s.Sleep = clampStat(s.Sleep)
	s.Fun = clampStat(s.Fun)
	return s
}
