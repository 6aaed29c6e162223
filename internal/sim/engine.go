package sim

import (
	"log"
	"time"
)

// Saver persists the pet's state. The engine calls it after every tick and
// every accepted action; failures are the saver's problem to log.
type Saver interface {
	Save(stats Stats, clock SessionClock)
}

// Engine owns the pet's vital stats, session clock, sub-state and
// cooldowns, and is the only place any of them mutate. All mutation happens
// inside Tick or a command method; the presentation layer only ever sees
// snapshots.
type Engine struct {
	stats Stats
	clock SessionClock
	mode  Mode

	overlay       Overlay
	overlayEndsAt time.Time
	sleepEndsAt   time.Time

	hovering  bool
	hoverFrac float64

	cooldowns Cooldowns

	saver Saver
}

// New builds an engine around restored (or fresh) stats and clock.
// Sub-state, overlays and cooldowns always start cleared: they are not
// persisted, so every session resumes Idle.
func New(stats Stats, clock SessionClock, saver Saver) *Engine {
	e := &Engine{
		stats: stats.Clamp(),
		clock: clock,
		saver: saver,
	}
	if e.stats.Health <= MinStat {
		e.mode = ModeDead
	}
	return e
}

// Tick advances the simulation to now. Within one tick the order is fixed:
// cooldowns, wake and overlay expiry, decay, hover gain, death check,
// persistence. The snapshot a caller takes afterwards is therefore always
// post-tick consistent.
func (e *Engine) Tick(now time.Time) {
	// Clock skew: a tick from the past counts as zero elapsed time and
	// must not rewind the anchor.
	if now.Before(e.clock.LastTick) {
		now = e.clock.LastTick
	}
	elapsed := now.Sub(e.clock.LastTick)

	if e.mode == ModeDead {
		e.clock.LastTick = now
		e.save()
		return
	}

	e.cooldowns = tickCooldowns(e.cooldowns, elapsed)

	if e.mode == ModeSleeping && !now.Before(e.sleepEndsAt) {
		e.wake()
	}
	if e.overlay != OverlayNone && !now.Before(e.overlayEndsAt) {
		e.overlay = OverlayNone
	}

	sec := elapsed.Seconds()
	e.stats = Decay(e.stats, sec, e.clock.ElapsedSec)
	e.clock.ElapsedSec += sec

	if e.hovering && e.mode == ModeIdle {
		e.hoverFrac += HoverFunRate * sec
		whole := int(e.hoverFrac)
		if whole > 0 {
			e.hoverFrac -= float64(whole)
			e.stats.Fun = clampStat(e.stats.Fun + whole)
		}
	}

	if e.stats.Health <= MinStat {
		e.die()
	}

	e.clock.LastTick = now
	e.save()
}

// Eat feeds the pet. Wakes it first if it was sleeping.
func (e *Engine) Eat() bool { return e.dispatch(ActionEat) }

// Play plays with the pet. Wakes it first if it was sleeping.
func (e *Engine) Play() bool { return e.dispatch(ActionPlay) }

// Sleep puts the pet to bed for a fixed nap; refused while already
// sleeping.
func (e *Engine) Sleep() bool { return e.dispatch(ActionSleep) }

// Poke prods the pet. A poke costs health and makes the pet sad; poking a
// sleeping pet only wakes it (rude, not harmful).
func (e *Engine) Poke() bool { return e.dispatch(ActionPoke) }

func (e *Engine) dispatch(action Action) bool {
	if e.mode == ModeDead {
		return false
	}
	if remainingCooldown(e.cooldowns, action) > 0 {
		return false
	}
	if action == ActionSleep && e.mode == ModeSleeping {
		return false
	}

	spec := ActionSpecs[action]
	now := TimeNow()

	wasSleeping := e.mode == ModeSleeping
	if wasSleeping {
		e.wake()
	}

	switch {
	case action == ActionSleep:
		e.mode = ModeSleeping
		e.sleepEndsAt = now.Add(SleepDuration)
	case action == ActionPoke && wasSleeping:
		// Waking the pet is punishment enough; skip the health penalty.
	default:
		e.stats = spec.Apply(e.stats)
	}

	if spec.Overlay != OverlayNone {
		e.overlay = spec.Overlay
		e.overlayEndsAt = now.Add(spec.OverlayDuration)
	}

	e.cooldowns = setCooldown(e.cooldowns, action, spec.Cooldown)

	if e.stats.Health <= MinStat {
		e.die()
	}

	e.save()
	return true
}

// HoverStart marks the pointer as resting on the pet. Hover slowly feeds
// fun, but only while the pet is idle.
func (e *Engine) HoverStart() {
	if e.mode == ModeDead {
		return
	}
	e.hovering = true
}

// HoverEnd clears the hover flag.
func (e *Engine) HoverEnd() {
	e.hovering = false
	e.hoverFrac = 0
}

// Reset starts a fresh life: full stats, a new session clock, everything
// transient cleared. The only way out of ModeDead.
func (e *Engine) Reset(now time.Time) {
	e.stats = NewStats()
	e.clock = SessionClock{StartedAt: now, LastTick: now}
	e.mode = ModeIdle
	e.overlay = OverlayNone
	e.overlayEndsAt = time.Time{}
	e.sleepEndsAt = time.Time{}
	e.hovering = false
	e.hoverFrac = 0
	e.cooldowns = Cooldowns{}
	log.Printf("Pet reset; new life started at %s", now.Format(time.RFC3339))
	e.save()
}

// Snapshot returns the current consistent view of the pet.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Health:    e.stats.Health,
		Sleep:     e.stats.Sleep,
		Fun:       e.stats.Fun,
		Mode:      e.mode,
		Overlay:   e.overlay,
		Dead:      e.mode == ModeDead,
		Hovering:  e.hovering,
		Cooldowns: e.cooldowns,
		AliveFor:  e.clock.LastTick.Sub(e.clock.StartedAt),
	}
}

// wake ends sleep, applying the rested bonus and the grumpy-wake-up fun
// cost. Used both for natural wake-on-timeout and forced wakes.
func (e *Engine) wake() {
	e.stats.Sleep = clampStat(e.stats.Sleep + WakeSleepGain)
	e.stats.Fun = clampStat(e.stats.Fun - WakeFunCost)
	e.mode = ModeIdle
	e.sleepEndsAt = time.Time{}
}

func (e *Engine) die() {
	e.mode = ModeDead
	e.overlay = OverlayNone
	e.overlayEndsAt = time.Time{}
	e.sleepEndsAt = time.Time{}
	e.hovering = false
	e.hoverFrac = 0
	e.cooldowns = Cooldowns{}
	log.Printf("Pet died after %.0fs of simulated time", e.clock.ElapsedSec)
}

func (e *Engine) save() {
	if e.saver != nil {
		e.saver.Save(e.stats, e.clock)
	}
}

func tickCooldowns(c Cooldowns, elapsed time.Duration) Cooldowns {
	dec := func(d time.Duration) time.Duration {
		d -= elapsed
		if d < 0 {
			return 0
		}
		return d
	}
	c.Eat = dec(c.Eat)
	c.Play = dec(c.Play)
	c.Sleep = dec(c.Sleep)
	c.Poke = dec(c.Poke)
	return c
}

func remainingCooldown(c Cooldowns, a Action) time.Duration {
	switch a {
	case ActionEat:
		return c.Eat
	case ActionPlay:
		return c.Play
	case ActionSleep:
		return c.Sleep
	default:
		return c.Poke
	}
}

func setCooldown(c Cooldowns, a Action, d time.Duration) Cooldowns {
	switch a {
	case ActionEat:
		c.Eat = d
	case ActionPlay:
		c.Play = d
	case ActionSleep:
		c.Sleep = d
	default:
		c.Poke = d
	}
	return c
}
