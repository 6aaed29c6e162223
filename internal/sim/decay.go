package sim

import "math"

// Difficulty returns the decay multiplier for a given amount of simulated
// session time. It grows linearly, doubling every RampSeconds.
func Difficulty(sessionSec float64) float64 {
	if sessionSec < 0 {
		sessionSec = 0
	}
	return 1 + sessionSec/RampSeconds
}

// Decay returns the stats after elapsedSec seconds of neglect, given that
// the session is sessionSec seconds old. Pure and deterministic; negative
// elapsed time (clock skew) is treated as zero.
//
// Empty stats feed on each other: no fun makes the pet restless (sleep
// drains 5x), low sleep wears the body down (health drains up to 5x), and
// total exhaustion is outright dangerous (a further 8x on health).
func Decay(stats Stats, elapsedSec, sessionSec float64) Stats {
	if elapsedSec <= 0 {
		return stats
	}

	difficulty := Difficulty(sessionSec)

	funLoss := FunDecayRate * difficulty * elapsedSec
	sleepLoss := SleepDecayRate * difficulty * elapsedSec
	healthLoss := HealthDecayRate * difficulty * elapsedSec

	if stats.Fun <= MinStat {
		sleepLoss *= NoFunSleepMult
	}

	healthLoss *= 1 + float64(MaxStat-stats.Sleep)/float64(MaxStat)*TiredHealthMaxFactor
	if stats.Sleep <= MinStat {
		healthLoss *= NoSleepHealthMult
	}

	stats.Fun = roundStat(float64(stats.Fun) - funLoss)
	stats.Sleep = roundStat(float64(stats.Sleep) - sleepLoss)
	stats.Health = roundStat(float64(stats.Health) - healthLoss)
	return stats
}

// roundStat clamps to the stat range and rounds to the nearest integer.
// Stats are integer-valued at rest; sub-integer decay within a single step
// is not carried over to the next.
func roundStat(v float64) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return int(math.Round(v))
}
