package sim

import "testing"

func TestDifficultyRamp(t *testing.T) {
	tests := []struct {
		sessionSec float64
		want       float64
	}{
		{0, 1},
		{120, 2},
		{240, 3},
		{-5, 1}, // clock skew clamps to the floor
	}

	for _, tt := range tests {
		if got := Difficulty(tt.sessionSec); got != tt.want {
			t.Errorf("Difficulty(%v) = %v, want %v", tt.sessionSec, got, tt.want)
		}
	}
}

func TestDecayZeroElapsedIsNoop(t *testing.T) {
	stats := Stats{Health: 73, Sleep: 42, Fun: 19}

	if got := Decay(stats, 0, 500); got != stats {
		t.Errorf("Decay with zero elapsed changed stats: got %+v, want %+v", got, stats)
	}
	if got := Decay(stats, -10, 500); got != stats {
		t.Errorf("Decay with negative elapsed changed stats: got %+v, want %+v", got, stats)
	}
}

func TestDecayHealthScalesWithSleepDebt(t *testing.T) {
	// At sleep 50 the health multiplier is 1 + 50/100*4 = 3, so one second
	// at difficulty 1 costs 0.6*3 = 1.8 health.
	stats := Stats{Health: 10, Sleep: 50, Fun: 50}

	got := Decay(stats, 1, 0)

	if got.Health != 8 {
		t.Errorf("Health = %d, want 8", got.Health)
	}
	if got.Health <= MinStat {
		t.Error("Pet should still be alive after one second")
	}
	if got.Sleep != 49 {
		t.Errorf("Sleep = %d, want 49", got.Sleep)
	}
}

func TestDecayEmptyFunSpeedsSleepDecay(t *testing.T) {
	base := Decay(Stats{Health: 100, Sleep: 100, Fun: 100}, 10, 0)
	starved := Decay(Stats{Health: 100, Sleep: 100, Fun: 0}, 10, 0)

	baseLoss := MaxStat - base.Sleep
	starvedLoss := MaxStat - starved.Sleep
	if starvedLoss != 5*baseLoss {
		t.Errorf("Sleep loss with empty fun = %d, want exactly 5x the base loss %d", starvedLoss, baseLoss)
	}
}

func TestDecayEmptySleepMultipliesHealthDecay(t *testing.T) {
	// Empty sleep stacks the x8 multiplier on top of the full x5 debt
	// scaling: 0.6 * 5 * 8 = 24 health per second.
	got := Decay(Stats{Health: 100, Sleep: 0, Fun: 100}, 1, 0)

	if got.Health != 76 {
		t.Errorf("Health = %d, want 76", got.Health)
	}
}

func TestDecayNeverLeavesRange(t *testing.T) {
	starts := []Stats{
		{Health: 100, Sleep: 100, Fun: 100},
		{Health: 1, Sleep: 1, Fun: 1},
		{Health: 0, Sleep: 0, Fun: 0},
		{Health: 50, Sleep: 0, Fun: 0},
	}
	elapsed := []float64{0.3, 1, 60, 7200}
	sessions := []float64{0, 120, 100000}

	for _, stats := range starts {
		for _, sec := range elapsed {
			for _, session := range sessions {
				got := Decay(stats, sec, session)
				for name, v := range map[string]int{"health": got.Health, "sleep": got.Sleep, "fun": got.Fun} {
					if v < MinStat || v > MaxStat {
						t.Errorf("Decay(%+v, %v, %v) left %s out of range: %d", stats, sec, session, name, v)
					}
				}
			}
		}
	}
}

func TestDecayIsMonotonicallyNonIncreasing(t *testing.T) {
	stats := Stats{Health: 80, Sleep: 60, Fun: 40}

	for _, sec := range []float64{0.3, 1, 5, 30, 600} {
		got := Decay(stats, sec, 50)
		if got.Health > stats.Health || got.Sleep > stats.Sleep || got.Fun > stats.Fun {
			t.Errorf("Decay for %vs raised a stat: %+v -> %+v", sec, stats, got)
		}
	}
}

func TestDecayAcceleratesWithSessionAge(t *testing.T) {
	stats := Stats{Health: 100, Sleep: 100, Fun: 100}

	young := Decay(stats, 10, 0)
	old := Decay(stats, 10, 240) // difficulty 3

	if old.Fun >= young.Fun {
		t.Errorf("Fun after an old-session decay (%d) should be below a young one (%d)", old.Fun, young.Fun)
	}
	if youngLoss, oldLoss := MaxStat-young.Fun, MaxStat-old.Fun; oldLoss != 3*youngLoss {
		t.Errorf("Fun loss at difficulty 3 = %d, want 3x the difficulty-1 loss %d", oldLoss, youngLoss)
	}
}
