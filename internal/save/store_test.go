package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tama/internal/sim"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func writeRecord(t *testing.T, store *Store, rec Record) {
	t.Helper()
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal record: %v", err)
	}
	if err := os.WriteFile(store.statePath(), data, 0644); err != nil {
		t.Fatalf("Write record: %v", err)
	}
}

func TestLoadMissingFileGivesFreshPet(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	stats, clock := store.Load(now)

	if stats != sim.NewStats() {
		t.Errorf("Stats = %+v, want fresh", stats)
	}
	if !clock.StartedAt.Equal(now) || !clock.LastTick.Equal(now) || clock.ElapsedSec != 0 {
		t.Errorf("Clock = %+v, want fresh anchors at %v", clock, now)
	}
}

func TestLoadCorruptFileGivesFreshPet(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	if err := os.WriteFile(store.statePath(), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Write garbage: %v", err)
	}

	stats, clock := store.Load(now)
	if stats != sim.NewStats() || clock.ElapsedSec != 0 {
		t.Errorf("Corrupt save should yield a fresh pet, got %+v / %+v", stats, clock)
	}
}

func TestLoadMissingTimestampsGivesFreshPet(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	writeRecord(t, store, Record{Health: 10, Sleep: 10, Fun: 10})

	stats, _ := store.Load(now)
	if stats != sim.NewStats() {
		t.Errorf("Save without timestamps should be treated as absent, got %+v", stats)
	}
}

func TestLoadAppliesCatchUpDecay(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	writeRecord(t, store, Record{
		Health:    100,
		Sleep:     100,
		Fun:       100,
		StartedAt: now.Add(-100 * time.Second),
		LastTick:  now.Add(-100 * time.Second),
	})

	stats, clock := store.Load(now)

	// 100 offline seconds at difficulty 1: fun and sleep bottom out,
	// health loses 0.6/s (no debt multiplier; coupling reads the saved
	// sleep of 100).
	if stats.Fun != 0 || stats.Sleep != 0 {
		t.Errorf("Fun/Sleep = %d/%d, want 0/0 after 100s offline", stats.Fun, stats.Sleep)
	}
	if stats.Health != 40 {
		t.Errorf("Health = %d, want 40", stats.Health)
	}
	if clock.ElapsedSec != 100 {
		t.Errorf("ElapsedSec = %v, want 100", clock.ElapsedSec)
	}
	if !clock.LastTick.Equal(now) {
		t.Errorf("LastTick = %v, want %v", clock.LastTick, now)
	}
}

func TestLoadCapsCatchUpDecay(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	writeRecord(t, store, Record{
		Health:    100,
		Sleep:     100,
		Fun:       100,
		StartedAt: now.Add(-100000 * time.Second),
		LastTick:  now.Add(-100000 * time.Second),
	})

	_, clock := store.Load(now)

	if clock.ElapsedSec != CatchupCapSec {
		t.Errorf("ElapsedSec = %v, want the cap %d, not the full gap", clock.ElapsedSec, CatchupCapSec)
	}
}

func TestLoadClampsFutureSaveToZero(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	writeRecord(t, store, Record{
		Health:     80,
		Sleep:      70,
		Fun:        60,
		StartedAt:  now.Add(-time.Hour),
		LastTick:   now.Add(time.Hour), // clock jumped backwards since the save
		ElapsedSec: 42,
	})

	stats, clock := store.Load(now)

	if stats != (sim.Stats{Health: 80, Sleep: 70, Fun: 60}) {
		t.Errorf("Stats = %+v, want unchanged for a future-dated save", stats)
	}
	if clock.ElapsedSec != 42 {
		t.Errorf("ElapsedSec = %v, want unchanged 42", clock.ElapsedSec)
	}
	if !clock.LastTick.Equal(now) {
		t.Errorf("LastTick = %v, want re-anchored to %v", clock.LastTick, now)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	stats := sim.Stats{Health: 55, Sleep: 66, Fun: 77}
	clock := sim.SessionClock{StartedAt: now.Add(-time.Minute), LastTick: now, ElapsedSec: 60}
	store.Save(stats, clock)

	loaded, loadedClock := store.Load(now)

	if loaded != stats {
		t.Errorf("Loaded stats = %+v, want %+v (no offline gap)", loaded, stats)
	}
	if loadedClock.ElapsedSec != 60 || !loadedClock.StartedAt.Equal(clock.StartedAt) {
		t.Errorf("Loaded clock = %+v, want %+v", loadedClock, clock)
	}
}

func TestBestTimeOnlyEverRises(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	if _, ok := store.BestTime(); ok {
		t.Fatal("BestTime should be absent for a fresh store")
	}

	longLife := sim.SessionClock{StartedAt: now.Add(-90 * time.Second), LastTick: now}
	store.Save(sim.NewStats(), longLife)

	best, ok := store.BestTime()
	if !ok || best != 90*time.Second {
		t.Fatalf("BestTime = %v/%v, want 90s", best, ok)
	}

	// A shorter life after a reset must not lower the record.
	shortLife := sim.SessionClock{StartedAt: now.Add(-5 * time.Second), LastTick: now}
	store.Save(sim.NewStats(), shortLife)

	best, ok = store.BestTime()
	if !ok || best != 90*time.Second {
		t.Errorf("BestTime = %v/%v after a shorter life, want 90s retained", best, ok)
	}
}

func TestBestTimeMalformedTreatedAsAbsent(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(filepath.Join(store.dir, bestTimeFile), []byte("eleven minutes"), 0644); err != nil {
		t.Fatalf("Write best time: %v", err)
	}

	if _, ok := store.BestTime(); ok {
		t.Error("Malformed best-time record should read as absent")
	}
}
