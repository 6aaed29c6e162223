// Package save persists the pet's state to a single local save slot and
// restores it with catch-up decay for the time the simulation was not
// running. A separate slot keeps the best-time-alive record across resets.
package save

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tama/internal/sim"
)

const (
	// CatchupCapSec bounds retroactive decay so a long absence cannot
	// instantly kill the pet.
	CatchupCapSec = 7200

	stateFile    = "pet.json"
	bestTimeFile = "best_time"
)

// Record is the persisted snapshot. Sub-state, overlays and cooldowns are
// deliberately not part of it; every load resumes Idle.
type Record struct {
	Health     int       `json:"health"`
	Sleep      int       `json:"sleep"`
	Fun        int       `json:"fun"`
	StartedAt  time.Time `json:"started_at"`
	LastTick   time.Time `json:"last_tick"`
	ElapsedSec float64   `json:"elapsed_sec"`
}

// Store reads and writes save slots under a single directory.
type Store struct {
	dir string
}

// DefaultDir returns the conventional save location under the user's
// config directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tama"), nil
}

// NewStore creates the save directory if needed and returns a store bound
// to it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) statePath() string {
	return filepath.Join(s.dir, stateFile)
}

func (s *Store) bestTimePath() string {
	return filepath.Join(s.dir, bestTimeFile)
}

// Load restores the saved pet, applying capped catch-up decay for the
// offline gap, and advances the clock to now. A missing or malformed save
// is never an error: it yields a fresh pet.
func (s *Store) Load(now time.Time) (sim.Stats, sim.SessionClock) {
	data, err := os.ReadFile(s.statePath())
	if err != nil {
		log.Printf("No usable save (%v); starting a fresh pet", err)
		return fresh(now)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("Corrupt save (%v); starting a fresh pet", err)
		return fresh(now)
	}
	if rec.StartedAt.IsZero() || rec.LastTick.IsZero() {
		log.Printf("Save missing timestamps; starting a fresh pet")
		return fresh(now)
	}

	stats := sim.Stats{Health: rec.Health, Sleep: rec.Sleep, Fun: rec.Fun}.Clamp()
	clock := sim.SessionClock{
		StartedAt:  rec.StartedAt,
		LastTick:   rec.LastTick,
		ElapsedSec: rec.ElapsedSec,
	}

	offline := now.Sub(rec.LastTick).Seconds()
	if offline < 0 {
		offline = 0
	}
	if offline > CatchupCapSec {
		offline = CatchupCapSec
	}

	stats = sim.Decay(stats, offline, clock.ElapsedSec)
	clock.ElapsedSec += offline
	clock.LastTick = now

	log.Printf("Restored pet (offline %.0fs, session %.0fs)", offline, clock.ElapsedSec)
	return stats, clock
}

// Save writes the slot and raises the best-time record if the current life
// has outlasted it. Implements sim.Saver.
func (s *Store) Save(stats sim.Stats, clock sim.SessionClock) {
	rec := Record{
		Health:     stats.Health,
		Sleep:      stats.Sleep,
		Fun:        stats.Fun,
		StartedAt:  clock.StartedAt,
		LastTick:   clock.LastTick,
		ElapsedSec: clock.ElapsedSec,
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		log.Printf("Error encoding save: %v", err)
		return
	}
	if err := os.WriteFile(s.statePath(), data, 0644); err != nil {
		log.Printf("Error writing save: %v", err)
	}

	// A dead pet is no longer racking up time alive.
	if stats.Health > sim.MinStat {
		s.updateBestTime(clock.LastTick.Sub(clock.StartedAt))
	}
}

// BestTime returns the longest recorded alive span, if one exists.
func (s *Store) BestTime() (time.Duration, bool) {
	data, err := os.ReadFile(s.bestTimePath())
	if err != nil {
		return 0, false
	}
	best, err := time.ParseDuration(strings.TrimSpace(string(data)))
	if err != nil || best <= 0 {
		return 0, false
	}
	return best, true
}

func (s *Store) updateBestTime(alive time.Duration) {
	alive = alive.Truncate(time.Second)
	if alive <= 0 {
		return
	}
	if best, ok := s.BestTime(); ok && alive <= best {
		return
	}
	if err := os.WriteFile(s.bestTimePath(), []byte(alive.String()), 0644); err != nil {
		log.Printf("Error writing best time: %v", err)
	}
}

func fresh(now time.Time) (sim.Stats, sim.SessionClock) {
	return sim.NewStats(), sim.SessionClock{StartedAt: now, LastTick: now}
}
