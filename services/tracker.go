package services

import (
	"log"
	"math/rand"
	"strconv"
	"sync"

	"github.com/robfig/cron/v3"

	"fixuno-backend/store"
)

// Tracker drives the storefront's "live activity" counters: total jobs
// accomplished and technicians currently on the field. Both are decorative
// telemetry; only the accomplished count is persisted (under the tracker KV
// key) so it keeps climbing across restarts.
type Tracker struct {
	mu           sync.RWMutex
	store        *store.Store
	accomplished int
	activeTechs  int
	cron         *cron.Cron
}

const (
	trackerSeedCount = 1290
	minActiveTechs   = 9
	maxActiveTechs   = 18
)

func NewTracker(st *store.Store) *Tracker {
	t := &Tracker{store: st, accomplished: trackerSeedCount, activeTechs: 11}
	if raw, ok := st.GetValue(store.KeyTrackerCount); ok {
		if n, err := strconv.Atoi(raw); err == nil {
			t.accomplished = n
		}
	}
	return t
}

// Start schedules the counter simulation: an occasional accomplished-job
// tick and a slight technician fluctuation, mimicking 5-20 jobs a day.
func (t *Tracker) Start() {
	t.cron = cron.New(cron.WithSeconds())

	_, err := t.cron.AddFunc("*/12 * * * * *", func() {
		if rand.Float64() <= 0.85 {
			return
		}
		t.mu.Lock()
		t.accomplished++
		count := t.accomplished
		t.mu.Unlock()
		t.store.SetValue(store.KeyTrackerCount, strconv.Itoa(count))
	})
	if err != nil {
		log.Printf("Failed to schedule accomplished-job tick: %v", err)
	}

	_, err = t.cron.AddFunc("*/15 * * * * *", func() {
		if rand.Float64() <= 0.7 {
			return
		}
		change := 1
		if rand.Float64() <= 0.5 {
			change = -1
		}
		t.mu.Lock()
		next := t.activeTechs + change
		if next < minActiveTechs {
			next = minActiveTechs
		}
		if next > maxActiveTechs {
			next = maxActiveTechs
		}
		t.activeTechs = next
		t.mu.Unlock()
	})
	if err != nil {
		log.Printf("Failed to schedule technician fluctuation: %v", err)
	}

	t.cron.Start()
	log.Println("Service tracker started")
}

// Stop halts the simulation.
func (t *Tracker) Stop() {
	if t.cron != nil {
		t.cron.Stop()
	}
}

// Counters returns the current accomplished and active-technician counts.
func (t *Tracker) Counters() (accomplished, activeTechs int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.accomplished, t.activeTechs
}
