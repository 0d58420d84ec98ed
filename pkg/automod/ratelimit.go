// Package automod implements the per-guild automoderation decision
// engine: the sliding-window rate tracker, content filter, raid guard,
// maintenance gate and the orchestrator that composes them.
package automod

import (
	"sync"
	"time"
)

// RateTracker keeps an exact sliding window of message timestamps per
// (guild, author). The window is exact rather than bucketed because the
// boundary gates a punitive action: a message is counted while its age is
// strictly under the window, and expired at exactly the window length.
//
// Windows for different authors never share a lock, so cross-author
// traffic does not contend.
type RateTracker struct {
	mu      sync.RWMutex
	windows map[string]*rateWindow
	limit   int
	window  time.Duration
}

type rateWindow struct {
	mu     sync.Mutex
	stamps []time.Time
}

// NewRateTracker creates a tracker allowing limit messages per window.
func NewRateTracker(limit int, window time.Duration) *RateTracker {
	return &RateTracker{
		windows: make(map[string]*rateWindow),
		limit:   limit,
		window:  window,
	}
}

func rateKey(guildID, authorID string) string {
	return guildID + ":" + authorID
}

func (rt *RateTracker) getWindow(key string) *rateWindow {
	rt.mu.RLock()
	w, ok := rt.windows[key]
	rt.mu.RUnlock()
	if ok {
		return w
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()
	if w, ok = rt.windows[key]; ok {
		return w
	}
	w = &rateWindow{}
	rt.windows[key] = w
	return w
}

// RecordAndCheck prunes timestamps that aged out, records now, and
// returns the resulting count plus whether it exceeds the limit.
func (rt *RateTracker) RecordAndCheck(guildID, authorID string, now time.Time) (int, bool) {
	w := rt.getWindow(rateKey(guildID, authorID))

	w.mu.Lock()
	defer w.mu.Unlock()

	kept := w.stamps[:0]
	for _, ts := range w.stamps {
		if now.Sub(ts) < rt.window {
			kept = append(kept, ts)
		}
	}
	w.stamps = append(kept, now)

	count := len(w.stamps)
	return count, count > rt.limit
}

// Forget drops the author's window, e.g. when the member leaves.
func (rt *RateTracker) Forget(guildID, authorID string) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	delete(rt.windows, rateKey(guildID, authorID))
}

// Sweep discards windows whose every timestamp has aged out and returns
// how many were removed. Called periodically by the scheduler.
func (rt *RateTracker) Sweep(now time.Time) int {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	removed := 0
	for key, w := range rt.windows {
		w.mu.Lock()
		empty := true
		for _, ts := range w.stamps {
			if now.Sub(ts) < rt.window {
				empty = false
				break
			}
		}
		w.mu.Unlock()

		if empty {
			delete(rt.windows, key)
			removed++
		}
	}
	return removed
}

// ActiveWindows returns the number of live windows.
func (rt *RateTracker) ActiveWindows() int {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return len(rt.windows)
}
