package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock measures run time, excluding pauses
// A reset clock starts paused, the first Resume starts the run and the wait before it is not a pause
type PausableClock struct {
	mu sync.RWMutex

	tp        TimeProvider
	startTime time.Time

	isPaused        atomic.Bool
	started         bool
	pauseStartTime  time.Time     // when current pause started
	totalPausedTime time.Duration // cumulative pause duration
}

// NewPausableClock creates a paused clock reading from tp
func NewPausableClock(tp TimeProvider) *PausableClock {
	pc := &PausableClock{tp: tp}
	pc.Reset()
	return pc
}

// Reset restarts the clock at zero in the paused state
func (pc *PausableClock) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.tp.Now()
	pc.startTime = now
	pc.pauseStartTime = now
	pc.totalPausedTime = 0
	pc.started = false
	pc.isPaused.Store(true)
}

// Elapsed returns run time (frozen while paused)
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	end := pc.tp.Now()
	if pc.isPaused.Load() {
		end = pc.pauseStartTime
	}
	return end.Sub(pc.startTime) - pc.totalPausedTime
}

// Pause stops run time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.tp.Now()
	}
}

// Resume continues run time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		now := pc.tp.Now()
		if pc.started {
			pc.totalPausedTime += now.Sub(pc.pauseStartTime)
		} else {
			pc.startTime = now
			pc.started = true
		}
		pc.pauseStartTime = time.Time{}
	}
}

// GetTotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.started && pc.isPaused.Load() {
		total += pc.tp.Now().Sub(pc.pauseStartTime)
	}
	return total
}
