package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
)

const sampleRate = beep.SampleRate(constants.SampleRate)

// SoundManager plays the eat cue through the system speaker
// Every method is safe to call when audio is disabled or the device failed to open
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.Audio
	logger      *slog.Logger
	mixer       *beep.Mixer
	initialized bool
	played      uint64
}

// NewSoundManager creates a sound manager, nothing is opened until Initialize
func NewSoundManager(cfg config.Audio, logger *slog.Logger) *SoundManager {
	return &SoundManager{
		cfg:    cfg,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker, a disabled config is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Cleanup silences pending cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Note: beep doesn't provide a Close() method for speaker,
	// clearing the mixer under the speaker lock ensures no tail plays
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayEat queues one short tone, overlapping cues mix
func (sm *SoundManager) PlayEat() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	tone, err := NewTone(sampleRate, sm.cfg.Frequency, sm.cfg.Duration, constants.EatCueFade, sm.cfg.Volume)
	if err != nil {
		sm.logger.Warn("eat cue skipped", "err", err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(tone)
	speaker.Unlock()
	sm.played++
}

// Played returns how many cues reached the mixer
func (sm *SoundManager) Played() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}
