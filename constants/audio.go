package constants

import "time"

// Eat cue
const (
	// SampleRate is the audio output rate
	SampleRate = 44100

	// EatCueFrequency is the pitch of the eat cue in Hz
	EatCueFrequency = 440

	// EatCueDuration is the length of the eat cue
	EatCueDuration = 50 * time.Millisecond

	// EatCueVolume is the linear gain of the eat cue
	EatCueVolume = 0.5

	// EatCueFade is the attack and release ramp that keeps the cue click-free
	EatCueFade = 5 * time.Millisecond

	// SpeakerBuffer is the speaker buffer duration
	SpeakerBuffer = 100 * time.Millisecond
)

// Boost hold emulation, terminals report key repeats but no release
const (
	// BoostHoldTimeout deactivates boost when no repeat arrives within this window
	BoostHoldTimeout = 250 * time.Millisecond
)
