package constants

import "time"

// Food chime
const (
	ChimeSampleRate = 48000
	ChimeBuffer     = 100 * time.Millisecond
	ChimeFrequency  = 880.0
	ChimeDuration   = 60 * time.Millisecond

	// ChimeVolume is a base-2 exponent, -1 halves the amplitude
	ChimeVolume = -1.0
)
