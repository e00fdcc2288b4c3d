package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
)

const (
	sampleRate = beep.SampleRate(constants.ChimeSampleRate)
)

// SoundManager plays the food chime through the system speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(constants.ChimeBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayChime plays the short food pickup tone. No-op when audio is not initialized
func (sm *SoundManager) PlayChime() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := chimeStreamer()
	if err != nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// chimeStreamer builds a fresh finite tone
func chimeStreamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, constants.ChimeFrequency)
	if err != nil {
		return nil, err
	}

	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(constants.ChimeDuration), sine),
		Base:     2,
		Volume:   constants.ChimeVolume,
	}, nil
}
