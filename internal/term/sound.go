package term

import (
	"fmt"
	"sync"
	"time"

	"brainrot-td/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

// toneFor picks the blip played for an event; spawns stay silent.
func toneFor(t event.EventType) (tone, bool) {
	switch t {
	case event.EnemyKilled:
		return tone{880, 50 * time.Millisecond}, true
	case event.AllyBought:
		return tone{520, 40 * time.Millisecond}, true
	case event.AllyMerged:
		return tone{660, 120 * time.Millisecond}, true
	case event.MergeRejected, event.PurchaseRejected:
		return tone{150, 150 * time.Millisecond}, true
	case event.GameEnded:
		return tone{990, 300 * time.Millisecond}, true
	}
	return tone{}, false
}

// SoundManager plays short sine blips for game events. It is an
// event.Listener; until Initialize succeeds it stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) OnEvent(e event.Event) {
	t, ok := toneFor(e.Type)
	if !ok {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return
	}
	blip := &effects.Gain{Streamer: beep.Take(sampleRate.N(t.duration), sine), Gain: -0.8}

	speaker.Lock()
	sm.mixer.Add(blip)
	speaker.Unlock()
}
