// Package audio plays impact clicks for wall bounces through the beep speaker
// Audio is optional: every method is safe on an uninitialized manager
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/ballpit/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker, a mixer of active clicks and the master volume
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *beep.Ctrl
	volume      *effects.Volume
	initialized bool

	lastClick time.Time
	now       func() time.Time

	log *zap.Logger
}

// NewSoundManager creates a manager; volume is a base-2 exponent, 0 is unity
func NewSoundManager(volume float64, log *zap.Logger) *SoundManager {
	if log == nil {
		log = zap.NewNop()
	}
	mixer := &beep.Mixer{}
	master := &beep.Ctrl{Streamer: mixer}
	return &SoundManager{
		mixer:  mixer,
		master: master,
		volume: &effects.Volume{Streamer: master, Base: 2, Volume: volume},
		now:    time.Now,
		log:    log,
	}
}

// Initialize opens the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	sm.log.Info("audio initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Cleanup silences and detaches all clicks
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.master.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; a cleared mixer stops all output
	sm.initialized = false
}

// SetMuted pauses or resumes the master stream
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.master.Paused = muted
}

// Muted reports the master mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.master.Paused
}

// PlayImpact queues one click for a frame's wall bounces
// Returns false when nothing was queued: no bounces, muted, throttled or not initialized
func (sm *SoundManager) PlayImpact(bounces int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || bounces <= 0 || sm.master.Paused {
		return false
	}
	return sm.enqueue(bounces)
}

// enqueue applies the throttle and adds a click to the mixer; caller holds mu
func (sm *SoundManager) enqueue(bounces int) bool {
	now := sm.now()
	if !sm.lastClick.IsZero() && now.Sub(sm.lastClick) < parameter.MinSoundGap {
		return false
	}
	sm.lastClick = now

	freq, amp := impactVoice(bounces)
	click := beep.Take(sampleRate.N(parameter.ImpactDuration), NewClickGenerator(sampleRate, freq, amp))

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.mixer.Add(click)
	return true
}
