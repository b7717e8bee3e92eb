// Package audio provides procedural sound effects for game events. All
// effects are synthesized; there are no audio assets to load.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager handles audio playback for the game.
type Manager struct {
	mu sync.RWMutex

	// State
	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	sfxVolLevel  float64
	muted        bool

	// SFX mixer for concurrent sound effects
	sfxMixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		masterVolume: 1.0,
		sfxVolLevel:  1.0,
		sfxMixer:     &beep.Mixer{},
	}
}

// Init initializes the audio system. If the speaker cannot be opened
// (headless hosts), the manager stays uninitialized and every Play call is
// a silent no-op.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	// Start SFX mixer
	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		speaker.Clear()
	}
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetSFXVolume sets the SFX volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// GetSFXVolume returns the SFX volume.
func (m *Manager) GetSFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

// SetMuted toggles all playback off or on.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// play mixes a finite streamer in at the current SFX gain.
func (m *Manager) play(s beep.Streamer) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized || m.muted {
		return
	}
	gain := m.masterVolume * m.sfxVolLevel
	if gain <= 0 {
		return
	}

	speaker.Lock()
	m.sfxMixer.Add(&gainStreamer{streamer: s, gain: gain})
	speaker.Unlock()
}

// PlayMove plays a short tick for a horizontal move or rotation.
func (m *Manager) PlayMove() {
	m.play(newEnvelope(
		newOscillator(660, 40*time.Millisecond, waveSquare, m.sampleRate),
		40*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond, m.sampleRate))
}

// PlayLock plays the thud of a piece locking into the well.
func (m *Manager) PlayLock() {
	m.play(newEnvelope(
		newOscillator(140, 120*time.Millisecond, waveSine, m.sampleRate),
		120*time.Millisecond, 2*time.Millisecond, 80*time.Millisecond, m.sampleRate))
}

// PlayHardDrop plays a short noise burst for a hard drop impact.
func (m *Manager) PlayHardDrop() {
	m.play(newEnvelope(
		newNoiseBurst(90*time.Millisecond, m.sampleRate),
		90*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, m.sampleRate))
}

// PlayClear plays an upward sweep; pitch rises with the number of layers
// cleared at once.
func (m *Manager) PlayClear(layers int) {
	if layers < 1 {
		layers = 1
	}
	freq := 440 * math.Pow(2, float64(layers-1)/4)
	m.play(newEnvelope(
		newSweep(freq, freq*2, 280*time.Millisecond, m.sampleRate),
		280*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, m.sampleRate))
}

// PlayGameOver plays a falling tone.
func (m *Manager) PlayGameOver() {
	m.play(newEnvelope(
		newSweep(330, 82, 900*time.Millisecond, m.sampleRate),
		900*time.Millisecond, 5*time.Millisecond, 400*time.Millisecond, m.sampleRate))
}

// gainStreamer scales a finite streamer by a fixed factor.
type gainStreamer struct {
	streamer beep.Streamer
	gain     float64
}

func (g *gainStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= g.gain
		samples[i][1] *= g.gain
	}
	return n, ok
}

func (g *gainStreamer) Err() error { return nil }

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
