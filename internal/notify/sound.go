package notify

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// ErrSoundUnavailable indicates the audio device could not be opened.
var ErrSoundUnavailable = errors.New("sound unavailable")

const (
	sampleRate  = beep.SampleRate(44100)
	pulseCount  = 3
	minPulse    = 50 * time.Millisecond
	defaultTone = 880
)

// SoundConfig tunes the alert tone.
type SoundConfig struct {
	Enabled     bool
	Volume      float64
	FrequencyHz int
	Pulse       time.Duration
}

// Sound plays a short pulsed sine tone through the default audio device.
type Sound struct {
	mu      sync.Mutex
	config  SoundConfig
	once    sync.Once
	initErr error

	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
}

// NewSound creates a sound notifier. The audio device is opened lazily on
// the first alert.
func NewSound(config SoundConfig) *Sound {
	return &Sound{
		config:      normalize(config),
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// SetConfig replaces the tone settings.
func (sound *Sound) SetConfig(config SoundConfig) {
	sound.mu.Lock()
	sound.config = normalize(config)
	sound.mu.Unlock()
}

// NotifyExpired plays the alert. Playback is asynchronous.
func (sound *Sound) NotifyExpired() error {
	sound.mu.Lock()
	config := sound.config
	sound.mu.Unlock()

	if !config.Enabled {
		return nil
	}
	return sound.Play(config)
}

// Play sounds the tone described by config even when it is disabled.
func (sound *Sound) Play(config SoundConfig) error {
	config = normalize(config)
	sound.once.Do(func() {
		if err := sound.initSpeaker(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			sound.initErr = fmt.Errorf("%w: %v", ErrSoundUnavailable, err)
		}
	})
	if sound.initErr != nil {
		return sound.initErr
	}

	sound.play(alertStreamer(config))
	return nil
}

// alertStreamer builds pulseCount tone pulses separated by equal silences.
func alertStreamer(config SoundConfig) beep.Streamer {
	pulseSamples := sampleRate.N(config.Pulse)
	parts := make([]beep.Streamer, 0, pulseCount*2)
	for i := 0; i < pulseCount; i++ {
		if i > 0 {
			parts = append(parts, beep.Silence(pulseSamples))
		}
		parts = append(parts, beep.Take(pulseSamples, sineTone(sampleRate, float64(config.FrequencyHz))))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   config.Volume,
	}
}

func sineTone(rate beep.SampleRate, frequency float64) beep.Streamer {
	step := 2 * math.Pi * frequency / float64(rate)
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			value := 0.5 * math.Sin(step*float64(position))
			samples[i][0] = value
			samples[i][1] = value
			position++
		}
		return len(samples), true
	})
}

func normalize(config SoundConfig) SoundConfig {
	if config.FrequencyHz <= 0 {
		config.FrequencyHz = defaultTone
	}
	if config.Pulse < minPulse {
		config.Pulse = minPulse
	}
	return config
}
