package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainCallsEveryNotifierAndSwallowsErrors(t *testing.T) {
	var calls []string
	failing := Func(func() error {
		calls = append(calls, "failing")
		return errors.New("no daemon")
	})
	ok := Func(func() error {
		calls = append(calls, "ok")
		return nil
	})

	chain := NewChain(nil, failing, nil, ok)
	require.NoError(t, chain.NotifyExpired())
	assert.Equal(t, []string{"failing", "ok"}, calls)
}

func TestLogNeverFails(t *testing.T) {
	assert.NoError(t, Log{}.NotifyExpired())
}

func newTestSound(config SoundConfig, initErr error) (*Sound, *int, *int) {
	inits, plays := 0, 0
	sound := NewSound(config)
	sound.initSpeaker = func(beep.SampleRate, int) error {
		inits++
		return initErr
	}
	sound.play = func(...beep.Streamer) {
		plays++
	}
	return sound, &inits, &plays
}

func TestSoundDisabledIsSilent(t *testing.T) {
	sound, inits, plays := newTestSound(SoundConfig{Enabled: false}, nil)

	require.NoError(t, sound.NotifyExpired())
	assert.Zero(t, *inits)
	assert.Zero(t, *plays)
}

func TestSoundInitialisesSpeakerOnce(t *testing.T) {
	sound, inits, plays := newTestSound(SoundConfig{Enabled: true, FrequencyHz: 440, Pulse: 100 * time.Millisecond}, nil)

	require.NoError(t, sound.NotifyExpired())
	require.NoError(t, sound.NotifyExpired())
	assert.Equal(t, 1, *inits)
	assert.Equal(t, 2, *plays)
}

func TestSoundUnavailableDevice(t *testing.T) {
	sound, inits, plays := newTestSound(SoundConfig{Enabled: true}, errors.New("no device"))

	err := sound.NotifyExpired()
	require.ErrorIs(t, err, ErrSoundUnavailable)
	err = sound.NotifyExpired()
	require.ErrorIs(t, err, ErrSoundUnavailable)
	assert.Equal(t, 1, *inits)
	assert.Zero(t, *plays)
}

func TestSetConfigTogglesPlayback(t *testing.T) {
	sound, _, plays := newTestSound(SoundConfig{Enabled: true}, nil)

	sound.SetConfig(SoundConfig{Enabled: false})
	require.NoError(t, sound.NotifyExpired())
	assert.Zero(t, *plays)

	sound.SetConfig(SoundConfig{Enabled: true})
	require.NoError(t, sound.NotifyExpired())
	assert.Equal(t, 1, *plays)
}

func TestAlertStreamerLength(t *testing.T) {
	config := normalize(SoundConfig{Enabled: true, Pulse: 100 * time.Millisecond})
	streamer := alertStreamer(config)

	pulse := sampleRate.N(config.Pulse)
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, pulse*(pulseCount*2-1), total)
}

func TestNormalizeFillsDefaults(t *testing.T) {
	config := normalize(SoundConfig{})
	assert.Equal(t, defaultTone, config.FrequencyHz)
	assert.Equal(t, minPulse, config.Pulse)
}

func TestPlayIgnoresEnabledFlag(t *testing.T) {
	sound, _, plays := newTestSound(SoundConfig{Enabled: false}, nil)

	require.NoError(t, sound.Play(SoundConfig{Enabled: false, FrequencyHz: 660}))
	assert.Equal(t, 1, *plays)
}
