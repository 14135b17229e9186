package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestGenerateWaveform(t *testing.T) {
	waveform := generateWaveform()

	assert.Len(t, waveform, SampleRate)

	// square wave alternates between exactly two amplitude levels
	for i, sample := range waveform {
		if sample != toneVolume && sample != -toneVolume {
			t.Fatalf("sample %d has unexpected amplitude %d", i, sample)
		}
	}

	// the waveform is periodic at the tone frequency
	halfPeriod := SampleRate / (2 * ToneFrequency)
	assert.Equal(t, int16(toneVolume), waveform[0])
	assert.Equal(t, int16(-toneVolume), waveform[halfPeriod])
	assert.Equal(t, int16(toneVolume), waveform[2*halfPeriod])
}

func TestWaveformAccessor(t *testing.T) {
	m := New(Options{})

	waveform := m.Waveform()
	assert.NotNil(t, waveform)
	assert.Len(t, waveform, SampleRate)
}
