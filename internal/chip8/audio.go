package chip8

// Audio settings for the generated tone.
const (
	// SampleRate is the number of waveform samples per second.
	SampleRate = 22050

	// ToneFrequency is the beep frequency in Hz.
	ToneFrequency = 440

	// toneVolume is the amplitude of the square wave, well below
	// the int16 maximum to keep the beep from clipping or being harsh.
	toneVolume = 3000
)

// generateWaveform precomputes one second of a square wave tone as signed
// 16-bit mono samples. The buffer is generated once at machine creation and
// handed read-only to the audio playback adapter, which loops it while the
// sound timer is running.
func generateWaveform() []int16 {
	samples := make([]int16, SampleRate)
	halfPeriod := SampleRate / (2 * ToneFrequency)

	for i := range samples {
		if (i/halfPeriod)%2 == 0 {
			samples[i] = toneVolume
		} else {
			samples[i] = -toneVolume
		}
	}
	return samples
}
