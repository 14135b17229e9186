package gui

import (
	"encoding/binary"
	"fmt"

	"github.com/faiface/mainthread"
	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

// framesPerBuffer is the number of sample frames fitting the audio buffer.
const framesPerBuffer = 512

// Audio plays the machine's precomputed tone waveform through an SDL audio
// device while the sound timer is running.
type Audio struct {
	device   sdl.AudioDeviceID
	waveform []byte // tone samples encoded for queueing
	playing  bool
}

// NewAudio opens an audio device matching the machine's waveform format:
// signed 16-bit mono samples at the machine sample rate.
func NewAudio(waveform []int16) (*Audio, error) {
	a := &Audio{
		waveform: make([]byte, len(waveform)*2),
	}
	for i, sample := range waveform {
		binary.LittleEndian.PutUint16(a.waveform[i*2:], uint16(sample))
	}

	var err error
	mainthread.Call(func() {
		spec := sdl.AudioSpec{
			Freq:     chip8.SampleRate,
			Format:   sdl.AUDIO_S16LSB,
			Channels: 1,
			Samples:  framesPerBuffer,
		}
		a.device, err = sdl.OpenAudioDevice("", false, &spec, nil, 0)
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	return a, nil
}

// SetPlaying starts or stops tone playback. It is called once per frame and
// keeps the device queue topped up with waveform data while the tone plays.
func (a *Audio) SetPlaying(playing bool) {
	mainthread.Call(func() {
		if !playing {
			if a.playing {
				sdl.PauseAudioDevice(a.device, true)
				sdl.ClearQueuedAudio(a.device)
				a.playing = false
			}
			return
		}

		if sdl.GetQueuedAudioSize(a.device) < uint32(len(a.waveform)) {
			_ = sdl.QueueAudio(a.device, a.waveform)
		}
		if !a.playing {
			sdl.PauseAudioDevice(a.device, false)
			a.playing = true
		}
	})
}

// Close stops playback and closes the audio device.
func (a *Audio) Close() {
	mainthread.Call(func() {
		sdl.CloseAudioDevice(a.device)
	})
}
