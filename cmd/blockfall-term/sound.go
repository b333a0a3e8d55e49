package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     int
	duration time.Duration
}

var (
	toneClear    = tone{freq: 880, duration: 60 * time.Millisecond}
	toneGameOver = tone{freq: 220, duration: 400 * time.Millisecond}
)

// toneBank plays short sine blips. A nil bank is silent.
type toneBank struct{}

func newToneBank() (*toneBank, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &toneBank{}, nil
}

func (b *toneBank) play(t tone) {
	if b == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, float64(t.freq))
	if err != nil {
		log.WithError(err).Warn("Failed to build tone")
		return
	}
	speaker.Play(beep.Take(sampleRate.N(t.duration), sine))
}

func (b *toneBank) close() {
	if b == nil {
		return
	}
	speaker.Close()
}
