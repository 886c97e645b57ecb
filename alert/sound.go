package alert

import (
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneFreq     = 880
	toneDuration = 400 * time.Millisecond
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// playTone plays a short sine tone and blocks until it has finished. If the
// speaker cannot be opened it falls back to the system beep.
func playTone() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})

	if speakerErr != nil {
		return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
	}

	tone, err := generators.SineTone(sampleRate, toneFreq)
	if err != nil {
		return errTone.Wrap(err)
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(toneDuration), tone),
		beep.Callback(func() {
			close(done)
		}),
	))

	<-done

	return nil
}
