// Package audio plays the expiry alert: a generated chime, or an Ogg Vorbis
// file chosen in the config.
package audio

import (
	"Countdown/timer"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
)

// SampleRate is the rate the speaker is initialised with.
const SampleRate beep.SampleRate = 44100

const (
	chimeFreq = 880.0
	chimeBeep = 150 * time.Millisecond
	chimeGap  = 100 * time.Millisecond
)

// Player holds the decoded alert. A Player without a buffer is silent.
type Player struct {
	mu     sync.Mutex
	buffer *beep.Buffer
	volume float64
}

// NewPlayer initialises the speaker and loads the alert described by cfg.
// Failures are logged and leave the player silent.
func NewPlayer(cfg *timer.Config) *Player {
	p := &Player{volume: cfg.Volume}
	if !cfg.Sound {
		return p
	}

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v", err)
		return p
	}

	var (
		buf *beep.Buffer
		err error
	)
	if cfg.SoundFile != "" {
		log.Printf("Loading alert sound: %s", cfg.SoundFile)
		buf, err = DecodeFile(cfg.SoundFile, SampleRate)
		if err != nil {
			log.Printf("Failed to load %s, using chime: %v", cfg.SoundFile, err)
		}
	}
	if buf == nil {
		buf, err = Chime(SampleRate)
		if err != nil {
			log.Printf("Audio disabled: %v", err)
			return p
		}
	}
	p.buffer = buf
	return p
}

// Enabled reports whether Play makes a sound.
func (p *Player) Enabled() bool {
	return p != nil && p.buffer != nil
}

// Play starts the alert without waiting for it to finish.
func (p *Player) Play() {
	if !p.Enabled() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Play(&effects.Volume{
		Streamer: p.buffer.Streamer(0, p.buffer.Len()),
		Base:     2,
		Volume:   p.volume,
		Silent:   false,
	})
}

// Chime renders three short sine beeps.
func Chime(sr beep.SampleRate) (*beep.Buffer, error) {
	tone, err := generators.SineTone(sr, chimeFreq)
	if err != nil {
		return nil, fmt.Errorf("generate chime: %w", err)
	}

	n := sr.N(chimeBeep)
	gap := sr.N(chimeGap)
	// The tone is endless, so consecutive Takes continue the same wave.
	chime := beep.Seq(
		beep.Take(n, tone), beep.Silence(gap),
		beep.Take(n, tone), beep.Silence(gap),
		beep.Take(n, tone),
	)

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(chime)
	return buf, nil
}

// DecodeFile reads an Ogg Vorbis file into a buffer at sample rate sr.
func DecodeFile(path string, sr beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	streamer, format, err := vorbis.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sr {
		s = beep.Resample(4, format.SampleRate, sr, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: format.NumChannels, Precision: format.Precision})
	buf.Append(s)
	return buf, nil
}
