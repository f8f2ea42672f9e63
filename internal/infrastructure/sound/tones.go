// Package sound plays the simulation's sound requests.
package sound

import (
	"encoding/binary"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/hero/internal/application/system"
)

// volumes are the per-sound mix levels in [0, 1]
var volumes = map[system.Sound]float64{
	system.SoundJump:      0.5,
	system.SoundExplosion: 0.05,
	system.SoundSword:     0.2,
	system.SoundHit:       0.5,
	system.SoundSpawn:     0.3,
	system.SoundCoin:      0.8,
	system.SoundEnd:       0.5,
	system.SoundGrass:     0.1,
}

// Volume returns the mix level of s
func Volume(s system.Sound) float64 {
	if v, ok := volumes[s]; ok {
		return v
	}
	return 1
}

type tone struct {
	freq float64
	dur  time.Duration
}

var tones = map[system.Sound]tone{
	system.SoundJump:      {660, 80 * time.Millisecond},
	system.SoundExplosion: {90, 250 * time.Millisecond},
	system.SoundSword:     {880, 60 * time.Millisecond},
	system.SoundHit:       {220, 120 * time.Millisecond},
	system.SoundSpawn:     {520, 200 * time.Millisecond},
	system.SoundCoin:      {1320, 90 * time.Millisecond},
	system.SoundEnd:       {440, 400 * time.Millisecond},
	system.SoundGrass:     {180, 40 * time.Millisecond},
}

// Tone returns a finite sine streamer standing in for s, or nil if s has no tone
func Tone(sr beep.SampleRate, s system.Sound) beep.Streamer {
	t, ok := tones[s]
	if !ok {
		return nil
	}
	raw := rawTone(sr, t)
	if raw == nil {
		return nil
	}
	return &effects.Gain{Streamer: raw, Gain: Volume(s) - 1}
}

// rawTone is the tone at full volume
func rawTone(sr beep.SampleRate, t tone) beep.Streamer {
	sine, err := generators.SineTone(sr, t.freq)
	if err != nil {
		log.Printf("sound: tone %.0fHz: %v", t.freq, err)
		return nil
	}
	return beep.Take(sr.N(t.dur), sine)
}

// renderPCM drains st into 16-bit little endian stereo samples
func renderPCM(st beep.Streamer) []byte {
	if st == nil {
		return nil
	}
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := st.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// Tones plays each sound as a short synthesized tone through the beep speaker
type Tones struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	initialized bool
}

// NewTones creates a tone player at sample rate sr
func NewTones(sr beep.SampleRate) *Tones {
	return &Tones{sr: sr}
}

// Init opens the speaker
func (t *Tones) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := speaker.Init(t.sr, t.sr.N(time.Second/10)); err != nil {
		return err
	}
	t.initialized = true
	return nil
}

// Play queues the tone for s. It is a no-op before Init.
func (t *Tones) Play(s system.Sound) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}
	if st := Tone(t.sr, s); st != nil {
		speaker.Play(st)
	}
}

// Close silences everything still playing
func (t *Tones) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		speaker.Clear()
		t.initialized = false
	}
}
