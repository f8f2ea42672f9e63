package sound

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/younwookim/hero/internal/application/system"
)

// Ebiten plays decoded clips through an ebiten audio context
type Ebiten struct {
	ctx   *audio.Context
	clips map[system.Sound][]byte
}

// NewEbiten loads sfx/<name>.wav for every sound from fsys.
// Sounds without a file fall back to a synthesized tone. fsys may be nil.
func NewEbiten(ctx *audio.Context, fsys fs.FS) *Ebiten {
	return &Ebiten{
		ctx:   ctx,
		clips: LoadClips(fsys, ctx.SampleRate()),
	}
}

// Play starts a fresh player for s and returns immediately
func (a *Ebiten) Play(s system.Sound) {
	pcm, ok := a.clips[s]
	if !ok {
		return
	}
	p := a.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(Volume(s))
	p.Play()
}

// LoadClips decodes every sound to PCM at sampleRate
func LoadClips(fsys fs.FS, sampleRate int) map[system.Sound][]byte {
	clips := make(map[system.Sound][]byte, len(system.Sounds))
	for _, s := range system.Sounds {
		if fsys != nil {
			pcm, err := decodeClip(fsys, "sfx/"+string(s)+".wav", sampleRate)
			if err == nil {
				clips[s] = pcm
				continue
			}
			log.Printf("sound: %v, using a tone", err)
		}
		// Tone volume is applied by the player
		if t, ok := tones[s]; ok {
			clips[s] = renderPCM(rawTone(beep.SampleRate(sampleRate), t))
		}
	}
	return clips
}

func decodeClip(fsys fs.FS, path string, sampleRate int) ([]byte, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return pcm, nil
}
