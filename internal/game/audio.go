package game

import (
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"

	"github.com/bossfear701/HighLife/internal/sim"
	"github.com/bossfear701/HighLife/internal/sound"
)

// maxSirens limits overlapping siren clips; more smear into noise.
const maxSirens = 2

// Audio plays synthesized effects in response to simulation events.
type Audio struct {
	ctx      *oto.Context
	ready    chan struct{}
	volume   float64
	director *sound.Director
	log      zerolog.Logger

	activeSirens int32
}

// NewAudio opens the output device. The context becomes usable once ready
// closes; effects requested before then are dropped.
func NewAudio(volume float64, log zerolog.Logger) (*Audio, error) {
	ctx, ready, err := oto.NewContext(sound.SampleRate, sound.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &Audio{
		ctx:      ctx,
		ready:    ready,
		volume:   volume,
		director: sound.NewDirector(),
		log:      log,
	}, nil
}

// Attach subscribes to every event on bus. listener reports where the
// player hears from and is called on the simulation goroutine.
func (a *Audio) Attach(bus *sim.EventBus, listener func() sim.Point) {
	bus.SubscribeAll(func(e sim.Event) {
		if p, ok := a.director.Handle(e, listener()); ok {
			a.Play(p)
		}
	})
}

// Play synthesizes and plays p without blocking the caller.
func (a *Audio) Play(p sound.Play) {
	if p.Gain <= 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	siren := p.Cue == sound.CueSiren
	if siren {
		if atomic.AddInt32(&a.activeSirens, 1) > maxSirens {
			atomic.AddInt32(&a.activeSirens, -1)
			return
		}
	}
	go func() {
		if siren {
			defer atomic.AddInt32(&a.activeSirens, -1)
		}
		samples := sound.Generate(p.Cue, p.Variant, p.Pan)
		if len(samples) == 0 {
			return
		}
		player := a.ctx.NewPlayer(sound.NewReader(samples))
		player.SetVolume(a.volume * p.Gain)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			a.log.Debug().Err(err).Str("cue", p.Cue.String()).Msg("Closing player")
		}
	}()
}
