// Package sound synthesizes the game's effects as raw PCM and decides which
// effect a simulation event should trigger. Playback lives elsewhere; this
// package never opens an audio device.
package sound

import (
	"io"
	"math"
)

const (
	SampleRate    = 44100
	ChannelCount  = 2
	BytesPerFrame = 8 // two float32 channels
)

// Reader streams a generated clip to a player.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// Frames is the number of stereo frames in a clip.
func Frames(clip []byte) int {
	return len(clip) / BytesPerFrame
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat is a gentle saturator that never leaves [-1,1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1]. attack, decay and
// release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns one sample of a two-operator FM voice.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*BytesPerFrame) }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// equalPower splits s into left/right for pan in [-1,1].
func equalPower(s, pan float64) (left, right float64) {
	p := 0.5 + 0.5*clamp(pan, -1, 1)
	return s * math.Sqrt(1-p), s * math.Sqrt(p)
}

// mixdown writes a mono mix into a stereo clip, saturating each frame.
func mixdown(mix []float64, pan float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		l, r := equalPower(s, pan)
		putStereoF32LR(buf, i, softSat(l), softSat(r))
	}
	return buf
}
