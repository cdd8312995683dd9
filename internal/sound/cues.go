package sound

import "math"

// Cue identifies one synthesized effect.
type Cue int

const (
	CueSiren Cue = iota
	CueBump
	CueDoor
	CueMissionOffered
	CueMissionComplete
	CueAllMissions
	CueAllClear
	CueRain
	cueCount
)

var cueNames = [cueCount]string{
	CueSiren:           "siren",
	CueBump:            "bump",
	CueDoor:            "door",
	CueMissionOffered:  "mission_offered",
	CueMissionComplete: "mission_complete",
	CueAllMissions:     "all_missions",
	CueAllClear:        "all_clear",
	CueRain:            "rain",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Generate renders cue as interleaved float32 stereo PCM. variant picks
// among timbres for cues that have more than one and seeds their noise,
// so equal arguments give equal clips. pan is in [-1,1].
func Generate(c Cue, variant uint64, pan float64) []byte {
	switch c {
	case CueSiren:
		return genSiren(variant, pan)
	case CueBump:
		return genBump(variant, pan)
	case CueDoor:
		return genDoor(variant, pan)
	case CueMissionOffered:
		return genOffered(pan)
	case CueMissionComplete:
		return genComplete(pan)
	case CueAllMissions:
		return genAllMissions()
	case CueAllClear:
		return genAllClear()
	case CueRain:
		return genRain(variant)
	}
	return nil
}

// genSiren: three police patterns. Wail sweeps, yelp chirps, hi-lo steps.
func genSiren(variant uint64, pan float64) []byte {
	v := int(variant % 3)
	dur := [3]float64{0.92, 0.86, 1.00}[v]
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	seed := uint64(0xC0D51E7) ^ (variant + 1)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate

		var freq float64
		switch v {
		case 0:
			c := math.Mod(t, 0.74) / 0.74
			tri := 1.0 - math.Abs(2*c-1.0)
			freq = 620.0 + 440.0*tri*tri*(3-2*tri)
		case 1:
			c := math.Mod(t, 0.22) / 0.22
			if c < 0.62 {
				u := c / 0.62
				freq = 820.0 + 520.0*u*u
			} else {
				u := (c - 0.62) / 0.38
				freq = 1140.0 - 300.0*u
			}
		default:
			c := math.Mod(t, 0.33) / 0.33
			if c < 0.5 {
				freq = 980.0 - 60.0*c
			} else {
				freq = 720.0 + 90.0*(c-0.5)
			}
		}
		freq *= 1.0 + 0.006*math.Sin(2*math.Pi*(5.0+0.4*float64(v))*t)
		phase += 2 * math.Pi * freq / SampleRate

		raw := math.Sin(phase)*0.84 +
			math.Sin(phase*2.0+0.22)*0.18 +
			math.Sin(phase*3.0+0.55)*0.07 +
			lcg(&seed)*0.012
		am := 0.90 + 0.10*math.Sin(2*math.Pi*2.7*t)
		s := softSat(raw*1.55) * 0.30 * am

		// Click-free onset and offset.
		env := clamp(t*34.0, 0, 1) * clamp((dur-t)*24.0, 0, 1)
		l, r := equalPower(s*env, pan)
		putStereoF32LR(buf, i, softSat(l), softSat(r))
	}
	return buf
}

// genBump: low body thump plus a short crunch of filtered noise.
func genBump(variant uint64, pan float64) []byte {
	n := int(0.22 * SampleRate)
	mix := make([]float64, n)
	seed := uint64(0xB0B) ^ variant
	pitch := 70 + float64(variant%4)*6
	lp := 0.0
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		thump := fm(t, pitch*(1-0.4*p), 0.5, 1.4) * math.Exp(-p*14) * 0.7
		lp = lp*0.8 + lcg(&seed)*0.2
		crunch := lp * math.Exp(-p*22) * 0.5
		mix[i] = thump + crunch
	}
	return mixdown(mix, pan)
}

// genDoor: a latch click followed by a muffled clunk.
func genDoor(variant uint64, pan float64) []byte {
	n := int(0.18 * SampleRate)
	mix := make([]float64, n)
	seed := uint64(0xD00A) ^ variant
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		click := 0.0
		if p < 0.04 {
			click = lcg(&seed) * (1 - p/0.04) * 0.4
		}
		clunk := 0.0
		if p > 0.25 {
			q := (p - 0.25) / 0.75
			clunk = math.Sin(2*math.Pi*110*t) * math.Exp(-q*12) * 0.45
		}
		mix[i] = click + clunk
	}
	return mixdown(mix, pan)
}

// genOffered: two quick rising FM pings.
func genOffered(pan float64) []byte {
	notes := []float64{659.25, 987.77}
	step := int(0.08 * SampleRate)
	total := len(notes)*step + int(0.12*SampleRate)
	return mixdown(bells(notes, step, total, 0.24), pan)
}

// genComplete: ascending bell staircase, each note ringing over the next.
func genComplete(pan float64) []byte {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	step := int(0.09 * SampleRate)
	total := len(notes)*step + int(0.25*SampleRate)
	return mixdown(bells(notes, step, total, 0.28), pan)
}

// genAllMissions: the completion staircase capped by a held major chord.
func genAllMissions() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	step := int(math.Floor(0.075 * SampleRate))
	chordAt := len(notes) * step
	total := chordAt + int(0.6*SampleRate)
	mix := bells(notes, step, total, 0.24)
	for i := chordAt; i < total; i++ {
		t := float64(i) / SampleRate
		p := float64(i-chordAt) / float64(total-chordAt)
		env := adsr(p, 0.02, 0.3, 0.5, 0.4)
		for _, f := range notes[:3] {
			mix[i] += fm(t, f, 2.0, 1.2*env) * env * 0.12
		}
	}
	return mixdown(mix, 0)
}

// genAllClear: a slow descending pair, the heat is off.
func genAllClear() []byte {
	dur := 0.6
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{783.99, 0.00},
		{587.33, 0.16},
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.01, 0.3, 0.3, 0.45)
			mix[i] += fm(t, note.freq, 2.0, 1.5*env) * env * 0.3
		}
	}
	return mixdown(mix, 0)
}

// genRain: a swell of band-limited noise with scattered droplets, panned
// slowly across the field.
func genRain(variant uint64) []byte {
	dur := 1.6
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x5EED) ^ variant
	lp1, lp2 := 0.0, 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		raw := lcg(&seed)
		lp1 = lp1*0.55 + raw*0.45
		lp2 = lp2*0.97 + raw*0.03
		hiss := (lp1 - lp2) * 0.22
		drop := 0.0
		if lcg(&seed) > 0.9993 {
			drop = 0.5
		}
		env := math.Sin(math.Pi * p)
		l, r := equalPower((hiss+drop)*env, 0.5*math.Sin(2*math.Pi*0.4*t))
		putStereoF32LR(buf, i, softSat(l), softSat(r))
	}
	return buf
}

// bells lays FM bell notes start-to-start step frames apart into a mix of
// total frames.
func bells(notes []float64, step, total int, level float64) []float64 {
	mix := make([]float64, total)
	for fi, freq := range notes {
		start := fi * step
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * level
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	return mix
}
