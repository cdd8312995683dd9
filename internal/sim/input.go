package sim

// Key names one held control. The capture layer maps devices onto these.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack        // reverse/brake pedal
	KeyLeft
	KeyRight
	KeyHandbrake
	KeyMountToggle
	KeyMinimapToggle
	KeyNextMission
	keyCount
)

var keyNames = [keyCount]string{
	KeyForward:       "forward",
	KeyBack:          "back",
	KeyLeft:          "left",
	KeyRight:         "right",
	KeyHandbrake:     "handbrake",
	KeyMountToggle:   "mount",
	KeyMinimapToggle: "minimap",
	KeyNextMission:   "mission",
}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Input is the set of keys held at the moment the tick samples it.
type Input struct {
	held [keyCount]bool
}

func (in *Input) Set(k Key, down bool) {
	if k < keyCount {
		in.held[k] = down
	}
}

func (in Input) Held(k Key) bool {
	return k < keyCount && in.held[k]
}

// With returns a copy of in with the given keys held.
func (in Input) With(keys ...Key) Input {
	for _, k := range keys {
		in.Set(k, true)
	}
	return in
}

// edgeTracker turns held keys into one-shot presses.
type edgeTracker struct {
	prev [keyCount]bool
}

// JustPressed reports a rising edge of k and remembers the current state.
func (e *edgeTracker) JustPressed(in Input, k Key) bool {
	down := in.Held(k)
	jp := down && !e.prev[k]
	e.prev[k] = down
	return jp
}

// axis returns +1, -1 or 0 for a pair of opposing keys.
func axis(in Input, neg, pos Key) float64 {
	v := 0.0
	if in.Held(pos) {
		v++
	}
	if in.Held(neg) {
		v--
	}
	return v
}
