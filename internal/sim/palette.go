package sim

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

var Palette = struct {
	Ground       RGB
	GroundNight  RGB
	Road         RGB
	Outline      RGB
	Window       RGB
	Park         RGB
	PoliceBody   RGB
	PoliceBar    RGB
	Player       RGB
	MissionRing  RGB
	MinimapBG    RGB
	MinimapLand  RGB
	MinimapDot   RGB
	Downtown     [3]RGB
	Suburb       [3]RGB
	Industrial   [3]RGB
	CivilianCars [4]RGB
}{
	Ground:       hex(0x0f141b),
	GroundNight:  hex(0x080b12),
	Road:         hex(0x121820),
	Outline:      hex(0x2a3340),
	Window:       hex(0x0c1220),
	Park:         hex(0x0f2a1f),
	PoliceBody:   hex(0x112233),
	PoliceBar:    hex(0x225555),
	Player:       hex(0xdddddd),
	MissionRing:  hex(0x99aadd),
	MinimapBG:    hex(0x0b1016),
	MinimapLand:  hex(0x1b2430),
	MinimapDot:   hex(0x99ccff),
	Downtown:     [3]RGB{hex(0x2a3543), hex(0x2e3a4a), hex(0x334155)},
	Suburb:       [3]RGB{hex(0x3a3a34), hex(0x40392f), hex(0x35403a)},
	Industrial:   [3]RGB{hex(0x2b2f33), hex(0x33302a), hex(0x26303a)},
	CivilianCars: [4]RGB{hex(0xaa3333), hex(0x33aaaa), hex(0xaaaa33), hex(0x888888)},
}
