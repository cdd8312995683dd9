package sim

// nearestVehicle returns the closest vehicle strictly within radius of p.
// Ties keep the first one found.
func nearestVehicle(vehicles []Vehicle, p Point, radius float64) (VehicleID, bool) {
	best := NoVehicle
	bestD := radius
	for i := range vehicles {
		d := p.Dist(vehicles[i].Pos())
		if d < bestD {
			bestD = d
			best = VehicleID(i)
		}
	}
	return best, best != NoVehicle
}

// ToggleMount enters the nearest vehicle when on foot, or steps out when
// driving. It reports whether the mode changed.
func (s *State) ToggleMount() bool {
	p := &s.Player
	if p.OnFoot {
		id, ok := nearestVehicle(s.Vehicles, Point{X: p.X, Y: p.Y}, MountRadius)
		if !ok {
			return false
		}
		p.OnFoot = false
		p.Vehicle = id
		v := &s.Vehicles[id]
		s.emit(Event{Type: EventMounted, X: v.X, Y: v.Y, Vehicle: id, Police: v.Police})
		s.log.Debug().Int("vehicle", int(id)).Str("kind", v.Kind.String()).Msg("Entered vehicle")
		return true
	}

	id := p.Vehicle
	p.OnFoot = true
	p.Vehicle = NoVehicle
	if id != NoVehicle && int(id) < len(s.Vehicles) {
		v := &s.Vehicles[id]
		p.X, p.Y = v.X, v.Y
		s.emit(Event{Type: EventDismounted, X: v.X, Y: v.Y, Vehicle: id, Police: v.Police})
	}
	s.log.Debug().Int("vehicle", int(id)).Msg("Left vehicle")
	return true
}

// scanBumps raises the wanted level for every vehicle touching the
// player's car. Police contact always counts; civilian contact counts with
// CivilianBumpOdds. Any contact restarts the decay countdown.
func (s *State) scanBumps() {
	p := &s.Player
	if !p.Mounted() {
		return
	}
	car := s.Vehicles[p.Vehicle].Pos()
	for i := range s.Vehicles {
		if VehicleID(i) == p.Vehicle {
			continue
		}
		o := &s.Vehicles[i]
		if car.Dist(o.Pos()) >= BumpRadius {
			continue
		}
		gain := 0
		if o.Police {
			gain = 1
		} else if s.rng.Float64() < CivilianBumpOdds {
			gain = 1
		}
		s.WantedDecay = BumpDecayReset
		s.metrics.bump(o.Kind)
		s.emit(Event{Type: EventBump, X: o.X, Y: o.Y, Vehicle: o.ID, Police: o.Police, Value: gain})
		s.setWanted(p.Wanted + gain)
	}
}

// decayWanted drops one wanted star every WantedDecayStep seconds.
func (s *State) decayWanted(dt float64) {
	if s.Player.Wanted <= 0 {
		return
	}
	s.WantedDecay -= dt
	if s.WantedDecay <= 0 {
		s.setWanted(s.Player.Wanted - 1)
		s.WantedDecay = WantedDecayStep
	}
}

func (s *State) setWanted(level int) {
	if level < 0 {
		level = 0
	}
	if level > WantedMax {
		level = WantedMax
	}
	if level == s.Player.Wanted {
		return
	}
	s.Player.Wanted = level
	s.metrics.wanted(level)
	s.emit(Event{Type: EventWantedChanged, Value: level})
}
