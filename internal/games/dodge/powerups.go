package dodge

// applyPowerUp gives p the effect and schedules its expiry. A later pickup of
// the same type supersedes the earlier expiry.
func (g *Game) applyPowerUp(p *Player, t PowerUpType) {
	switch t {
	case PowerUpHalfSize:
		g.resize(p, SizeHalf)
	case PowerUpDoubleSize:
		g.resize(p, SizeDouble)
	case PowerUpLasers:
		p.Lasers = true
	case PowerUpTwin:
		g.addTwin(p)
	default:
		return
	}

	p.tokens[t]++
	token := p.tokens[t]
	g.clock.After(ms(g.cfg.PowerUps.DurationMS), func() {
		if p.tokens[t] != token {
			return
		}
		g.revertPowerUp(p, t)
	})
	g.emit("power-up collected", "player", p.ID.String(), "type", t.String())
}

// revertPowerUp undoes an effect if it still applies. Reverting twice is the
// same as reverting once.
func (g *Game) revertPowerUp(p *Player, t PowerUpType) {
	switch t {
	case PowerUpHalfSize:
		if p.Size != SizeHalf {
			return
		}
		g.resize(p, SizeNormal)
	case PowerUpDoubleSize:
		if p.Size != SizeDouble {
			return
		}
		g.resize(p, SizeNormal)
	case PowerUpLasers:
		if !p.Lasers {
			return
		}
		p.Lasers = false
	case PowerUpTwin:
		if p.Twin == nil {
			return
		}
		p.Twin.cooldown.Cancel()
		p.Twin = nil
	default:
		return
	}
	g.emit("power-up expired", "player", p.ID.String(), "type", t.String())
}

// resize sets the size state on the player and its twin.
func (g *Game) resize(p *Player, s SizeState) {
	for _, r := range p.rockets() {
		r.setSize(s)
	}
}

// addTwin spawns a mirrored copy of p at its current position. A player
// never has more than one twin.
func (g *Game) addTwin(p *Player) {
	if p.Twin != nil {
		return
	}
	twin := &Player{
		ID:       p.ID,
		SpriteID: g.newID(),
		X:        p.X,
		Y:        p.Y,
		W:        p.W,
		H:        p.H,
		BaseW:    p.BaseW,
		BaseH:    p.BaseH,
		Facing:   p.Facing,
		Bounds:   p.Bounds,
		Bindings: p.Bindings.Mirrored(),
		Size:     p.Size,
		IsTwin:   true,
		spawnX:   p.X,
		spawnY:   p.Y,
	}
	p.Twin = twin
}
