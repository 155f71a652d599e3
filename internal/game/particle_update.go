package game

import "math"

// Update advances every grain by one tick: gravity and air drag, candidate
// position, boundary response, pair response, commit. Grains are processed in
// creation order; each one resolves against the partially updated collection
// (single-pass relaxation), which keeps the result reproducible for a given
// order and seed. Afterwards, grains that fell past the eviction margin are
// removed.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	ps.settled = 0

	for i := range ps.P {
		p := &ps.P[i]

		p.VY += ps.cfg.Gravity * dt
		p.VX *= ps.cfg.AirDrag

		nx := p.X + p.VX*dt
		ny := p.Y + p.VY*dt

		ps.resolveBounds(&nx, &ny, p)
		ps.resolveContacts(i, &nx, &ny, p)

		p.X = nx
		p.Y = ny
	}

	// Evict fallen grains without reordering survivors.
	limit := ps.cfg.Height + ps.cfg.EvictMargin
	kept := ps.P[:0]
	for _, p := range ps.P {
		if p.Y <= limit {
			kept = append(kept, p)
		}
	}
	ps.P = kept
}

// resolveBounds clamps the candidate position against the world rectangle and
// applies the velocity response for each bound crossed. The checks are
// independent: a grain in a corner gets both the floor and the wall response.
func (ps *ParticleSystem) resolveBounds(nx, ny *float64, p *Particle) {
	if *ny+p.Radius >= ps.cfg.Height {
		*ny = ps.cfg.Height - p.Radius
		p.VY *= -ps.cfg.BounceDamping
		p.VX *= ps.cfg.Friction
		if math.Abs(p.VY) < ps.cfg.SettleSpeed {
			p.VY = 0
			if !p.Settled {
				ps.settled++
			}
			p.Settled = true
		} else {
			p.Settled = false
		}
	}
	if *nx-p.Radius <= 0 {
		*nx = p.Radius
		p.VX *= -ps.cfg.BounceDamping
	}
	if *nx+p.Radius >= ps.cfg.Width {
		*nx = ps.cfg.Width - p.Radius
		p.VX *= -ps.cfg.BounceDamping
	}
}
