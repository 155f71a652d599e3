package game

import "math"

// resolveContacts resolves grain i against every other grain. Only grain i is
// mutated: its candidate position is pushed out by half the overlap and its
// velocity receives the impulse, so the full sweep over the collection acts
// as a cheap one-sided relaxation rather than a symmetric solver.
func (ps *ParticleSystem) resolveContacts(i int, nx, ny *float64, p *Particle) {
	for j := range ps.P {
		if j == i {
			continue
		}
		q := &ps.P[j]

		dx := *nx - q.X
		dy := *ny - q.Y
		dist := math.Hypot(dx, dy)
		minDist := p.Radius + q.Radius
		if dist >= minDist || dist <= 0 {
			// Coincident grains have no defined normal; skip the pair
			// entirely rather than divide by zero.
			continue
		}

		nxn := dx / dist
		nyn := dy / dist

		// Positional correction: half the overlap, this grain only.
		push := (minDist - dist) * 0.5
		*nx += nxn * push
		*ny += nyn * push

		// Already separating: keep the correction, skip the impulse.
		relVel := (p.VX-q.VX)*nxn + (p.VY-q.VY)*nyn
		if relVel > 0 {
			continue
		}

		// Equal masses, so the two-body impulse denominator reduces to 2.
		imp := -(1 + ps.cfg.Restitution) * relVel / 2
		p.VX += imp * nxn
		p.VY += imp * nyn

		// Granular sticking: bleed off part of the tangential component.
		vn := p.VX*nxn + p.VY*nyn
		tx := p.VX - vn*nxn
		ty := p.VY - vn*nyn
		p.VX -= tx * ps.cfg.TangentFriction
		p.VY -= ty * ps.cfg.TangentFriction
	}
}
