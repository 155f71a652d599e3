package game

// Spawn emits up to SpawnBatch grains around the pointer position (px, py),
// each offset by independent uniform jitter on both axes, at rest, with a
// colour drawn uniformly from SandPalette. Returns the number actually
// spawned, which is zero once the system is at capacity.
func (ps *ParticleSystem) Spawn(px, py float64) int {
	n := ps.cfg.SpawnBatch
	if room := ps.Max - len(ps.P); n > room {
		n = room
	}
	j := ps.cfg.SpawnJitter
	for k := 0; k < n; k++ {
		ps.Add(Particle{
			X:      px + ps.rng.RangeF(-j, j),
			Y:      py + ps.rng.RangeF(-j, j),
			Radius: ps.cfg.Radius,
			Col:    SandPalette[ps.rng.Intn(len(SandPalette))],
		})
	}
	return n
}
