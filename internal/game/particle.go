package game

// Particle is a single grain of sand.
type Particle struct {
	X, Y   float64 // world position, pixels
	VX, VY float64 // velocity, px/s

	Radius  float64
	Col     RGBA
	Settled bool // resting on the floor; advisory, never gates physics
}

// ParticleSystem owns the live particle collection. The slice order is the
// creation order and is never shuffled; eviction compacts in place so the
// relative order of survivors is stable.
type ParticleSystem struct {
	Max int
	P   []Particle

	cfg Config
	rng *Rand

	settled int // grains that came to rest during the last Update
}

func NewParticleSystem(cfg Config, seed uint64) *ParticleSystem {
	if cfg.MaxParticles <= 0 {
		cfg.MaxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: cfg.MaxParticles,
		P:   make([]Particle, 0, cfg.MaxParticles),
		cfg: cfg,
		rng: NewRand(seed),
	}
}

// Add appends a particle unless the system is at capacity.
func (ps *ParticleSystem) Add(p Particle) bool {
	if len(ps.P) >= ps.Max {
		return false
	}
	ps.P = append(ps.P, p)
	return true
}

func (ps *ParticleSystem) Count() int { return len(ps.P) }

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.settled = 0
}

// SettledThisTick reports how many grains transitioned to rest during the
// most recent Update. Consumed by the audio layer.
func (ps *ParticleSystem) SettledThisTick() int { return ps.settled }

// RenderData fills buf with one point sprite per particle.
// Format: [x, y, size, r, g, b, a, rotation] * N.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ps.P {
		p := &ps.P[i]
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Radius*2),
			float32(p.Col.R)/255.0,
			float32(p.Col.G)/255.0,
			float32(p.Col.B)/255.0,
			float32(p.Col.A)/255.0,
			0,
		)
	}
	return buf
}
