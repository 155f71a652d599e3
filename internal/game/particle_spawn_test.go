package game

import "testing"

func TestSpawnCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxParticles = 5
	ps := newTestSystem(cfg)

	if got := ps.Spawn(600, 300); got != 3 {
		t.Fatalf("first spawn = %d, want 3", got)
	}
	if got := ps.Spawn(600, 300); got != 2 {
		t.Fatalf("second spawn = %d, want partial batch of 2", got)
	}
	for i := 0; i < 10; i++ {
		if got := ps.Spawn(600, 300); got != 0 {
			t.Fatalf("spawn past cap emitted %d", got)
		}
	}
	if ps.Count() != 5 {
		t.Errorf("count = %d, want 5", ps.Count())
	}
}

func TestSpawnJitterAndPalette(t *testing.T) {
	cfg := DefaultConfig()
	ps := newTestSystem(cfg)

	for ps.Count() < 300 {
		ps.Spawn(600, 300)
	}

	inPalette := func(c RGBA) bool {
		for _, pc := range SandPalette {
			if c == pc {
				return true
			}
		}
		return false
	}

	for i := range ps.P {
		p := &ps.P[i]
		if p.X < 600-cfg.SpawnJitter || p.X > 600+cfg.SpawnJitter {
			t.Fatalf("particle %d: X = %v outside jitter range", i, p.X)
		}
		if p.Y < 300-cfg.SpawnJitter || p.Y > 300+cfg.SpawnJitter {
			t.Fatalf("particle %d: Y = %v outside jitter range", i, p.Y)
		}
		if p.VX != 0 || p.VY != 0 {
			t.Fatalf("particle %d: spawned with velocity (%v, %v)", i, p.VX, p.VY)
		}
		if p.Radius != cfg.Radius {
			t.Fatalf("particle %d: radius = %v", i, p.Radius)
		}
		if !inPalette(p.Col) {
			t.Fatalf("particle %d: colour %v not in palette", i, p.Col)
		}
	}
}

func TestSpawnDeterministicForSeed(t *testing.T) {
	cfg := DefaultConfig()
	a := NewParticleSystem(cfg, 1234)
	b := NewParticleSystem(cfg, 1234)

	for i := 0; i < 20; i++ {
		a.Spawn(600, 300)
		b.Spawn(600, 300)
	}

	if a.Count() != b.Count() {
		t.Fatalf("counts differ: %d vs %d", a.Count(), b.Count())
	}
	for i := range a.P {
		if a.P[i] != b.P[i] {
			t.Fatalf("particle %d differs: %+v vs %+v", i, a.P[i], b.P[i])
		}
	}
}

func TestAddRespectsCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxParticles = 2
	ps := newTestSystem(cfg)

	if !ps.Add(Particle{Radius: 1}) || !ps.Add(Particle{Radius: 1}) {
		t.Fatal("Add rejected below capacity")
	}
	if ps.Add(Particle{Radius: 1}) {
		t.Error("Add accepted past capacity")
	}
}
