package game

import (
	"math"
	"testing"
)

const testDt = 1.0 / 60.0

func newTestSystem(cfg Config) *ParticleSystem {
	return NewParticleSystem(cfg, 42)
}

func TestGravityMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	ps := newTestSystem(cfg)
	ps.Add(Particle{X: 600, Y: 50, Radius: cfg.Radius})

	for i := 0; i < 10; i++ {
		prev := ps.P[0].VY
		ps.Update(testDt)
		got := ps.P[0].VY
		want := prev + cfg.Gravity*testDt
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("tick %d: VY = %v, want %v", i, got, want)
		}
		if got <= prev {
			t.Fatalf("tick %d: VY did not increase (%v -> %v)", i, prev, got)
		}
	}
}

func TestGroundRestEndToEnd(t *testing.T) {
	cfg := DefaultConfig()
	ps := newTestSystem(cfg)
	ps.Add(Particle{X: 600, Y: 0, Radius: cfg.Radius})

	for i := 0; i < 200; i++ {
		ps.Update(testDt)
	}

	p := &ps.P[0]
	wantY := cfg.Height - cfg.Radius
	if math.Abs(p.Y-wantY) > 1e-6 {
		t.Errorf("Y = %v, want %v", p.Y, wantY)
	}
	if p.VY != 0 {
		t.Errorf("VY = %v, want 0", p.VY)
	}
	if !p.Settled {
		t.Error("particle did not settle")
	}

	// No drift once at rest.
	for i := 0; i < 50; i++ {
		ps.Update(testDt)
	}
	if math.Abs(p.Y-wantY) > 1e-6 || p.VY != 0 {
		t.Errorf("drift after rest: Y = %v, VY = %v", p.Y, p.VY)
	}
}

func TestWallReflection(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		x, vx  float64
		wantX  float64
		wantVX float64
	}{
		{"left wall", 5, -300, cfg.Radius, 300 * cfg.AirDrag * cfg.BounceDamping},
		{"right wall", cfg.Width - 5, 300, cfg.Width - cfg.Radius, -300 * cfg.AirDrag * cfg.BounceDamping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := newTestSystem(cfg)
			ps.Add(Particle{X: tt.x, Y: 400, VX: tt.vx, Radius: cfg.Radius})
			ps.Update(testDt)

			p := &ps.P[0]
			if p.X != tt.wantX {
				t.Errorf("X = %v, want %v", p.X, tt.wantX)
			}
			if math.Abs(p.VX-tt.wantVX) > 1e-9 {
				t.Errorf("VX = %v, want %v", p.VX, tt.wantVX)
			}
		})
	}
}

func TestBoundedAndFinite(t *testing.T) {
	cfg := DefaultConfig()
	ps := newTestSystem(cfg)

	rng := NewRand(7)
	for i := 0; i < 60; i++ {
		ps.Add(Particle{
			X:      rng.RangeF(0, cfg.Width),
			Y:      rng.RangeF(0, cfg.Height),
			VX:     rng.RangeF(-500, 500),
			VY:     rng.RangeF(-500, 500),
			Radius: cfg.Radius,
			Col:    SandPalette[rng.Intn(len(SandPalette))],
		})
	}

	const eps = 8.0 // contact pushes may briefly nudge a grain past a wall
	for tick := 0; tick < 120; tick++ {
		ps.Update(testDt)
		for i := range ps.P {
			p := &ps.P[i]
			for _, v := range []float64{p.X, p.Y, p.VX, p.VY} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("tick %d particle %d: non-finite state %+v", tick, i, *p)
				}
			}
			if p.X < -eps || p.X > cfg.Width+eps {
				t.Fatalf("tick %d particle %d: X = %v out of bounds", tick, i, p.X)
			}
			if p.Y > cfg.Height+cfg.EvictMargin {
				t.Fatalf("tick %d particle %d: Y = %v past eviction margin", tick, i, p.Y)
			}
		}
	}
}

func TestEvictionPreservesOrder(t *testing.T) {
	cfg := DefaultConfig()
	ps := newTestSystem(cfg)

	ps.Add(Particle{X: 100, Y: 400, Radius: cfg.Radius, Col: SandPalette[0]})
	ps.Add(Particle{X: 200, Y: cfg.Height + 51, Radius: cfg.Radius, Col: SandPalette[1]})
	ps.Add(Particle{X: 300, Y: 400, Radius: cfg.Radius, Col: SandPalette[2]})

	ps.Update(testDt)

	if ps.Count() != 2 {
		t.Fatalf("count = %d, want 2", ps.Count())
	}
	if ps.P[0].Col != SandPalette[0] || ps.P[1].Col != SandPalette[2] {
		t.Errorf("survivor order changed: %v, %v", ps.P[0].Col, ps.P[1].Col)
	}
	if ps.P[0].X != 100 || ps.P[1].X != 300 {
		t.Errorf("survivor positions: %v, %v", ps.P[0].X, ps.P[1].X)
	}
}

func TestZeroDtIsNoOp(t *testing.T) {
	cfg := DefaultConfig()
	ps := newTestSystem(cfg)
	ps.Add(Particle{X: 600, Y: 300, VX: 10, VY: 20, Radius: cfg.Radius})

	before := ps.P[0]
	ps.Update(0)
	if ps.P[0] != before {
		t.Errorf("Update(0) mutated particle: %+v -> %+v", before, ps.P[0])
	}
}
