package game

// World dimensions (in pixels). The window maps 1:1 onto the world at the
// default zoom.
const (
	WorldWidth  = 1200
	WorldHeight = 800
)

// Window defaults.
const (
	WindowWidth  = WorldWidth
	WindowHeight = WorldHeight
)

// Particles.
const (
	MaxParticles      = 2000
	ParticleRadius    = 2.0
	MaxParticleRender = 32768
)

// Config carries every physics tuning value so a simulation can be built with
// non-default parameters at runtime. Zero values are not meaningful; start
// from DefaultConfig.
type Config struct {
	Width  float64 // world width in pixels
	Height float64 // world height in pixels

	Gravity float64 // downward acceleration, px/s^2
	AirDrag float64 // horizontal velocity multiplier applied every tick

	Friction      float64 // horizontal velocity multiplier on ground contact
	BounceDamping float64 // reflected-velocity magnitude on boundary contact
	SettleSpeed   float64 // vertical speed below which a grounded grain rests

	Restitution     float64 // fraction of closing speed returned on impact
	TangentFriction float64 // tangential velocity bled off per contact

	MaxParticles int
	Radius       float64 // uniform grain radius
	EvictMargin  float64 // distance below the floor before removal

	SpawnBatch  int     // grains emitted per spawn call
	SpawnJitter float64 // uniform offset around the pointer, both axes
}

func DefaultConfig() Config {
	return Config{
		Width:  WorldWidth,
		Height: WorldHeight,

		Gravity: 980.0,
		AirDrag: 0.999,

		Friction:      0.8,
		BounceDamping: 0.3,
		SettleSpeed:   50.0,

		Restitution:     0.2,
		TangentFriction: 0.1,

		MaxParticles: MaxParticles,
		Radius:       ParticleRadius,
		EvictMargin:  50.0,

		SpawnBatch:  3,
		SpawnJitter: 5.0,
	}
}
