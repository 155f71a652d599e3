package main

import (
	"flag"

	"github.com/4ster-light/sand/internal/game"
)

func main() {
	cfg := game.DefaultConfig()

	flag.Float64Var(&cfg.Gravity, "gravity", cfg.Gravity, "gravity acceleration (px/s^2)")
	flag.Float64Var(&cfg.AirDrag, "air-drag", cfg.AirDrag, "horizontal velocity multiplier per tick")
	flag.Float64Var(&cfg.Friction, "friction", cfg.Friction, "ground friction multiplier")
	flag.Float64Var(&cfg.BounceDamping, "bounce", cfg.BounceDamping, "boundary bounce damping")
	flag.Float64Var(&cfg.Restitution, "restitution", cfg.Restitution, "grain collision restitution")
	flag.Float64Var(&cfg.SettleSpeed, "settle-speed", cfg.SettleSpeed, "vertical speed below which a grain rests (px/s)")
	flag.Float64Var(&cfg.Radius, "radius", cfg.Radius, "grain radius (px)")
	flag.IntVar(&cfg.MaxParticles, "max-particles", cfg.MaxParticles, "particle cap")
	flag.IntVar(&cfg.SpawnBatch, "spawn-batch", cfg.SpawnBatch, "grains emitted per frame while pouring")
	listen := flag.String("listen", "", "serve particle snapshots over websocket on this address (e.g. :5000)")
	flag.Parse()

	game.RunDesktop(cfg, *listen)
}
