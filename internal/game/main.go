package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/4ster-light/sand/internal/telemetry"
)

// How often snapshots go out to websocket observers (every Nth frame).
const telemetryInterval = 6

// Minimum spacing between pour sound grains.
const pourSoundGap = 0.12

func RunDesktop(cfg Config, listenAddr string) {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SAND_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(
		float32(Palette.Background.R)/255.0,
		float32(Palette.Background.G)/255.0,
		float32(Palette.Background.B)/255.0,
		1.0,
	)

	ps := NewParticleSystem(cfg, seed)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	var srv *telemetry.Server
	if listenAddr != "" {
		srv = telemetry.NewServer(listenAddr)
		srv.Start()
		defer srv.Close()
	}

	input := NewInput()

	// Reusable render buffer.
	var spriteBuf []float32

	paused := false
	fps := 60.0
	lastPour := -pourSoundGap
	frame := 0

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}
		if dt > 0 {
			fps = fps*0.9 + (1.0/dt)*0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeySpace) {
			paused = !paused
		}
		if input.JustPressed(window, glfw.KeyC) {
			ps.Clear()
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		cam := FitCamera(cfg, fbW, fbH)

		pouring := false
		var px, py float64
		if !paused && PointerHeld(window) {
			px, py = CursorWorldPos(window, cam, fbW, fbH)
			px = clampF(px, 0, cfg.Width)
			py = clampF(py, 0, cfg.Height)
			pouring = true
			if ps.Spawn(px, py) > 0 && now-lastPour >= pourSoundGap {
				lastPour = now
				PlaySound(SoundPour)
			}
		}

		if !paused {
			ps.Update(dt)
			if n := ps.SettledThisTick(); n > 0 {
				PlaySoundWithGain(SoundSettle, clampF(0.3+0.1*float64(n), 0, 1))
			}
		}

		frame++
		if srv != nil && frame%telemetryInterval == 0 {
			srv.Publish(snapshot(ps))
		}

		// Render.
		rend.BeginFrame(fbW, fbH)

		spriteBuf = ps.RenderData(spriteBuf)
		rend.DrawSprites(spriteBuf, cam, fbW, fbH)

		if pouring {
			// Soft emitter halo under the cursor while pouring.
			g := Palette.Glow
			c := Palette.GlowCore
			halo := []float32{
				float32(px), float32(py), 26.0,
				float32(g.R) / 255.0 * 0.35, float32(g.G) / 255.0 * 0.35, float32(g.B) / 255.0 * 0.35, 1, 0,
				float32(px), float32(py), 8.0,
				float32(c.R) / 255.0 * 0.8, float32(c.G) / 255.0 * 0.8, float32(c.B) / 255.0 * 0.8, 1, 0,
			}
			rend.DrawGlowSprites(halo, cam, fbW, fbH)
		}

		RenderHUD(rend, ps, fps, paused, fbW, fbH)
		rend.FlushText(fbW, fbH)

		window.SwapBuffers()
	}
}

// snapshot copies the live collection into wire form; the physics slice is
// never shared with the telemetry goroutines.
func snapshot(ps *ParticleSystem) telemetry.Snapshot {
	grains := make([]telemetry.Grain, 0, len(ps.P))
	for i := range ps.P {
		p := &ps.P[i]
		grains = append(grains, telemetry.Grain{
			X: float32(p.X),
			Y: float32(p.Y),
			C: fmt.Sprintf("#%02x%02x%02x", p.Col.R, p.Col.G, p.Col.B),
		})
	}
	return telemetry.Snapshot{
		Count:  ps.Count(),
		Max:    ps.Max,
		Grains: grains,
	}
}
