package game

type Camera struct {
	X, Y float64 // world-pixel space, camera centre
	Zoom float64 // screen pixels per world pixel
}

// FitCamera returns a camera centred on the world with the largest zoom that
// keeps the full world rectangle inside the framebuffer. Handles HiDPI
// framebuffers where window pixels and framebuffer pixels differ.
func FitCamera(cfg Config, fbW, fbH int) Camera {
	zx := float64(fbW) / cfg.Width
	zy := float64(fbH) / cfg.Height
	zoom := zx
	if zy < zoom {
		zoom = zy
	}
	if zoom <= 0 {
		zoom = 1
	}
	return Camera{
		X:    cfg.Width * 0.5,
		Y:    cfg.Height * 0.5,
		Zoom: zoom,
	}
}
