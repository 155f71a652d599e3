package game

import "fmt"

// RenderHUD queues the diagnostic text: live/max particle count, frame rate,
// and the control hints. FlushText must be called afterwards.
func RenderHUD(r *Renderer, ps *ParticleSystem, fps float64, paused bool, fbW, fbH int) {
	scale := float32(2.0)
	pad := 10

	counter := fmt.Sprintf("SAND %d/%d", ps.Count(), ps.Max)
	r.DrawString(counter, pad, pad, scale, Palette.Text)
	r.DrawString(fmt.Sprintf("FPS %d", int(fps+0.5)), pad, pad+int(float32(FontCellH)*scale)+4, scale, Palette.TextDim)

	if paused {
		msg := "PAUSED"
		r.DrawString(msg, fbW/2-TextWidth(msg, scale*2)/2, fbH/2, scale*2, Palette.Text)
	}

	hint := "HOLD LMB: POUR   SPACE: PAUSE   C: CLEAR"
	r.DrawString(hint, pad, fbH-pad-int(float32(FontCellH)*scale), scale, Palette.TextDim)
}
