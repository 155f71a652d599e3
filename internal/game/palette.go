package game

// RGBA is an 8-bit per channel colour.
type RGBA struct {
	R, G, B, A uint8
}

// SandPalette holds the grain colours; spawn picks one uniformly.
var SandPalette = [5]RGBA{
	{R: 194, G: 178, B: 128, A: 255},
	{R: 205, G: 189, B: 140, A: 255},
	{R: 183, G: 165, B: 112, A: 255},
	{R: 214, G: 198, B: 152, A: 255},
	{R: 172, G: 154, B: 102, A: 255},
}

var Palette = struct {
	Background RGBA
	Text       RGBA
	TextDim    RGBA
	Glow       RGBA
	GlowCore   RGBA
}{
	Background: RGBA{R: 24, G: 22, B: 28, A: 255},
	Text:       RGBA{R: 235, G: 230, B: 215, A: 255},
	TextDim:    RGBA{R: 140, G: 135, B: 125, A: 255},
	Glow:       RGBA{R: 255, G: 214, B: 130, A: 255},
	GlowCore:   RGBA{R: 255, G: 245, B: 215, A: 255},
}
