package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/retrochip/tms9918a/vdp"
)

// viewer is an ebiten.Game that drives the machine one frame per Update
// and blits its framebuffer scaled-to-fit, grounded on the teacher's
// cli.Runner (cli/runner.go) and bridge/ebiten.Emulator.DrawToScreen
// (bridge/ebiten/emulator.go) — stripped of audio, input polling and
// crop-border handling, none of which this core has.
type viewer struct {
	machine   *machine
	offscreen *ebiten.Image
	rgba      []byte
	drawOpts  ebiten.DrawImageOptions
}

func newViewer(m *machine) *viewer {
	return &viewer{
		machine:   m,
		offscreen: ebiten.NewImage(vdp.ScreenWidth, vdp.ScreenHeight),
		rgba:      make([]byte, vdp.ScreenWidth*vdp.ScreenHeight*4),
	}
}

func (v *viewer) Update() error {
	v.machine.RunFrame()
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	fb := v.machine.Framebuffer()
	for i, px := range fb {
		v.rgba[i*4+0] = px.R
		v.rgba[i*4+1] = px.G
		v.rgba[i*4+2] = px.B
		v.rgba[i*4+3] = 0xFF
	}
	v.offscreen.WritePixels(v.rgba)

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	scaleX := float64(screenW) / float64(vdp.ScreenWidth)
	scaleY := float64(screenH) / float64(vdp.ScreenHeight)
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	scaledW := float64(vdp.ScreenWidth) * scale
	scaledH := float64(vdp.ScreenHeight) * scale
	offsetX := (float64(screenW) - scaledW) / 2
	offsetY := (float64(screenH) - scaledH) / 2

	v.drawOpts = ebiten.DrawImageOptions{}
	v.drawOpts.GeoM.Scale(scale, scale)
	v.drawOpts.GeoM.Translate(offsetX, offsetY)
	v.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(v.offscreen, &v.drawOpts)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
