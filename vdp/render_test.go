package vdp

import "testing"

func newZeroedDevice() *Device {
	d := NewDeterministic()
	for i := range d.vram {
		d.vram[i] = 0
	}
	return d
}

func pixelAt(fb *Framebuffer, x, y int) RGB {
	return fb[y*ScreenWidth+x]
}

func TestRenderScanline_DisplayDisabledFillsBackdrop(t *testing.T) {
	d := newZeroedDevice()
	writeRegister(d, 7, 0x04) // backdrop = 4
	// register 1 left at zero: display disabled

	d.renderScanline(0)

	want := palette[4]
	for x := 0; x < ScreenWidth; x++ {
		if got := pixelAt(&d.framebuffer, x, 0); got != want {
			t.Fatalf("pixel (%d,0): got %v, want %v", x, got, want)
		}
	}
}

func TestRenderScanline_BeyondVisibleRangeIsNoop(t *testing.T) {
	d := newZeroedDevice()
	d.framebuffer[191*ScreenWidth] = RGB{R: 9, G: 9, B: 9}

	// renderScanline is only ever invoked by Tick for v < ScreenHeight;
	// directly exercise the Tick boundary instead of calling it with an
	// out-of-range row.
	d.vCounter = uint16(ScreenHeight)
	d.Tick()

	if got := pixelAt(&d.framebuffer, 0, 191); got != (RGB{R: 9, G: 9, B: 9}) {
		t.Error("framebuffer row 191 was modified by a vblank-boundary tick")
	}
}

func TestRenderGraphicsI_GlyphColors(t *testing.T) {
	d := newZeroedDevice()
	writeRegister(d, 4, 1)    // pattern gen base 0x0800
	writeRegister(d, 2, 5)    // name table base 0x1400
	writeRegister(d, 3, 0x80) // color table base 0x2000
	writeRegister(d, 7, 0x04) // backdrop 4
	writeRegister(d, 1, 0xC0) // display on

	for a := 0x2000; a < 0x2800; a++ {
		d.vram[a] = 0xF4 // fg=white(15), bg=dark blue(4)
	}

	glyphA := [8]uint8{0x3C, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x66, 0x00}
	for row, b := range glyphA {
		d.vram[0x0800+0x41*8+row] = b
	}
	d.vram[0x1400] = 0x41 // name[0] = 'A'

	for row := 0; row < 8; row++ {
		d.renderScanline(uint16(row))
	}

	white := palette[15]
	blue := palette[4]
	for row, b := range glyphA {
		for p := 0; p < 8; p++ {
			want := blue
			if b&(1<<(7-p)) != 0 {
				want = white
			}
			if got := pixelAt(&d.framebuffer, p, row); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", p, row, got, want)
			}
		}
	}
}

func TestRenderText_HelloRow(t *testing.T) {
	d := newZeroedDevice()
	writeRegister(d, 2, 5)    // name table base 0x1400, away from the pattern table
	writeRegister(d, 1, 0xD0) // display on, text mode (M1=1)
	writeRegister(d, 7, 0xF4) // text=white(15), backdrop=4

	// 'H' pattern: top row is two vertical bars, e.g. 0x66, stored as
	// glyph (name) 0 at pattern-table base 0x0000.
	d.vram[0*8+0] = 0x66
	d.vram[0x1400+0] = 0x00 // name[0] = glyph 0

	d.renderScanline(0)

	white := palette[15]
	blue := palette[4]
	pat := uint8(0x66)
	for p := 0; p < 6; p++ {
		want := blue
		if pat&(1<<(7-p)) != 0 {
			want = white
		}
		if got := pixelAt(&d.framebuffer, 8+p, 0); got != want {
			t.Errorf("pixel (%d,0): got %v, want %v", 8+p, got, want)
		}
	}
	// pixel 14 is column 1's first pixel; bit 7 of 0x66 is clear, so it
	// shows backdrop (the pattern's low 2 bits are never drawn).
	if got := pixelAt(&d.framebuffer, 14, 0); got != blue {
		t.Errorf("pixel (14,0): got %v, want backdrop %v", got, blue)
	}
}

func TestRenderGraphicsII_PerRowColor(t *testing.T) {
	d := newZeroedDevice()
	writeRegister(d, 4, 0x00) // Graphics II pattern base 0x0000
	writeRegister(d, 3, 0x80) // Graphics II color base 0x2000
	writeRegister(d, 2, 0)    // name table base 0
	writeRegister(d, 1, 0xC0) // display on
	writeRegister(d, 0, 0x02) // M2 bit -> mode index should resolve to GraphicsII

	if mode := d.reg.mode(); mode.Kind != GraphicsII {
		t.Fatalf("expected GraphicsII mode, got %v (raw=%d)", mode.Kind, mode.Raw)
	}

	d.vram[0] = 0x07 // name byte for tile (0,0) in third 0

	// pattern addr = 0x0000 + 0*0x800 + 7*8 + row
	for row := 0; row < 8; row++ {
		d.vram[7*8+row] = 0xFF
	}
	// color addr = 0x2000 + 0*0x800 + 7*8 + row, distinct from pattern addr
	d.vram[0x2000+7*8+3] = 0x29 // fg=2, bg=9

	d.renderScanline(3)

	fg := palette[2]
	for p := 0; p < 8; p++ {
		if got := pixelAt(&d.framebuffer, p, 3); got != fg {
			t.Errorf("pixel (%d,3): got %v, want fg %v", p, got, fg)
		}
	}
}
