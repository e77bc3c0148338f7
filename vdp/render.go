package vdp

// renderScanline produces one row of output and commits it into the
// framebuffer (spec.md §4.4). Called once per visible scanline by Tick.
func (d *Device) renderScanline(v uint16) {
	backdrop := palette[d.reg.backdropColor()&0x0F]

	for x := range d.line {
		d.line[x] = backdrop
	}

	if d.reg.displayEnabled() {
		switch mode := d.reg.mode(); mode.Kind {
		case GraphicsI:
			d.renderGraphicsI(v, backdrop)
		case Text:
			d.renderText(v, backdrop)
		case GraphicsII:
			d.renderGraphicsII(v, backdrop)
		case Multicolor, Undocumented:
			// Multicolor rendering and undocumented bit combinations are
			// out of scope (spec.md Non-goals / §4.4): fall back to a
			// flat backdrop rather than corrupting memory or crashing.
		}
	}

	copy(d.framebuffer[int(v)*ScreenWidth:int(v+1)*ScreenWidth], d.line[:])
	for x := range d.line {
		d.line[x] = RGB{}
	}
}

// renderGraphicsI renders one scanline of Graphics I (mode 0): a 32x24
// grid of 8x8 tiles, one foreground/background color pair per 8
// consecutive pattern names (spec.md §4.4).
func (d *Device) renderGraphicsI(v uint16, backdrop RGB) {
	nameBase := d.reg.nameTableBase()
	patternBase := d.reg.patternGeneratorBase()
	colorBase := d.reg.colorTableBase()

	row := v >> 3
	intraRow := uint16(v & 7)

	for c := uint16(0); c < 32; c++ {
		nameByte := d.vram[(nameBase+row*32+c)&addrMask]
		patternByte := d.vram[(patternBase+uint16(nameByte)*8+intraRow)&addrMask]
		colorByte := d.vram[(colorBase+uint16(nameByte>>3))&addrMask]

		fg := resolveColor(colorByte>>4, backdrop)
		bg := resolveColor(colorByte&0x0F, backdrop)

		for p := 0; p < 8; p++ {
			x := int(c)*8 + p
			if patternByte&(1<<(7-p)) != 0 {
				d.line[x] = fg
			} else {
				d.line[x] = bg
			}
		}
	}
}

// renderText renders one scanline of Text mode (mode 1): 40 columns of
// 6-pixel-wide glyphs with an 8-pixel left margin and no per-tile color
// table (spec.md §4.4).
func (d *Device) renderText(v uint16, backdrop RGB) {
	nameBase := d.reg.nameTableBase()
	patternBase := d.reg.patternGeneratorBase()
	textColor := resolveColor(d.reg.textColor(), backdrop)

	row := v >> 3
	intraRow := uint16(v & 7)

	for c := uint16(0); c < 40; c++ {
		nameByte := d.vram[(nameBase+row*40+c)&addrMask]
		patternByte := d.vram[(patternBase+uint16(nameByte)*8+intraRow)&addrMask]

		for p := 0; p < 6; p++ {
			x := int(c)*6 + 8 + p
			if patternByte&(1<<(7-p)) != 0 {
				d.line[x] = textColor
			} else {
				d.line[x] = backdrop
			}
		}
	}
}

// renderGraphicsII renders one scanline of Graphics II (mode 2): the same
// 32x24 tile grid as Graphics I, but with the pattern and color tables
// segmented into three 2048-byte banks — one per vertical third of the
// screen — giving every pattern row its own color pair instead of
// sharing one pair across 8 names (SPEC_FULL.md §1.1).
func (d *Device) renderGraphicsII(v uint16, backdrop RGB) {
	nameBase := d.reg.nameTableBase()
	patternBase := d.reg.graphicsIIPatternBase()
	colorBase := d.reg.graphicsIIColorBase()

	row := v >> 3
	intraRow := uint16(v & 7)
	third := (row / 8) * 0x800

	for c := uint16(0); c < 32; c++ {
		nameByte := uint16(d.vram[(nameBase+row*32+c)&addrMask])
		rowOffset := nameByte*8 + intraRow

		patternByte := d.vram[(patternBase+third+rowOffset)&addrMask]
		colorByte := d.vram[(colorBase+third+rowOffset)&addrMask]

		fg := resolveColor(colorByte>>4, backdrop)
		bg := resolveColor(colorByte&0x0F, backdrop)

		for p := 0; p < 8; p++ {
			x := int(c)*8 + p
			if patternByte&(1<<(7-p)) != 0 {
				d.line[x] = fg
			} else {
				d.line[x] = bg
			}
		}
	}
}
