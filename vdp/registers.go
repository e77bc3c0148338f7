package vdp

// ModeKind tags the four display modes the TMS9918A's M-bits can select,
// plus a catch-all for bit combinations this chip revision leaves
// undocumented (spec.md §9's "tagged mode dispatch").
type ModeKind int

const (
	GraphicsI ModeKind = iota
	Text
	GraphicsII
	Multicolor
	Undocumented
)

// DisplayMode is the decoded value of the M1/M2/M3 register bits. Raw
// carries the full 3-bit index (0-7) so Undocumented modes can still be
// reported without losing information.
type DisplayMode struct {
	Kind ModeKind
	Raw  uint8
}

// registers holds the eight TMS9918A mode registers and the fields the
// renderer and timing unit derive from them.
type registers struct {
	r [8]uint8
}

func (reg *registers) write(index int, value uint8) {
	reg.r[index] = value
}

func (reg *registers) get(index int) uint8 {
	return reg.r[index]
}

// mode decodes the M1/M2/M3 bits into the active display mode.
// bits {M3,M2,M1} = {R1.3, R0.1, R1.4}; m = (M3<<2)|(M2<<1)|M1 (spec.md §3).
func (reg *registers) mode() DisplayMode {
	m3 := (reg.r[1] >> 3) & 1
	m2 := (reg.r[0] >> 1) & 1
	m1 := (reg.r[1] >> 4) & 1
	m := (m3 << 2) | (m2 << 1) | m1

	kind := Undocumented
	switch m {
	case 0:
		kind = GraphicsI
	case 1:
		kind = Text
	case 2:
		kind = GraphicsII
	case 3:
		kind = Multicolor
	}
	return DisplayMode{Kind: kind, Raw: m}
}

func (reg *registers) displayEnabled() bool {
	return reg.r[1]&0x40 != 0
}

func (reg *registers) frameInterruptEnabled() bool {
	return reg.r[1]&0x20 != 0
}

func (reg *registers) nameTableBase() uint16 {
	return uint16(reg.r[2]&0x0F) << 10
}

func (reg *registers) colorTableBase() uint16 {
	return uint16(reg.r[3]) << 6
}

func (reg *registers) patternGeneratorBase() uint16 {
	return uint16(reg.r[4]&0x07) << 11
}

// graphicsIIPatternBase and graphicsIIColorBase use R4/R3 as bitmasks
// rather than direct shifts: only the bit that selects between the two
// 0x2000-wide halves of VRAM is significant in Graphics II (SPEC_FULL.md
// §1.1).
func (reg *registers) graphicsIIPatternBase() uint16 {
	return uint16(reg.r[4]&0x04) << 11
}

func (reg *registers) graphicsIIColorBase() uint16 {
	return uint16(reg.r[3]&0x80) << 6
}

func (reg *registers) textColor() uint8 {
	return reg.r[7] >> 4
}

func (reg *registers) backdropColor() uint8 {
	return reg.r[7] & 0x0F
}
