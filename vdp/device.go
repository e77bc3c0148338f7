package vdp

// Device is a TMS9918A VDP core: VRAM, registers, address latch,
// read-prefetch buffer, scanline counter and framebuffer, all owned by
// value so a host can embed it without indirection.
type Device struct {
	vram [VRAMSize]uint8
	reg  registers

	addr       uint16 // 14-bit VRAM/address latch
	addrLatch  uint8  // low byte captured by the first control write
	writeLatch bool   // control-latch flag: false=expect first byte, true=expect second
	codeReg    uint8  // command code from the second control write (0-3)
	readBuffer uint8  // one-byte read-prefetch buffer

	status           uint8 // bit 7 = vblank; all other bits unused (no sprite subsystem)
	vCounter         uint16
	interruptPending bool

	line        [ScreenWidth]RGB
	framebuffer Framebuffer
}

// New creates a Device with randomized VRAM, matching real hardware's
// undefined power-on contents (spec.md §3).
func New() *Device {
	return newDevice(vramSeeder{zeroSeed: false})
}

// NewDeterministic creates a Device whose VRAM is filled from a fixed
// seed instead of the system clock, for reproducible tests.
func NewDeterministic() *Device {
	return newDevice(vramSeeder{zeroSeed: true})
}

func newDevice(seed vramSeeder) *Device {
	d := &Device{}
	seed.fill(d.vram[:])
	d.status = 0x80 // vblank=true at power-on (spec.md §3 lifecycle)
	return d
}

// Shutdown releases the device. This core has nothing to flush or
// close — all state lives in value-embedded arrays with no open handles
// — so it is a documented no-op, matching beevdp.cpp's own shutdown()
// (spec.md §6's operation list includes it alongside init).
func (d *Device) Shutdown() {}

// Width is the framebuffer width in pixels.
func (d *Device) Width() int { return ScreenWidth }

// Height is the framebuffer height in pixels.
func (d *Device) Height() int { return ScreenHeight }

// ScanlinesPerFrame is the number of Tick calls per frame.
func (d *Device) ScanlinesPerFrame() int { return ScanlinesPerFrame }

// Framebuffer returns the current frame. The host borrows it by
// reference; no copy is made, and only Tick mutates it.
func (d *Device) Framebuffer() *Framebuffer { return &d.framebuffer }

// resetLatch clears the control-latch flag. Called by every status read
// and data-port access (spec.md §3 invariants).
func (d *Device) resetLatch() {
	d.writeLatch = false
}

// incrementAddr advances the 14-bit address latch, wrapping from 0x3FFF
// back to 0x0000 (spec.md §4.3).
func (d *Device) incrementAddr() {
	d.addr = (d.addr + 1) & addrMask
}
