package vdp

// Tick advances the device by one scanline (spec.md §4.5). Calling it
// exactly ScanlinesPerFrame times returns the scanline counter to its
// starting value and produces one full frame.
func (d *Device) Tick() {
	if d.vCounter == ScreenHeight {
		d.status |= 0x80
		if d.reg.frameInterruptEnabled() {
			d.interruptPending = true
		}
	} else if d.vCounter < ScreenHeight {
		d.renderScanline(d.vCounter)
	}

	d.vCounter++
	if d.vCounter == ScanlinesPerFrame {
		d.vCounter = 0
	}
}
