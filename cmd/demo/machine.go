package main

import (
	z80 "github.com/user-none/go-chip-z80"

	"github.com/retrochip/tms9918a/internal/hostbus"
	"github.com/retrochip/tms9918a/vdp"
)

// cyclesPerScanline approximates a 3.58MHz Z80 clock divided across 262
// scanlines at 60Hz, the same per-scanline budgeting idea as the
// teacher's cyclesPerScanlineFP (emu/emulator.go), without the
// fixed-point accumulator this demo doesn't need at single-speed.
const cyclesPerScanline = 3580000 / 60 / vdp.ScanlinesPerFrame

// machine ties a Z80 CPU, the host bus and a vdp.Device together and
// runs them one scanline at a time, mirroring the shape of the
// teacher's Emulator.runScanlines (emu/emulator.go) stripped of audio,
// save states and region timing.
type machine struct {
	cpu    *z80.CPU
	bus    *hostbus.Bus
	device *vdp.Device
}

func newMachine(bus *hostbus.Bus, device *vdp.Device) *machine {
	return &machine{
		cpu:    z80.New(bus),
		bus:    bus,
		device: device,
	}
}

// RunFrame executes one frame: one scanline of CPU time budget per VDP
// tick, with the interrupt line re-checked after each tick the way the
// teacher checks it after every VDP register write or status read.
func (m *machine) RunFrame() {
	for i := 0; i < m.device.ScanlinesPerFrame(); i++ {
		consumed := 0
		for consumed < cyclesPerScanline {
			consumed += m.cpu.StepCycles(cyclesPerScanline - consumed)
		}
		m.device.Tick()
		m.cpu.INT(m.device.ConsumeInterrupt(), 0xFF)
	}
}

func (m *machine) Framebuffer() *vdp.Framebuffer {
	return m.device.Framebuffer()
}
