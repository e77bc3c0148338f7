// Package vdp implements the core of a TMS9918A Video Display Processor:
// the chip used for video output in the ColecoVision, MSX and TI-99/4A.
//
// A Device is a single stateful object. Hosts drive it with byte writes
// to two memory-mapped ports (WriteControl/WriteData), read it back
// through the same two (ReadStatus/ReadData), and step it forward one
// scanline at a time with Tick. Framebuffer returns the current frame,
// which is only ever mutated by Tick — no port operation touches it.
//
// Device is not safe for concurrent use. All operations run to
// completion synchronously; a host driving it from more than one
// goroutine must provide its own mutual exclusion.
package vdp

// ScreenWidth and ScreenHeight are the fixed dimensions of the visible
// framebuffer.
const (
	ScreenWidth  = 256
	ScreenHeight = 192
)

// ScanlinesPerFrame is the number of Tick calls that make up one NTSC
// frame (262 scanlines: 192 visible, 70 vertical blank).
const ScanlinesPerFrame = 262

// VRAMSize is the size of the chip's video RAM in bytes.
const VRAMSize = 0x4000

// addrMask wraps a VRAM/address-latch value to the 14-bit address space.
const addrMask = VRAMSize - 1
