package hostbus

import "github.com/retrochip/tms9918a/vdp"

// Bus adapts Memory and a vdp.Device into the go-chip-z80 Bus interface,
// the same five-method shape as the teacher's emu.SMSBus (emu/bus.go).
type Bus struct {
	mem *Memory
	vdp *vdp.Device
}

// NewBus creates a Bus bridging memory and the VDP's two ports.
func NewBus(mem *Memory, device *vdp.Device) *Bus {
	return &Bus{mem: mem, vdp: device}
}

func (b *Bus) Fetch(addr uint16) uint8      { return b.mem.Get(addr) }
func (b *Bus) Read(addr uint16) uint8       { return b.mem.Get(addr) }
func (b *Bus) Write(addr uint16, val uint8) { b.mem.Set(addr, val) }

// In decodes port reads using the ColecoVision's partial address
// decoding: ports $A0-$BF all alias the VDP, with bit 0 choosing data
// ($BE) versus status ($BF). Everything else reads back $FF, since this
// demo wires no controller or expansion port.
func (b *Bus) In(port uint16) uint8 {
	addr := uint8(port)
	if addr&0xE0 == 0xA0 {
		if addr&0x01 == 0 {
			return b.vdp.ReadData()
		}
		return b.vdp.ReadStatus()
	}
	return 0xFF
}

// Out decodes port writes the same way In decodes reads.
func (b *Bus) Out(port uint16, val uint8) {
	addr := uint8(port)
	if addr&0xE0 == 0xA0 {
		if addr&0x01 == 0 {
			b.vdp.WriteData(val)
		} else {
			b.vdp.WriteControl(val)
		}
	}
}
