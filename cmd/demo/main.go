// Command demo drives a vdp.Device from a real Z80 program image,
// proving the port-level contract end to end the way cmd/standalone
// proves the teacher's emulator (SPEC_FULL.md §3).
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/retrochip/tms9918a/internal/hostbus"
	"github.com/retrochip/tms9918a/vdp"
)

func main() {
	imagePath := flag.String("rom", "", "path to a flat Z80 program image")
	live := flag.Bool("live", false, "open a live ebiten window instead of running headless")
	frames := flag.Int("frames", 60, "number of frames to run in headless mode")
	flag.Parse()

	if *imagePath == "" {
		log.Fatal("-rom is required")
	}

	image, err := hostbus.LoadImage(*imagePath)
	if err != nil {
		log.Fatal(err)
	}

	mem := hostbus.NewMemory(nil)
	if len(image) <= 0x2000 {
		mem.LoadBIOS(image)
	} else {
		mem = hostbus.NewMemory(image)
	}

	device := vdp.New()
	bus := hostbus.NewBus(mem, device)
	machine := newMachine(bus, device)

	if !*live {
		for i := 0; i < *frames; i++ {
			machine.RunFrame()
		}
		log.Printf("ran %d frames headless", *frames)
		return
	}

	ebiten.SetWindowTitle("tms9918a demo")
	ebiten.SetWindowSize(vdp.ScreenWidth*3, vdp.ScreenHeight*3)
	if err := ebiten.RunGame(newViewer(machine)); err != nil {
		log.Fatal(err)
	}
}
