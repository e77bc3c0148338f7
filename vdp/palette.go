package vdp

// RGB is a single 24-bit color sample, channels packed in display order.
type RGB struct {
	R, G, B uint8
}

// Framebuffer is the device's output: 256x192 pixels, row-major, origin
// top-left, three 8-bit channels per pixel, packed contiguously for
// compatibility with common 24-bit surface formats (spec.md §6).
type Framebuffer [ScreenWidth * ScreenHeight]RGB

// palette is the TMS9918A's fixed 16-entry color table. Index 0 is
// "transparent": the renderer always substitutes the backdrop color for
// it rather than drawing (0, 0, 0).
var palette = [16]RGB{
	0:  {0, 0, 0}, // transparent; sampled directly only as a backdrop color, see resolveColor
	1:  {0, 0, 0},
	2:  {33, 200, 66},
	3:  {94, 200, 120},
	4:  {84, 85, 237},
	5:  {125, 118, 252},
	6:  {212, 82, 77},
	7:  {66, 235, 245},
	8:  {252, 85, 84},
	9:  {255, 121, 120},
	10: {212, 193, 84},
	11: {230, 206, 128},
	12: {33, 176, 59},
	13: {201, 91, 186},
	14: {204, 204, 204},
	15: {255, 255, 255},
}

// resolveColor maps a 4-bit palette index to RGB, substituting backdrop
// for index 0 (spec.md §4.4).
func resolveColor(index uint8, backdrop RGB) RGB {
	index &= 0x0F
	if index == 0 {
		return backdrop
	}
	return palette[index]
}
