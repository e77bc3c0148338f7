package hostbus

import (
	"fmt"
	"io"
	"os"
)

// maxImageSize bounds a loaded program the same way romloader.maxROMSize
// bounds a ROM: a sanity limit, not a real hardware constraint.
const maxImageSize = 1 * 1024 * 1024

// LoadImage reads a flat binary program image from path. Unlike
// romloader.LoadROM, it never inspects magic bytes or extracts from an
// archive — this demo has no component that would consume anything but
// a raw image (SPEC_FULL.md §3), so archive support was never wired.
func LoadImage(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	lr := io.LimitReader(f, maxImageSize+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("image exceeds maximum size of %d bytes", maxImageSize)
	}
	return data, nil
}
