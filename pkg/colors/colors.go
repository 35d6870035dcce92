package colors

import (
	"hash/crc32"
	"image/color"
	"sync"
)

var palette = []color.RGBA{
	{247, 10, 10, 255},
	{6, 245, 34, 255},
	{26, 160, 253, 255},
	{247, 127, 10, 255},
	{247, 21, 223, 255},
	{244, 251, 18, 255},
	{64, 216, 140, 255},
	{105, 20, 253, 255},
}

var (
	assigned   = make(map[string]color.RGBA)
	assignedMu sync.Mutex
)

// GetColor returns a stable colour for a series name. The first names seen get
// the palette colours, the rest are derived from a hash of the name.
func GetColor(name string) color.RGBA {
	assignedMu.Lock()
	defer assignedMu.Unlock()
	if c, ok := assigned[name]; ok {
		return c
	}
	c := hashToRGB(name)
	if n := len(assigned); n < len(palette) {
		c = palette[n]
	}
	assigned[name] = c
	return c
}

func hashToRGB(input string) color.RGBA {
	hash := crc32.ChecksumIEEE([]byte(input))
	return color.RGBA{byte(hash >> 8), byte(hash >> 16), byte(hash), 255}
}
