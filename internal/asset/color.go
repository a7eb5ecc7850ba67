package asset

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/thecubes/internal/core"
)

// sampleSize is the side of the thumbnail used for color averaging.
const sampleSize = 8

// DominantColor averages the visible pixels of img and returns the
// nearest terminal palette color. Fully transparent images map to white.
func DominantColor(img image.Image) core.Color {
	thumb := image.NewNRGBA(image.Rect(0, 0, sampleSize, sampleSize))
	draw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), img, img.Bounds(), draw.Src, nil)

	var r, g, b, n uint32
	for y := 0; y < sampleSize; y++ {
		for x := 0; x < sampleSize; x++ {
			c := thumb.NRGBAAt(x, y)
			if c.A < 128 {
				continue
			}
			r += uint32(c.R)
			g += uint32(c.G)
			b += uint32(c.B)
			n++
		}
	}
	if n == 0 {
		return core.ColorWhite
	}
	return core.NearestColor(uint8(r/n), uint8(g/n), uint8(b/n))
}
