// Package display converts the CHIP-8 framebuffer into images.
package display

import (
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/retroenv/chip8vm/internal/chip8"
)

// Palette defines the colors of unlit and lit pixels.
type Palette struct {
	Off color.RGBA
	On  color.RGBA
}

// DefaultPalette draws white pixels on black.
var DefaultPalette = Palette{
	Off: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	On:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

// Framebuffer is the pixel content of a machine display, one byte per pixel.
type Framebuffer = [chip8.DisplaySize]byte

// RGBA returns the framebuffer as RGBA bytes in row order,
// 4 bytes per pixel.
func RGBA(fb *Framebuffer, palette Palette) []byte {
	pix := make([]byte, chip8.DisplaySize*4)
	for i, p := range fb {
		c := palette.Off
		if p != 0 {
			c = palette.On
		}
		pix[i*4] = c.R
		pix[i*4+1] = c.G
		pix[i*4+2] = c.B
		pix[i*4+3] = c.A
	}
	return pix
}

// Checksum returns the CRC32 of the framebuffer content.
func Checksum(fb *Framebuffer) uint32 {
	return crc32.ChecksumIEEE(fb[:])
}

// Image returns the framebuffer as an image, every pixel scaled to a
// scale x scale block.
func Image(fb *Framebuffer, palette Palette, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, chip8.DisplayWidth*scale, chip8.DisplayHeight*scale))
	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			c := palette.Off
			if fb[x+y*chip8.DisplayWidth] != 0 {
				c = palette.On
			}
			for dy := range scale {
				for dx := range scale {
					img.SetRGBA(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img
}

// WritePNG encodes the framebuffer as PNG image.
func WritePNG(w io.Writer, fb *Framebuffer, palette Palette, scale int) error {
	if err := png.Encode(w, Image(fb, palette, scale)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
