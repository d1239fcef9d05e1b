// Package caustics bakes the static textures that approximate underwater
// light caustics: an RGB encoding of the ocean surface normals and a radial
// refraction-intensity falloff. Both are computed once at scene setup from
// the wave field at t=0 and never resynced with the animated surface.
package caustics

import (
	gomath "math"

	"github.com/wavetank/caustica/internal/engine/ocean"
)

// Image is a packed 8-bit RGB image, three bytes per texel, row-major.
type Image struct {
	Width, Height int
	Pix           []byte
}

// At returns the RGB bytes of texel (x, y).
func (img *Image) At(x, y int) (r, g, b byte) {
	off := (y*img.Width + x) * 3
	return img.Pix[off], img.Pix[off+1], img.Pix[off+2]
}

// BakeNormalMap samples the wave field's normal at t=0 over the same world
// (x, z) mapping the surface mesh uses, and encodes each component from
// [-1, 1] into a byte via (c/2 + 0.5) * 256. The scale is 256 rather than
// 255, so a component of exactly 1 lands on 256 and is clamped to 255.
func BakeNormalMap(f *ocean.WaveField, width, height int) *Image {
	img := &Image{Width: width, Height: height, Pix: make([]byte, width*height*3)}
	centerX, centerZ, fieldW, fieldL := f.Bounds()

	for y := 0; y < height; y++ {
		z := centerZ - fieldL/2 + float32(y)*fieldL/float32(height)
		for x := 0; x < width; x++ {
			wx := centerX - fieldW/2 + float32(x)*fieldW/float32(width)
			n := f.Normal(wx, z, 0)

			off := (y*width + x) * 3
			img.Pix[off] = encodeComponent(n.X())
			img.Pix[off+1] = encodeComponent(n.Y())
			img.Pix[off+2] = encodeComponent(n.Z())
		}
	}
	return img
}

// BakeRefractionMap synthesizes the focused-light intensity disk: a bright
// spot at the texture center fading linearly to zero by half the normalized
// radial distance, replicated across all three channels.
func BakeRefractionMap(width, height int) *Image {
	img := &Image{Width: width, Height: height, Pix: make([]byte, width*height*3)}
	centerX, centerY := width/2, height/2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			distX := float64(abs(centerX-x)) / float64(width) * 2
			distY := float64(abs(centerY-y)) / float64(height) * 2
			dist := gomath.Sqrt(distX*distX + distY*distY)

			var val int
			if 1-dist > 0 {
				val = int((1 - 2*dist) * 256)
			}
			v := clampByte(val)

			off := (y*width + x) * 3
			img.Pix[off] = v
			img.Pix[off+1] = v
			img.Pix[off+2] = v
		}
	}
	return img
}

// encodeComponent maps a normal component from [-1, 1] to a byte, clamping
// instead of letting the 256 scale wrap.
func encodeComponent(c float32) byte {
	return clampByte(int((c/2 + 0.5) * 256))
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
