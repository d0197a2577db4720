package renderer

import (
	"image"
	"image/color"

	"github.com/mwest/go-distribution-raytracer/pkg/core"
)

// ImageBuffer is the shared accumulation target for progressive
// rendering: per-pixel radiance sums and sample counts. The displayed
// image at any moment is the running average, so rendering can stop
// after any number of samples and still yield a valid estimate.
type ImageBuffer struct {
	width  int
	height int
	pixels []PixelStats
}

// NewImageBuffer creates an empty accumulation buffer
func NewImageBuffer(width, height int) *ImageBuffer {
	return &ImageBuffer{
		width:  width,
		height: height,
		pixels: make([]PixelStats, width*height),
	}
}

// Width returns the buffer width in pixels
func (b *ImageBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels
func (b *ImageBuffer) Height() int {
	return b.height
}

// At returns the accumulator cell for the pixel
func (b *ImageBuffer) At(x, y int) *PixelStats {
	return &b.pixels[y*b.width+x]
}

// AddSample accumulates one radiance sample into the pixel
func (b *ImageBuffer) AddSample(x, y int, radiance core.Vec3) {
	b.pixels[y*b.width+x].AddSample(radiance)
}

// Color returns the pixel's running average
func (b *ImageBuffer) Color(x, y int) core.Vec3 {
	return b.pixels[y*b.width+x].GetColor()
}

// Samples returns how many samples the pixel has accumulated
func (b *ImageBuffer) Samples(x, y int) int {
	return b.pixels[y*b.width+x].SampleCount
}

// ToImage converts the current averages into a displayable image
func (b *ImageBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			img.SetRGBA(x, y, vec3ToColor(b.Color(x, y)))
		}
	}
	return img
}

// Stats summarizes the buffer's sampling state for a pass that aimed
// at targetSamples per pixel
func (b *ImageBuffer) Stats(targetSamples int) RenderStats {
	stats := RenderStats{
		TotalPixels: b.width * b.height,
		MaxSamples:  targetSamples,
		MinSamples:  int(^uint(0) >> 1),
	}
	for i := range b.pixels {
		count := b.pixels[i].SampleCount
		stats.TotalSamples += count
		stats.MinSamples = min(stats.MinSamples, count)
		stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, count)
	}
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return stats
}

// vec3ToColor converts a radiance value to a display color with
// gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
