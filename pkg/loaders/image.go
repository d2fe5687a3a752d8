package loaders

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// ImageData is a packed 8-bit image: Height rows of Stride bytes each
type ImageData struct {
	Width    int
	Height   int
	Channels int
	Stride   int
	Pixels   []byte
}

// ToRGBA converts a packed RGB or RGBA byte buffer to an opaque *image.RGBA.
// A stride of 0 means rows are tightly packed (width*channels).
func ToRGBA(pixels []byte, width, height, channels, stride int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("unsupported channel count %d", channels)
	}
	if stride == 0 {
		stride = width * channels
	}
	if stride < width*channels {
		return nil, fmt.Errorf("stride %d shorter than row of %d bytes", stride, width*channels)
	}
	if need := stride*(height-1) + width*channels; len(pixels) < need {
		return nil, fmt.Errorf("pixel buffer has %d bytes, need %d", len(pixels), need)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := pixels[y*stride:]
		for x := 0; x < width; x++ {
			p := row[x*channels:]
			c := color.RGBA{R: p[0], G: p[1], B: p[2], A: 255}
			if channels == 4 {
				c.A = p[3]
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

// WritePNG encodes a packed byte buffer to a PNG file at path
func WritePNG(path string, pixels []byte, width, height, channels, stride int) error {
	img, err := ToRGBA(pixels, width, height, channels, stride)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", path, err)
	}
	return nil
}

// EncodePNG encodes a packed byte buffer as PNG to w
func EncodePNG(w io.Writer, pixels []byte, width, height, channels, stride int) error {
	img, err := ToRGBA(pixels, width, height, channels, stride)
	if err != nil {
		return err
	}
	return gg.NewContextForRGBA(img).EncodePNG(w)
}

// LoadImage loads a PNG image into a tightly packed RGB buffer
func LoadImage(filename string) (*ImageData, error) {
	img, err := gg.LoadPNG(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	data := &ImageData{
		Width:    width,
		Height:   height,
		Channels: 3,
		Stride:   width * 3,
		Pixels:   make([]byte, width*height*3),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// RGBA returns uint32 in [0, 65535]
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			offset := y*data.Stride + x*3
			data.Pixels[offset] = uint8(r >> 8)
			data.Pixels[offset+1] = uint8(g >> 8)
			data.Pixels[offset+2] = uint8(b >> 8)
		}
	}

	return data, nil
}
