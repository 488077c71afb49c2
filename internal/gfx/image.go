package gfx

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Image is decoded pixel data packed tightly with Channels bytes per pixel
// (1 = gray, 3 = RGB, 4 = RGBA). Rows are stored bottom-up, the order GL
// expects for texture uploads.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// DecodeImage reads a PNG or JPEG file.
func DecodeImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode image %s: empty %s image", path, format)
	}
	return pack(src), nil
}

func channelsOf(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

func pack(src image.Image) *Image {
	b := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Stride != b.Dx()*4 {
		nrgba = image.NewNRGBA(b)
		draw.Draw(nrgba, b, src, b.Min, draw.Src)
	}

	w, h := b.Dx(), b.Dy()
	ch := channelsOf(src)
	out := &Image{
		Pix:      make([]byte, w*h*ch),
		Width:    w,
		Height:   h,
		Channels: ch,
	}
	for y := 0; y < h; y++ {
		srcRow := nrgba.Pix[y*nrgba.Stride:]
		dstRow := out.Pix[(h-1-y)*w*ch:]
		for x := 0; x < w; x++ {
			copy(dstRow[x*ch:x*ch+ch], srcRow[x*4:x*4+ch])
		}
	}
	return out
}

// Checkerboard placeholder: 8x8 squares of 16 px, white and magenta.
const (
	CheckerSquare = 16
	CheckerSize   = CheckerSquare * 8
)

// Checkerboard returns the visibly-wrong texture used when an image can not
// be loaded.
func Checkerboard() *Image {
	img := &Image{
		Pix:      make([]byte, CheckerSize*CheckerSize*3),
		Width:    CheckerSize,
		Height:   CheckerSize,
		Channels: 3,
	}
	for y := 0; y < CheckerSize; y++ {
		for x := 0; x < CheckerSize; x++ {
			i := (y*CheckerSize + x) * 3
			evenRow := (y/CheckerSquare)%2 == 0
			evenCol := (x/CheckerSquare)%2 == 0
			img.Pix[i] = 255
			img.Pix[i+2] = 255
			if evenRow == evenCol {
				img.Pix[i+1] = 255
			}
		}
	}
	return img
}
