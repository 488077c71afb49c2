package game

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"

	"doomlike/internal/gfx"
)

// Texture is a 2D GL texture built from a decoded image.
type Texture struct {
	id       uint32
	Width    int
	Height   int
	Channels int
}

// LoadTexture decodes path and uploads it. Any failure is logged and the
// checkerboard placeholder is uploaded in its place.
func LoadTexture(path string, logger *log.Logger) *Texture {
	img, err := gfx.DecodeImage(path)
	if err != nil {
		logger.Warn("failed to load texture", "path", path, "error", err)
		img = gfx.Checkerboard()
	}
	return NewTexture(img)
}

// NewTexture uploads img with mipmaps, repeat wrapping and trilinear filtering.
func NewTexture(img *gfx.Image) *Texture {
	t := &Texture{Width: img.Width, Height: img.Height, Channels: img.Channels}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	var internal int32
	var format uint32
	switch img.Channels {
	case 1:
		internal, format = gl.R8, gl.RED
		// Sample gray as gray rather than red.
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_G, gl.RED)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_B, gl.RED)
	case 3:
		internal, format = gl.RGB8, gl.RGB
	default:
		internal, format = gl.RGBA8, gl.RGBA
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal,
		int32(img.Width), int32(img.Height), 0,
		format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// Bind binds the texture to unit slot.
func (t *Texture) Bind(slot uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
