// Package gfx holds the GPU-independent parts of the renderer: projection
// state, vertex layout for wall quads and image decoding.
package gfx

import "github.com/go-gl/mathgl/mgl32"

// Projection defaults.
const (
	DefaultFovY = 45.0 // degrees
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// Projection is a perspective projection whose aspect ratio follows the
// viewport. Field of view and clip planes never change after creation.
type Projection struct {
	fovY, near, far float32
	width, height   int
	matrix          mgl32.Mat4
}

func NewProjection(fovY, near, far float32, width, height int) *Projection {
	p := &Projection{fovY: fovY, near: near, far: far, width: 1, height: 1}
	p.Resize(width, height)
	return p
}

// Resize stores the new viewport size and rebuilds the matrix. A zero or
// negative dimension (minimised window) keeps the previous size.
func (p *Projection) Resize(width, height int) {
	if width > 0 && height > 0 {
		p.width, p.height = width, height
	}
	p.matrix = mgl32.Perspective(mgl32.DegToRad(p.fovY), p.Aspect(), p.near, p.far)
}

func (p *Projection) Matrix() mgl32.Mat4 { return p.matrix }

func (p *Projection) Aspect() float32 { return float32(p.width) / float32(p.height) }

func (p *Projection) Size() (width, height int) { return p.width, p.height }

func (p *Projection) FovY() float32 { return p.fovY }

func (p *Projection) Planes() (near, far float32) { return p.near, p.far }
