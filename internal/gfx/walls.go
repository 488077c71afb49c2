package gfx

import "doomlike/internal/level"

// Wall vertex layout: position (3 floats) followed by UV (2 floats).
const (
	VertexFloats    = 5
	VertexStride    = VertexFloats * 4
	UVOffset        = 3 * 4
	WallVertexCount = 6
)

// WallVertices fills buf with two triangles spanning the wall from the
// floor (y=0) to its height, UV (0,0) at the start-bottom corner and (1,1)
// at the end-top corner.
func WallVertices(w level.Wall, buf *[WallVertexCount * VertexFloats]float32) {
	sx, sz := w.Start.X(), w.Start.Y()
	ex, ez := w.End.X(), w.End.Y()
	h := w.Height
	*buf = [WallVertexCount * VertexFloats]float32{
		sx, 0, sz, 0, 0,
		sx, h, sz, 0, 1,
		ex, h, ez, 1, 1,

		sx, 0, sz, 0, 0,
		ex, h, ez, 1, 1,
		ex, 0, ez, 1, 0,
	}
}
