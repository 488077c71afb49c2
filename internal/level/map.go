package level

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid extent of the test room (in world units, 1 unit = 1 cell).
const (
	GridWidth  = 20
	GridHeight = 20
)

// Wall is a vertical surface between two points on the X/Z plane.
// Start.X() is world X, Start.Y() is world Z.
type Wall struct {
	Start   mgl32.Vec2
	End     mgl32.Vec2
	Height  float32
	Texture int
}

// Sector is one enclosed room. Walls are not required to form a closed loop.
type Sector struct {
	Walls          []Wall
	FloorHeight    float32
	CeilingHeight  float32
	FloorTexture   int
	CeilingTexture int
}

// Map owns the sector geometry and a coarse occupancy grid used for
// point-in-wall queries. It is never modified after construction.
type Map struct {
	sectors []Sector
	width   int
	height  int
	grid    []bool // x-major: grid[x*height+z]
}

// New builds a map from sectors and rasterises every wall onto a
// width x height occupancy grid.
//
// Occupancy is an axis-aligned approximation: each wall marks every cell of
// its bounding box (clamped to the grid), so a diagonal wall covers its whole
// bounding rectangle rather than the line it traces.
func New(sectors []Sector, width, height int) *Map {
	m := &Map{
		sectors: sectors,
		width:   max(width, 0),
		height:  max(height, 0),
	}
	m.grid = make([]bool, m.width*m.height)
	if m.width == 0 || m.height == 0 {
		return m
	}
	for _, s := range m.sectors {
		for _, w := range s.Walls {
			m.markWall(w)
		}
	}
	return m
}

func (m *Map) markWall(w Wall) {
	x0 := cell(w.Start.X(), m.width)
	z0 := cell(w.Start.Y(), m.height)
	x1 := cell(w.End.X(), m.width)
	z1 := cell(w.End.Y(), m.height)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if z0 > z1 {
		z0, z1 = z1, z0
	}
	for x := x0; x <= x1; x++ {
		for z := z0; z <= z1; z++ {
			m.grid[x*m.height+z] = true
		}
	}
}

// IsWallAt reports whether the cell containing world point (x, z) is
// occupied. Coordinates are truncated to cell indices; anything outside the
// grid counts as a wall.
func (m *Map) IsWallAt(x, z float32) bool {
	// Compared as floats: int() of a huge or NaN value is undefined, and
	// truncation would put -0.5 in cell 0. NaN fails every comparison.
	if !(x >= 0 && x < float32(m.width) && z >= 0 && z < float32(m.height)) {
		return true
	}
	return m.grid[int(x)*m.height+int(z)]
}

// Sectors returns the map's sectors in construction order.
// Callers must treat the result as read-only.
func (m *Map) Sectors() []Sector { return m.sectors }

// Size returns the occupancy grid extent in cells.
func (m *Map) Size() (width, height int) { return m.width, m.height }

// WallCount returns the total number of walls across all sectors.
func (m *Map) WallCount() int {
	n := 0
	for _, s := range m.sectors {
		n += len(s.Walls)
	}
	return n
}

// String renders the occupancy grid, one line per z row, '#' for occupied
// cells and '.' for free ones.
func (m *Map) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for z := 0; z < m.height; z++ {
		for x := 0; x < m.width; x++ {
			if m.grid[x*m.height+z] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cell clamps coordinate v into [0, n) before truncating it to a cell index.
// NaN maps to cell 0.
func cell(v float32, n int) int {
	switch {
	case !(v > 0):
		return 0
	case v >= float32(n):
		return n - 1
	}
	return int(v)
}
