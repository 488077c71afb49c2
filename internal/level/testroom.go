package level

import "github.com/go-gl/mathgl/mgl32"

// Test room layout.
const (
	RoomSize      = 10.0
	RoomHeight    = 3.0
	PillarMin     = 4.0
	PillarMax     = 6.0
	WallTexture   = 0
	WallTextureB  = 1
	PillarTexture = 2
)

// TestRoom returns the built-in level: a 10x10 room with a 2x2 pillar in
// the middle. Outer walls alternate between the first two textures.
func TestRoom() []Sector {
	wall := func(x0, z0, x1, z1 float32, tex int) Wall {
		return Wall{
			Start:   mgl32.Vec2{x0, z0},
			End:     mgl32.Vec2{x1, z1},
			Height:  RoomHeight,
			Texture: tex,
		}
	}
	room := Sector{
		FloorHeight:    0,
		CeilingHeight:  RoomHeight,
		FloorTexture:   0,
		CeilingTexture: 0,
		Walls: []Wall{
			wall(0, 0, RoomSize, 0, WallTexture),
			wall(RoomSize, 0, RoomSize, RoomSize, WallTextureB),
			wall(RoomSize, RoomSize, 0, RoomSize, WallTexture),
			wall(0, RoomSize, 0, 0, WallTextureB),

			wall(PillarMin, PillarMin, PillarMax, PillarMin, PillarTexture),
			wall(PillarMax, PillarMin, PillarMax, PillarMax, PillarTexture),
			wall(PillarMax, PillarMax, PillarMin, PillarMax, PillarTexture),
			wall(PillarMin, PillarMax, PillarMin, PillarMin, PillarTexture),
		},
	}
	return []Sector{room}
}
