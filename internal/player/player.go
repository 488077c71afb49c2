package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"doomlike/internal/level"
)

// Defaults.
const (
	DefaultYaw         = -90.0 // facing -Z
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5 // units per second
	DefaultSensitivity = 0.1
	DefaultRadius      = 0.3
	MaxPitch           = 89.0
	collisionSamples   = 8
)

// Direction is a movement direction relative to the camera.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Player is the first-person camera. Front, right and up are derived from
// yaw and pitch and are only ever written by updateCameraVectors.
type Player struct {
	Position mgl32.Vec3

	yaw, pitch float32 // degrees

	front   mgl32.Vec3
	right   mgl32.Vec3
	up      mgl32.Vec3
	worldUp mgl32.Vec3

	Speed       float32
	Sensitivity float32
	Radius      float32
}

// New returns a player at pos looking down -Z.
func New(pos mgl32.Vec3) *Player {
	p := &Player{
		Position:    pos,
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		worldUp:     mgl32.Vec3{0, 1, 0},
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Radius:      DefaultRadius,
	}
	p.updateCameraVectors()
	return p
}

func (p *Player) Yaw() float32        { return p.yaw }
func (p *Player) Pitch() float32      { return p.pitch }
func (p *Player) Front() mgl32.Vec3   { return p.front }
func (p *Player) Right() mgl32.Vec3   { return p.right }
func (p *Player) Up() mgl32.Vec3      { return p.up }
func (p *Player) WorldUp() mgl32.Vec3 { return p.worldUp }

// Update is the per-frame hook. Movement happens in Move, so there is
// nothing to advance yet.
func (p *Player) Update(dt float64, m *level.Map) {}

// Look turns the camera. dy must already be in "up is positive" form:
// screen Y grows downward, so callers invert it before passing it in.
func (p *Player) Look(dx, dy float32) {
	p.yaw += dx * p.Sensitivity
	p.pitch += dy * p.Sensitivity
	p.pitch = clampF(p.pitch, -MaxPitch, MaxPitch)
	p.updateCameraVectors()
}

// SetOrientation sets yaw and pitch directly (pitch is clamped).
func (p *Player) SetOrientation(yaw, pitch float32) {
	p.yaw = yaw
	p.pitch = clampF(pitch, -MaxPitch, MaxPitch)
	p.updateCameraVectors()
}

// Move displaces the player along front or right by Speed*dt. The whole
// step is rejected if the destination collides; there is no sliding along
// the free axis. Reports whether the position changed.
func (p *Player) Move(dir Direction, dt float64, m *level.Map) bool {
	velocity := p.Speed * float32(dt)
	next := p.Position
	switch dir {
	case Forward:
		next = next.Add(p.front.Mul(velocity))
	case Backward:
		next = next.Sub(p.front.Mul(velocity))
	case Left:
		next = next.Sub(p.right.Mul(velocity))
	case Right:
		next = next.Add(p.right.Mul(velocity))
	default:
		return false
	}
	if p.CheckCollision(next, m) {
		return false
	}
	p.Position = next
	return true
}

// CheckCollision tests the candidate centre plus eight points spaced evenly
// on a circle of Radius around it against the map's occupancy grid.
func (p *Player) CheckCollision(pos mgl32.Vec3, m *level.Map) bool {
	if m.IsWallAt(pos.X(), pos.Z()) {
		return true
	}
	for i := 0; i < collisionSamples; i++ {
		angle := float64(i) * math.Pi / 4
		x := pos.X() + p.Radius*float32(math.Cos(angle))
		z := pos.Z() + p.Radius*float32(math.Sin(angle))
		if m.IsWallAt(x, z) {
			return true
		}
	}
	return false
}

// ViewMatrix looks from Position towards Position+front.
func (p *Player) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(p.Position, p.Position.Add(p.front), p.up)
}

func (p *Player) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(p.yaw))
	pitch := float64(mgl32.DegToRad(p.pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	p.front = front.Normalize()
	p.right = p.front.Cross(p.worldUp).Normalize()
	p.up = p.right.Cross(p.front).Normalize()
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
