package player

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"doomlike/internal/level"
)

// Absolute tolerance. Vectors are compared by the length of their difference
// because mgl32's ApproxEqual helpers are relative and fail next to zero.
const eps = 1e-5

func testMap() *level.Map { return level.New(level.TestRoom(), level.GridWidth, level.GridHeight) }

func TestNewDefaults(t *testing.T) {
	p := New(mgl32.Vec3{2, 0, 2})
	if p.Yaw() != DefaultYaw || p.Pitch() != DefaultPitch {
		t.Errorf("orientation = (%v, %v), expected (%v, %v)", p.Yaw(), p.Pitch(), DefaultYaw, DefaultPitch)
	}
	if p.Front().Sub(mgl32.Vec3{0, 0, -1}).Len() > eps {
		t.Errorf("Front() = %v, expected -Z", p.Front())
	}
	if p.Right().Sub(mgl32.Vec3{1, 0, 0}).Len() > eps {
		t.Errorf("Right() = %v, expected +X", p.Right())
	}
	if p.WorldUp() != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("WorldUp() = %v, expected +Y", p.WorldUp())
	}
}

func TestCameraBasisOrthonormal(t *testing.T) {
	p := New(mgl32.Vec3{})
	for yaw := float32(-360); yaw <= 360; yaw += 22.5 {
		for pitch := float32(-89); pitch <= 89; pitch += 8.9 {
			p.SetOrientation(yaw, pitch)
			f, r, u := p.Front(), p.Right(), p.Up()
			for name, v := range map[string]mgl32.Vec3{"front": f, "right": r, "up": u} {
				if l := v.Len(); math.Abs(float64(l)-1) > 1e-4 {
					t.Fatalf("yaw=%v pitch=%v: |%s| = %v", yaw, pitch, name, l)
				}
			}
			if d := f.Dot(r); math.Abs(float64(d)) > 1e-4 {
				t.Fatalf("yaw=%v pitch=%v: front.right = %v", yaw, pitch, d)
			}
			if d := f.Dot(u); math.Abs(float64(d)) > 1e-4 {
				t.Fatalf("yaw=%v pitch=%v: front.up = %v", yaw, pitch, d)
			}
			if d := r.Dot(u); math.Abs(float64(d)) > 1e-4 {
				t.Fatalf("yaw=%v pitch=%v: right.up = %v", yaw, pitch, d)
			}
		}
	}
}

func TestLookClampsPitch(t *testing.T) {
	tests := []struct {
		name     string
		deltas   []float32
		expected float32
	}{
		{"small up", []float32{100}, 10},
		{"huge up", []float32{1e6}, MaxPitch},
		{"huge down", []float32{-1e6}, -MaxPitch},
		{"up then down past limit", []float32{5000, -900, -5000}, -MaxPitch},
		{"accumulate to limit", []float32{400, 400, 400}, MaxPitch},
		{"back from limit", []float32{2000, -100}, MaxPitch - 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(mgl32.Vec3{})
			for _, dy := range tc.deltas {
				p.Look(0, dy)
				if p.Pitch() > MaxPitch || p.Pitch() < -MaxPitch {
					t.Fatalf("pitch %v escaped [-%v, %v]", p.Pitch(), MaxPitch, MaxPitch)
				}
			}
			if math.Abs(float64(p.Pitch()-tc.expected)) > 1e-3 {
				t.Errorf("Pitch() = %v, expected %v", p.Pitch(), tc.expected)
			}
		})
	}
}

func TestLookScalesYaw(t *testing.T) {
	p := New(mgl32.Vec3{})
	p.Look(900, 0)
	if math.Abs(float64(p.Yaw()-0)) > 1e-3 {
		t.Errorf("Yaw() = %v, expected 0", p.Yaw())
	}
	if p.Front().Sub(mgl32.Vec3{1, 0, 0}).Len() > 1e-4 {
		t.Errorf("Front() = %v, expected +X", p.Front())
	}
}

func TestMoveBlockedByPillar(t *testing.T) {
	m := testMap()
	for _, dir := range []Direction{Forward, Backward, Left, Right} {
		t.Run(dir.String(), func(t *testing.T) {
			p := New(mgl32.Vec3{5, 0, 5})
			before := p.Position
			if p.Move(dir, 0.1, m) {
				t.Error("Move() reported movement inside the pillar")
			}
			if p.Position != before {
				t.Errorf("Position = %v, expected %v", p.Position, before)
			}
		})
	}
}

func TestMoveOpenPath(t *testing.T) {
	m := testMap()
	const dt = 0.1
	step := float32(DefaultSpeed * dt)
	tests := []struct {
		dir      Direction
		expected mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{2.5, 0, 2.5 - step}},
		{Backward, mgl32.Vec3{2.5, 0, 2.5 + step}},
		{Left, mgl32.Vec3{2.5 - step, 0, 2.5}},
		{Right, mgl32.Vec3{2.5 + step, 0, 2.5}},
	}
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			p := New(mgl32.Vec3{2.5, 0, 2.5})
			before := p.Position
			if !p.Move(tc.dir, dt, m) {
				t.Fatal("Move() was blocked on an open path")
			}
			if p.Position.Sub(tc.expected).Len() > eps {
				t.Errorf("Position = %v, expected %v", p.Position, tc.expected)
			}
			if d := p.Position.Sub(before).Len(); math.Abs(float64(d-step)) > eps {
				t.Errorf("moved %v, expected %v", d, step)
			}
		})
	}
}

func TestMoveIntoOuterWall(t *testing.T) {
	m := testMap()
	p := New(mgl32.Vec3{1.5, 0, 1.5})
	if p.Move(Forward, 0.5, m) {
		t.Errorf("Move() into the z=0 wall succeeded, position %v", p.Position)
	}
	if p.Position != (mgl32.Vec3{1.5, 0, 1.5}) {
		t.Errorf("Position = %v, expected unchanged", p.Position)
	}
}

func TestMoveNoSliding(t *testing.T) {
	m := testMap()
	p := New(mgl32.Vec3{1.5, 0, 2.5})
	// Heading diagonally into the x=0 wall: the z component alone would be
	// free, but the whole step is rejected.
	p.SetOrientation(-135, 0)
	if p.Move(Forward, 0.4, m) {
		t.Errorf("Move() succeeded, position %v", p.Position)
	}
	if p.Position != (mgl32.Vec3{1.5, 0, 2.5}) {
		t.Errorf("Position = %v, expected unchanged", p.Position)
	}
}

func TestCheckCollisionRadius(t *testing.T) {
	m := testMap()
	p := New(mgl32.Vec3{})
	tests := []struct {
		name     string
		pos      mgl32.Vec3
		expected bool
	}{
		{"clear", mgl32.Vec3{2.5, 0, 2.5}, false},
		{"centre in wall", mgl32.Vec3{0.5, 0, 3}, true},
		{"edge sample in wall", mgl32.Vec3{1.25, 0, 3}, true},
		{"just clear of wall", mgl32.Vec3{1.31, 0, 3}, false},
		{"outside grid", mgl32.Vec3{-3, 0, -3}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.CheckCollision(tc.pos, m); got != tc.expected {
				t.Errorf("CheckCollision(%v) = %v, expected %v", tc.pos, got, tc.expected)
			}
		})
	}
}

func TestViewMatrix(t *testing.T) {
	p := New(mgl32.Vec3{3, 1.5, 4})
	p.SetOrientation(30, 20)
	view := p.ViewMatrix()

	eye := view.Mul4x1(p.Position.Vec4(1))
	if eye.Sub(mgl32.Vec4{0, 0, 0, 1}).Len() > 1e-4 {
		t.Errorf("position in camera space = %v, expected origin", eye)
	}
	ahead := view.Mul4x1(p.Position.Add(p.Front()).Vec4(1))
	if ahead.Sub(mgl32.Vec4{0, 0, -1, 1}).Len() > 1e-4 {
		t.Errorf("position+front in camera space = %v, expected (0,0,-1)", ahead)
	}
	if view != p.ViewMatrix() {
		t.Error("ViewMatrix() is not a pure function of player state")
	}
}

func TestMouseTracker(t *testing.T) {
	var mt MouseTracker
	if dx, dy := mt.Delta(400, 300); dx != 0 || dy != 0 {
		t.Errorf("first Delta() = (%v, %v), expected (0, 0)", dx, dy)
	}
	if dx, dy := mt.Delta(410, 280); dx != 10 || dy != 20 {
		t.Errorf("Delta() = (%v, %v), expected (10, 20)", dx, dy)
	}
	if dx, dy := mt.Delta(405, 290); dx != -5 || dy != -10 {
		t.Errorf("Delta() = (%v, %v), expected (-5, -10)", dx, dy)
	}
	mt.Reset()
	if dx, dy := mt.Delta(0, 0); dx != 0 || dy != 0 {
		t.Errorf("Delta() after Reset = (%v, %v), expected (0, 0)", dx, dy)
	}
}
