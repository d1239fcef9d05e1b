// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Move is a bitmask of movement directions applied in a single frame.
type Move uint8

const (
	MoveForward Move = 1 << iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// FlyCamera is a free-flying first-person camera driven by yaw/pitch angles
// (degrees) and direction-relative movement.
type FlyCamera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	// Tuning
	Speed       float32 // world units per second
	Sensitivity float32 // degrees per mouse count
	Zoom        float32 // vertical field of view, degrees

	front   mgl32.Vec3
	right   mgl32.Vec3
	up      mgl32.Vec3
	worldUp mgl32.Vec3
}

// NewFlyCamera creates a camera at the given position and orientation.
func NewFlyCamera(position mgl32.Vec3, yaw, pitch float32) *FlyCamera {
	c := &FlyCamera{
		Position:    position,
		Yaw:         yaw,
		Pitch:       pitch,
		Speed:       15.0,
		Sensitivity: 0.1,
		Zoom:        45.0,
		worldUp:     mgl32.Vec3{0, 1, 0},
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// Front returns the camera's forward direction.
func (c *FlyCamera) Front() mgl32.Vec3 {
	return c.front
}

// HandleKeyboard moves the camera along the held directions for this frame.
func (c *FlyCamera) HandleKeyboard(m Move, dt float32) {
	velocity := c.Speed * dt
	if m&MoveForward != 0 {
		c.Position = c.Position.Add(c.front.Mul(velocity))
	}
	if m&MoveBackward != 0 {
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	}
	if m&MoveLeft != 0 {
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	}
	if m&MoveRight != 0 {
		c.Position = c.Position.Add(c.right.Mul(velocity))
	}
	if m&MoveUp != 0 {
		c.Position = c.Position.Add(c.worldUp.Mul(velocity))
	}
	if m&MoveDown != 0 {
		c.Position = c.Position.Sub(c.worldUp.Mul(velocity))
	}
}

// HandleMouse applies a relative mouse motion to yaw and pitch.
func (c *FlyCamera) HandleMouse(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.Sensitivity
	c.Pitch += deltaY * c.Sensitivity

	// Clamp pitch to avoid flipping at the poles
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}

	c.updateVectors()
}

// updateVectors recomputes the orthonormal basis from yaw and pitch.
func (c *FlyCamera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
