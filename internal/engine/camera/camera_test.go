package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPitchClamp(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{}, 0, 0)

	c.HandleMouse(0, 10000)
	if c.Pitch != 89 {
		t.Errorf("expected pitch clamped to 89, got %v", c.Pitch)
	}

	c.HandleMouse(0, -100000)
	if c.Pitch != -89 {
		t.Errorf("expected pitch clamped to -89, got %v", c.Pitch)
	}
}

func TestForwardMovement(t *testing.T) {
	// Yaw 0 looks down +X
	c := NewFlyCamera(mgl32.Vec3{}, 0, 0)
	c.Speed = 10

	c.HandleKeyboard(MoveForward, 1)
	if got := c.Position.X(); got < 9.99 || got > 10.01 {
		t.Errorf("expected x ~10 after moving forward, got %v", got)
	}
	if got := c.Position.Y(); got != 0 {
		t.Errorf("expected y unchanged, got %v", got)
	}
}

func TestVerticalMovementIgnoresPitch(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{}, 0, 0)
	c.Speed = 5
	c.HandleMouse(0, 450) // pitch to the clamp

	c.HandleKeyboard(MoveUp, 1)
	if got := c.Position.Y(); got < 4.99 || got > 5.01 {
		t.Errorf("expected y ~5 after moving up, got %v", got)
	}
	if got := c.Position.X(); got != 0 {
		t.Errorf("expected x unchanged, got %v", got)
	}
}

func TestBasisIsOrthonormal(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{1, 2, 3}, -270, 15)

	if d := c.front.Dot(c.right); d < -1e-5 || d > 1e-5 {
		t.Errorf("front and right not orthogonal: dot = %v", d)
	}
	if l := c.front.Len(); l < 0.999 || l > 1.001 {
		t.Errorf("front not unit length: %v", l)
	}
	if l := c.up.Len(); l < 0.999 || l > 1.001 {
		t.Errorf("up not unit length: %v", l)
	}
}
