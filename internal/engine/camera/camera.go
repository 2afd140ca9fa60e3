// Package camera provides the viewport camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	Target mgl32.Vec3

	// Spherical coordinates
	Distance float32 // Distance from target
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians; 0 looks down -Z from +Z

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Projection
	FOV  float32 // Vertical, degrees
	Near float32
	Far  float32

	home orbitPose
}

type orbitPose struct {
	target              mgl32.Vec3
	distance, pitch, yaw float32
}

// NewOrbitCamera creates a camera on the +Z axis looking at the origin.
func NewOrbitCamera(fov, distance float32) *OrbitCamera {
	c := &OrbitCamera{
		Distance:        distance,
		MinDistance:     distance * 0.3,
		MaxDistance:     distance * 4,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FOV:             fov,
		Near:            0.1,
		Far:             2000,
	}
	c.SetHome()
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cp := math.Cos(float64(c.Pitch))
	offset := mgl32.Vec3{
		float32(cp * math.Sin(float64(c.Yaw))),
		float32(math.Sin(float64(c.Pitch))),
		float32(cp * math.Cos(float64(c.Yaw))),
	}.Mul(c.Distance)
	return c.Target.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// HandleDrag updates rotation based on pointer drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandlePan moves the target in the view plane. Speed scales with distance
// so the subject tracks the pointer at any zoom.
func (c *OrbitCamera) HandlePan(deltaX, deltaY float32) {
	view := c.ViewMatrix()
	right := mgl32.Vec3{view[0], view[4], view[8]}
	up := mgl32.Vec3{view[1], view[5], view[9]}
	speed := c.Distance * c.DragSensitivity * 0.2
	c.Target = c.Target.Sub(right.Mul(deltaX * speed)).Add(up.Mul(deltaY * speed))
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = mgl32.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// SetHome records the current pose as the one Reset returns to.
func (c *OrbitCamera) SetHome() {
	c.home = orbitPose{target: c.Target, distance: c.Distance, pitch: c.Pitch, yaw: c.Yaw}
}

// Reset returns to the pose recorded by SetHome.
func (c *OrbitCamera) Reset() {
	c.Target = c.home.target
	c.Distance = c.home.distance
	c.Pitch = c.home.pitch
	c.Yaw = c.home.yaw
}
