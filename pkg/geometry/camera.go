package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// CameraConfig contains the user-facing camera parameters
type CameraConfig struct {
	Position core.Vec3 // Eye position
	Forward  core.Vec3 // Viewing direction, need not be unit length
	Up       core.Vec3 // Approximate up direction
	FOV      float64   // Field of view in degrees
}

// Camera generates primary rays from an orthonormal basis
type Camera struct {
	config   CameraConfig
	position core.Vec3
	forward  core.Vec3
	right    core.Vec3
	up       core.Vec3
	tanHalf  float64
}

// NewCamera creates a camera; right = forward × up and up is then
// re-orthogonalized as right × forward.
func NewCamera(config CameraConfig) *Camera {
	forward := config.Forward.Normalize()
	right := forward.Cross(config.Up).Normalize()
	up := right.Cross(forward).Normalize()

	return &Camera{
		config:   config,
		position: config.Position,
		forward:  forward,
		right:    right,
		up:       up,
		tanHalf:  math.Tan(config.FOV * math.Pi / 180 / 2),
	}
}

// Validate rejects degenerate bases and out-of-range field of view
func (c *Camera) Validate() error {
	if !c.position.IsFinite() {
		return fmt.Errorf("%w: camera position %v is not finite", core.ErrInvalidParameter, c.position)
	}
	if c.forward.Length() == 0 {
		return fmt.Errorf("%w: camera forward direction is zero", core.ErrInvalidParameter)
	}
	if c.right.Length() == 0 {
		return fmt.Errorf("%w: camera up %v is parallel to forward %v", core.ErrInvalidParameter, c.config.Up, c.config.Forward)
	}
	if !(c.config.FOV > 0 && c.config.FOV < 180) {
		return fmt.Errorf("%w: camera fov must be in (0,180), got %g", core.ErrInvalidParameter, c.config.FOV)
	}
	return nil
}

// GetRay returns the unit-direction ray through normalized screen
// coordinates (u, v) in [0,1]². v = 0 is the bottom edge of the view.
func (c *Camera) GetRay(u, v, aspectRatio float64) core.Ray {
	ndcX := (u*2 - 1) * aspectRatio
	ndcY := v*2 - 1

	direction := c.forward.
		Add(c.right.Multiply(ndcX * c.tanHalf)).
		Add(c.up.Multiply(ndcY * c.tanHalf)).
		Normalize()

	return core.NewRay(c.position, direction)
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Position returns the eye position
func (c *Camera) Position() core.Vec3 { return c.position }

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 { return c.forward }

// Right returns the unit right vector
func (c *Camera) Right() core.Vec3 { return c.right }

// Up returns the re-orthogonalized unit up vector
func (c *Camera) Up() core.Vec3 { return c.up }
