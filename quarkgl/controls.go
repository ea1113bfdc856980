package quarkgl

import "math"

// OrbitController orbits a camera around a target point.
//
// It does not depend on any input system; callers feed it deltas.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar
}

// maxPitch keeps the camera off the poles where LookAt degenerates.
const maxPitch = Scalar(math.Pi/2 - 0.05)

// Apply positions cam on the orbit sphere, looking at Target.
func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	c.clamp()
	r := c.Radius
	if r == 0 {
		r = 3
	}
	q := QuatRotateY(c.Yaw).Mul(QuatRotateX(-c.Pitch))
	cam.Position = c.Target.Add(q.Rotate(V3(0, 0, r)))
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	c.clamp()
}

func (c *OrbitController) Zoom(delta Scalar) {
	c.Radius += delta
	c.clamp()
}

// Pan moves the target in the camera's horizontal plane.
func (c *OrbitController) Pan(dx, dy Scalar) {
	right := QuatRotateY(c.Yaw).Rotate(V3(1, 0, 0))
	c.Target = c.Target.Add(right.Mul(dx)).Add(V3(0, dy, 0))
}

func (c *OrbitController) clamp() {
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}
