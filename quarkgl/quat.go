package quarkgl

import "math"

// Quat is a rotation quaternion (X, Y, Z vector part, W scalar part).
//
// Rotations compose right to left: a.Mul(b) applies b first.
type Quat struct {
	X, Y, Z, W Scalar
}

func QuatIdentity() Quat { return Quat{W: 1} }

// QuatFromAxisAngle returns the rotation of rad radians about axis.
// A zero axis yields the identity.
func QuatFromAxisAngle(axis Vec3, rad Scalar) Quat {
	a := Normalize(axis)
	if a == (Vec3{}) {
		return QuatIdentity()
	}
	s := Scalar(math.Sin(float64(rad) / 2))
	c := Scalar(math.Cos(float64(rad) / 2))
	return Quat{X: a.X * s, Y: a.Y * s, Z: a.Z * s, W: c}
}

func QuatRotateX(rad Scalar) Quat { return QuatFromAxisAngle(V3(1, 0, 0), rad) }
func QuatRotateY(rad Scalar) Quat { return QuatFromAxisAngle(V3(0, 1, 0), rad) }
func QuatRotateZ(rad Scalar) Quat { return QuatFromAxisAngle(V3(0, 0, 1), rad) }

// QuatFromArc returns the shortest rotation taking direction from onto direction to.
// Both inputs are normalized first.
func QuatFromArc(from, to Vec3) Quat {
	f := Normalize(from)
	t := Normalize(to)
	if f == (Vec3{}) || t == (Vec3{}) {
		return QuatIdentity()
	}
	const eps = 1e-6
	d := Dot(f, t)
	if d >= 1-eps {
		return QuatIdentity()
	}
	if d <= -1+eps {
		axis := Cross(V3(1, 0, 0), f)
		if Len(axis) < 1e-3 {
			axis = Cross(V3(0, 1, 0), f)
		}
		return QuatFromAxisAngle(axis, math.Pi)
	}
	c := Cross(f, t)
	s := Scalar(math.Sqrt(float64((1 + d) * 2)))
	return Quat{X: c.X / s, Y: c.Y / s, Z: c.Z / s, W: s / 2}.Normalize()
}

// IsZero reports whether q is the zero value (not a valid rotation).
func (q Quat) IsZero() bool { return q == Quat{} }

func (q Quat) Normalize() Quat {
	l := Scalar(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if l == 0 {
		return QuatIdentity()
	}
	inv := 1 / l
	return Quat{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Mul returns q*o.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Rotate applies q to v. The identity quaternion returns v unchanged bit for bit.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := Cross(u, v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(Cross(u, t))
}

// Mat4FromQuat returns the rotation matrix of a unit quaternion.
func Mat4FromQuat(q Quat) Mat4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}
