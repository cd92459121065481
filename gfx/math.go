package gfx

import "math"

// Scalar is the numeric type used by gfx math operations.
type Scalar = float32

// Vec3 is a 3D point or vector.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec2 is a 2D screen-space point.
type Vec2 struct {
	X, Y Scalar
}

// SinCos holds the sine and cosine of one rotation angle.
//
// Compute it once per frame and reuse it for every vertex.
type SinCos struct {
	Sin, Cos Scalar
}

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }
func V2(x, y Scalar) Vec2    { return Vec2{X: x, Y: y} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Len(v Vec3) Scalar {
	return Scalar(math.Sqrt(float64(Dot(v, v))))
}

// AngleSinCos returns the sine/cosine pair for angle (radians).
func AngleSinCos(angle Scalar) SinCos {
	s, c := math.Sincos(float64(angle))
	return SinCos{Sin: Scalar(s), Cos: Scalar(c)}
}

// RotateX rotates p around the X axis. X is unchanged.
func RotateX(p Vec3, sc SinCos) Vec3 {
	return Vec3{
		X: p.X,
		Y: p.Y*sc.Cos - p.Z*sc.Sin,
		Z: p.Y*sc.Sin + p.Z*sc.Cos,
	}
}

// RotateY rotates p around the Y axis. Y is unchanged.
func RotateY(p Vec3, sc SinCos) Vec3 {
	return Vec3{
		X: p.X*sc.Cos + p.Z*sc.Sin,
		Y: p.Y,
		Z: -p.X*sc.Sin + p.Z*sc.Cos,
	}
}

// RotateZ rotates p around the Z axis. Z is unchanged.
func RotateZ(p Vec3, sc SinCos) Vec3 {
	return Vec3{
		X: p.X*sc.Cos - p.Y*sc.Sin,
		Y: p.X*sc.Sin + p.Y*sc.Cos,
		Z: p.Z,
	}
}

// Rotate applies RotateY, RotateX and RotateZ in that order.
//
// The order is part of the animation; rotations do not commute.
func Rotate(p Vec3, sc SinCos) Vec3 {
	return RotateZ(RotateX(RotateY(p, sc), sc), sc)
}

// RoundCoord rounds a screen coordinate to the nearest pixel, ties to even.
func RoundCoord(v Scalar) int {
	return int(math.RoundToEven(float64(v)))
}
