// Package geom provides the small fixed-size vector types used across the
// engine: float vectors for world/screen positions and an integer triple for
// tile coordinates.
package geom

// Vec2 is a 2D float vector (screen pixels or 2D world units).
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Vec3 is a 3D float vector (world tile space, z = vertical level).
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Point3 is an integer tile coordinate.
type Point3 struct {
	X int
	Y int
	Z int
}

// Vec3 converts the point to a float vector.
func (p Point3) Vec3() Vec3 { return Vec3{float64(p.X), float64(p.Y), float64(p.Z)} }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampVec3 limits each axis of v to [lo, hi] per axis.
func ClampVec3(v, lo, hi Vec3) Vec3 {
	return Vec3{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
		Z: Clamp(v.Z, lo.Z, hi.Z),
	}
}

// ClampPoint3 limits each axis of p to [lo, hi] per axis.
func ClampPoint3(p, lo, hi Point3) Point3 {
	return Point3{
		X: ClampInt(p.X, lo.X, hi.X),
		Y: ClampInt(p.Y, lo.Y, hi.Y),
		Z: ClampInt(p.Z, lo.Z, hi.Z),
	}
}
