package must

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere (exact distance field)

// sphere is a sphere surface.
type sphere struct {
	center r3.Vec
	radius float64
}

// Sphere returns the surface of a sphere with the given center and
// radius. The radius may be zero or negative; the evaluation takes its
// magnitude into account through the final absolute value only.
func Sphere(center r3.Vec, radius float64) *sphere {
	return &sphere{center: center, radius: radius}
}

// Distance returns the distance from p to the sphere surface.
// The direction is not read.
func (s *sphere) Distance(p, dir r3.Vec) (float64, bool) {
	return math.Abs(r3.Norm(r3.Sub(p, s.center)) - s.radius), true
}

// Axis-aligned planes (ray parameter)
//
// These are the only catalog variants that read the query direction.
// The returned value is the ray parameter t with p + t*dir on the
// plane, defined only when the direction has a component along the
// plane's axis and the plane is not behind the ray origin.

// planeX is the plane x = offset.
type planeX struct {
	x float64
}

// PlaneX returns the plane perpendicular to the x-axis at offset x.
func PlaneX(x float64) *planeX {
	return &planeX{x: x}
}

// Distance returns the ray parameter to the plane, or ok=false for a
// parallel ray or a plane behind the ray origin.
func (s *planeX) Distance(p, dir r3.Vec) (float64, bool) {
	return rayParam(s.x, p.X, dir.X)
}

// planeY is the plane y = offset.
type planeY struct {
	y float64
}

// PlaneY returns the plane perpendicular to the y-axis at offset y.
func PlaneY(y float64) *planeY {
	return &planeY{y: y}
}

// Distance returns the ray parameter to the plane, or ok=false for a
// parallel ray or a plane behind the ray origin.
func (s *planeY) Distance(p, dir r3.Vec) (float64, bool) {
	return rayParam(s.y, p.Y, dir.Y)
}

// planeZ is the plane z = offset.
type planeZ struct {
	z float64
}

// PlaneZ returns the plane perpendicular to the z-axis at offset z.
func PlaneZ(z float64) *planeZ {
	return &planeZ{z: z}
}

// Distance returns the ray parameter to the plane, or ok=false for a
// parallel ray or a plane behind the ray origin.
func (s *planeZ) Distance(p, dir r3.Vec) (float64, bool) {
	return rayParam(s.z, p.Z, dir.Z)
}

func rayParam(offset, coord, d float64) (float64, bool) {
	if d == 0 {
		return 0, false
	}
	t := (offset - coord) / d
	if t < 0 {
		return 0, false
	}
	return t, true
}

// General plane (exact distance field)

// plane is the plane a*x + b*y + c*z + d = 0.
type plane struct {
	a, b, c, d float64
	norm       float64 // length of the (a, b, c) normal
}

// Plane returns the general plane a*x + b*y + c*z + d = 0.
// Panics if the normal vector (a, b, c) is zero.
func Plane(a, b, c, d float64) *plane {
	n := r3.Norm(r3.Vec{X: a, Y: b, Z: c})
	if n == 0 {
		panic("zero plane normal")
	}
	return &plane{a: a, b: b, c: c, d: d, norm: n}
}

// Distance returns the distance from p to the plane.
// The direction is not read.
func (s *plane) Distance(p, dir r3.Vec) (float64, bool) {
	return math.Abs(s.a*p.X+s.b*p.Y+s.c*p.Z+s.d) / s.norm, true
}

// Axis-aligned cylinders (exact distance field)
//
// Infinite cylinders with axis parallel to a coordinate axis. The
// center component along the axis is ignored.

// cylinderX is an infinite cylinder with axis parallel to the x-axis.
type cylinderX struct {
	center r3.Vec
	radius float64
}

// CylinderX returns an infinite cylinder whose axis is parallel to the
// x-axis and passes through (center.Y, center.Z) in the transverse
// plane. The X component of center is ignored.
func CylinderX(center r3.Vec, radius float64) *cylinderX {
	return &cylinderX{center: center, radius: radius}
}

// Distance returns the distance from p to the cylinder surface.
// The direction is not read.
func (s *cylinderX) Distance(p, dir r3.Vec) (float64, bool) {
	return math.Abs(math.Hypot(p.Y-s.center.Y, p.Z-s.center.Z) - s.radius), true
}

// cylinderY is an infinite cylinder with axis parallel to the y-axis.
type cylinderY struct {
	center r3.Vec
	radius float64
}

// CylinderY returns an infinite cylinder whose axis is parallel to the
// y-axis and passes through (center.X, center.Z) in the transverse
// plane. The Y component of center is ignored.
func CylinderY(center r3.Vec, radius float64) *cylinderY {
	return &cylinderY{center: center, radius: radius}
}

// Distance returns the distance from p to the cylinder surface.
// The direction is not read.
func (s *cylinderY) Distance(p, dir r3.Vec) (float64, bool) {
	return math.Abs(math.Hypot(p.X-s.center.X, p.Z-s.center.Z) - s.radius), true
}

// cylinderZ is an infinite cylinder with axis parallel to the z-axis.
type cylinderZ struct {
	center r3.Vec
	radius float64
}

// CylinderZ returns an infinite cylinder whose axis is parallel to the
// z-axis and passes through (center.X, center.Y) in the transverse
// plane. The Z component of center is ignored.
func CylinderZ(center r3.Vec, radius float64) *cylinderZ {
	return &cylinderZ{center: center, radius: radius}
}

// Distance returns the distance from p to the cylinder surface.
// The direction is not read.
func (s *cylinderZ) Distance(p, dir r3.Vec) (float64, bool) {
	return math.Abs(math.Hypot(p.X-s.center.X, p.Y-s.center.Y) - s.radius), true
}

// Axis-aligned cones

// coneX is an infinite double cone with axis parallel to the x-axis.
type coneX struct {
	apex r3.Vec
	tan  float64 // tangent of the half-angle
}

// ConeX returns an infinite double cone with apex at apex, axis
// parallel to the x-axis and the given half-angle in radians.
func ConeX(apex r3.Vec, angle float64) *coneX {
	return &coneX{apex: apex, tan: math.Tan(angle)}
}

// Distance returns the distance from p to the cone surface.
// The direction is not read.
func (s *coneX) Distance(p, dir r3.Vec) (float64, bool) {
	r := math.Hypot(p.Y-s.apex.Y, p.Z-s.apex.Z)
	return math.Abs(math.Abs(p.X-s.apex.X) - r*s.tan), true
}

// coneY is an infinite double cone with axis parallel to the y-axis.
type coneY struct {
	apex r3.Vec
	tan  float64
}

// ConeY returns an infinite double cone with apex at apex, axis
// parallel to the y-axis and the given half-angle in radians.
func ConeY(apex r3.Vec, angle float64) *coneY {
	return &coneY{apex: apex, tan: math.Tan(angle)}
}

// Distance returns the distance from p to the cone surface.
// The direction is not read.
func (s *coneY) Distance(p, dir r3.Vec) (float64, bool) {
	r := math.Hypot(p.X-s.apex.X, p.Z-s.apex.Z)
	return math.Abs(math.Abs(p.Y-s.apex.Y) - r*s.tan), true
}

// coneZ is an infinite double cone with axis parallel to the z-axis.
type coneZ struct {
	apex r3.Vec
	tan  float64
}

// ConeZ returns an infinite double cone with apex at apex, axis
// parallel to the z-axis and the given half-angle in radians.
func ConeZ(apex r3.Vec, angle float64) *coneZ {
	return &coneZ{apex: apex, tan: math.Tan(angle)}
}

// Distance returns the distance from p to the cone surface.
// The direction is not read.
func (s *coneZ) Distance(p, dir r3.Vec) (float64, bool) {
	r := math.Hypot(p.X-s.apex.X, p.Y-s.apex.Y)
	return math.Abs(math.Abs(p.Z-s.apex.Z) - r*s.tan), true
}

// General quadric (level-set magnitude)

// quadric is the general second-degree surface
// A*x^2 + B*y^2 + C*z^2 + D*x*y + E*y*z + F*x*z + G*x + H*y + J*z + K = 0.
type quadric struct {
	a, b, c, d, e, f, g, h, j, k float64
}

// Quadric returns the general second-degree surface
//
//	A*x^2 + B*y^2 + C*z^2 + D*x*y + E*y*z + F*x*z + G*x + H*y + J*z + K = 0.
//
// Its Distance is the magnitude of the implicit polynomial evaluated
// at the sample point, not a calibrated Euclidean distance to the
// zero-set. Treat it as an approximation.
func Quadric(a, b, c, d, e, f, g, h, j, k float64) *quadric {
	return &quadric{a: a, b: b, c: c, d: d, e: e, f: f, g: g, h: h, j: j, k: k}
}

// Distance returns the magnitude of the quadric polynomial at p.
// The direction is not read.
func (s *quadric) Distance(p, dir r3.Vec) (float64, bool) {
	v := s.a*p.X*p.X + s.b*p.Y*p.Y + s.c*p.Z*p.Z +
		s.d*p.X*p.Y + s.e*p.Y*p.Z + s.f*p.X*p.Z +
		s.g*p.X + s.h*p.Y + s.j*p.Z + s.k
	return math.Abs(v), true
}

// X-axis torus

// torusX is a torus with revolution axis parallel to the x-axis.
type torusX struct {
	center r3.Vec
	a      float64 // major radius of the center circle
	b      float64 // accepted but unused
	c      float64 // tube radius
}

// TorusX returns a torus centered at center whose revolution axis is
// parallel to the x-axis, with major radius a and tube radius c. The b
// minor radius is accepted for catalog compatibility but is not read
// by the evaluation, which treats the tube as circular of radius c;
// the result is an approximation for b != c.
func TorusX(center r3.Vec, a, b, c float64) *torusX {
	return &torusX{center: center, a: a, b: b, c: c}
}

// Distance returns the distance from p to the torus tube surface.
// The direction is not read.
func (s *torusX) Distance(p, dir r3.Vec) (float64, bool) {
	d := r3.Sub(p, s.center)
	// distance in the transverse plane to the tube's center circle,
	// then to the circular tube of radius c.
	q := r2.Vec{X: math.Hypot(d.Y, d.Z) - s.a, Y: d.X}
	return math.Abs(r2.Norm(q) - s.c), true
}
