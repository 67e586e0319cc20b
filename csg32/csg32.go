// Package csg32 provides float32 batch evaluation of the surface
// catalog. It mirrors the float64 surf/must package for workloads that
// evaluate large point batches and prefer dense float32 arithmetic
// over per-point interface dispatch.
package csg32

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// Surface is the batch evaluation interface to a catalog surface.
type Surface interface {
	// Distance evaluates the proximity of every point in pos and
	// stores the results in dist, which must be the same length as
	// pos. dir is the query direction shared by the whole batch; it is
	// read only by the axis-aligned plane variants. Degenerate queries
	// (parallel ray, plane behind the ray origin) store NaN.
	Distance(dir ms3.Vec, pos []ms3.Vec, dist []float32) error
}

var errLenMismatch = errors.New("dist length does not match pos length")

func checkLen(pos []ms3.Vec, dist []float32) error {
	if len(dist) != len(pos) {
		return errLenMismatch
	}
	return nil
}

type sphere struct {
	c ms3.Vec
	r float32
}

// NewSphere returns the surface of a sphere with the given center and radius.
func NewSphere(center ms3.Vec, radius float32) Surface {
	return &sphere{c: center, r: radius}
}

func (s *sphere) Distance(dir ms3.Vec, pos []ms3.Vec, dist []float32) error {
	if err := checkLen(pos, dist); err != nil {
		return err
	}
	for i, p := range pos {
		dist[i] = absf(ms3.Norm(ms3.Sub(p, s.c)) - s.r)
	}
	return nil
}

type planeX struct {
	x float32
}

// NewPlaneX returns the plane perpendicular to the x-axis at offset x.
func NewPlaneX(x float32) Surface {
	return &planeX{x: x}
}

func (s *planeX) Distance(dir ms3.Vec, pos []ms3.Vec, dist []float32) error {
	if err := checkLen(pos, dist); err != nil {
		return err
	}
	for i, p := range pos {
		dist[i] = rayParam(s.x, p.X, dir.X)
	}
	return nil
}

type planeY struct {
	y float32
}

// NewPlaneY returns the plane perpendicular to the y-axis at offset y.
func NewPlaneY(y float32) Surface {
	return &planeY{y: y}
}

func (s *planeY) Distance(dir ms3.Vec, pos []ms3.Vec, dist []float32) error {
	if err := checkLen(pos, dist); err != nil {
		return err
	}
	for i, p := range pos {
		dist[i] = rayParam(s.y, p.Y, dir.Y)
	}
	return nil
}

type planeZ struct {
	z float32
}

// NewPlaneZ returns the plane perpendicular to the z-axis at offset z.
func NewPlaneZ(z float32) Surface {
	return &planeZ{z: z}
}

func (s *planeZ) Distance(dir ms3.Vec, pos []ms3.Vec, dist []float32) error {
	if err := checkLen(pos, dist); err != nil {
		return err
	}
	for i, p := range pos {
		dist[i] = rayParam(s.z, p.Z, dir.Z)
	}
	return nil
}

func rayParam(offset, coord, d float32) float32 {
	if d == 0 {
		return math32.NaN()
	}
	t := (offset - coord) / d
	if t < 0 {
		return math32.NaN()
	}
	return t
}

type plane struct {
	a, b, c, d float32
	norm       float32
}

// NewPlane returns the general plane a*x + b*y + c*z + d = 0.
// A zero normal vector (a, b, c) yields an error.
func NewPlane(a, b, c, d float32) (Surface, error) {
	n := ms3.Norm(ms3.Vec{X: a, Y: b, Z: c})
	if n == 0 {
		return nil, errors.New("zero plane normal")
	}
	return &plane{a: a, b: b, c: c, d: d, norm: n}, nil
}

func (s *plane) Distance(dir ms3.Vec, pos []ms3.Vec, dist []float32) error {
	if err := checkLen(pos, dist); err != nil {
		return err
	}
	for i, p := range pos {
		dist[i] = absf(s.a*p.X+s.b*p.Y+s.c*p.Z+s.d) / s.norm
	}
	return nil
}

type cylinder struct {
	// axis selects the coordinate the cylinder axis runs along:
	// 0 for x, 1 for y, 2 for z.
	axis   int
	center ms3.Vec
	r      float32
}

// NewCylinderX returns an infinite cylinder with axis parallel to the
// x-axis. The X component of center is ignored.
func NewCylinderX(center ms3.Vec, radius float32) Surface {
	return &cylinder{axis: 0, center: center, r: radius}
}

// NewCylinderY returns an infinite cylinder with axis parallel to the
// y-axis. The Y component of center is ignored.
func NewCylinderY(center ms3.Vec, radius float32) Surface {
	return &cylinder{axis: 1, center: center, r: radius}
}

// NewCylinderZ returns an infinite cylinder with axis parallel to the
// z-axis. The Z component of center is ignored.
func NewCylinderZ(center ms3.Vec, radius float32) Surface {
	return &cylinder{axis: 2, center: center, r: radius}
}

func (s *cylinder) Distance(dir ms3.Vec, pos []ms3.Vec, dist []float32) error {
	if err := checkLen(pos, dist); err != nil {
		return err
	}
	for i, p := range pos {
		d := ms3.Sub(p, s.center)
		u, v := transverse(s.axis, d)
		dist[i] = absf(hypotf(u, v) - s.r)
	}
	return nil
}

type cone struct {
	axis int
	apex ms3.Vec
	tan  float32
}

// NewConeX returns an infinite double cone with apex at apex, axis
// parallel to the x-axis and the given half-angle in radians.
func NewConeX(apex ms3.Vec, angle float32) Surface {
	return &cone{axis: 0, apex: apex, tan: math32.Tan(angle)}
}

// NewConeY returns an infinite double cone with apex at apex, axis
// parallel to the y-axis and the given half-angle in radians.
func NewConeY(apex ms3.Vec, angle float32) Surface {
	return &cone{axis: 1, apex: apex, tan: math32.Tan(angle)}
}

// NewConeZ returns an infinite double cone with apex at apex, axis
// parallel to the z-axis and the given half-angle in radians.
func NewConeZ(apex ms3.Vec, angle float32) Surface {
	return &cone{axis: 2, apex: apex, tan: math32.Tan(angle)}
}

func (s *cone) Distance(dir ms3.Vec, pos []ms3.Vec, dist []float32) error {
	if err := checkLen(pos, dist); err != nil {
		return err
	}
	for i, p := range pos {
		d := ms3.Sub(p, s.apex)
		u, v := transverse(s.axis, d)
		dist[i] = absf(absf(axial(s.axis, d)) - hypotf(u, v)*s.tan)
	}
	return nil
}

type quadric struct {
	a, b, c, d, e, f, g, h, j, k float32
}

// NewQuadric returns the general second-degree surface with the given
// coefficients. Its Distance is the magnitude of the implicit
// polynomial, not a calibrated metric distance.
func NewQuadric(a, b, c, d, e, f, g, h, j, k float32) Surface {
	return &quadric{a: a, b: b, c: c, d: d, e: e, f: f, g: g, h: h, j: j, k: k}
}

func (s *quadric) Distance(dir ms3.Vec, pos []ms3.Vec, dist []float32) error {
	if err := checkLen(pos, dist); err != nil {
		return err
	}
	for i, p := range pos {
		v := s.a*p.X*p.X + s.b*p.Y*p.Y + s.c*p.Z*p.Z +
			s.d*p.X*p.Y + s.e*p.Y*p.Z + s.f*p.X*p.Z +
			s.g*p.X + s.h*p.Y + s.j*p.Z + s.k
		dist[i] = absf(v)
	}
	return nil
}

type torusX struct {
	center ms3.Vec
	a      float32
	b      float32 // accepted but unused
	c      float32
}

// NewTorusX returns a torus centered at center whose revolution axis
// is parallel to the x-axis, with major radius a and tube radius c.
// The b minor radius is accepted but not read by the evaluation.
func NewTorusX(center ms3.Vec, a, b, c float32) Surface {
	return &torusX{center: center, a: a, b: b, c: c}
}

func (s *torusX) Distance(dir ms3.Vec, pos []ms3.Vec, dist []float32) error {
	if err := checkLen(pos, dist); err != nil {
		return err
	}
	for i, p := range pos {
		d := ms3.Sub(p, s.center)
		q := hypotf(d.Y, d.Z) - s.a
		dist[i] = absf(hypotf(q, d.X) - s.c)
	}
	return nil
}

// transverse returns the two components of v orthogonal to axis.
func transverse(axis int, v ms3.Vec) (u, w float32) {
	switch axis {
	case 0:
		return v.Y, v.Z
	case 1:
		return v.X, v.Z
	default:
		return v.X, v.Y
	}
}

// axial returns the component of v along axis.
func axial(axis int, v ms3.Vec) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func absf(a float32) float32 {
	return math32.Abs(a)
}

func hypotf(a, b float32) float32 {
	return math32.Hypot(a, b)
}
