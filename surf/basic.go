// Package surf constructs catalog surfaces with error returns instead
// of the panics of the surf/must package.
package surf

import (
	"fmt"
	"runtime/debug"

	csg "github.com/fusion-energy/csg-surface-distance"
	"github.com/fusion-energy/csg-surface-distance/surf/must"
	"gonum.org/v1/gonum/spatial/r3"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Sphere returns the surface of a sphere with the given center and radius.
func Sphere(center r3.Vec, radius float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.Sphere(center, radius), err
}

// PlaneX returns the plane perpendicular to the x-axis at offset x.
func PlaneX(x float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.PlaneX(x), err
}

// PlaneY returns the plane perpendicular to the y-axis at offset y.
func PlaneY(y float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.PlaneY(y), err
}

// PlaneZ returns the plane perpendicular to the z-axis at offset z.
func PlaneZ(z float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.PlaneZ(z), err
}

// Plane returns the general plane a*x + b*y + c*z + d = 0. A zero
// normal vector (a, b, c) yields an error.
func Plane(a, b, c, d float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.Plane(a, b, c, d), err
}

// CylinderX returns an infinite cylinder with axis parallel to the x-axis.
func CylinderX(center r3.Vec, radius float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.CylinderX(center, radius), err
}

// CylinderY returns an infinite cylinder with axis parallel to the y-axis.
func CylinderY(center r3.Vec, radius float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.CylinderY(center, radius), err
}

// CylinderZ returns an infinite cylinder with axis parallel to the z-axis.
func CylinderZ(center r3.Vec, radius float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.CylinderZ(center, radius), err
}

// ConeX returns an infinite double cone with axis parallel to the x-axis.
func ConeX(apex r3.Vec, angle float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.ConeX(apex, angle), err
}

// ConeY returns an infinite double cone with axis parallel to the y-axis.
func ConeY(apex r3.Vec, angle float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.ConeY(apex, angle), err
}

// ConeZ returns an infinite double cone with axis parallel to the z-axis.
func ConeZ(apex r3.Vec, angle float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.ConeZ(apex, angle), err
}

// Quadric returns the general second-degree surface with the given
// coefficients. See must.Quadric for the approximation caveat.
func Quadric(a, b, c, d, e, f, g, h, j, k float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.Quadric(a, b, c, d, e, f, g, h, j, k), err
}

// TorusX returns a torus with revolution axis parallel to the x-axis.
// See must.TorusX for the unused b parameter caveat.
func TorusX(center r3.Vec, a, b, c float64) (s csg.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must.TorusX(center, a, b, c), err
}
