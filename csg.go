// Package csg evaluates the proximity of 3D sample points to implicit
// analytic surfaces drawn from a fixed catalog of CSG-style primitives:
// spheres, axis-aligned and general planes, axis-aligned cylinders and
// cones, general quadrics and an x-axis torus.
//
// Surfaces are constructed with the surf and surf/must packages. A
// surface is an immutable value; evaluation is a pure function with no
// shared state, so a Surface may be queried concurrently from any
// number of goroutines without synchronization.
//
// This package does not perform true ray-surface intersection and does
// not compose primitives with boolean operations. Most catalog
// variants compute a static point-to-surface metric and ignore the
// query direction entirely; only the axis-aligned plane variants treat
// the result as a ray parameter.
package csg

import "gonum.org/v1/gonum/spatial/r3"

// Surface is the interface to an implicit analytic surface primitive.
//
// The catalog of implementations is closed: it consists of the 13
// constructors in surf/must (mirrored by surf). Adding a new primitive
// means adding a new type with its own Distance method.
type Surface interface {
	// Distance takes a sample point p and a query direction dir and
	// returns a non-negative proximity measure between p and the
	// surface. The direction need not be normalized and is read only
	// by the axis-aligned plane variants, for which the result is the
	// ray parameter t such that p + t*dir lies on the plane.
	//
	// ok is false when the query is geometrically degenerate: an
	// axis-aligned plane queried with a direction parallel to the
	// plane, or a plane lying behind the ray origin (t < 0). Callers
	// must treat a false ok as "undefined for this query", not as a
	// zero distance.
	Distance(p, dir r3.Vec) (dist float64, ok bool)
}
