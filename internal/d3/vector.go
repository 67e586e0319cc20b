package d3

import "gonum.org/v1/gonum/spatial/r3"

// R3 vector helper routines shared by tests and examples.

// Elem returns a vector with all components set to sides.
func Elem(sides float64) r3.Vec {
	return r3.Vec{
		X: sides,
		Y: sides,
		Z: sides,
	}
}
