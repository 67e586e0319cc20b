package must_test

import (
	"math"
	"testing"

	sdfx "github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/fusion-energy/csg-surface-distance/surf/must"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cross-checks against deadsy/sdfx: the magnitude of its signed
// distance fields must agree with our unsigned proximity wherever the
// primitives coincide.

func TestSphereAgreesWithSDFX(t *testing.T) {
	const radius = 1.5
	ours := must.Sphere(r3.Vec{}, radius)
	theirs, err := sdfx.Sphere3D(radius)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []r3.Vec{
		{X: 3},
		{X: 1, Y: 1, Z: 1},
		{X: 0.2, Y: -0.3, Z: 0.1},
		{Y: -4, Z: 2},
	} {
		got, ok := ours.Distance(p, r3.Vec{})
		if !ok {
			t.Fatalf("point %+v: got no value", p)
		}
		want := math.Abs(theirs.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z}))
		if math.Abs(got-want) > tol {
			t.Errorf("point %+v: got %g, sdfx gives %g", p, got, want)
		}
	}
}

func TestCylinderAgreesWithSDFX(t *testing.T) {
	const radius = 2.0
	// A finite sdfx cylinder much taller than the sample window stands
	// in for our infinite one: near its waist the radial term wins.
	const height = 100.0
	ours := must.CylinderZ(r3.Vec{}, radius)
	theirs, err := sdfx.Cylinder3D(height, radius, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []r3.Vec{
		{X: 3, Y: 4, Z: 1},
		{X: 0.5, Z: -2},
		{X: -2.5, Y: 0.1, Z: 3},
	} {
		got, ok := ours.Distance(p, r3.Vec{})
		if !ok {
			t.Fatalf("point %+v: got no value", p)
		}
		want := math.Abs(theirs.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z}))
		if math.Abs(got-want) > tol {
			t.Errorf("point %+v: got %g, sdfx gives %g", p, got, want)
		}
	}
}

func BenchmarkSDFXSphere(b *testing.B) {
	s, err := sdfx.Sphere3D(1)
	if err != nil {
		b.Fatal(err)
	}
	p := v3.Vec{X: 1, Y: 2, Z: 3}
	for i := 0; i < b.N; i++ {
		s.Evaluate(p)
	}
}

func BenchmarkSphere(b *testing.B) {
	s := must.Sphere(r3.Vec{}, 1)
	p := r3.Vec{X: 1, Y: 2, Z: 3}
	for i := 0; i < b.N; i++ {
		s.Distance(p, r3.Vec{})
	}
}
