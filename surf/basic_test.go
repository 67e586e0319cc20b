package surf_test

import (
	"math"
	"testing"

	csg "github.com/fusion-energy/csg-surface-distance"
	"github.com/fusion-energy/csg-surface-distance/surf"
	"github.com/fusion-energy/csg-surface-distance/surf/must"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPlaneZeroNormalErrors(t *testing.T) {
	s, err := surf.Plane(0, 0, 0, 1)
	if err == nil {
		t.Fatal("expected error for zero plane normal")
	}
	if s != nil {
		t.Errorf("got surface %v alongside error", s)
	}
	if err.Error() != "zero plane normal" {
		t.Errorf("unexpected error message %q", err.Error())
	}
}

// Every surf constructor must hand back the same surface as its
// surf/must counterpart.
func TestConstructorsMirrorMust(t *testing.T) {
	p := r3.Vec{X: 0.5, Y: -1.5, Z: 2.5}
	dir := r3.Vec{X: 1, Y: 1, Z: 1}
	center := r3.Vec{X: 1, Y: 2, Z: 3}
	for _, test := range []struct {
		name string
		safe func() (csg.Surface, error)
		want csg.Surface
	}{
		{"sphere", func() (csg.Surface, error) { return surf.Sphere(center, 2) }, must.Sphere(center, 2)},
		{"planeX", func() (csg.Surface, error) { return surf.PlaneX(2) }, must.PlaneX(2)},
		{"planeY", func() (csg.Surface, error) { return surf.PlaneY(2) }, must.PlaneY(2)},
		{"planeZ", func() (csg.Surface, error) { return surf.PlaneZ(2) }, must.PlaneZ(2)},
		{"plane", func() (csg.Surface, error) { return surf.Plane(1, 2, 3, 4) }, must.Plane(1, 2, 3, 4)},
		{"cylinderX", func() (csg.Surface, error) { return surf.CylinderX(center, 1) }, must.CylinderX(center, 1)},
		{"cylinderY", func() (csg.Surface, error) { return surf.CylinderY(center, 1) }, must.CylinderY(center, 1)},
		{"cylinderZ", func() (csg.Surface, error) { return surf.CylinderZ(center, 1) }, must.CylinderZ(center, 1)},
		{"coneX", func() (csg.Surface, error) { return surf.ConeX(center, 0.4) }, must.ConeX(center, 0.4)},
		{"coneY", func() (csg.Surface, error) { return surf.ConeY(center, 0.4) }, must.ConeY(center, 0.4)},
		{"coneZ", func() (csg.Surface, error) { return surf.ConeZ(center, 0.4) }, must.ConeZ(center, 0.4)},
		{"quadric", func() (csg.Surface, error) { return surf.Quadric(1, 2, 3, 4, 5, 6, 7, 8, 9, 10) }, must.Quadric(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)},
		{"torusX", func() (csg.Surface, error) { return surf.TorusX(center, 2, 0.5, 0.5) }, must.TorusX(center, 2, 0.5, 0.5)},
	} {
		s, err := test.safe()
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		got, gotOK := s.Distance(p, dir)
		want, wantOK := test.want.Distance(p, dir)
		if gotOK != wantOK || math.Abs(got-want) > 1e-12 {
			t.Errorf("%s: got %g/%t, want %g/%t", test.name, got, gotOK, want, wantOK)
		}
	}
}
