package math3d

import (
	"errors"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	p1 := V3(0.0, 0.0, 0.0)
	p2 := V3(1.0, 0.0, 0.0)
	p3 := V3(0.0, 1.0, 0.0)
	far := V3(2.0, 0.0, 0.0)

	tests := []struct {
		name string
		tri  Triangle[float64]
		want float64
	}{
		{"right", NewTriangle(&p1, &p2, &p3), 0.5},
		{"repeated vertex", NewTriangle(&p1, &p1, &p3), 0},
		{"single point", NewTriangle(&p1, &p1, &p1), 0},
		{"collinear", NewTriangle(&p1, &p2, &far), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tri.Area(); got != tc.want {
				t.Errorf("Area = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTriangleBarycentre(t *testing.T) {
	p1 := V3(0.0, 0.0, 0.0)
	p2 := V3(1.0, 0.0, 0.0)
	p3 := V3(0.0, 1.0, 0.0)

	want := V3(1.0/3.0, 1.0/3.0, 0.0)
	if got := NewTriangle(&p1, &p2, &p3).Barycentre(); got != want {
		t.Errorf("Barycentre = %v, want %v", got, want)
	}

	// Degenerate triangles still have a barycentre.
	if got := NewTriangle(&p2, &p2, &p2).Barycentre(); got.Distance(p2) > 1e-15 {
		t.Errorf("single point Barycentre = %v, want %v", got, p2)
	}
}

func TestTriangleSurface(t *testing.T) {
	p1 := V3(0.0, 0.0, 0.0)
	p2 := V3(1.0, 0.0, 0.0)
	p3 := V3(0.0, 1.0, 0.0)

	s, err := NewTriangle(&p1, &p2, &p3).Surface()
	if err != nil {
		t.Fatalf("Surface error: %v", err)
	}
	if got := s.N(); got != V3(0.0, 0.0, 1.0) {
		t.Errorf("N = %v, want (0, 0, 1)", got)
	}

	// Reversed winding flips the normal.
	s, err = NewTriangle(&p1, &p3, &p2).Surface()
	if err != nil {
		t.Fatalf("Surface error: %v", err)
	}
	if got := s.N(); got != V3(0.0, 0.0, -1.0) {
		t.Errorf("reversed N = %v, want (0, 0, -1)", got)
	}

	// Normal magnitude is twice the area.
	q3 := V3(0.0, 4.0, 0.0)
	tri := NewTriangle(&p1, &p2, &q3)
	s, err = tri.Surface()
	if err != nil {
		t.Fatalf("Surface error: %v", err)
	}
	if got, want := s.N().Length(), 2*tri.Area(); got != want {
		t.Errorf("|N| = %v, want %v", got, want)
	}
}

func TestTriangleSurfaceDegenerate(t *testing.T) {
	p1 := V3(0.0, 0.0, 0.0)
	p2 := V3(1.0, 1.0, 1.0)
	p3 := V3(2.0, 2.0, 2.0)

	tests := []struct {
		name string
		tri  Triangle[float64]
	}{
		{"repeated vertex", NewTriangle(&p1, &p1, &p3)},
		{"single point", NewTriangle(&p2, &p2, &p2)},
		{"collinear", NewTriangle(&p1, &p2, &p3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.tri.Surface()
			if !errors.Is(err, ErrDegenerateGeometry) {
				t.Errorf("Surface error = %v, want ErrDegenerateGeometry", err)
			}
		})
	}
}

func TestTriangleFloat32(t *testing.T) {
	p1 := V3[float32](0, 0, 0)
	p2 := V3[float32](1, 0, 0)
	p3 := V3[float32](0, 1, 0)

	tri := NewTriangle(&p1, &p2, &p3)
	if got := tri.Area(); got != 0.5 {
		t.Errorf("Area = %v, want 0.5", got)
	}
	s, err := tri.Surface()
	if err != nil {
		t.Fatalf("Surface error: %v", err)
	}
	if got := s.N(); got != V3[float32](0, 0, 1) {
		t.Errorf("N = %v, want (0, 0, 1)", got)
	}
}
