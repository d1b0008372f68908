package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/taigrr/atomgeo/pkg/atom"
	"github.com/taigrr/atomgeo/pkg/math3d"
	"github.com/taigrr/atomgeo/pkg/models"
)

func reportMolecule(w io.Writer, m *atom.Molecule) error {
	fmt.Fprintf(w, "molecule %q: %d atoms\n", m.Name, m.Len())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, a := range m.Atoms {
		fmt.Fprintf(tw, "  %d\t%s\t%s\n", i, a.Type, a.Position)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if err := m.Validate(); err != nil {
		fmt.Fprintf(w, "warnings:\n")
		for _, e := range unjoin(err) {
			fmt.Fprintf(w, "  %v\n", e)
		}
	}

	if m.Len() == 0 {
		return nil
	}

	c, err := m.Centroid()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "centroid: %s\n", c)

	if m.Len() > 1 {
		fmt.Fprintf(w, "distances:\n")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i := 0; i < m.Len(); i++ {
			for j := i + 1; j < m.Len(); j++ {
				d, err := m.BondLength(i, j)
				if err != nil {
					return err
				}
				mid, err := m.BondMidpoint(i, j)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "  %d-%d\t%.2f\tmid %s\n", i, j, d, mid)
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if m.Len() >= 3 {
		n, err := m.PlaneNormal(0, 1, 2)
		switch {
		case errors.Is(err, math3d.ErrDegenerateGeometry):
			fmt.Fprintf(w, "plane 0-1-2: collinear\n")
		case err != nil:
			return err
		default:
			fmt.Fprintf(w, "plane 0-1-2 normal: %s\n", n)
		}
	}
	return nil
}

func reportMesh(w io.Writer, mesh *models.Mesh) error {
	fmt.Fprintf(w, "mesh %q: %d vertices, %d triangles\n", mesh.Name, mesh.VertexCount(), mesh.TriangleCount())

	lo, hi := mesh.GetBounds()
	fmt.Fprintf(w, "bounds: %s .. %s\n", lo, hi)
	fmt.Fprintf(w, "center: %s\n", mesh.Center())
	fmt.Fprintf(w, "size:   %s\n", mesh.Size())
	fmt.Fprintf(w, "area:   %.2f\n", mesh.SurfaceArea())

	degenerate := 0
	for i := range mesh.Faces {
		if _, err := mesh.FaceSurface(i); err != nil {
			if !errors.Is(err, math3d.ErrDegenerateGeometry) {
				return err
			}
			degenerate++
		}
	}
	if degenerate > 0 {
		fmt.Fprintf(w, "degenerate faces: %d\n", degenerate)
	}
	return nil
}

func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
