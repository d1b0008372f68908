// Package models provides triangle meshes built on math3d vectors.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/atomgeo/pkg/math3d"
)

// Vec3 is the vector type meshes are stored in.
type Vec3 = math3d.Vec3d[float64]

// Mesh is an indexed triangle list.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin Vec3
	BoundsMax Vec3
}

// MeshVertex holds per-vertex attributes.
type MeshVertex struct {
	Position Vec3
	Normal   Vec3
}

// Face is a triangle given by three indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// FaceError reports a face whose geometry could not be used.
type FaceError struct {
	Face int
	Err  error
}

func (e *FaceError) Error() string {
	return fmt.Sprintf("face %d: %v", e.Face, e.Err)
}

func (e *FaceError) Unwrap() error {
	return e.Err
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]MeshVertex, 0),
		Faces:    make([]Face, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() Vec3 {
	return math3d.NewLineRef(&m.BoundsMin, &m.BoundsMax).MiddlePoint()
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Triangle returns a view of face i over the mesh's vertex positions. The
// view is invalidated if Vertices is reallocated.
func (m *Mesh) Triangle(i int) math3d.Triangle[float64] {
	f := m.Faces[i]
	return math3d.NewTriangle(
		&m.Vertices[f.V[0]].Position,
		&m.Vertices[f.V[1]].Position,
		&m.Vertices[f.V[2]].Position,
	)
}

// FaceSurface returns the oriented normal of face i.
func (m *Mesh) FaceSurface(i int) (math3d.Surface[float64], error) {
	s, err := m.Triangle(i).Surface()
	if err != nil {
		return s, &FaceError{Face: i, Err: err}
	}
	return s, nil
}

// SurfaceArea returns the summed area of all faces. Degenerate faces
// contribute zero.
func (m *Mesh) SurfaceArea() float64 {
	var area float64
	for i := range m.Faces {
		area += m.Triangle(i).Area()
	}
	return area
}

func (m *Mesh) faceNormal(i int) (Vec3, error) {
	s, err := m.FaceSurface(i)
	if err != nil {
		return Vec3{}, err
	}
	return s.N(), nil
}

// CalculateNormals assigns each face's unit normal to its vertices (flat
// shading). Degenerate faces leave their vertices untouched and are
// reported in the returned error.
func (m *Mesh) CalculateNormals() error {
	var errs []error
	for i := range m.Faces {
		n, err := m.faceNormal(i)
		if err == nil {
			n, err = n.Normalize()
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}

		f := &m.Faces[i]
		m.Vertices[f.V[0]].Normal = n
		m.Vertices[f.V[1]].Normal = n
		m.Vertices[f.V[2]].Normal = n
	}
	return errors.Join(errs...)
}

// CalculateSmoothNormals computes area-weighted averaged normals for smooth
// shading. Degenerate faces are skipped and reported. Vertices with no
// usable face keep a zero normal.
func (m *Mesh) CalculateSmoothNormals() error {
	// Reset all normals
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero[float64]()
	}

	var errs []error

	// Accumulate face normals per vertex; the cross product is already
	// weighted by face area.
	for i, f := range m.Faces {
		n, err := m.faceNormal(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		m.Vertices[f.V[0]].Normal.Accumulate(n)
		m.Vertices[f.V[1]].Normal.Accumulate(n)
		m.Vertices[f.V[2]].Normal.Accumulate(n)
	}

	for i := range m.Vertices {
		if m.Vertices[i].Normal == math3d.Zero[float64]() {
			continue
		}
		n, err := m.Vertices[i].Normal.Normalize()
		if err != nil {
			errs = append(errs, fmt.Errorf("vertex %d: %w", i, err))
			continue
		}
		m.Vertices[i].Normal = n
	}
	return errors.Join(errs...)
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]MeshVertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// GetBounds returns the axis-aligned bounding box.
func (m *Mesh) GetBounds() (min, max Vec3) {
	return m.BoundsMin, m.BoundsMax
}
