package models

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/taigrr/atomgeo/pkg/logging"
	"github.com/taigrr/atomgeo/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// Options
	CalculateNormals bool
	SmoothNormals    bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		CalculateNormals: true,
		SmoothNormals:    true,
	}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) (*Mesh, error) {
	loader := NewGLTFLoader()
	return loader.Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh. Faces keep the file's
// counter-clockwise winding, so face surfaces point outward.
//
// Degenerate faces found while calculating normals are logged and do not
// fail the load; callers that care can call FaceSurface per face.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))

	// Process all meshes in the document
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	hasNormals := false
	for _, v := range mesh.Vertices {
		if v.Normal != math3d.Zero[float64]() {
			hasNormals = true
			break
		}
	}

	if l.CalculateNormals && !hasNormals {
		if l.SmoothNormals {
			err = mesh.CalculateSmoothNormals()
		} else {
			err = mesh.CalculateNormals()
		}
		if err != nil {
			logging.L().Warn("mesh has faces without a normal",
				zap.String("mesh", mesh.Name),
				zap.Int("faces", countFaceErrors(err)),
				zap.Error(err),
			)
		}
	}

	mesh.CalculateBounds()

	logging.L().Debug("loaded mesh",
		zap.String("path", path),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
	)

	return mesh, nil
}

// processMesh extracts geometry from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, strips)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var normals [][3]float32
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			if err != nil {
				return fmt.Errorf("read normals: %w", err)
			}
		}

		// Base vertex index for this primitive
		baseVertex := len(mesh.Vertices)

		for i, p := range positions {
			v := MeshVertex{Position: vec3From32(p)}
			if i < len(normals) {
				v.Normal = vec3From32(normals[i])
			}
			mesh.Vertices = append(mesh.Vertices, v)
		}

		if prim.Indices != nil {
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				face := Face{V: [3]int{
					baseVertex + int(indices[i]),
					baseVertex + int(indices[i+1]),
					baseVertex + int(indices[i+2]),
				}}
				for _, vi := range face.V {
					if vi >= len(mesh.Vertices) {
						return fmt.Errorf("index %d out of range (%d vertices)", vi-baseVertex, len(positions))
					}
				}
				mesh.Faces = append(mesh.Faces, face)
			}
		} else {
			// No indices, assume sequential triangles
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{
					baseVertex + i,
					baseVertex + i + 1,
					baseVertex + i + 2,
				}})
			}
		}
	}

	return nil
}

func vec3From32(f [3]float32) Vec3 {
	return math3d.V3(float64(f[0]), float64(f[1]), float64(f[2]))
}

func countFaceErrors(err error) int {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return 1
	}
	n := 0
	for _, e := range joined.Unwrap() {
		var fe *FaceError
		if errors.As(e, &fe) {
			n++
		}
	}
	return n
}
