package models

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/taigrr/atomgeo/pkg/logging"
	"github.com/taigrr/atomgeo/pkg/math3d"
)

// writeGLB saves a single-primitive GLB to a temp dir and returns its path.
func writeGLB(t *testing.T, positions [][3]float32, indices []uint16) string {
	t.Helper()

	doc := gltf.NewDocument()
	prim := &gltf.Primitive{
		Attributes: map[string]int{
			gltf.POSITION: modeler.WritePosition(doc, positions),
		},
	}
	if indices != nil {
		prim.Indices = gltf.Index(modeler.WriteIndices(doc, indices))
	}
	doc.Meshes = []*gltf.Mesh{{Name: "fixture", Primitives: []*gltf.Primitive{prim}}}

	path := filepath.Join(t.TempDir(), "fixture.glb")
	require.NoError(t, gltf.SaveBinary(doc, path))
	return path
}

var squarePositions = [][3]float32{
	{0, 0, 0},
	{1, 0, 0},
	{1, 1, 0},
	{0, 1, 0},
}

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	assert.Error(t, err)
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	require.NotNil(t, loader)
	assert.True(t, loader.CalculateNormals, "CalculateNormals should default to true")
	assert.True(t, loader.SmoothNormals, "SmoothNormals should default to true")
}

func TestLoadGLBIndexed(t *testing.T) {
	path := writeGLB(t, squarePositions, []uint16{0, 1, 2, 0, 2, 3})

	mesh, err := LoadGLB(path)
	require.NoError(t, err)

	assert.Equal(t, "fixture.glb", mesh.Name)
	assert.Equal(t, 4, mesh.VertexCount())
	assert.Equal(t, 2, mesh.TriangleCount())
	assert.Equal(t, 1.0, mesh.SurfaceArea())
	assert.Equal(t, math3d.V3(0.5, 0.5, 0.0), mesh.Center())

	// Winding is preserved, so the square faces +Z.
	for i := range mesh.Faces {
		s, err := mesh.FaceSurface(i)
		require.NoError(t, err)
		assert.Equal(t, math3d.V3(0.0, 0.0, 1.0), s.N())
	}
	for _, v := range mesh.Vertices {
		assert.Equal(t, math3d.V3(0.0, 0.0, 1.0), v.Normal)
	}
}

func TestLoadGLBSequential(t *testing.T) {
	path := writeGLB(t, squarePositions[:3], nil)

	loader := NewGLTFLoader()
	loader.SmoothNormals = false
	mesh, err := loader.Load(path)
	require.NoError(t, err)

	require.Equal(t, 1, mesh.TriangleCount())
	assert.Equal(t, [3]int{0, 1, 2}, mesh.Faces[0].V)
	assert.Equal(t, 0.5, mesh.SurfaceArea())
}

func TestLoadGLBDegenerateFaceWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := logging.SetDefault(zap.New(core))
	t.Cleanup(func() { logging.SetDefault(prev) })

	collinear := [][3]float32{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}
	path := writeGLB(t, collinear, nil)

	mesh, err := LoadGLB(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mesh.SurfaceArea())

	_, err = mesh.FaceSurface(0)
	assert.ErrorIs(t, err, math3d.ErrDegenerateGeometry)

	warnings := logs.All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(1), warnings[0].ContextMap()["faces"])
}

func TestLoadGLBSkipsNormalsWhenDisabled(t *testing.T) {
	path := writeGLB(t, squarePositions, []uint16{0, 1, 2})

	loader := NewGLTFLoader()
	loader.CalculateNormals = false
	mesh, err := loader.Load(path)
	require.NoError(t, err)

	for _, v := range mesh.Vertices {
		assert.Equal(t, math3d.Zero[float64](), v.Normal)
	}
}
