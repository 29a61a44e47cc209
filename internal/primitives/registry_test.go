package primitives

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyhedra/internal/animation"
	"polyhedra/internal/geometry"
	"polyhedra/internal/gfx/gfxtest"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDefaultIsACopy(t *testing.T) {
	a := Default()
	require.Len(t, a, 3)
	a[0].Position[0] = 99
	a[1].Type = "changed"
	b := Default()
	assert.Equal(t, float32(-3.5), b[0].Position[0])
	assert.Equal(t, "scutoid", b[1].Type)
}

func TestLoadMissingFile(t *testing.T) {
	defs, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), defs)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := `solids:
  - type: bipyramid
    position: [1, 2, 3]
    axis: [0, 0, 1]
  - type: cone
    position: [-1, 0, -2]
    axis: [1, 0, 0]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	defs, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Def{
		{Type: "bipyramid", Position: [3]float32{1, 2, 3}, Axis: [3]float32{0, 0, 1}},
		{Type: "cone", Position: [3]float32{-1, 0, -2}, Axis: [3]float32{1, 0, 0}},
	}, defs)
}

func TestLoadEmptyAndInvalid(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("solids: []\n"), 0644))
	defs, err := Load(empty)
	require.NoError(t, err)
	assert.Equal(t, Default(), defs)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("solids: {type: ["), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestBuildAll(t *testing.T) {
	rec := gfxtest.NewRecorder()
	solids, err := NewRegistry().BuildAll(rec, Default(), t0)
	require.NoError(t, err)
	require.Len(t, solids, 3)

	assert.Equal(t, "cone", solids[0].Name)
	assert.Equal(t, "scutoid", solids[1].Name)
	assert.Equal(t, "bipyramid", solids[2].Name)
	assert.Equal(t, animation.SpinBob, solids[2].Anim.Kind)
	assert.Equal(t, mgl32.Translate3D(3.5, 0, -3), solids[2].Model)
	assert.Equal(t, mgl32.Vec3{1, 1, 0.2}, solids[0].Anim.Axis)
}

func TestBuildUnknownType(t *testing.T) {
	rec := gfxtest.NewRecorder()
	defs := append(Default(), Def{Type: "dodecahedron"})
	_, err := NewRegistry().BuildAll(rec, defs, t0)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "solid 3")
}

func TestBuildAllRejectsInvalidMeshBeforeUpload(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", Kind{
		Mesh: func() *geometry.Mesh {
			m := geometry.Cone()
			m.Indices[len(m.Indices)-1] = 500
			return m
		},
		Animate: animation.NewSpin,
	})
	rec := gfxtest.NewRecorder()
	_, err := r.BuildAll(rec, []Def{{Type: "broken"}}, t0)
	assert.ErrorIs(t, err, geometry.ErrIndexRange)
	assert.Contains(t, err.Error(), "solid 0")
	assert.Empty(t, rec.Find("CreateArrayBuffer"))
	assert.Empty(t, rec.Find("CreateElementBuffer"))
}

func TestDefaultDoesNotPanic(t *testing.T) {
	var defs []Def
	require.NotPanics(t, func() { defs = Default() })
	assert.Equal(t, defaultLayout, defs)
}

func TestTypes(t *testing.T) {
	assert.Equal(t, []string{"bipyramid", "cone", "scutoid"}, NewRegistry().Types())
}
