package gfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyhedra/internal/geometry"
	"polyhedra/internal/gfx"
	"polyhedra/internal/gfx/gfxtest"
)

func TestCompile(t *testing.T) {
	rec := gfxtest.NewRecorder()
	h, err := gfx.Compile(rec)
	require.NoError(t, err)

	assert.NotZero(t, h.Program)
	assert.Equal(t, gfx.Location(0), h.Position)
	assert.Equal(t, gfx.Location(3), h.Color)
	assert.Equal(t, gfx.Location(10), h.Projection)
	assert.Equal(t, gfx.Location(11), h.ModelView)

	enabled := rec.Find("EnableVertexAttrib")
	require.Len(t, enabled, 2)
	assert.Equal(t, h.Position, enabled[0].Loc)
	assert.Equal(t, h.Color, enabled[1].Loc)
}

func TestCompileFailures(t *testing.T) {
	for _, stage := range []gfx.Stage{gfx.VertexStage, gfx.FragmentStage} {
		rec := gfxtest.NewRecorder()
		rec.FailStage[stage] = true
		_, err := gfx.Compile(rec)
		assert.ErrorIs(t, err, gfx.ErrShaderCompile, stage.String())
		assert.Empty(t, rec.Find("LinkProgram"))
	}

	rec := gfxtest.NewRecorder()
	rec.FailLink = true
	_, err := gfx.Compile(rec)
	assert.ErrorIs(t, err, gfx.ErrLink)
	assert.Empty(t, rec.Find("EnableVertexAttrib"))
}

func TestShaderSourcesUseNames(t *testing.T) {
	for _, name := range []string{gfx.AttribPosition, gfx.AttribColor, gfx.UniformProjection, gfx.UniformModelView} {
		assert.Contains(t, gfx.VertexSource, name)
	}
	assert.Contains(t, gfx.FragmentSource, "vColor")
}

func TestUpload(t *testing.T) {
	rec := gfxtest.NewRecorder()
	m := geometry.Bipyramid()
	b := gfx.Upload(rec, m)

	assert.Equal(t, 24, b.Count)
	assert.Equal(t, m.PositionData(), rec.Arrays[b.Position])
	assert.Equal(t, m.ColorData(), rec.Arrays[b.Color])
	assert.Equal(t, m.Indices, rec.Elements[b.Index])
}
