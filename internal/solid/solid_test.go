package solid

import (
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

func TestBuildersPlaceAndUpload(t *testing.T) {
	rec := gfxtest.NewRecorder()
	place := mgl32.Vec3{-3.5, 0, -3}
	axis := mgl32.Vec3{0, 1, 0}

	cases := []struct {
		s        *Solid
		name     string
		vertices int
		indices  int
		kind     animation.Kind
	}{
		{NewCone(rec, place, axis, t0), "cone", 20, 24, animation.Spin},
		{NewScutoid(rec, place, axis, t0), "scutoid", 36, 60, animation.Spin},
		{NewBipyramid(rec, place, axis, t0), "bipyramid", 24, 24, animation.SpinBob},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.name, c.s.Name)
			assert.Equal(t, mgl32.Translate3D(-3.5, 0, -3), c.s.Model)
			assert.Equal(t, c.kind, c.s.Anim.Kind)
			assert.Equal(t, axis, c.s.Anim.Axis)
			assert.Equal(t, c.indices, c.s.Buffers.Count)
			assert.Len(t, rec.Arrays[c.s.Buffers.Position], c.vertices*3)
			assert.Len(t, rec.Arrays[c.s.Buffers.Color], c.vertices*4)
			assert.Len(t, rec.Elements[c.s.Buffers.Index], c.indices)
			assert.Equal(t, t0, c.s.LastUpdate)
		})
	}
}

func TestUpdateUsesElapsedTime(t *testing.T) {
	rec := gfxtest.NewRecorder()
	s := NewCone(rec, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, 1}, t0)
	start := s.Model

	s.Update(t0.Add(animation.Period / 2))
	half := start.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(180), mgl32.Vec3{0, 0, 1}))
	assert.InDeltaSlice(t, half[:], s.Model[:], 1e-5)
	assert.Equal(t, t0.Add(animation.Period/2), s.LastUpdate)

	s.Update(t0.Add(animation.Period))
	assert.InDeltaSlice(t, start[:], s.Model[:], 1e-5)
}

func TestUpdateSameInstantDoesNotRotate(t *testing.T) {
	rec := gfxtest.NewRecorder()
	s := NewScutoid(rec, mgl32.Vec3{}, mgl32.Vec3{1, 1, 0}, t0)
	s.Update(t0)
	id := mgl32.Ident4()
	assert.InDeltaSlice(t, id[:], s.Model[:], 1e-6)
}

func TestBipyramidBobs(t *testing.T) {
	rec := gfxtest.NewRecorder()
	s := NewBipyramid(rec, mgl32.Vec3{3.5, 0, -3}, mgl32.Vec3{}, t0)
	for i := 0; i < 10; i++ {
		s.Update(t0)
	}
	require.Equal(t, 10, s.Anim.Bob.Ticks)
	assert.InDelta(t, 0.1, s.Model.At(1, 3), 1e-5)
	assert.InDelta(t, 3.5, s.Model.At(0, 3), 1e-6)
}

func TestNewRejectsInvalidMeshBeforeUpload(t *testing.T) {
	rec := gfxtest.NewRecorder()
	mesh := geometry.Cone()
	mesh.Indices[0] = uint16(mesh.VertexCount())

	s, err := New(rec, mesh, animation.NewSpin(mgl32.Vec3{0, 1, 0}), mgl32.Vec3{}, t0)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, geometry.ErrIndexRange)
	assert.Empty(t, rec.Calls)
	assert.Empty(t, rec.Arrays)
	assert.Empty(t, rec.Elements)
}
