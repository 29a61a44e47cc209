package solid

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"polyhedra/internal/animation"
	"polyhedra/internal/geometry"
	"polyhedra/internal/gfx"
)

// Solid is one drawable polyhedron: uploaded buffers plus the model transform
// its animation mutates once per frame.
type Solid struct {
	Name       string
	Mesh       *geometry.Mesh
	Buffers    gfx.MeshBuffers
	Model      mgl32.Mat4
	Anim       animation.State
	LastUpdate time.Time
}

// New validates mesh, uploads it to ctx and places it at placement. now seeds
// the elapsed-time clock. An invalid mesh is rejected before anything reaches ctx.
func New(ctx gfx.Context, mesh *geometry.Mesh, anim animation.State, placement mgl32.Vec3, now time.Time) (*Solid, error) {
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return &Solid{
		Name:       mesh.Name,
		Mesh:       mesh,
		Buffers:    gfx.Upload(ctx, mesh),
		Model:      mgl32.Ident4().Mul4(mgl32.Translate3D(placement.Elem())),
		Anim:       anim,
		LastUpdate: now,
	}, nil
}

// mustNew is New for the built-in meshes, which are fixed and always valid.
func mustNew(ctx gfx.Context, mesh *geometry.Mesh, anim animation.State, placement mgl32.Vec3, now time.Time) *Solid {
	s, err := New(ctx, mesh, anim, placement, now)
	if err != nil {
		panic(fmt.Sprintf("solid: built-in mesh: %v", err))
	}
	return s
}

// NewCone returns a spinning pentagonal cone.
func NewCone(ctx gfx.Context, placement, axis mgl32.Vec3, now time.Time) *Solid {
	return mustNew(ctx, geometry.Cone(), animation.NewSpin(axis), placement, now)
}

// NewScutoid returns a spinning scutoid.
func NewScutoid(ctx gfx.Context, placement, axis mgl32.Vec3, now time.Time) *Solid {
	return mustNew(ctx, geometry.Scutoid(), animation.NewSpin(axis), placement, now)
}

// NewBipyramid returns a square bipyramid that spins and bobs along Y.
func NewBipyramid(ctx gfx.Context, placement, axis mgl32.Vec3, now time.Time) *Solid {
	return mustNew(ctx, geometry.Bipyramid(), animation.NewSpinBob(axis), placement, now)
}

// Update advances the animation by the time since the previous update.
func (s *Solid) Update(now time.Time) {
	dt := now.Sub(s.LastUpdate)
	s.LastUpdate = now
	s.Model, s.Anim = animation.Advance(s.Anim, s.Model, dt)
}
