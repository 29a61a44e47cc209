package primitives

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"polyhedra/internal/animation"
	"polyhedra/internal/geometry"
	"polyhedra/internal/gfx"
	"polyhedra/internal/solid"
)

// Kind describes one solid type: the mesh it draws and how it moves.
type Kind struct {
	Mesh    func() *geometry.Mesh
	Animate func(axis mgl32.Vec3) animation.State
}

// Registry maps layout type names to kinds.
type Registry struct {
	kinds map[string]Kind
}

// NewRegistry returns a registry with "cone", "scutoid" and "bipyramid".
func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[string]Kind)}
	r.Register("cone", Kind{Mesh: geometry.Cone, Animate: animation.NewSpin})
	r.Register("scutoid", Kind{Mesh: geometry.Scutoid, Animate: animation.NewSpin})
	r.Register("bipyramid", Kind{Mesh: geometry.Bipyramid, Animate: animation.NewSpinBob})
	return r
}

// Register adds or replaces the kind for name.
func (r *Registry) Register(name string, k Kind) {
	r.kinds[name] = k
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Build creates the solid described by d. The mesh is validated before any
// buffer is created on ctx.
func (r *Registry) Build(ctx gfx.Context, d Def, now time.Time) (*solid.Solid, error) {
	k, ok := r.kinds[d.Type]
	if !ok {
		return nil, fmt.Errorf("%q: %w", d.Type, ErrUnknownType)
	}
	return solid.New(ctx, k.Mesh(), k.Animate(d.RotationAxis()), d.Placement(), now)
}

// BuildAll creates every solid in defs, in order. It stops at the first unknown
// type or invalid mesh.
func (r *Registry) BuildAll(ctx gfx.Context, defs []Def, now time.Time) ([]*solid.Solid, error) {
	out := make([]*solid.Solid, 0, len(defs))
	for i, d := range defs {
		s, err := r.Build(ctx, d, now)
		if err != nil {
			return nil, fmt.Errorf("solid %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}
