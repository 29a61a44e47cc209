package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Element widths of the position and color attributes, checked at compile time
// against the vector types the mesh stores.
const (
	PositionStride = len(mgl32.Vec3{})
	ColorStride    = len(mgl32.Vec4{})
)

// Primitive is the topology an index buffer is drawn with.
type Primitive int

const (
	Triangles Primitive = iota
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}

var (
	ErrColorCount = errors.New("geometry: color count does not match vertex count")
	ErrIndexRange = errors.New("geometry: index out of range")
	ErrTopology   = errors.New("geometry: index count is not a multiple of 3")
)

// Face is one flat-colored run of emitted vertices.
type Face struct {
	First int
	Count int
	Color mgl32.Vec4
}

// Mesh is static geometry for one solid. Vertices are duplicated per face so
// every face can carry its own color.
type Mesh struct {
	Name      string
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec4
	Indices   []uint16
	Faces     []Face
	Primitive Primitive
}

// VertexCount returns the number of emitted vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// PositionData flattens positions into PositionStride floats per vertex for upload.
func (m *Mesh) PositionData() []float32 {
	out := make([]float32, 0, len(m.Positions)*PositionStride)
	for _, p := range m.Positions {
		out = append(out, p[:]...)
	}
	return out
}

// ColorData flattens colors into ColorStride floats per vertex for upload.
func (m *Mesh) ColorData() []float32 {
	out := make([]float32, 0, len(m.Colors)*ColorStride)
	for _, c := range m.Colors {
		out = append(out, c[:]...)
	}
	return out
}

// Validate reports the first broken buffer invariant, if any.
func (m *Mesh) Validate() error {
	if len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("%s: %d colors for %d vertices: %w", m.Name, len(m.Colors), len(m.Positions), ErrColorCount)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%s: %d indices: %w", m.Name, len(m.Indices), ErrTopology)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return fmt.Errorf("%s: index %d at %d (vertex count %d): %w", m.Name, idx, i, len(m.Positions), ErrIndexRange)
		}
	}
	return nil
}

// builder appends faces and triangles to a mesh in emission order.
type builder struct {
	mesh *Mesh
}

func newBuilder(name string) *builder {
	return &builder{mesh: &Mesh{Name: name, Primitive: Triangles}}
}

// face emits verts as one face, all with the given color.
func (b *builder) face(color mgl32.Vec4, verts ...mgl32.Vec3) {
	b.mesh.Faces = append(b.mesh.Faces, Face{First: len(b.mesh.Positions), Count: len(verts), Color: color})
	for _, v := range verts {
		b.mesh.Positions = append(b.mesh.Positions, v)
		b.mesh.Colors = append(b.mesh.Colors, color)
	}
}

func (b *builder) triangles(idx ...uint16) {
	b.mesh.Indices = append(b.mesh.Indices, idx...)
}

// sequential emits first, first+1, ..., end-1.
func (b *builder) sequential(first, end uint16) {
	for i := first; i < end; i++ {
		b.mesh.Indices = append(b.mesh.Indices, i)
	}
}
