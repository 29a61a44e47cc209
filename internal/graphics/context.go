package graphics

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"

	"polyhedra/internal/geometry"
	"polyhedra/internal/gfx"
)

// raylib has no standalone buffer objects, so buffers are kept on the CPU and
// turned into an uploaded rl.Mesh the first time a combination is drawn.

type buffer struct {
	floats []float32
	shorts []uint16
}

type program struct {
	shader   rl.Shader
	locs     []int32
	position gfx.Location
	color    gfx.Location
}

type attribBinding struct {
	buf  gfx.Buffer
	size int
}

type meshKey struct {
	position, color, index gfx.Buffer
}

// uploadedMesh keeps the Go slices the rl.Mesh points into.
type uploadedMesh struct {
	mesh     rl.Mesh
	vertices []float32
	colors   []uint8
	indices  []uint16
}

func (w *Window) handle() uint32 {
	w.nextHandle++
	return w.nextHandle
}

func (w *Window) CreateArrayBuffer(data []float32) gfx.Buffer {
	b := gfx.Buffer(w.handle())
	w.buffers[b] = &buffer{floats: append([]float32(nil), data...)}
	return b
}

func (w *Window) CreateElementBuffer(data []uint16) gfx.Buffer {
	b := gfx.Buffer(w.handle())
	w.buffers[b] = &buffer{shorts: append([]uint16(nil), data...)}
	return b
}

func (w *Window) CompileShader(stage gfx.Stage, source string) (gfx.Shader, error) {
	kind := int32(rl.VertexShader)
	if stage == gfx.FragmentStage {
		kind = rl.FragmentShader
	}
	id := rl.CompileShader(source, kind)
	if id == 0 {
		return 0, fmt.Errorf("%s shader: %w", stage, gfx.ErrShaderCompile)
	}
	return gfx.Shader(id), nil
}

func (w *Window) LinkProgram(vs, fs gfx.Shader) (gfx.Program, error) {
	id := rl.LoadShaderProgram(uint32(vs), uint32(fs))
	if id == 0 {
		return 0, gfx.ErrLink
	}
	// raylib sets its built-in matrices and maps through locs; -1 everywhere keeps
	// it from touching uniforms this program does not have.
	locs := make([]int32, rl.MaxShaderLocations)
	for i := range locs {
		locs[i] = -1
	}
	w.pinner.Pin(&locs[0])
	p := &program{
		shader:   rl.NewShader(id, &locs[0]),
		locs:     locs,
		position: -1,
		color:    -1,
	}
	w.programs[gfx.Program(id)] = p
	return gfx.Program(id), nil
}

func (w *Window) AttribLocation(p gfx.Program, name string) gfx.Location {
	prog, ok := w.programs[p]
	if !ok {
		return -1
	}
	loc := gfx.Location(rl.GetLocationAttrib(prog.shader.ID, name))
	switch name {
	case gfx.AttribPosition:
		prog.position = loc
		prog.locs[rl.ShaderLocVertexPosition] = int32(loc)
	case gfx.AttribColor:
		prog.color = loc
		prog.locs[rl.ShaderLocVertexColor] = int32(loc)
	}
	return loc
}

func (w *Window) UniformLocation(p gfx.Program, name string) gfx.Location {
	prog, ok := w.programs[p]
	if !ok {
		return -1
	}
	return gfx.Location(rl.GetLocationUniform(prog.shader.ID, name))
}

func (w *Window) EnableVertexAttrib(loc gfx.Location) {
	if loc >= 0 {
		w.enabled[loc] = true
	}
}

func (w *Window) Viewport(width, height int) {
	rl.Viewport(0, 0, int32(width), int32(height))
}

func (w *Window) ClearColor(c mgl32.Vec4) {
	w.clearColor = color.RGBA{R: unorm8(c[0]), G: unorm8(c[1]), B: unorm8(c[2]), A: unorm8(c[3])}
}

func (w *Window) EnableDepthTest() {
	rl.EnableDepthTest()
}

// Clear clears both color and depth.
func (w *Window) Clear() {
	rl.ClearBackground(w.clearColor)
}

func (w *Window) UseProgram(p gfx.Program) {
	w.current = w.programs[p]
}

func (w *Window) VertexAttribPointer(loc gfx.Location, buf gfx.Buffer, size int) {
	w.attribs[loc] = attribBinding{buf: buf, size: size}
}

func (w *Window) BindElementBuffer(buf gfx.Buffer) {
	w.elements = buf
}

func (w *Window) UniformMatrix4(loc gfx.Location, m mgl32.Mat4) {
	if w.current == nil || loc < 0 {
		return
	}
	rl.SetShaderValueMatrix(w.current.shader, int32(loc), toMatrix(m))
}

func (w *Window) DrawElements(mode geometry.Primitive, count int) {
	if mode != geometry.Triangles || w.current == nil || count <= 0 {
		return
	}
	m, err := w.meshFor(w.current)
	if err != nil {
		w.log.Logf("graphics: draw skipped: %v", err)
		return
	}
	mesh := m.mesh
	mesh.TriangleCount = int32(min(count, len(m.indices)) / 3)
	material := w.material
	material.Shader = w.current.shader
	rl.DrawMesh(mesh, material, rl.MatrixIdentity())
}

// meshFor returns the uploaded mesh for the buffers currently bound to prog,
// uploading it on first use.
func (w *Window) meshFor(prog *program) (*uploadedMesh, error) {
	pos, ok := w.attribs[prog.position]
	if !ok || !w.enabled[prog.position] || pos.size != geometry.PositionStride {
		return nil, fmt.Errorf("no position buffer bound")
	}
	key := meshKey{position: pos.buf, index: w.elements}
	col, hasColor := w.attribs[prog.color]
	hasColor = hasColor && w.enabled[prog.color] && col.size == geometry.ColorStride
	if hasColor {
		key.color = col.buf
	}
	if m, ok := w.meshes[key]; ok {
		return m, nil
	}

	vb, ok := w.buffers[key.position]
	if !ok || len(vb.floats) == 0 {
		return nil, fmt.Errorf("position buffer %d is empty", key.position)
	}
	ib, ok := w.buffers[key.index]
	if !ok || len(ib.shorts) == 0 {
		return nil, fmt.Errorf("element buffer %d is empty", key.index)
	}
	m := &uploadedMesh{vertices: vb.floats, indices: ib.shorts}
	m.mesh.VertexCount = int32(len(m.vertices) / geometry.PositionStride)
	m.mesh.TriangleCount = int32(len(m.indices) / 3)
	m.mesh.Vertices = &m.vertices[0]
	m.mesh.Indices = &m.indices[0]
	if hasColor {
		cb := w.buffers[key.color]
		if cb == nil || len(cb.floats) != len(m.vertices)/geometry.PositionStride*geometry.ColorStride {
			return nil, fmt.Errorf("color buffer %d does not match %d vertices", key.color, m.mesh.VertexCount)
		}
		m.colors = unorm8Slice(cb.floats)
		m.mesh.Colors = &m.colors[0]
	}
	rl.UploadMesh(&m.mesh, false)
	w.meshes[key] = m
	return m, nil
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout; both store
// columns contiguously so elements map index for index.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// unorm8 maps [0, 1] to [0, 255], clamping out-of-range values.
func unorm8[F constraints.Float](v F) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

func unorm8Slice[F constraints.Float](vs []F) []uint8 {
	out := make([]uint8, len(vs))
	for i, v := range vs {
		out[i] = unorm8(v)
	}
	return out
}
