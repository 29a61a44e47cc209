// Package gfx is the contract between the scene and a graphics backend:
// buffer upload, shader programs, uniforms and indexed draws.
package gfx

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"polyhedra/internal/geometry"
)

var (
	ErrContextUnavailable = errors.New("gfx: graphics context unavailable")
	ErrShaderCompile      = errors.New("gfx: shader compile failed")
	ErrLink               = errors.New("gfx: program link failed")
)

// Handles issued by a Context. Zero is never a valid handle.
type (
	Buffer  uint32
	Shader  uint32
	Program uint32
)

// Location is an attribute or uniform slot in a linked program. -1 means not found.
type Location int32

// Stage selects the shader stage to compile.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	if s == VertexStage {
		return "vertex"
	}
	return "fragment"
}

// Context is the subset of a GL-style API the scene needs.
type Context interface {
	CreateArrayBuffer(data []float32) Buffer
	CreateElementBuffer(data []uint16) Buffer

	CompileShader(stage Stage, source string) (Shader, error)
	LinkProgram(vs, fs Shader) (Program, error)
	AttribLocation(p Program, name string) Location
	UniformLocation(p Program, name string) Location
	EnableVertexAttrib(loc Location)

	Viewport(width, height int)
	ClearColor(c mgl32.Vec4)
	EnableDepthTest()
	Clear()
	UseProgram(p Program)

	// VertexAttribPointer feeds loc from buf, size floats per vertex.
	VertexAttribPointer(loc Location, buf Buffer, size int)
	BindElementBuffer(buf Buffer)
	UniformMatrix4(loc Location, m mgl32.Mat4)
	DrawElements(mode geometry.Primitive, count int)
}

// Scheduler calls fn once before the next repaint.
type Scheduler interface {
	RequestFrame(fn func())
}

// MeshBuffers are the uploaded copies of one mesh.
type MeshBuffers struct {
	Position Buffer
	Color    Buffer
	Index    Buffer
	Count    int
}

// Upload copies the mesh buffers into ctx.
func Upload(ctx Context, m *geometry.Mesh) MeshBuffers {
	return MeshBuffers{
		Position: ctx.CreateArrayBuffer(m.PositionData()),
		Color:    ctx.CreateArrayBuffer(m.ColorData()),
		Index:    ctx.CreateElementBuffer(m.Indices),
		Count:    len(m.Indices),
	}
}
