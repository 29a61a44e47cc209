// Package gfxtest provides an in-memory gfx.Context that records every call,
// and a scheduler that runs frames only when the test asks.
package gfxtest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"polyhedra/internal/geometry"
	"polyhedra/internal/gfx"
)

// Call is one recorded context call. Only the fields relevant to Op are set.
type Call struct {
	Op     string
	Loc    gfx.Location
	Buffer gfx.Buffer
	Size   int
	Matrix mgl32.Mat4
	Color  mgl32.Vec4
	Count  int
}

// Recorder implements gfx.Context without a GPU.
type Recorder struct {
	Calls    []Call
	Arrays   map[gfx.Buffer][]float32
	Elements map[gfx.Buffer][]uint16

	// Locations returned by AttribLocation and UniformLocation; unknown names get -1.
	Attribs  map[string]gfx.Location
	Uniforms map[string]gfx.Location

	// FailStage makes CompileShader fail for that stage; FailLink makes LinkProgram fail.
	FailStage map[gfx.Stage]bool
	FailLink  bool

	next uint32
}

// NewRecorder returns a Recorder that knows the solid-color program's names.
func NewRecorder() *Recorder {
	return &Recorder{
		Arrays:   make(map[gfx.Buffer][]float32),
		Elements: make(map[gfx.Buffer][]uint16),
		Attribs: map[string]gfx.Location{
			gfx.AttribPosition: 0,
			gfx.AttribColor:    3,
		},
		Uniforms: map[string]gfx.Location{
			gfx.UniformProjection: 10,
			gfx.UniformModelView:  11,
		},
		FailStage: make(map[gfx.Stage]bool),
	}
}

func (r *Recorder) handle() uint32 {
	r.next++
	return r.next
}

func (r *Recorder) record(c Call) {
	r.Calls = append(r.Calls, c)
}

func (r *Recorder) CreateArrayBuffer(data []float32) gfx.Buffer {
	b := gfx.Buffer(r.handle())
	r.Arrays[b] = append([]float32(nil), data...)
	r.record(Call{Op: "CreateArrayBuffer", Buffer: b, Count: len(data)})
	return b
}

func (r *Recorder) CreateElementBuffer(data []uint16) gfx.Buffer {
	b := gfx.Buffer(r.handle())
	r.Elements[b] = append([]uint16(nil), data...)
	r.record(Call{Op: "CreateElementBuffer", Buffer: b, Count: len(data)})
	return b
}

func (r *Recorder) CompileShader(stage gfx.Stage, source string) (gfx.Shader, error) {
	r.record(Call{Op: "CompileShader", Size: int(stage)})
	if r.FailStage[stage] {
		return 0, fmt.Errorf("%s shader: %w", stage, gfx.ErrShaderCompile)
	}
	return gfx.Shader(r.handle()), nil
}

func (r *Recorder) LinkProgram(vs, fs gfx.Shader) (gfx.Program, error) {
	r.record(Call{Op: "LinkProgram"})
	if r.FailLink {
		return 0, gfx.ErrLink
	}
	return gfx.Program(r.handle()), nil
}

func (r *Recorder) AttribLocation(p gfx.Program, name string) gfx.Location {
	if loc, ok := r.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) UniformLocation(p gfx.Program, name string) gfx.Location {
	if loc, ok := r.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) EnableVertexAttrib(loc gfx.Location) {
	r.record(Call{Op: "EnableVertexAttrib", Loc: loc})
}

func (r *Recorder) Viewport(width, height int) {
	r.record(Call{Op: "Viewport", Size: width, Count: height})
}

func (r *Recorder) ClearColor(c mgl32.Vec4) {
	r.record(Call{Op: "ClearColor", Color: c})
}

func (r *Recorder) EnableDepthTest() {
	r.record(Call{Op: "EnableDepthTest"})
}

func (r *Recorder) Clear() {
	r.record(Call{Op: "Clear"})
}

func (r *Recorder) UseProgram(p gfx.Program) {
	r.record(Call{Op: "UseProgram", Count: int(p)})
}

func (r *Recorder) VertexAttribPointer(loc gfx.Location, buf gfx.Buffer, size int) {
	r.record(Call{Op: "VertexAttribPointer", Loc: loc, Buffer: buf, Size: size})
}

func (r *Recorder) BindElementBuffer(buf gfx.Buffer) {
	r.record(Call{Op: "BindElementBuffer", Buffer: buf})
}

func (r *Recorder) UniformMatrix4(loc gfx.Location, m mgl32.Mat4) {
	r.record(Call{Op: "UniformMatrix4", Loc: loc, Matrix: m})
}

func (r *Recorder) DrawElements(mode geometry.Primitive, count int) {
	r.record(Call{Op: "DrawElements", Size: int(mode), Count: count})
}

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Op
	}
	return out
}

// Find returns every recorded call with the given op.
func (r *Recorder) Find(op string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops recorded calls but keeps buffers.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Frames is a gfx.Scheduler that queues callbacks until Step runs them.
type Frames struct {
	queue []func()
}

func (f *Frames) RequestFrame(fn func()) {
	f.queue = append(f.queue, fn)
}

// Pending returns the number of queued callbacks.
func (f *Frames) Pending() int {
	return len(f.queue)
}

// Step runs the oldest queued callback. It reports false if none was queued.
func (f *Frames) Step() bool {
	if len(f.queue) == 0 {
		return false
	}
	fn := f.queue[0]
	f.queue = f.queue[1:]
	fn()
	return true
}
