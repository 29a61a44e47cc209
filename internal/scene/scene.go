package scene

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"polyhedra/internal/geometry"
	"polyhedra/internal/gfx"
	"polyhedra/internal/solid"
)

const (
	defaultNear = 1
	defaultFar  = 10000
)

// Config fixes the camera and clear color for the life of a Scene.
type Config struct {
	FovY         float32 // radians
	Aspect       float32
	Near         float32
	Far          float32
	CameraOffset mgl32.Vec3
	Background   mgl32.Vec4
}

// DefaultConfig returns a 45° camera pulled back 5 units, clearing to dark grey.
func DefaultConfig(aspect float32) Config {
	return Config{
		FovY:         math32.Pi / 4,
		Aspect:       aspect,
		Near:         defaultNear,
		Far:          defaultFar,
		CameraOffset: mgl32.Vec3{0, 0, -5},
		Background:   mgl32.Vec4{0.1, 0.1, 0.1, 1},
	}
}

// Projection returns the perspective matrix with the camera offset applied.
func Projection(cfg Config) mgl32.Mat4 {
	p := mgl32.Perspective(cfg.FovY, cfg.Aspect, cfg.Near, cfg.Far)
	return p.Mul4(mgl32.Translate3D(cfg.CameraOffset.Elem()))
}

// Option configures a Scene.
type Option func(*Scene)

// WithClock replaces time.Now as the source of update timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Scene) {
		s.now = now
	}
}

// Scene draws an ordered list of solids and animates them once per frame.
type Scene struct {
	ctx        gfx.Context
	cfg        Config
	shader     gfx.ShaderHandles
	projection mgl32.Mat4
	solids     []*solid.Solid
	now        func() time.Time
	frames     uint64
}

// New returns a scene drawing solids in order. The projection is computed here
// and never again.
func New(ctx gfx.Context, cfg Config, shader gfx.ShaderHandles, solids []*solid.Solid, opts ...Option) *Scene {
	s := &Scene{
		ctx:        ctx,
		cfg:        cfg,
		shader:     shader,
		projection: Projection(cfg),
		solids:     solids,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Projection returns the projection matrix uploaded every frame.
func (s *Scene) Projection() mgl32.Mat4 {
	return s.projection
}

// Solids returns the solids in draw order.
func (s *Scene) Solids() []*solid.Solid {
	return s.solids
}

// Frames returns how many frames have been drawn.
func (s *Scene) Frames() uint64 {
	return s.frames
}

// DrawFrame clears the frame and issues one indexed draw per solid.
func (s *Scene) DrawFrame() {
	ctx := s.ctx
	ctx.ClearColor(s.cfg.Background)
	ctx.EnableDepthTest()
	ctx.Clear()
	ctx.UseProgram(s.shader.Program)

	for _, obj := range s.solids {
		ctx.VertexAttribPointer(s.shader.Position, obj.Buffers.Position, geometry.PositionStride)
		ctx.VertexAttribPointer(s.shader.Color, obj.Buffers.Color, geometry.ColorStride)
		ctx.BindElementBuffer(obj.Buffers.Index)
		ctx.UniformMatrix4(s.shader.Projection, s.projection)
		ctx.UniformMatrix4(s.shader.ModelView, obj.Model)
		ctx.DrawElements(obj.Mesh.Primitive, obj.Buffers.Count)
	}
	s.frames++
}

// Update advances every solid to now.
func (s *Scene) Update(now time.Time) {
	for _, obj := range s.solids {
		obj.Update(now)
	}
}

// Start arms the render loop on sched. Each frame re-arms the next one first,
// then draws, then updates, so a frame always shows the state the previous
// frame's update produced. The loop has no exit; it ends with the process.
func (s *Scene) Start(sched gfx.Scheduler) {
	sched.RequestFrame(func() { s.tick(sched) })
}

func (s *Scene) tick(sched gfx.Scheduler) {
	sched.RequestFrame(func() { s.tick(sched) })
	s.DrawFrame()
	s.Update(s.now())
}
