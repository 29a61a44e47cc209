package graphics

import (
	"fmt"
	"image/color"
	"runtime"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"polyhedra/internal/gfx"
	"polyhedra/internal/logger"
)

// Options configures the window opened by Open.
type Options struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
	MSAA      bool
	// LogLevel is the minimum raylib trace level forwarded to the log ("info", "warning", "error", "none").
	LogLevel string
}

// Window is a raylib window that also serves as the gfx.Context and gfx.Scheduler
// for the scene. All methods must be called from the thread that called Open.
type Window struct {
	log   *logger.Logger
	queue []func()

	buffers    map[gfx.Buffer]*buffer
	nextHandle uint32
	programs   map[gfx.Program]*program
	current    *program
	enabled    map[gfx.Location]bool
	attribs    map[gfx.Location]attribBinding
	elements   gfx.Buffer
	clearColor color.RGBA
	meshes     map[meshKey]*uploadedMesh
	material   rl.Material
	pinner     runtime.Pinner
}

// Open creates the window and its OpenGL context. Returns gfx.ErrContextUnavailable
// when raylib could not create one.
func Open(opts Options, log *logger.Logger) (*Window, error) {
	rl.SetTraceLogCallback(func(level int, msg string) {
		log.Logf("raylib %s: %s", levelName(rl.TraceLogLevel(level)), msg)
	})
	rl.SetTraceLogLevel(parseLevel(opts.LogLevel))

	flags := uint32(rl.FlagVsyncHint)
	if opts.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("graphics: %dx%d window: %w", opts.Width, opts.Height, gfx.ErrContextUnavailable)
	}
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	// Solids are not wound consistently; draw both sides.
	rl.DisableBackfaceCulling()

	return &Window{
		log:      log,
		buffers:  make(map[gfx.Buffer]*buffer),
		programs: make(map[gfx.Program]*program),
		enabled:  make(map[gfx.Location]bool),
		attribs:  make(map[gfx.Location]attribBinding),
		meshes:   make(map[meshKey]*uploadedMesh),
		material: rl.LoadMaterialDefault(),
	}, nil
}

// RequestFrame queues fn to run inside the next frame.
func (w *Window) RequestFrame(fn func()) {
	w.queue = append(w.queue, fn)
}

// Run drives frames until the window is closed. Each frame it runs the callbacks
// queued by RequestFrame, in order, then draws overlay (e.g. debug HUD) with depth
// testing off. Callbacks queued during a frame run in the next one.
func (w *Window) Run(overlay func()) {
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		frame := w.queue
		w.queue = nil
		for _, fn := range frame {
			fn()
		}
		rl.DisableDepthTest()
		if overlay != nil {
			overlay()
		}
		rl.EndDrawing()
	}
}

// Close releases GPU resources and closes the window.
func (w *Window) Close() {
	for _, m := range w.meshes {
		rl.UnloadMesh(&m.mesh)
	}
	for _, p := range w.programs {
		rl.UnloadShaderProgram(p.shader.ID)
	}
	w.pinner.Unpin()
	rl.CloseWindow()
}

func levelName(l rl.TraceLogLevel) string {
	switch l {
	case rl.LogTrace:
		return "trace"
	case rl.LogDebug:
		return "debug"
	case rl.LogInfo:
		return "info"
	case rl.LogWarning:
		return "warning"
	case rl.LogError:
		return "error"
	case rl.LogFatal:
		return "fatal"
	default:
		return "log"
	}
}

func parseLevel(s string) rl.TraceLogLevel {
	switch strings.ToLower(s) {
	case "all", "trace":
		return rl.LogAll
	case "debug":
		return rl.LogDebug
	case "info":
		return rl.LogInfo
	case "error":
		return rl.LogError
	case "none":
		return rl.LogNone
	default:
		return rl.LogWarning
	}
}
