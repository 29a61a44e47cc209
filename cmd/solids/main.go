package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"polyhedra/internal/debug"
	"polyhedra/internal/engineconfig"
	"polyhedra/internal/env"
	"polyhedra/internal/gfx"
	"polyhedra/internal/graphics"
	"polyhedra/internal/logger"
	"polyhedra/internal/primitives"
	"polyhedra/internal/scene"
)

const contextUnavailableMsg = "Your system does not support OpenGL 3.3, or it is not enabled."

func init() {
	// raylib and OpenGL must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}
	log := logger.NewAt(env.Path(env.LogPath, logger.LogFilePath))
	if err := run(log); err != nil {
		alert(log, err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	prefs, err := engineconfig.Load(env.Path(env.ConfigPath, engineconfig.EngineConfigPath))
	if err != nil {
		return err
	}
	defs, err := primitives.Load(env.Path(env.ScenePath, primitives.LayoutPath))
	if err != nil {
		return err
	}

	win, err := graphics.Open(graphics.Options{
		Width:     prefs.WindowWidth,
		Height:    prefs.WindowHeight,
		Title:     prefs.WindowTitle,
		TargetFPS: prefs.TargetFPS,
		MSAA:      prefs.MSAA,
		LogLevel:  prefs.LogLevel,
	}, log)
	if err != nil {
		return err
	}
	defer win.Close()
	win.Viewport(prefs.WindowWidth, prefs.WindowHeight)

	shader, err := gfx.Compile(win)
	if err != nil {
		return err
	}
	solids, err := primitives.NewRegistry().BuildAll(win, defs, time.Now())
	if err != nil {
		return err
	}

	cfg := scene.DefaultConfig(prefs.Aspect())
	cfg.FovY = mgl32.DegToRad(prefs.FovDegrees)
	cfg.Near = prefs.Near
	cfg.Far = prefs.Far
	scn := scene.New(win, cfg, shader, solids)
	log.Logf("scene: %d solids, aspect %.3f", len(solids), cfg.Aspect)

	hud := debug.New()
	hud.ShowFPS = prefs.ShowFPS
	hud.ShowMemAlloc = prefs.ShowMemAlloc
	hud.ShowSolids = prefs.ShowSolids
	hud.Solids = func() int { return len(scn.Solids()) }

	scn.Start(win)
	win.Run(hud.Draw)
	log.Logf("scene: closed after %d frames", scn.Frames())
	return nil
}

// alert tells the user why the program cannot continue.
func alert(log *logger.Logger, err error) {
	msg := err.Error()
	if errors.Is(err, gfx.ErrContextUnavailable) {
		msg = contextUnavailableMsg + " (" + msg + ")"
	}
	log.Log("ALERT: " + msg)
	fmt.Fprintln(os.Stderr, msg)
}
