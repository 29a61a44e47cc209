package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudFontSize   = 20
	hudPadding    = 12
	hudLineHeight = hudFontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws optional overlays (FPS, heap, solid count) over the rendered frame. All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowSolids   bool
	// Solids reports how many solids the scene draws; nil hides the line.
	Solids func() int

	frameCount uint32
	fpsText    string
	memText    string
	solidsText string
	memStats   runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

func (d *Debug) refresh() {
	d.frameCount++
	force := (d.ShowFPS && d.fpsText == "") || (d.ShowMemAlloc && d.memText == "") || (d.ShowSolids && d.solidsText == "")
	if !force && d.frameCount%updateInterval != 0 {
		return
	}
	if d.ShowFPS {
		d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.memStats)
		d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
	}
	if d.ShowSolids && d.Solids != nil {
		d.solidsText = fmt.Sprintf("Solids: %d", d.Solids())
	}
}

// Draw renders the enabled overlays at the top-right in green. Call after the 3D frame,
// with depth testing off. Text is only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.refresh()

	screenW := int32(rl.GetScreenWidth())
	y := int32(hudPadding)
	for _, line := range []struct {
		show bool
		text string
	}{
		{d.ShowFPS, d.fpsText},
		{d.ShowMemAlloc, d.memText},
		{d.ShowSolids, d.solidsText},
	} {
		if !line.show || line.text == "" {
			continue
		}
		w := rl.MeasureText(line.text, hudFontSize)
		rl.DrawText(line.text, screenW-w-hudPadding, y, hudFontSize, rl.Green)
		y += hudLineHeight
	}
}
