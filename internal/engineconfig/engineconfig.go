package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds window, camera and debug overlay preferences. Persisted across runs.
// Camera values are read once at startup; changing them needs a restart.
type EnginePrefs struct {
	WindowWidth  int     `json:"window_width"`
	WindowHeight int     `json:"window_height"`
	WindowTitle  string  `json:"window_title"`
	TargetFPS    int     `json:"target_fps"`
	MSAA         bool    `json:"msaa"`
	ShowFPS      bool    `json:"show_fps"`
	ShowMemAlloc bool    `json:"show_memalloc"`
	ShowSolids   bool    `json:"show_solids"`
	FovDegrees   float32 `json:"fov_degrees"`
	Near         float32 `json:"near"`
	Far          float32 `json:"far"`
	LogLevel     string  `json:"log_level,omitempty"`
}

// Default returns default engine preferences (800x600 at 60 FPS, 45° camera, overlays off).
func Default() EnginePrefs {
	return EnginePrefs{
		WindowWidth:  800,
		WindowHeight: 600,
		WindowTitle:  "polyhedra",
		TargetFPS:    60,
		MSAA:         true,
		ShowFPS:      false,
		ShowMemAlloc: false,
		ShowSolids:   false,
		FovDegrees:   45,
		Near:         1,
		Far:          10000,
		LogLevel:     "warning",
	}
}

// Aspect returns the window width over height.
func (p EnginePrefs) Aspect() float32 {
	if p.WindowHeight == 0 {
		return 1
	}
	return float32(p.WindowWidth) / float32(p.WindowHeight)
}

// Load reads engine preferences from path (EngineConfigPath when empty). Fields the
// file leaves out keep their Default() values, and so do camera values that would
// give a degenerate projection. If the file is missing or invalid, returns
// Default() and does not create a file.
func Load(path string) (EnginePrefs, error) {
	if path == "" {
		path = EngineConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p.sanitizeCamera(), nil
}

// sanitizeCamera resets fov to the default unless it is in (0, 180), and near/far
// unless 0 < near < far.
func (p EnginePrefs) sanitizeCamera() EnginePrefs {
	def := Default()
	if p.FovDegrees <= 0 || p.FovDegrees >= 180 {
		p.FovDegrees = def.FovDegrees
	}
	if p.Near <= 0 || p.Far <= p.Near {
		p.Near, p.Far = def.Near, def.Far
	}
	return p
}

// Save writes engine preferences to path (EngineConfigPath when empty), creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if path == "" {
		path = EngineConfigPath
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
