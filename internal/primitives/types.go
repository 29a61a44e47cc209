package primitives

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// LayoutPath is the default scene layout file, relative to the working directory.
const LayoutPath = "assets/scene.yaml"

// ErrUnknownType is returned for a layout entry whose type has no builder.
var ErrUnknownType = errors.New("primitives: unknown solid type")

// Def is one solid in the scene layout: which builder, where to place it and
// the axis it spins around.
type Def struct {
	Type     string     `yaml:"type"`
	Position [3]float32 `yaml:"position"`
	Axis     [3]float32 `yaml:"axis"`
}

// Placement returns Position as a vector.
func (d Def) Placement() mgl32.Vec3 {
	return mgl32.Vec3(d.Position)
}

// RotationAxis returns Axis as a vector.
func (d Def) RotationAxis() mgl32.Vec3 {
	return mgl32.Vec3(d.Axis)
}

// Layout is the scene layout file. Solids are drawn in file order.
type Layout struct {
	Solids []Def `yaml:"solids"`
}

// defaultLayout puts cone, scutoid and bipyramid left to right in front of the camera.
var defaultLayout = []Def{
	{Type: "cone", Position: [3]float32{-3.5, 0, -3}, Axis: [3]float32{1, 1, 0.2}},
	{Type: "scutoid", Position: [3]float32{0, 0, -3}, Axis: [3]float32{0, 1, 0}},
	{Type: "bipyramid", Position: [3]float32{3.5, 0, -3}, Axis: [3]float32{0, 1, 0}},
}

// Default returns a copy of the built-in layout.
func Default() []Def {
	var out []Def
	if err := copier.CopyWithOption(&out, &defaultLayout, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("primitives: default layout: %v", err))
	}
	return out
}

// Load reads a layout from path. A missing file or an empty solids list yields
// Default(); malformed YAML is an error.
func Load(path string) ([]Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("primitives: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("primitives: %s: %w", path, err)
	}
	if len(l.Solids) == 0 {
		return Default(), nil
	}
	return l.Solids, nil
}
