package animation

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Period is the time for one full turn around the rotation axis.
	Period = 5 * time.Second
	// BobStep is how far a bobbing solid moves along Y per update.
	BobStep = float32(0.01)
	// bobLimit bounds Bob.Ticks so the bob position stays in [-1, 1].
	bobLimit = 100
)

// Kind selects which motion Advance applies.
type Kind int

const (
	// Spin rotates around the axis at one turn per Period.
	Spin Kind = iota
	// SpinBob spins and also moves up and down by BobStep per update.
	SpinBob
)

func (k Kind) String() string {
	switch k {
	case Spin:
		return "spin"
	case SpinBob:
		return "spin+bob"
	default:
		return "unknown"
	}
}

// Bob is the oscillation state of a SpinBob solid. Position is kept as whole
// steps so repeated updates do not drift past the bounds.
type Bob struct {
	Ticks int
	Up    bool
}

// Position returns the bob offset in world units, always in [-1, 1].
func (b Bob) Position() float32 {
	return float32(b.Ticks) * BobStep
}

// step moves one tick, flipping direction on reaching a bound, and returns the
// Y translation to apply.
func (b Bob) step() (Bob, float32) {
	if b.Up {
		b.Ticks++
	} else {
		b.Ticks--
	}
	if b.Ticks >= bobLimit {
		b.Ticks = bobLimit
		b.Up = false
	}
	if b.Ticks <= -bobLimit {
		b.Ticks = -bobLimit
		b.Up = true
	}
	if b.Up {
		return b, BobStep
	}
	return b, -BobStep
}

// State is the per-solid animation variant.
type State struct {
	Kind Kind
	Axis mgl32.Vec3
	Bob  Bob
}

// NewSpin returns a spin around axis.
func NewSpin(axis mgl32.Vec3) State {
	return State{Kind: Spin, Axis: axis}
}

// NewSpinBob returns a spin around axis that starts bobbing upward from 0.
func NewSpinBob(axis mgl32.Vec3) State {
	return State{Kind: SpinBob, Axis: axis, Bob: Bob{Up: true}}
}

// Angle returns the rotation in radians covered in dt.
func Angle(dt time.Duration) float32 {
	fraction := float32(dt.Seconds() / Period.Seconds())
	return 2 * math32.Pi * fraction
}

// Advance composes the motion for one update of dt into model. Rotations
// accumulate across calls and the rotation part is re-orthonormalized after each
// one. The bob step does not depend on dt.
func Advance(s State, model mgl32.Mat4, dt time.Duration) (mgl32.Mat4, State) {
	if axis := s.Axis; axis.Len() > 0 {
		model = Orthonormalize(model.Mul4(mgl32.HomogRotate3D(Angle(dt), axis.Normalize())))
	}
	if s.Kind == SpinBob {
		var dy float32
		s.Bob, dy = s.Bob.step()
		model = model.Mul4(mgl32.Translate3D(0, dy, 0))
	}
	return model, s
}

// Orthonormalize rebuilds the upper 3x3 of m as a right-handed orthonormal basis
// (Gram-Schmidt on the first two columns). The translation column is kept.
func Orthonormalize(m mgl32.Mat4) mgl32.Mat4 {
	x := m.Col(0).Vec3().Normalize()
	y := m.Col(1).Vec3()
	y = y.Sub(x.Mul(x.Dot(y))).Normalize()
	z := x.Cross(y)
	m.SetCol(0, x.Vec4(0))
	m.SetCol(1, y.Vec4(0))
	m.SetCol(2, z.Vec4(0))
	return m
}
