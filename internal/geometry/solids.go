package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	red     = mgl32.Vec4{1, 0, 0, 1}
	green   = mgl32.Vec4{0, 1, 0, 1}
	blue    = mgl32.Vec4{0, 0, 1, 1}
	yellow  = mgl32.Vec4{1, 1, 0, 1}
	magenta = mgl32.Vec4{1, 0, 1, 1}
	cyan    = mgl32.Vec4{0, 1, 1, 1}
)

// ConePalette colors the base (entry 0) and then each lateral face in order.
var ConePalette = [6]mgl32.Vec4{red, green, blue, yellow, magenta, cyan}

// ScutoidPalette colors the eight scutoid faces in emission order.
var ScutoidPalette = [8]mgl32.Vec4{
	red, green, blue, yellow, magenta, cyan,
	{1, 0.5, 1, 1},
	{0.5, 0, 0.5, 1},
}

// BipyramidPalette colors the four lower faces and then the four upper faces.
var BipyramidPalette = [8]mgl32.Vec4{
	red, green, blue, yellow, magenta, cyan,
	{0.72, 0.1, 1, 1},
	{0.5, 0.25, 0, 1},
}

// ringPoint returns the point at deg degrees on the unit circle in the XZ plane
// at height y. Positive angles turn from +X toward -Z.
func ringPoint(deg, y float32) mgl32.Vec3 {
	rad := deg * math32.Pi / 180
	return mgl32.Vec3{math32.Cos(rad), y, -math32.Sin(rad)}
}

// pentagon is the five-point ring shared by the cone base and the scutoid's
// lower cap. The 90° point is written out so it lands exactly on -Z.
func pentagon(y float32) [5]mgl32.Vec3 {
	return [5]mgl32.Vec3{
		ringPoint(-126, y),
		ringPoint(-54, y),
		ringPoint(18, y),
		{0, y, -1},
		ringPoint(162, y),
	}
}

// Cone builds the pentagonal cone: 20 vertices, 24 indices.
func Cone() *Mesh {
	base := pentagon(-1)
	apex := mgl32.Vec3{0, 1, 0}

	b := newBuilder("cone")
	b.face(ConePalette[0], base[:]...)
	for i := range base {
		b.face(ConePalette[i+1], base[i], base[(i+1)%len(base)], apex)
	}

	b.triangles(0, 1, 2, 0, 2, 4, 4, 2, 3)
	b.sequential(5, 20)
	return b.mesh
}

// Scutoid builds a scutoid: a pentagon cap at y=-2 and a hexagon cap at y=2
// joined by five side faces, one of which is split by the point (0, 0, -1).
// 36 vertices in faces of {5,4,4,5,3,5,4,6}.
func Scutoid() *Mesh {
	p := pentagon(-2)
	var h [6]mgl32.Vec3
	for i := range h {
		h[i] = ringPoint(float32(-120+60*i), 2)
	}
	pt := mgl32.Vec3{0, 0, -1}

	b := newBuilder("scutoid")
	b.face(ScutoidPalette[0], p[0], p[1], p[2], p[3], p[4])
	b.face(ScutoidPalette[1], p[0], p[1], h[1], h[0])
	b.face(ScutoidPalette[2], p[1], p[2], h[2], h[1])
	b.face(ScutoidPalette[3], p[2], p[3], pt, h[3], h[2])
	b.face(ScutoidPalette[4], pt, h[4], h[3])
	b.face(ScutoidPalette[5], p[3], p[4], h[5], h[4], pt)
	b.face(ScutoidPalette[6], p[4], p[0], h[0], h[5])
	b.face(ScutoidPalette[7], h[0], h[1], h[2], h[3], h[4], h[5])

	b.triangles(scutoidIndices[:]...)
	return b.mesh
}

// scutoidIndices triangulates the scutoid faces, grouped per face.
var scutoidIndices = [...]uint16{
	0, 1, 2, 0, 2, 4, 4, 2, 3,
	5, 6, 8, 6, 8, 7,
	9, 10, 11, 11, 12, 9,
	13, 16, 17, 13, 14, 16, 14, 15, 16,
	18, 19, 20,
	21, 24, 25, 21, 22, 24, 22, 23, 24,
	26, 27, 28, 26, 28, 29,
	30, 31, 32, 30, 32, 35, 32, 35, 33, 33, 34, 35,
}

// Bipyramid builds the square bipyramid: 8 unshared triangles, lower faces first.
func Bipyramid() *Mesh {
	ring := [4]mgl32.Vec3{
		{-1, 0, -1},
		{1, 0, -1},
		{1, 0, 1},
		{-1, 0, 1},
	}
	bottom := mgl32.Vec3{0, -1.5, 0}
	top := mgl32.Vec3{0, 1.5, 0}

	b := newBuilder("bipyramid")
	for i := range ring {
		b.face(BipyramidPalette[i], ring[i], ring[(i+1)%len(ring)], bottom)
	}
	for i := range ring {
		b.face(BipyramidPalette[len(ring)+i], ring[i], ring[(i+1)%len(ring)], top)
	}

	b.sequential(0, uint16(b.mesh.VertexCount()))
	return b.mesh
}
