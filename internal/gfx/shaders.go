package gfx

import "fmt"

// Attribute and uniform names used by the shader sources.
const (
	AttribPosition    = "vertexPos"
	AttribColor       = "vertexColor"
	UniformProjection = "projectionMatrix"
	UniformModelView  = "modelViewMatrix"
)

// Attribute slots are fixed so a backend can bind vertex arrays without
// querying the program (0 = position, 3 = color, raylib's default layout).
const (
	VertexSource = `#version 330
layout(location = 0) in vec3 vertexPos;
layout(location = 3) in vec4 vertexColor;
uniform mat4 modelViewMatrix;
uniform mat4 projectionMatrix;
out vec4 vColor;
void main() {
  gl_Position = projectionMatrix * modelViewMatrix * vec4(vertexPos, 1.0);
  vColor = vertexColor;
}
`
	FragmentSource = `#version 330
in vec4 vColor;
out vec4 finalColor;
void main() {
  finalColor = vColor;
}
`
)

// ShaderHandles is the linked program and the locations the scene binds each frame.
type ShaderHandles struct {
	Program    Program
	Position   Location
	Color      Location
	Projection Location
	ModelView  Location
}

// Compile builds the solid-color program on ctx and enables its vertex attributes.
func Compile(ctx Context) (ShaderHandles, error) {
	vs, err := ctx.CompileShader(VertexStage, VertexSource)
	if err != nil {
		return ShaderHandles{}, fmt.Errorf("compile: %w", err)
	}
	fs, err := ctx.CompileShader(FragmentStage, FragmentSource)
	if err != nil {
		return ShaderHandles{}, fmt.Errorf("compile: %w", err)
	}
	prog, err := ctx.LinkProgram(vs, fs)
	if err != nil {
		return ShaderHandles{}, fmt.Errorf("compile: %w", err)
	}

	h := ShaderHandles{
		Program:    prog,
		Position:   ctx.AttribLocation(prog, AttribPosition),
		Color:      ctx.AttribLocation(prog, AttribColor),
		Projection: ctx.UniformLocation(prog, UniformProjection),
		ModelView:  ctx.UniformLocation(prog, UniformModelView),
	}
	ctx.EnableVertexAttrib(h.Position)
	ctx.EnableVertexAttrib(h.Color)
	return h, nil
}
