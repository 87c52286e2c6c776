package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/glowplane/internal/engine/lighting"
	"github.com/Faultbox/glowplane/internal/engine/plane"
	"github.com/Faultbox/glowplane/internal/engine/shader"
	"github.com/Faultbox/glowplane/pkg/math"
)

const planeVertexShader = `#version 410 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aColor;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vWorldPos;
out vec3 vColor;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vColor = aColor;
    gl_Position = uViewProj * world;
}
`

const planeFragmentShader = `#version 410 core
#define MAX_LIGHTS 4

in vec3 vWorldPos;
in vec3 vColor;

uniform vec3 uCameraPos;
uniform int uLightCount;
uniform vec3 uLightDir[MAX_LIGHTS];
uniform vec3 uLightColor[MAX_LIGHTS];
uniform vec3 uAmbient;
uniform vec3 uSpecular;
uniform float uShininess;

out vec4 FragColor;

void main() {
    // Face normal from screen-space derivatives; always faces the viewer,
    // so both sides of a triangle are lit.
    vec3 n = normalize(cross(dFdx(vWorldPos), dFdy(vWorldPos)));
    vec3 v = normalize(uCameraPos - vWorldPos);

    vec3 color = uAmbient * vColor;
    for (int i = 0; i < uLightCount; i++) {
        vec3 l = uLightDir[i];
        float ndotl = max(dot(n, l), 0.0);
        color += vColor * uLightColor[i] * ndotl;

        vec3 h = normalize(l + v);
        float spec = pow(max(dot(n, h), 0.0), uShininess);
        color += uSpecular * uLightColor[i] * spec * step(0.0, ndotl);
    }

    FragColor = vec4(color, 1.0);
}
`

// PlaneRenderer draws a plane.Mesh with flat, vertex-colored Phong shading.
type PlaneRenderer struct {
	program *shader.Program

	vao         uint32
	positionVBO uint32
	colorVBO    uint32
	ebo         uint32

	indexCount  int32
	vertexCount int
	generation  uint64

	// Material
	Ambient   math.Color
	Specular  math.Color
	Shininess float32
}

// NewPlaneRenderer compiles the plane shader and creates empty buffers.
func NewPlaneRenderer() (*PlaneRenderer, error) {
	program, err := shader.NewProgram(planeVertexShader, planeFragmentShader,
		"uViewProj", "uModel", "uCameraPos",
		"uLightCount", "uLightDir", "uLightColor",
		"uAmbient", "uSpecular", "uShininess",
	)
	if err != nil {
		return nil, fmt.Errorf("plane shader: %w", err)
	}

	r := &PlaneRenderer{
		program:   program,
		Specular:  math.ColorFromHex(0x111111),
		Shininess: 30,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.positionVBO)
	gl.GenBuffers(1, &r.colorVBO)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)

	// Position
	gl.BindBuffer(gl.ARRAY_BUFFER, r.positionVBO)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	// Color
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BindVertexArray(0)

	return r, nil
}

// Sync uploads whatever the mesh marked dirty and clears its flags.
// A new geometry reallocates every buffer; otherwise attributes are
// rewritten in place.
func (r *PlaneRenderer) Sync(m *plane.Mesh) {
	g := m.Geometry
	if g == nil {
		return
	}

	geometry, positions, colors := m.Dirty()
	if geometry || r.generation != m.Generation() || r.vertexCount != g.VertexCount() {
		r.allocate(g)
		r.generation = m.Generation()
		m.ClearDirty()
		return
	}

	if positions {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.positionVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(g.Positions)*4, gl.Ptr(g.Positions))
	}
	if colors {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(g.Colors)*4, gl.Ptr(g.Colors))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	m.ClearDirty()
}

func (r *PlaneRenderer) allocate(g *plane.Geometry) {
	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.positionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Positions)*4, gl.Ptr(g.Positions), gl.DYNAMIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Colors)*4, gl.Ptr(g.Colors), gl.DYNAMIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.indexCount = int32(len(g.Indices))
	r.vertexCount = g.VertexCount()
}

// Render draws the last synced mesh.
func (r *PlaneRenderer) Render(viewProj math.Mat4, cameraPos math.Vec3, rig *lighting.Rig) {
	if r.indexCount == 0 {
		return
	}

	r.program.Use()
	r.program.SetMat4("uViewProj", viewProj)
	r.program.SetMat4("uModel", math.Identity())
	r.program.SetVec3("uCameraPos", cameraPos.X, cameraPos.Y, cameraPos.Z)

	r.program.SetInt("uLightCount", int32(rig.Count()))
	r.program.SetVec3Array("uLightDir", rig.Directions())
	r.program.SetVec3Array("uLightColor", rig.Colors())

	r.program.SetVec3("uAmbient", r.Ambient.R, r.Ambient.G, r.Ambient.B)
	r.program.SetVec3("uSpecular", r.Specular.R, r.Specular.G, r.Specular.B)
	r.program.SetFloat("uShininess", r.Shininess)

	gl.BindVertexArray(r.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (r *PlaneRenderer) Destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	buffers := []*uint32{&r.positionVBO, &r.colorVBO, &r.ebo}
	for _, b := range buffers {
		if *b != 0 {
			gl.DeleteBuffers(1, b)
			*b = 0
		}
	}
	if r.program != nil {
		r.program.Delete()
	}
}
