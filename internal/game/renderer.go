package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/bossfear701/HighLife/internal/scene"
	"github.com/bossfear701/HighLife/internal/sim"
)

// MaxSpriteRender caps the glow sprites uploaded per draw.
const MaxSpriteRender = 4096

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Solid triangle program, shared by world and screen passes.
	rectProg uint32
	rectVAO  uint32
	rectVBO  uint32

	uCamera      int32
	uZoom        int32
	uResolution  int32
	uScreenSpace int32
	uAmbient     int32
	uSunTint     int32

	// Glow (radial light) program.
	glowProg        uint32
	spriteVAO       uint32
	spriteVBO       uint32
	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32
}

func NewRenderer() (*Renderer, error) {
	rectProg, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(rectProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		rectProg: rectProg,
		glowProg: glowProg,
	}

	// Rect VAO/VBO: streaming triangles, 6 floats per vertex (x, y, r, g, b, a).
	var rVAO, rVBO uint32
	gl.GenVertexArrays(1, &rVAO)
	gl.GenBuffers(1, &rVBO)
	gl.BindVertexArray(rVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, rVBO)

	stride := int32(scene.VertexFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.rectVAO = rVAO
	r.rectVBO = rVBO

	gl.UseProgram(rectProg)
	r.uCamera = gl.GetUniformLocation(rectProg, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(rectProg, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(rectProg, gl.Str("uResolution\x00"))
	r.uScreenSpace = gl.GetUniformLocation(rectProg, gl.Str("uScreenSpace\x00"))
	r.uAmbient = gl.GetUniformLocation(rectProg, gl.Str("uAmbient\x00"))
	r.uSunTint = gl.GetUniformLocation(rectProg, gl.Str("uSunTint\x00"))
	gl.Uniform1f(r.uAmbient, 1.0)
	gl.Uniform3f(r.uSunTint, 1.0, 1.0, 1.0)

	// Sprite VAO/VBO: point sprites, 8 floats each (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride = int32(scene.SpriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.rectVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.rectVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.rectProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// DrawFrame clears the framebuffer and draws f: world geometry under the
// sun light, additive glows, then the unlit screen overlay.
func (r *Renderer) DrawFrame(f *scene.Frame, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(
		f.Clear.R*f.Ambient*f.Tint[0],
		f.Clear.G*f.Ambient*f.Tint[1],
		f.Clear.B*f.Ambient*f.Tint[2],
		1.0,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.rectProg)
	gl.Uniform2f(r.uCamera, float32(f.Camera.X), float32(f.Camera.Y))
	gl.Uniform1f(r.uZoom, float32(zoomOf(f.Camera)))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))

	gl.Uniform1i(r.uScreenSpace, 0)
	gl.Uniform1f(r.uAmbient, f.Ambient)
	gl.Uniform3f(r.uSunTint, f.Tint[0], f.Tint[1], f.Tint[2])
	r.drawTriangles(f.World.Verts)

	r.DrawGlowSprites(f.Glow.Data, f.Camera, fbW, fbH)

	gl.UseProgram(r.rectProg)
	gl.Uniform1i(r.uScreenSpace, 1)
	gl.Uniform1f(r.uAmbient, 1.0)
	gl.Uniform3f(r.uSunTint, 1.0, 1.0, 1.0)
	r.drawTriangles(f.Screen.Verts)
}

func (r *Renderer) drawTriangles(verts []float32) {
	if len(verts) == 0 {
		return
	}
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/scene.VertexFloats))
	gl.Disable(gl.BLEND)
}

func zoomOf(c sim.Camera) float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}
