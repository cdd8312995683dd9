package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/bossfear701/HighLife/internal/scene"
	"github.com/bossfear701/HighLife/internal/sim"
)

// DrawGlowSprites renders light sprites with additive blending and radial falloff.
// buf format: [x, y, size, r, g, b, a, rotation] * N.
func (r *Renderer) DrawGlowSprites(buf []float32, cam sim.Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / scene.SpriteFloats
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}
	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.glowUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.glowUZoom, float32(zoomOf(cam)))
	gl.Uniform2f(r.glowUResolution, float32(fbW), float32(fbH))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.BufferData(gl.ARRAY_BUFFER, count*scene.SpriteFloats*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}
