package game

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"github.com/bossfear701/HighLife/internal/config"
	"github.com/bossfear701/HighLife/internal/scene"
	"github.com/bossfear701/HighLife/internal/sim"
)

const (
	// TickRate is how many simulation steps run per second of wall time.
	TickRate = 60
	// maxFrameTime bounds catch-up after a stall so the loop never spirals.
	maxFrameTime = 0.25
	// hiddenWait is how long, in seconds, a minimized window blocks for
	// events before the next frame.
	hiddenWait = 0.05
)

// drawable reports whether a framebuffer has any pixels to render into.
func drawable(fbW, fbH int) bool {
	return fbW > 0 && fbH > 0
}

// RunDesktop opens a window and drives state until the window closes or
// Escape is pressed. It must be called from the main goroutine.
func RunDesktop(state *sim.State, settings config.Settings, log zerolog.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(settings.WindowWidth, settings.WindowHeight, scene.AppName)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Debug().Str("version", gl.GoStr(gl.GetString(gl.VERSION))).Msg("OpenGL ready")

	if settings.AudioEnabled {
		audio, err := NewAudio(settings.AudioVolume, log)
		if err != nil {
			log.Warn().Err(err).Msg("Audio init failed, continuing without sound")
		} else {
			audio.Attach(state.Events(), func() sim.Point {
				return state.Player.EffectivePosition(state.Vehicles)
			})
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	builder := scene.NewBuilder(settings.Seed ^ 0x5CE7E)
	step := 1.0 / TickRate
	acc := 0.0
	title := ""

	log.Info().
		Str("session", state.Session).
		Int("vehicles", len(state.Vehicles)).
		Msg("Session started")

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		frame := now - last
		last = now
		if frame > maxFrameTime {
			frame = maxFrameTime
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		acc += frame
		for acc >= step {
			state.Step(ReadInput(window), step)
			acc -= step
		}

		if t := scene.Title(state.HUD()); t != title {
			window.SetTitle(t)
			title = t
		}

		fbW, fbH := window.GetFramebufferSize()
		if !drawable(fbW, fbH) {
			// No swap means no vsync wait.
			glfw.WaitEventsTimeout(hiddenWait)
			continue
		}
		rend.DrawFrame(builder.Build(state.Snapshot(), fbW, fbH), fbW, fbH)
		window.SwapBuffers()
	}

	log.Info().
		Uint64("ticks", state.Tick).
		Int("missions", state.Missions.CompletedCount()).
		Int("cash", state.Player.Cash).
		Msg("Session ended")
	return nil
}
