// Package app wires the demo together and runs the frame loop.
package app

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/wavetank/caustica/internal/config"
	"github.com/wavetank/caustica/internal/engine/camera"
	"github.com/wavetank/caustica/internal/engine/caustics"
	"github.com/wavetank/caustica/internal/engine/input"
	"github.com/wavetank/caustica/internal/engine/ocean"
	"github.com/wavetank/caustica/internal/engine/renderer"
	"github.com/wavetank/caustica/internal/engine/scene"
	"github.com/wavetank/caustica/internal/engine/window"
	"github.com/wavetank/caustica/internal/logger"
)

// Camera start pose, tuned to frame the water patch and the floor below it.
var (
	cameraStart = mgl32.Vec3{-12.5, -6.5, -55}
	cameraYaw   = float32(-270)
	cameraPitch = float32(0)
)

// App is the demo instance.
type App struct {
	cfg *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.FlyCamera
	scene    *scene.Scene

	field *ocean.WaveField
	mesh  *ocean.SurfaceMesh

	running bool
}

// New creates the window and OpenGL context, builds the wave field and its
// mesh, bakes the caustic textures and assembles the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.setupScene(); err != nil {
		a.window.Close()
		return nil, err
	}

	a.input = input.New()
	a.camera = camera.NewFlyCamera(cameraStart, cameraYaw, cameraPitch)
	a.window.CaptureMouse(true)

	return a, nil
}

func (a *App) setupScene() error {
	oc := a.cfg.Ocean

	variant, err := ocean.ParseVariant(oc.Variant)
	if err != nil {
		return err
	}

	seed := oc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("building wave field",
		zap.Int("waves", oc.WaveCount),
		zap.String("variant", oc.Variant),
		zap.Int64("seed", seed),
	)

	a.field, err = ocean.New(ocean.Config{
		CenterX:            oc.CenterX,
		CenterZ:            oc.CenterZ,
		Width:              oc.Width,
		Length:             oc.Length,
		Cols:               oc.Cols,
		Rows:               oc.Rows,
		MaxAmplitude:       oc.MaxAmplitude,
		WaveCount:          oc.WaveCount,
		Variant:            variant,
		Animated:           oc.Animated,
		CorrectedSpeedBias: oc.CorrectedSpeedBias,
	}, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("wave field: %w", err)
	}

	start := time.Now()
	a.mesh = ocean.BuildSurfaceMesh(a.field)
	logger.Info("surface mesh built",
		zap.Int("vertices", len(a.mesh.Vertices)),
		zap.Int("indices", len(a.mesh.Indices)),
		zap.Duration("took", time.Since(start)),
	)

	size := a.cfg.Bake.Size
	start = time.Now()
	normalMap := caustics.BakeNormalMap(a.field, size, size)
	refraction := caustics.BakeRefractionMap(size, size)
	logger.Info("caustic textures baked",
		zap.Int("size", size),
		zap.Duration("took", time.Since(start)),
	)

	if dir := a.cfg.Bake.ExportDir; dir != "" {
		if err := caustics.ExportPNG(normalMap, filepath.Join(dir, "normal.png")); err != nil {
			logger.Warn("normal map export failed", zap.Error(err))
		}
		if err := caustics.ExportPNG(refraction, filepath.Join(dir, "refraction.png")); err != nil {
			logger.Warn("refraction map export failed", zap.Error(err))
		}
	}

	a.scene, err = scene.New(a.field, a.mesh, normalMap, refraction)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	return nil
}

// Run starts the main loop: poll input, update the camera, advance and
// resample the water when animated, then draw.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frame := 0
	fps := 0
	fpsAccum := 0.001

	logger.Info("starting frame loop")

	for a.running {
		frame++

		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		fpsAccum += float64(dt)

		// Refresh the FPS readout in the title every 30 frames
		if frame%30 == 1 {
			fps = int(30 / fpsAccum)
			fpsAccum = 0
			a.window.SetTitle(fmt.Sprintf("%s - FPS: %d - Frame: %d", a.cfg.Graphics.Title, fps, frame))
		}

		if a.input.Poll() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			if event.Type == input.EventWindowResize {
				a.renderer.Resize(event.Width, event.Height)
			}
		}

		a.updateCamera(dt)

		// Resample the surface on alternate frames; the baked textures
		// intentionally stay at their t=0 state.
		if a.field.Animated() && frame%2 == 1 {
			a.field.Advance(dt)
			a.mesh.Rebuild(a.field)
			a.scene.RefreshOcean(a.mesh)
		}

		a.render()
		a.window.SwapBuffers()
	}

	return nil
}

func (a *App) updateCamera(dt float32) {
	var move camera.Move
	if a.input.Held(sdl.SCANCODE_W) {
		move |= camera.MoveForward
	}
	if a.input.Held(sdl.SCANCODE_S) {
		move |= camera.MoveBackward
	}
	if a.input.Held(sdl.SCANCODE_A) {
		move |= camera.MoveLeft
	}
	if a.input.Held(sdl.SCANCODE_D) {
		move |= camera.MoveRight
	}
	if a.input.Held(sdl.SCANCODE_SPACE) {
		move |= camera.MoveUp
	}
	if a.input.Held(sdl.SCANCODE_LSHIFT) {
		move |= camera.MoveDown
	}
	a.camera.HandleKeyboard(move, dt)

	dx, dy := a.input.MouseDelta()
	if dx != 0 || dy != 0 {
		a.camera.HandleMouse(dx, -dy)
	}
}

func (a *App) render() {
	a.renderer.BeginFrame()

	w, h := a.renderer.Size()
	projection := mgl32.Perspective(mgl32.DegToRad(a.camera.Zoom), float32(w)/float32(h), 0.1, 1000.0)
	view := a.camera.ViewMatrix()

	a.scene.Render(view, projection, a.camera.Position, a.cfg.Graphics.Wireframe)
}

// Close releases all resources.
func (a *App) Close() {
	logger.Info("closing app")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
