// Package viewer runs the interactive shape viewer: window, input, the
// arcball state and the per-frame draw.
package viewer

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/config"
	"github.com/Faultbox/globe/internal/engine/input"
	"github.com/Faultbox/globe/internal/engine/renderer"
	"github.com/Faultbox/globe/internal/engine/screenshot"
	"github.com/Faultbox/globe/internal/engine/window"
	"github.com/Faultbox/globe/internal/logger"
	"github.com/Faultbox/globe/internal/shapes"
	"github.com/Faultbox/globe/pkg/arcball"
	"github.com/Faultbox/globe/pkg/linalg"
)

// Viewer is the main viewer instance.
type Viewer struct {
	cfg      *config.Config
	log      *zap.Logger
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	catalog  *shapes.Catalog
	capture  *screenshot.Capture
	controls controls
}

// New opens the window and uploads every shape.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		log: logger.Named("viewer"),
	}

	shape, err := shapes.KindFromName(cfg.Viewer.Shape)
	if err != nil {
		return nil, err
	}

	state := arcball.NewState()
	if cfg.Viewer.Spin {
		state = arcball.SeededState()
	}
	v.controls = newControls(shape, state, cfg.Window.Width, cfg.Window.Height, v.log)

	seed := cfg.Viewer.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	v.catalog = shapes.NewCatalog(cfg.Viewer.Segments, cfg.Viewer.TorusSegments, rand.New(rand.NewSource(seed)))

	v.window, err = window.New(window.Config{
		Title:      title(shape),
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The framebuffer may differ from the requested size in fullscreen
	width, height := v.window.GetSize()
	v.controls.viewport.Width = float64(width)
	v.controls.viewport.Height = float64(height)

	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: cfg.Viewer.Background,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	positions := linalg.PackVec4(v.catalog.Positions)
	colors := linalg.PackVec4(v.catalog.Colors)
	if err := v.renderer.Upload(positions, colors); err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to upload shapes: %w", err)
	}

	v.input = input.New()
	v.capture = screenshot.New(cfg.Viewer.ScreenshotDir, "globe")

	v.log.Info("viewer initialized",
		zap.Stringer("shape", shape),
		zap.Int("vertices", len(v.catalog.Positions)),
		zap.Int64("seed", seed),
	)
	return v, nil
}

func newControls(shape shapes.Kind, state arcball.State, width, height int, log *zap.Logger) controls {
	return controls{
		shape: shape,
		state: state,
		viewport: arcball.Viewport{
			Width:  float64(width),
			Height: float64(height),
		},
		log: log,
	}
}

// Run starts the main loop and returns when the window is closed or Esc
// is pressed.
func (v *Viewer) Run() error {
	frameCount := 0
	fpsTimer := time.Now()
	shown := v.controls.shape

	v.log.Info("starting render loop")

	for {
		quit := v.input.Update()
		for _, ev := range v.input.Events() {
			if ev.Type == input.EventWindowResize {
				v.renderer.Resize(ev.Width, ev.Height)
			}
			if !v.controls.apply(ev) {
				quit = true
			}
		}
		if quit {
			return nil
		}
		if v.controls.shape != shown {
			shown = v.controls.shape
			v.window.SetTitle(title(shown))
		}

		r := v.catalog.Range(v.controls.shape)
		v.renderer.Draw(linalg.PackMat4(v.controls.state.Current), r.First, r.Count)
		if v.controls.screenshot {
			v.controls.screenshot = false
			v.saveScreenshot()
		}
		v.window.SwapBuffers()

		v.controls.step()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

func (v *Viewer) saveScreenshot() {
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.capture.SavePixels(pixels, width, height)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func title(shape shapes.Kind) string {
	return "Globe - " + shape.String()
}

// Close releases the renderer and the window.
func (v *Viewer) Close() {
	v.log.Debug("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
