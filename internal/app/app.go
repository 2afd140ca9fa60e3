// Package app runs the studio: window, GL renderers and the main loop.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/asaro-studio/internal/config"
	"github.com/Faultbox/asaro-studio/internal/engine/capture"
	"github.com/Faultbox/asaro-studio/internal/engine/input"
	"github.com/Faultbox/asaro-studio/internal/engine/renderer"
	"github.com/Faultbox/asaro-studio/internal/engine/ui2d"
	"github.com/Faultbox/asaro-studio/internal/engine/window"
	"github.com/Faultbox/asaro-studio/internal/logger"
	"github.com/Faultbox/asaro-studio/internal/preset"
	"github.com/Faultbox/asaro-studio/internal/studio"
)

const windowTitle = "Asaro Studio"

// App is the running studio instance.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	ui       *ui2d.Renderer
	input    *input.Input
	studio   *studio.Studio
	capturer *capture.Capturer
	log      *zap.Logger
}

// New opens the window and builds everything that draws into it.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}
	a.log.Info("initializing studio",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderers need the GL context
	a.renderer, err = renderer.New(renderer.Config{
		Ambient:     cfg.Scene.Ambient,
		HeadOffsetY: cfg.Scene.HeadOffsetY,
		HeadScale:   cfg.Scene.HeadScale,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	width, height := a.window.GetSize()
	a.ui, err = ui2d.New(width, height)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create ui renderer: %w", err)
	}

	a.studio, err = studio.New(cfg, a.renderer, openPresets(cfg, a.log), a.ui.Font())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create studio: %w", err)
	}
	a.studio.Resize(width, height)

	format, err := capture.FormatByName(cfg.Capture.Format)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.capturer = capture.New(cfg.Capture.Dir, cfg.Capture.Prefix, format)

	a.input = input.New()

	a.log.Info("studio initialized")
	return a, nil
}

// openPresets falls back to memory-only storage when the data directory is
// unavailable.
func openPresets(cfg *config.Config, log *zap.Logger) *preset.Manager {
	if !cfg.Persistence.Enabled {
		return preset.NewMemory()
	}
	m, err := preset.Open(cfg.Persistence.AppName)
	if err != nil {
		log.Warn("presets will not persist", zap.Error(err))
		return preset.NewMemory()
	}
	return m
}

// Run drives the main loop until the window closes or the user quits.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := window.Ticks()

	a.log.Info("starting main loop")

	for a.running {
		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, ev := range a.input.Events() {
			if ev.Type == input.EventWindowResize {
				a.ui.Resize(ev.Width, ev.Height)
			}
			a.studio.HandleEvent(ev)
		}
		if a.studio.Quit() {
			a.running = false
			break
		}

		// 2. Lay out the panel
		a.studio.Frame()

		// 3. Render
		drawW, drawH := a.window.DrawableSize()
		vp := a.studio.Layout().GLViewport(drawW, drawH)
		a.renderer.Draw(a.studio.Camera(), vp)
		if a.studio.TakeCapture() {
			a.capture(vp)
		}
		a.ui.Flush(a.studio.Batch(), drawW, drawH)

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if now := window.Ticks(); now-fpsTimer >= 1000 {
			a.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = now
		}
	}

	return nil
}

// capture saves the viewport as drawn, before the panel goes over it.
func (a *App) capture(vp renderer.Viewport) {
	path, err := a.capturer.SavePixels(a.renderer.ReadPixels(vp), int(vp.W), int(vp.H))
	if err != nil {
		a.log.Error("capture failed", zap.Error(err))
		return
	}
	a.log.Info("viewport captured", zap.String("path", path))
}

// Close saves the session and releases everything in reverse order.
func (a *App) Close() {
	a.log.Info("closing studio")

	if a.studio != nil {
		a.studio.Close()
	}
	if a.ui != nil {
		a.ui.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
