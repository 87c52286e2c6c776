package main

import (
	"fmt"
	"path/filepath"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/glowplane/internal/config"
	"github.com/Faultbox/glowplane/internal/demo"
	"github.com/Faultbox/glowplane/internal/engine/debug"
	"github.com/Faultbox/glowplane/internal/engine/plane"
	"github.com/Faultbox/glowplane/internal/engine/scene"
	"github.com/Faultbox/glowplane/internal/engine/ui"
	"github.com/Faultbox/glowplane/internal/logger"
)

// App is the interactive viewer: ImGui window, scene and simulation.
type App struct {
	cfg *config.Config
	log *zap.Logger

	backend *ui.Backend
	scene   *scene.Scene
	demo    *demo.Demo

	panel   *ui.Panel
	overlay *ui.StatsOverlay
	notice  ui.Notice
	capture *debug.ScreenshotCapture

	// Dialog results arrive from another goroutine and are applied on the
	// render thread.
	pendingLoad chan string

	lastMouse           imgui.Vec2
	screenshotRequested bool
}

// NewApp opens the window and builds the scene.
func NewApp(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:         cfg,
		log:         logger.Named("app"),
		overlay:     ui.NewStatsOverlay(cfg.Debug.ShowFPS),
		capture:     debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "glowplane"),
		pendingLoad: make(chan string, 1),
		lastMouse:   imgui.NewVec2(-1, -1),
	}

	var err error
	a.backend, err = ui.NewBackend("Glow Plane", cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	a.demo, err = demo.New(cfg)
	if err != nil {
		return nil, err
	}

	a.scene, err = scene.New(scene.Config{
		Width:  int32(cfg.Graphics.Width),
		Height: int32(cfg.Graphics.Height),
	})
	if err != nil {
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	limits := ui.PanelLimits{
		SizeMin:     demo.PlaneLimits.Size.Min,
		SizeMax:     demo.PlaneLimits.Size.Max,
		SegmentsMin: int(demo.PlaneLimits.Segments.Min),
		SegmentsMax: int(demo.PlaneLimits.Segments.Max),
	}
	a.panel = ui.NewPanel(a.panelValues(), limits, ui.PanelCallbacks{
		OnPlane: func(width, height float32, widthSegments, heightSegments int) {
			a.demo.SetPlane(plane.Spec{
				Width:          width,
				Height:         height,
				WidthSegments:  widthSegments,
				HeightSegments: heightSegments,
			})
		},
		OnMeshColor:  a.demo.SetBaseColor,
		OnGlowColor:  a.demo.SetHoverColor,
		OnRegenerate: func() { a.demo.Reseed(0) },
		OnSave:       a.saveSettings,
		OnLoad:       a.openLoadDialog,
	})

	return a, nil
}

// Run blocks until the window is closed.
func (a *App) Run() {
	a.backend.Run(a.render)
}

// Close releases GPU resources.
func (a *App) Close() {
	if a.scene != nil {
		a.scene.Destroy()
	}
}

func (a *App) panelValues() ui.PanelValues {
	w := a.demo.World
	return ui.PanelValues{
		Width:          w.Plane.Width,
		Height:         w.Plane.Height,
		WidthSegments:  w.Plane.WidthSegments,
		HeightSegments: w.Plane.HeightSegments,
		MeshColor:      w.BaseColor,
		GlowColor:      w.HoverColor,
	}
}

// render is called by the backend once per frame.
func (a *App) render() {
	// Capture at the start of the frame so the previous frame is complete.
	if a.screenshotRequested {
		a.screenshotRequested = false
		a.takeScreenshot()
	}

	a.applyPendingLoad()

	io := imgui.CurrentIO()
	viewW, viewH := ui.DisplaySize()
	fbW, fbH := ui.FramebufferSize()

	// The render target and projection follow the window.
	a.scene.Resize(fbW, fbH)
	a.demo.Resize(int(fbW), int(fbH))

	a.handleMouse(io, viewW, viewH)
	if ui.IsKeyPressed(imgui.KeyF12) {
		a.screenshotRequested = true
	}

	dt := io.DeltaTime()
	a.demo.Update(dt)
	a.scene.Render(a.demo.Camera, a.demo.Mesh)

	ui.DrawSceneBackground(a.scene.Texture(), viewW, viewH)

	s := a.demo.Stats()
	a.panel.Render(viewW, ui.Readouts{
		Vertices: s.Vertices,
		Faces:    s.Faces,
		Phase:    s.Phase,
		Fades:    s.Fades,
		Seed:     a.demo.Seed(),
	})

	a.overlay.Update(float64(dt) * 1000)
	a.overlay.Render()
	a.notice.Render(viewW, viewH)
}

// handleMouse feeds the pointer to the hover test and drives the camera
// when the pointer is not over a panel.
func (a *App) handleMouse(io *imgui.IO, viewW, viewH float32) {
	pos := imgui.MousePos()
	inside := pos.X >= 0 && pos.Y >= 0 && pos.X <= viewW && pos.Y <= viewH
	moved := pos.X != a.lastMouse.X || pos.Y != a.lastMouse.Y

	if inside && moved {
		a.demo.SetPointerPixels(pos.X, pos.Y, viewW, viewH)
	}

	if !io.WantCaptureMouse() {
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) && a.lastMouse.X >= 0 {
			a.demo.Camera.HandleDrag(pos.X-a.lastMouse.X, pos.Y-a.lastMouse.Y)
		}
		if wheel := io.MouseWheel(); wheel != 0 {
			a.demo.Camera.HandleZoom(wheel)
		}
		if imgui.IsMouseDoubleClicked(imgui.MouseButtonLeft) {
			a.demo.Camera.Reset()
		}
	}

	if inside {
		a.lastMouse = pos
	}
}

func (a *App) settingsPath() string {
	if p := config.ConfigPath(); p != "" {
		return p
	}
	return filepath.Join(config.ConfigDir(), "config.yaml")
}

func (a *App) saveSettings() {
	path := a.settingsPath()
	snapshot := a.demo.Snapshot(a.cfg)
	if err := snapshot.SaveTo(path); err != nil {
		a.log.Error("saving settings", zap.String("path", path), zap.Error(err))
		a.notice.Show("Save failed: %v", err)
		return
	}
	a.cfg = snapshot
	a.log.Info("settings saved", zap.String("path", path))
	a.notice.Show("Saved %s", path)
}

// openLoadDialog shows a native file dialog without blocking the frame loop.
func (a *App) openLoadDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("YAML settings", "yaml", "yml").
			Filter("All Files", "*").
			Title("Load settings").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				a.log.Warn("file dialog", zap.Error(err))
			}
			return
		}

		select {
		case a.pendingLoad <- filename:
		default:
			// A load is already queued.
		}
	}()
}

func (a *App) applyPendingLoad() {
	select {
	case path := <-a.pendingLoad:
		a.loadSettings(path)
	default:
	}
}

func (a *App) loadSettings(path string) {
	loaded, err := config.LoadFile(path)
	if err != nil {
		a.log.Error("loading settings", zap.String("path", path), zap.Error(err))
		a.notice.Show("Load failed: %v", err)
		return
	}

	a.demo.ApplyWorld(demo.WorldFromConfig(loaded.World))
	a.panel.Sync(a.panelValues())
	a.backend.SetWindowTitle(fmt.Sprintf("Glow Plane - %s", filepath.Base(path)))
	a.log.Info("settings loaded", zap.String("path", path))
	a.notice.Show("Loaded %s", filepath.Base(path))
}

func (a *App) takeScreenshot() {
	w, h := a.scene.Size()
	path, err := a.capture.CaptureFromPixels(a.scene.ReadPixels(), int(w), int(h))
	if err != nil {
		a.log.Error("screenshot", zap.Error(err))
		a.notice.Show("Screenshot failed: %v", err)
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
	a.notice.Show("Screenshot: %s", path)
}
