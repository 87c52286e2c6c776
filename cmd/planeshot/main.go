// Package main renders the plane in a plain SDL window and saves a snapshot.
//
// Usage:
//
//	planeshot -frames 120 -pointer 0.1,0.2 -out plane.png
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/glowplane/internal/config"
	"github.com/Faultbox/glowplane/internal/demo"
	"github.com/Faultbox/glowplane/internal/engine/debug"
	"github.com/Faultbox/glowplane/internal/engine/input"
	"github.com/Faultbox/glowplane/internal/engine/scene"
	"github.com/Faultbox/glowplane/internal/engine/window"
	"github.com/Faultbox/glowplane/internal/logger"
)

// defaultSeed keeps snapshots reproducible when no seed is configured.
const defaultSeed = 1

var (
	flagFrames  = flag.Int("frames", 120, "Number of frames to simulate before the snapshot")
	flagOut     = flag.String("out", "", "Output image path; .png, .bmp or .tiff (default: timestamped PNG in the screenshot dir)")
	flagPointer = flag.String("pointer", "", "Simulated pointer in normalized device coordinates, e.g. 0.1,-0.2")
	flagHidden  = flag.Bool("hidden", false, "Do not show the window")
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("planeshot failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func parsePointer(s string) (x, y float32, ok bool, err error) {
	if s == "" {
		return 0, 0, false, nil
	}
	if _, err := fmt.Sscanf(s, "%f,%f", &x, &y); err != nil {
		return 0, 0, false, fmt.Errorf("invalid -pointer %q: %w", s, err)
	}
	if x < -1 || x > 1 || y < -1 || y > 1 {
		return 0, 0, false, fmt.Errorf("-pointer %q outside [-1, 1]", s)
	}
	return x, y, true, nil
}

func run(cfg *config.Config) error {
	log := logger.Named("planeshot")

	px, py, simulated, err := parsePointer(*flagPointer)
	if err != nil {
		return err
	}
	if cfg.Displacement.Seed == 0 {
		cfg.Displacement.Seed = defaultSeed
	}

	win, err := window.New(window.Config{
		Title:      "Glow Plane Snapshot",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Hidden:     *flagHidden,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init opengl: %w", err)
	}

	d, err := demo.New(cfg)
	if err != nil {
		return err
	}

	fbW, fbH := win.DrawableSize()
	sc, err := scene.New(scene.Config{Width: int32(fbW), Height: int32(fbH)})
	if err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}
	defer sc.Destroy()
	d.Resize(fbW, fbH)

	if simulated {
		d.SetPointerNDC(px, py)
	}

	in := input.New()
	const dt = float32(1.0 / 60.0)
	frames := 0
	for ; frames < *flagFrames; frames++ {
		if in.Update() {
			log.Info("window closed before the snapshot", zap.Int("frames", frames))
			return nil
		}
		for _, e := range in.Events() {
			if e.Type == input.EventWindowResize {
				fbW, fbH = win.DrawableSize()
				sc.Resize(int32(fbW), int32(fbH))
				d.Resize(fbW, fbH)
			}
		}

		p := in.Pointer()
		if !simulated && p.Moved {
			winW, winH := win.Size()
			d.SetPointerPixels(float32(p.X), float32(p.Y), float32(winW), float32(winH))
		}
		if p.DX != 0 || p.DY != 0 {
			d.Camera.HandleDrag(float32(p.DX), float32(p.DY))
		}
		if p.Wheel != 0 {
			d.Camera.HandleZoom(p.Wheel)
		}
		if in.IsKeyPressed(sdl.SCANCODE_R) {
			d.Camera.Reset()
		}

		d.Update(dt)
		sc.Render(d.Camera, d.Mesh)
		sc.Present(int32(fbW), int32(fbH))
		win.SwapBuffers()
	}

	w, h := sc.Size()
	img, err := debug.ImageFromPixels(sc.ReadPixels(), int(w), int(h))
	if err != nil {
		return err
	}

	out := *flagOut
	if out == "" {
		out = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "planeshot").Filename()
	}
	if err := debug.WriteImage(out, img); err != nil {
		return err
	}

	s := d.Stats()
	log.Info("snapshot saved",
		zap.String("path", out),
		zap.Int("frames", frames),
		zap.Uint64("seed", d.Seed()),
		zap.Int("vertices", s.Vertices),
		zap.Uint64("hits", s.Hits),
	)
	return nil
}
