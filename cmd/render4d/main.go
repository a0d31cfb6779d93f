package main

import (
	"flag"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy4d/engine"
	"github.com/Carmen-Shannon/oxy4d/engine/camera4d"
	"github.com/Carmen-Shannon/oxy4d/engine/config"
	"github.com/Carmen-Shannon/oxy4d/engine/input"
	"github.com/Carmen-Shannon/oxy4d/engine/renderer"
	"github.com/Carmen-Shannon/oxy4d/engine/uniform4d"
	"github.com/Carmen-Shannon/oxy4d/engine/window"
	"github.com/Carmen-Shannon/oxy4d/engine/world"
	"github.com/cogentcore/webgpu/wgpu"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("[Config] %v", err)
		}
	}
	bindings, err := cfg.KeyBindings()
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}

	// ── Engine + Window ─────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
	)

	presentMode := renderer.PresentModeUncapped
	if cfg.Engine.VSync {
		presentMode = renderer.PresentModeVSync
	}
	bg := world.DemoColor
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
		renderer.WithClearColor(wgpu.Color{R: float64(bg[0]) / 2, G: float64(bg[1]) / 2, B: float64(bg[2]) / 2, A: 1}),
	)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithRenderFrameLimit(float64(cfg.Engine.FrameLimit)),
	)

	// ── World ───────────────────────────────────────────────────────────
	var worldOptions []world.WorldBuilderOption
	if cfg.World.Workers > 0 {
		worldOptions = append(worldOptions, world.WithWorkers(cfg.World.Workers))
	}
	w := world.NewWorld(cfg.World.Size, worldOptions...)
	if cfg.World.Demo {
		id := world.DemoScene(w)
		log.Printf("[World] demo scene: %d of %d voxels filled", w.Count(id), len(w.Voxels()))
	}

	// ── Uniforms ────────────────────────────────────────────────────────
	uniforms := uniform4d.NewUniforms()
	if err := uniforms.Init(r, w.Size()); err != nil {
		log.Fatalf("[Uniforms4D] %v", err)
	}

	// ── Camera + Input ──────────────────────────────────────────────────
	cam := camera4d.NewCamera(cfg.CameraOptions()...)
	dispatcher := camera4d.NewDispatcher(bindings)
	keyboard := input.NewKeyboard()

	win.SetKeyDownCallback(keyboard.KeyDown)
	win.SetKeyUpCallback(keyboard.KeyUp)
	win.SetFocusCallback(func(focused bool) {
		if !focused {
			keyboard.Reset()
		}
	})

	upload := func(c camera4d.Camera) bool {
		return uniforms.Upload(r, c)
	}
	// Input dispatch, then the animation step, then the uniform upload.
	eng.SetTickCallback(func(now time.Time, _ float32) {
		if camera4d.Update(cam, dispatcher, keyboard, now, upload) {
			eng.Profiler().RecordUpload()
		}
		keyboard.EndTick()
	})

	log.Printf("[Engine] running: %dx%d, world %d, rotate duration %s", win.Width(), win.Height(), w.Size(), cam.RotateDuration())
	eng.Run()

	// GPU objects go before the window that owns the surface.
	uniforms.Release()
	w.Close()
	r.Release()
	eng.Quit()
}
