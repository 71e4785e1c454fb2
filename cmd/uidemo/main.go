// Package main is a demo that renders a handful of pooled UI quads.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/uiforge/internal/config"
	"github.com/Faultbox/uiforge/internal/engine/render"
	"github.com/Faultbox/uiforge/internal/engine/ui2d"
	"github.com/Faultbox/uiforge/internal/engine/window"
	"github.com/Faultbox/uiforge/internal/logger"
)

// element is one animated quad: a pool handle, its GL buffer and its
// placement on screen.
type element struct {
	handle render.Handle
	data   *render.RenderData
	buf    *ui2d.Buffer

	x, y  float32
	size  float32
	color render.Color
	phase float64
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== UIForge demo ===")

	win, err := window.New(window.Config{
		Title:      "UIForge",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		logger.Error("failed to initialize OpenGL", zap.Error(err))
		os.Exit(1)
	}

	renderer, err := ui2d.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		logger.Error("failed to create renderer", zap.Error(err))
		os.Exit(1)
	}
	defer renderer.Close()

	pool := render.NewRenderPool()
	if cfg.Pool.WarmVertices > 0 {
		pool.VertexPool().Grow(cfg.Pool.WarmVertices)
	}
	logger.Sugar.Debugf("vertex pool warmed with %d records", cfg.Pool.WarmVertices)

	elements := makeElements(pool, cfg.Graphics.Width, cfg.Graphics.Height)
	defer func() {
		for _, e := range elements {
			e.buf.Close()
			pool.Release(e.handle)
		}
		logger.Sugar.Infow("pool at shutdown",
			"slots", pool.Len(),
			"live", pool.Live(),
			"vertices", pool.VertexPool().Len(),
		)
	}()

	if err := run(win, renderer, elements, cfg); err != nil {
		logger.Error("demo error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}

func makeElements(pool *render.RenderPool, screenW, screenH int) []*element {
	colors := []render.Color{
		render.RGB(230, 90, 80),
		render.RGB(90, 200, 120),
		render.RGB(80, 140, 230),
		render.RGB(240, 200, 80),
		render.RGB(200, 100, 220),
	}

	elements := make([]*element, len(colors))
	for i, c := range colors {
		h, d := pool.Acquire()
		elements[i] = &element{
			handle: h,
			data:   d,
			buf:    ui2d.NewBuffer(),
			x:      float32(screenW) * float32(i+1) / float32(len(colors)+1),
			y:      float32(screenH) / 2,
			size:   80,
			color:  c,
			phase:  float64(i) * 0.9,
		}
	}
	return elements
}

func run(win *window.Window, renderer *ui2d.Renderer, elements []*element, cfg *config.Config) error {
	var (
		frames    int
		lastTitle uint64
		running   = true
	)

	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			case *sdl.WindowEvent:
				if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					w, h := win.GetSize()
					gl.Viewport(0, 0, int32(w), int32(h))
					renderer.Resize(w, h)
				}
			}
		}

		now := sdl.GetTicks64()
		t := float64(now) / 1000.0

		gl.ClearColor(0.08, 0.08, 0.12, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		renderer.Begin()
		for _, e := range elements {
			// Pulse the size; identical frames leave the flags alone and
			// skip regeneration entirely.
			pulse := float32(1 + 0.3*math.Sin(t*2+e.phase))
			size := float32(math.Round(float64(e.size*pulse)))
			e.data.UpdateSizeAndPivot(size, size, 0.5, 0.5)

			if e.data.VertDirty || e.data.UVDirty {
				render.FillQuad(e.data, render.FullUV, e.color)
				for _, v := range e.data.Verts[:e.data.VertexCount] {
					v.X += e.x
					v.Y += e.y
				}
			}

			renderer.Draw(e.data, e.buf)
		}
		renderer.End()

		win.SwapBuffers()

		frames++
		if cfg.Graphics.ShowFPS && now-lastTitle >= 1000 {
			win.SetTitle(fmt.Sprintf("UIForge — %d fps", frames))
			frames = 0
			lastTitle = now
		}
	}

	return nil
}
