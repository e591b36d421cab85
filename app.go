package shapeviz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gekko3d/shapeviz/scene"
)

// Module installs a concern (logging, clock, metrics) into an App at build time.
type Module interface {
	Install(app *App, cmd *Commands)
}

// Viewport is the host surface size. Output is Width/Divisor by Height/Divisor at
// scale 1.
type Viewport struct {
	Width   float64
	Height  float64
	Divisor float64
}

func (v Viewport) aspect() float64 {
	if v.Height == 0 {
		return 1
	}
	return v.Width / v.Height
}

func (v Viewport) base() (float64, float64) {
	d := v.Divisor
	if d <= 0 {
		d = 1
	}
	return v.Width / d, v.Height / d
}

// App owns the state, the scene and the backend, and runs one Step per tick.
// It is not safe for concurrent use; commands from other goroutines must be funnelled
// into the goroutine that calls Tick.
type App struct {
	state    *AppState
	scene    *scene.Scene
	backend  scene.Backend
	viewport Viewport
	modules  []Module

	clock   Clock
	time    *Time
	logger  Logger
	metrics *Metrics

	pending []Command
	frames  uint64
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

func (app *App) State() *AppState {
	return app.state
}

func (app *App) Scene() *scene.Scene {
	return app.scene
}

func (app *App) Time() *Time {
	return app.time
}

// Frames reports how many frames have been rendered.
func (app *App) Frames() uint64 {
	return app.frames
}

// Apply reduces a single command immediately and carries out its effects.
func (app *App) Apply(c Command) error {
	effect, err := Reduce(app.scene, app.state, c)
	if err != nil {
		return fmt.Errorf("apply %T: %w", c, err)
	}

	if effect.Has(EffectRebuilt) {
		sh := app.scene.Shape()
		app.Logger().Debugf("rebuilt %s shape %s (wireframe=%v, %d lines)", sh.Variant(), sh.ID(), sh.Wireframe(), len(sh.Lines()))
		app.metrics.rebuild(context.Background(), string(sh.Variant()))
		if err := app.render(scene.NewRenderCommand(app.scene)); err != nil {
			return err
		}
	}
	if effect.Has(EffectResized) {
		app.resize(app.state.OutputScale)
	}
	return nil
}

// FlushCommands applies every buffered command in order. A failing command does not
// stop the ones after it; all failures are returned joined.
func (app *App) FlushCommands() error {
	if len(app.pending) == 0 {
		return nil
	}

	var errs []error
	for _, c := range app.pending {
		if err := app.Apply(c); err != nil {
			errs = append(errs, err)
		}
	}
	app.pending = app.pending[:0]
	return errors.Join(errs...)
}

// Tick runs one frame: flush commands, advance the clock, step the animation, render.
func (app *App) Tick() error {
	if err := app.FlushCommands(); err != nil {
		app.Logger().Warnf("%v", err)
	}

	timeSystem(app.time, app.clock())
	frame := Frame{
		Delta:   app.time.Dt.Seconds(),
		Elapsed: app.time.Elapsed().Seconds(),
	}

	legs := app.state.ColorLegs
	cmd := Step(app.scene, app.state, frame, app.resize)
	app.metrics.legs(context.Background(), app.state.ColorLegs-legs)

	return app.render(cmd)
}

// Run ticks every interval until ctx is done or frames ticks have run. frames <= 0
// runs until ctx is done.
func (app *App) Run(ctx context.Context, frames int, interval time.Duration) error {
	app.Logger().Infof("running %s profile with %s shape", app.state.Profile, app.state.Variant)

	// A zero interval ticks back to back.
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for n := 0; frames <= 0 || n < frames; n++ {
		if tick == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		if err := app.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Resize updates the host surface, e.g. after a window resize.
func (app *App) Resize(width, height float64) {
	app.viewport.Width = width
	app.viewport.Height = height
	app.scene.Camera.SetAspect(app.viewport.aspect())
	app.resize(app.state.OutputScale)
}

func (app *App) resize(factor float64) {
	w, h := app.viewport.base()
	app.backend.SetSize(w*factor, h*factor)
}

func (app *App) render(cmd scene.RenderCommand) error {
	if err := app.backend.Render(cmd); err != nil {
		return fmt.Errorf("render frame %d: %w", app.frames, err)
	}
	app.frames++
	app.metrics.frame(context.Background())
	return nil
}

// Close tears the scene down.
func (app *App) Close() {
	app.scene.Teardown()
	app.pending = nil
}
