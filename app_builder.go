package shapeviz

import (
	"fmt"
	"math/rand"

	"github.com/gekko3d/shapeviz/scene"
	"github.com/gekko3d/shapeviz/shape"
)

type AppBuilder struct {
	app     *App
	modules []Module
	rng     *rand.Rand
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{app: &App{
		state:    DefaultState(),
		backend:  discardBackend{},
		viewport: Viewport{Width: 1280, Height: 720, Divisor: 10},
	}}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

func (b *AppBuilder) UseBackend(backend scene.Backend) *AppBuilder {
	b.app.backend = backend
	return b
}

func (b *AppBuilder) UseState(state *AppState) *AppBuilder {
	b.app.state = state
	return b
}

func (b *AppBuilder) UseViewport(v Viewport) *AppBuilder {
	b.app.viewport = v
	return b
}

// UseRand fixes the random source used for the particle backdrop.
func (b *AppBuilder) UseRand(rng *rand.Rand) *AppBuilder {
	b.rng = rng
	return b
}

// Build installs modules, mounts the initial shape and sizes the backend. It fails if
// the configured variant is unknown.
func (b *AppBuilder) Build() (*App, error) {
	app := b.app
	commands := &Commands{app: app}

	for _, module := range b.modules {
		module.Install(app, commands)
	}
	if app.time == nil {
		TimeModule{}.Install(app, commands)
	}
	app.modules = b.modules

	app.scene = scene.New(app.viewport.aspect(), b.rng)
	sh, err := shape.New(app.state.Variant, app.state.Params)
	if err != nil {
		return nil, fmt.Errorf("build initial shape: %w", err)
	}
	app.scene.Mount(sh)
	if app.state.ParticlesEnabled {
		app.scene.AddParticles()
	}

	app.resize(app.state.OutputScale)
	app.Logger().Debugf("mounted %s shape %s", sh.Variant(), sh.ID())

	return app, nil
}

type discardBackend struct{}

func (discardBackend) SetSize(width, height float64)  {}
func (discardBackend) Render(scene.RenderCommand) error { return nil }
