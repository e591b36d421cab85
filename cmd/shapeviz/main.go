package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gekko3d/shapeviz"
	"github.com/gekko3d/shapeviz/backend/raster"
	"github.com/gekko3d/shapeviz/backend/svg"
	"github.com/gekko3d/shapeviz/internal/config"
	"github.com/gekko3d/shapeviz/scene"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"profile":   "profile",
	"variant":   "variant",
	"frames":    "run.frames",
	"fps":       "run.fps",
	"svg":       "output.svg",
	"png":       "output.png",
	"particles": "particles.enabled",
	"color":     "color.enabled",
	"log-level": "logLevel",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("shapeviz", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file (json, yaml or toml)")
	fs.String("profile", "", "animation profile: classic or ranged")
	fs.StringP("variant", "s", "", "shape: cube, sphere or torus")
	fs.IntP("frames", "n", 0, "frames to run, 0 runs until interrupted")
	fs.Int("fps", 0, "frames per second, 0 runs unthrottled")
	fs.String("svg", "", "write the last frame as SVG")
	fs.String("png", "", "write the last frame as PNG")
	fs.Bool("particles", false, "show the particle backdrop")
	fs.Bool("color", false, "enable the color ping-pong")
	fs.String("log-level", "", "debug, info, warn or error")
	return fs
}

func run(ctx context.Context, args []string) error {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfgPath, _ := fs.GetString("config")
	if err := config.Load(cfgPath); err != nil {
		return err
	}
	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	state, err := config.GetState()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	level, err := zerolog.ParseLevel(config.GetString("logLevel"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	vp := config.GetViewport()
	runCfg := config.GetRunConfig()
	out := config.GetOutputConfig()

	svgOut := svg.NewRenderer(vp.Width, vp.Height)
	pngOut := raster.NewRenderer(vp.Width, vp.Height)
	if out.Label {
		pngOut.Label = fmt.Sprintf("%s / %s", state.Variant, state.Profile)
	}

	app, err := shapeviz.NewAppBuilder().
		UseModule(
			shapeviz.LoggingModule{Prefix: "shapeviz", Debug: level <= zerolog.DebugLevel},
			shapeviz.TimeModule{},
			shapeviz.MetricsModule{},
		).
		UseState(state).
		UseViewport(vp).
		UseBackend(scene.Multi{svgOut, pngOut}).
		Build()
	if err != nil {
		return err
	}
	defer app.Close()

	err = app.Run(ctx, runCfg.Frames, runCfg.Interval())
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	app.Logger().Infof("rendered %d frames", app.Frames())

	if out.SVG != "" {
		if err := svgOut.Save(out.SVG); err != nil {
			return err
		}
		app.Logger().Infof("wrote %s", out.SVG)
	}
	if out.PNG != "" {
		if err := pngOut.Save(out.PNG); err != nil {
			return err
		}
		app.Logger().Infof("wrote %s", out.PNG)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "shapeviz: %v\n", err)
		os.Exit(1)
	}
}
