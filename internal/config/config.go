package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gekko3d/shapeviz"
	"github.com/gekko3d/shapeviz/rgb"
	"github.com/gekko3d/shapeviz/shape"
	"github.com/spf13/viper"
)

const envPrefix = "SHAPEVIZ"

// RunConfig holds the headless frame loop settings.
type RunConfig struct {
	FPS    int `json:"fps" mapstructure:"fps"`
	Frames int `json:"frames" mapstructure:"frames"`
}

// Interval is the tick period for FPS, or zero to run unthrottled.
func (c RunConfig) Interval() time.Duration {
	if c.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}

// OutputConfig names the snapshot files written after the run. Empty paths are skipped.
type OutputConfig struct {
	SVG   string `json:"svg" mapstructure:"svg"`
	PNG   string `json:"png" mapstructure:"png"`
	Label bool   `json:"label" mapstructure:"label"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("profile", string(shapeviz.ProfileRanged))
	v.SetDefault("variant", string(shape.VariantSphere))

	v.SetDefault("viewport.width", 1280)
	v.SetDefault("viewport.height", 720)
	v.SetDefault("viewport.divisor", 10)

	v.SetDefault("cube.size", 5)
	v.SetDefault("cube.color", "#ff0000")
	v.SetDefault("cube.wireframe", true)

	v.SetDefault("sphere.radius", 5)
	v.SetDefault("sphere.color", "#ff0000")
	v.SetDefault("sphere.widthSegments", 32)
	v.SetDefault("sphere.heightSegments", 16)
	v.SetDefault("sphere.wireframe", false)

	v.SetDefault("torus.radius", 4)
	v.SetDefault("torus.tube", 1)
	v.SetDefault("torus.color", "#ff0000")
	v.SetDefault("torus.wireframe", true)

	v.SetDefault("rotation.enabled", true)
	v.SetDefault("color.enabled", false)
	v.SetDefault("color.base", "#ffffff")
	v.SetDefault("color.from", "#ffdddd")
	v.SetDefault("color.to", "#242424")
	v.SetDefault("color.lerpFactor", 0.1)
	v.SetDefault("scale.enabled", true)
	v.SetDefault("scale.min", 3)
	v.SetDefault("scale.max", 7)
	v.SetDefault("scale.output", 1)
	v.SetDefault("particles.enabled", false)

	v.SetDefault("run.fps", 60)
	v.SetDefault("run.frames", 120)

	v.SetDefault("output.svg", "")
	v.SetDefault("output.png", "")
	v.SetDefault("output.label", true)
}

// Load sets defaults on the global viper, enables SHAPEVIZ_ env overrides and reads
// path when it is not empty. The format follows the file extension.
func Load(path string) error {
	return LoadInto(viper.GetViper(), path)
}

func LoadInto(v *viper.Viper, path string) error {
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetRunConfig() RunConfig {
	return runConfig(viper.GetViper())
}

func runConfig(v *viper.Viper) RunConfig {
	return RunConfig{
		FPS:    v.GetInt("run.fps"),
		Frames: v.GetInt("run.frames"),
	}
}

func GetOutputConfig() OutputConfig {
	return outputConfig(viper.GetViper())
}

func outputConfig(v *viper.Viper) OutputConfig {
	return OutputConfig{
		SVG:   v.GetString("output.svg"),
		PNG:   v.GetString("output.png"),
		Label: v.GetBool("output.label"),
	}
}

func GetViewport() shapeviz.Viewport {
	return viewport(viper.GetViper())
}

func viewport(v *viper.Viper) shapeviz.Viewport {
	return shapeviz.Viewport{
		Width:   v.GetFloat64("viewport.width"),
		Height:  v.GetFloat64("viewport.height"),
		Divisor: v.GetFloat64("viewport.divisor"),
	}
}

// GetState builds the initial app state from the global viper.
func GetState() (*shapeviz.AppState, error) {
	return State(viper.GetViper())
}

// State builds the initial app state from v. Every malformed value is reported.
func State(v *viper.Viper) (*shapeviz.AppState, error) {
	var errs []error
	color := func(key string) rgb.Color {
		c, err := rgb.Parse(v.GetString(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return c
	}

	st := shapeviz.DefaultState()

	profile, err := shapeviz.ParseProfile(v.GetString("profile"))
	if err != nil {
		errs = append(errs, fmt.Errorf("profile: %w", err))
	}
	st.Profile = profile

	variant, err := shape.ParseVariant(v.GetString("variant"))
	if err != nil {
		errs = append(errs, fmt.Errorf("variant: %w", err))
	}
	st.Variant = variant

	st.Params = shape.Params{
		Cube: shape.CubeParams{
			Size:      v.GetFloat64("cube.size"),
			Color:     color("cube.color"),
			Wireframe: v.GetBool("cube.wireframe"),
		},
		Sphere: shape.SphereParams{
			Radius: v.GetFloat64("sphere.radius"),
			Color:  color("sphere.color"),
			Segments: shape.Segments{
				Width:  v.GetInt("sphere.widthSegments"),
				Height: v.GetInt("sphere.heightSegments"),
			},
			Wireframe: v.GetBool("sphere.wireframe"),
		},
		Torus: shape.TorusParams{
			Radius:    v.GetFloat64("torus.radius"),
			Tube:      v.GetFloat64("torus.tube"),
			Color:     color("torus.color"),
			Wireframe: v.GetBool("torus.wireframe"),
		},
	}

	st.RotationEnabled = v.GetBool("rotation.enabled")
	st.ColorEnabled = v.GetBool("color.enabled")
	st.ScaleEnabled = v.GetBool("scale.enabled")
	st.ParticlesEnabled = v.GetBool("particles.enabled")

	st.BaseColor = color("color.base")
	st.ColorFrom = color("color.from")
	st.ColorTo = color("color.to")
	st.ColorLerpFactor = v.GetFloat64("color.lerpFactor")

	st.ScaleRange = shapeviz.ScaleRange{Min: v.GetFloat64("scale.min"), Max: v.GetFloat64("scale.max")}
	st.OutputScale = v.GetFloat64("scale.output")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return st, nil
}
