package config

import (
	"flag"
	"io"
)

// flags holds command-line overrides. Zero values mean "not set".
type flags struct {
	config string
	debug  bool
	fovy   float64
	aspect float64
	near   float64
	far    float64
	ortho  bool
}

func newFlagSet(out io.Writer) (*flag.FlagSet, *flags) {
	f := &flags{}
	fs := flag.NewFlagSet("project", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&f.config, "config", "", "Path to pipeline file")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.Float64Var(&f.fovy, "fovy", 0, "Vertical field of view in degrees")
	fs.Float64Var(&f.aspect, "aspect", 0, "Aspect ratio (width/height)")
	fs.Float64Var(&f.near, "near", 0, "Near clip distance")
	fs.Float64Var(&f.far, "far", 0, "Far clip distance")
	fs.BoolVar(&f.ortho, "ortho", false, "Use an orthographic projection")
	return fs, f
}

// apply applies CLI flag overrides to the config.
func (f *flags) apply(cfg *Config) {
	if f.debug {
		cfg.Logging.Level = "debug"
	}
	if f.fovy > 0 {
		cfg.Projection.FovYDeg = f.fovy
	}
	if f.aspect > 0 {
		cfg.Projection.Aspect = f.aspect
	}
	if f.near > 0 {
		cfg.Projection.ZNear = f.near
	}
	if f.far > 0 {
		cfg.Projection.ZFar = f.far
	}
	if f.ortho {
		cfg.Projection.Orthographic = true
	}
}
