// xform is a CLI utility for building and inspecting row-major transform matrices.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/ousttrue/lah/internal/config"
	"github.com/ousttrue/lah/internal/logger"
	"github.com/ousttrue/lah/internal/pipeline"
	lmath "github.com/ousttrue/lah/pkg/math"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command := args[0]
	args = args[1:]

	var err error
	switch command {
	case "identity":
		fmt.Fprintln(stdout, lmath.Mat4Identity())
	case "translate":
		err = cmdTranslate(args, stdout)
	case "rotate":
		err = cmdRotate(args, stdout)
	case "perspective":
		err = cmdPerspective(args, stdout)
	case "project":
		err = cmdProject(args, stdout, stderr)
	case "init":
		err = cmdInit(args, stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `xform - row-major transform matrix utility

Usage:
  xform <command> [options]

Commands:
  identity                               Print the identity matrix
  translate <x> <y> <z>                  Print a translation matrix
  rotate <x|y|z> <degrees>               Print an axis rotation matrix
  perspective <fovy> <aspect> <near> <far>
                                         Print a perspective matrix (fovy in degrees)
  project [-config file] [flags]         Project the configured points through Model*View*Projection
  init [path]                            Write a default pipeline file

Examples:
  xform translate 1 2 3
  xform rotate z 90
  xform perspective 60 1.7778 0.1 100
  xform project -config xform.yaml -fovy 45`)
}

func cmdTranslate(args []string, stdout io.Writer) error {
	v, err := parseFloats(args, 3, "translate <x> <y> <z>")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, lmath.Translate(v[0], v[1], v[2]))
	return nil
}

func cmdRotate(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: xform rotate <x|y|z> <degrees>")
	}
	v, err := parseFloats(args[1:], 1, "rotate <x|y|z> <degrees>")
	if err != nil {
		return err
	}

	var m lmath.Mat4
	switch args[0] {
	case "x":
		m = lmath.RotateXDegrees(v[0])
	case "y":
		m = lmath.RotateYDegrees(v[0])
	case "z":
		m = lmath.RotateZDegrees(v[0])
	default:
		return fmt.Errorf("unknown axis %q", args[0])
	}
	fmt.Fprintln(stdout, m)
	return nil
}

func cmdPerspective(args []string, stdout io.Writer) error {
	v, err := parseFloats(args, 4, "perspective <fovy> <aspect> <near> <far>")
	if err != nil {
		return err
	}
	m := lmath.Perspective(v[0], v[1], v[2], v[3])
	fmt.Fprintln(stdout, m)
	if !m.IsFinite() {
		fmt.Fprintln(stdout, "warning: matrix has non-finite elements")
	}
	return nil
}

func cmdProject(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	p, err := pipeline.New(cfg, logger.Log)
	if err != nil {
		return err
	}
	logger.Log.Info("projecting points", zap.Int("count", len(cfg.Points)))

	fmt.Fprintf(stdout, "MVP:\n%v\n\n", p.MVP)
	fmt.Fprintf(stdout, "%-28s %-44s %-32s %s\n", "point", "clip", "ndc", "visible")
	for _, r := range p.Project(pipeline.Points(cfg.Points)) {
		fmt.Fprintf(stdout, "%-28v %-44v %-32v %t\n", r.Input, r.Clip, r.NDC, r.Visible)
	}
	return nil
}

func cmdInit(args []string, stdout io.Writer) error {
	path := config.FileName
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Default().SaveTo(path); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}

func parseFloats(args []string, n int, usage string) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("usage: xform %s", usage)
	}
	out := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}
