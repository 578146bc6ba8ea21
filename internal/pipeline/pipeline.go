// Package pipeline turns a config into model, view and projection matrices
// and projects points through them.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ousttrue/lah/internal/config"
	lmath "github.com/ousttrue/lah/pkg/math"
)

// Pipeline holds the matrices of a row-vector transform chain.
type Pipeline struct {
	Model      lmath.Mat4
	View       lmath.Mat4
	Projection lmath.Mat4
	// MVP is Model * View * Projection; Model is applied first.
	MVP lmath.Mat4

	log *zap.Logger
}

// Result is one projected point.
type Result struct {
	Input   lmath.Vec3
	Clip    lmath.Vec4
	NDC     lmath.Vec3
	Visible bool
}

// New builds a pipeline from cfg. The config is validated first.
func New(cfg *config.Config, log *zap.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	p := &Pipeline{
		Model:      ModelMatrix(cfg.Model),
		View:       ViewMatrix(cfg.Camera),
		Projection: ProjectionMatrix(cfg.Projection),
		log:        log,
	}
	p.MVP = p.Model.Mul(p.View).Mul(p.Projection)

	log.Debug("pipeline built",
		zap.Stringer("model", p.Model),
		zap.Stringer("view", p.View),
		zap.Stringer("projection", p.Projection))

	if !p.MVP.IsFinite() {
		return nil, fmt.Errorf("pipeline produced a non-finite matrix:\n%v", p.MVP)
	}
	return p, nil
}

// ModelMatrix builds the model transform from a position and an axis-angle rotation.
func ModelMatrix(m config.ModelConfig) lmath.Mat4 {
	rot := lmath.QuatIdentity()
	if m.Rotation.AngleDeg != 0 {
		axis := vec3(m.Rotation.Axis).Normalized()
		rot = lmath.QuatFromAxisAngle(axis, lmath.Radians(m.Rotation.AngleDeg))
	}
	return lmath.Transform{Pos: vec3(m.Position), Rot: rot}.Mat4()
}

// ViewMatrix builds the camera matrix.
func ViewMatrix(c config.CameraConfig) lmath.Mat4 {
	return lmath.LookAt(vec3(c.Eye), vec3(c.Target), vec3(c.Up))
}

// ProjectionMatrix builds a perspective or orthographic projection.
func ProjectionMatrix(p config.ProjectionConfig) lmath.Mat4 {
	if p.Orthographic {
		h := p.OrthoHeight / 2
		w := h * p.Aspect
		return lmath.Ortho(-w, w, -h, h, p.ZNear, p.ZFar)
	}
	return lmath.Perspective(p.FovYDeg, p.Aspect, p.ZNear, p.ZFar)
}

// Project transforms each point to clip space and normalized device coordinates.
func (p *Pipeline) Project(points []lmath.Vec3) []Result {
	results := make([]Result, 0, len(points))
	for _, pt := range points {
		clip := p.MVP.ApplyVec4(pt.Vec4(1))
		ndc := clip.PerspectiveDivide()
		r := Result{
			Input:   pt,
			Clip:    clip,
			NDC:     ndc,
			Visible: clip.W > 0 && inUnitCube(ndc),
		}
		if !ndc.IsFinite() {
			p.log.Warn("point projects to a non-finite position",
				zap.Stringer("point", pt), zap.Stringer("clip", clip))
		}
		results = append(results, r)
	}
	return results
}

// Points converts config triples to vectors.
func Points(raw [][3]float64) []lmath.Vec3 {
	out := make([]lmath.Vec3, len(raw))
	for i, r := range raw {
		out[i] = vec3(r)
	}
	return out
}

func inUnitCube(v lmath.Vec3) bool {
	return v.IsFinite() &&
		v.X >= -1 && v.X <= 1 &&
		v.Y >= -1 && v.Y <= 1 &&
		v.Z >= -1 && v.Z <= 1
}

func vec3(a [3]float64) lmath.Vec3 {
	return lmath.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
