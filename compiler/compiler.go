package compiler

import (
	"fmt"
	"strings"

	"github.com/npillmayer/keyframes/timeline"
	"github.com/npillmayer/keyframes/tween"
	"golang.org/x/net/html"
)

// Compile compiles a keyframe timeline into a new container of engine.
// The container is frame-based and paused. Its duration is the highest
// frame number of the timeline. Transitions are always linear.
//
// Errors wrap one of ErrInvalidInput, ErrEngineUnavailable or
// ErrUnsupportedTarget.
func Compile(tl *timeline.KeyframeTimeline, engine tween.Engine, config tween.Config) (tween.Container, error) {
	c, _, err := CompileSegments(tl, engine, config)
	return c, err
}

// CompileSegments is like Compile, but additionally returns the segments
// it added to the container. Each segment carries the container's ID and
// the index of its tween.
func CompileSegments(tl *timeline.KeyframeTimeline, engine tween.Engine, config tween.Config) (
	tween.Container, []Segment, error) {
	//
	target, err := validate(tl, engine, config)
	if err != nil {
		tracer().Errorf("cannot compile timeline: %v", err)
		return nil, nil, err
	}
	segs := Segments(tl)
	container := engine.CreateContainer(tween.ContainerOptions{UseFrames: true, Paused: true})
	tracer().Debugf("compiling %d segments into container #%d", len(segs), container.ID())
	for i, seg := range segs {
		vars := tween.Vars{
			Props:    map[string]float64{seg.Property: seg.Value},
			Duration: float64(seg.Duration()),
		}
		if seg.IsInitialSet {
			vars.DeferRender = true
		} else {
			vars.Ease = tween.Linear
		}
		child := container.AddTween(target, vars, float64(seg.StartOffset()))
		segs[i].Container = child.Container()
		segs[i].Child = child.Index()
	}
	tracer().Infof("compiled timeline %s: %d segments, duration %g frames",
		tl.Path(), len(segs), container.Duration())
	return container, segs, nil
}

// validate checks everything Compile needs before a container may be
// created, and returns the live target.
func validate(tl *timeline.KeyframeTimeline, engine tween.Engine, config tween.Config) (*html.Node, error) {
	if tl == nil {
		return nil, fmt.Errorf("%w: timeline is nil", ErrInvalidInput)
	}
	if tl.Len() == 0 {
		return nil, fmt.Errorf("%w: timeline has no frames", ErrInvalidInput)
	}
	if engine == nil || !engine.IsAvailable() {
		return nil, ErrEngineUnavailable
	}
	if tl.Kind() != timeline.DOMTarget {
		return nil, fmt.Errorf("%w: target kind %q", ErrUnsupportedTarget, tl.Kind())
	}
	target, _ := tl.Target().(*html.Node)
	if target == nil {
		if tl.Path() != "" {
			return nil, fmt.Errorf("%w: target %s is not resolved", ErrInvalidInput, tl.Path())
		}
		return nil, fmt.Errorf("%w: timeline has no target", ErrInvalidInput)
	}
	if config.StrictOrigins {
		if implicit := tl.ImplicitOrigins(); len(implicit) > 0 {
			return nil, fmt.Errorf("%w: properties without value at frame 0: %s",
				ErrInvalidInput, strings.Join(implicit, ", "))
		}
	}
	return target, nil
}
