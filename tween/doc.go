/*
Package tween defines the interface to a tween engine.

A tween engine interpolates property values of a target over time. We do not
implement interpolation or rendering; the compiler (package compiler) only
needs a small capability surface from an engine: create a container for a
timeline and add tweens to it. Concrete engines are plugged in by
implementing Engine. Package memengine provides an engine which records
everything added to it, useful for tests and for inspecting compiled
timelines.

Engines may have to be provisioned (loaded, connected, …) before they are
usable. The compiler never provisions an engine, it just asks it if it is
available.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tween

import (
	"fmt"
	"sort"
	"strings"
)

// Ease names an interpolation curve.
type Ease string

// Linear is the interpolation curve of all compiled transitions.
const Linear Ease = "linear"

// ContainerOptions configures a timeline container.
type ContainerOptions struct {
	UseFrames bool // time positions and durations are in frames, not seconds
	Paused    bool // container does not start playing on creation
}

// Vars describes a single tween: the property values to reach, the duration
// to get there, and how.
type Vars struct {
	Props       map[string]float64 // property → value at the end of the tween
	Duration    float64            // in frames or seconds, as configured by the container
	Ease        Ease               // interpolation curve; empty for zero-duration tweens
	DeferRender bool               // set values, but do not render them immediately
}

func (v Vars) String() string {
	keys := make([]string, 0, len(v.Props))
	for k := range v.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%g", k, v.Props[k])
	}
	fmt.Fprintf(&b, " dur=%g", v.Duration)
	if v.Ease != "" {
		fmt.Fprintf(&b, " ease=%s", v.Ease)
	}
	if v.DeferRender {
		b.WriteString(" deferred")
	}
	return b.String()
}

// Engine is the capability surface of a tween engine.
type Engine interface {
	IsAvailable() bool                          // is the engine provisioned and usable?
	CreateContainer(ContainerOptions) Container // create a new timeline container
}

// Container is an engine-level timeline, holding tweens at time positions.
type Container interface {
	// ID is unique within the container's engine.
	ID() int
	// AddTween adds a tween for target, starting at time position startOffset.
	AddTween(target interface{}, vars Vars, startOffset float64) Child
	// Duration is the end position of the last tween.
	Duration() float64
}

// Child is a tween which has been added to a container. Children refer to
// their container by ID, not by reference.
type Child interface {
	Container() int // ID of the container this child belongs to
	Index() int     // position of this child within its container
}

// Config is the engine configuration. It is passed explicitly to engine
// factories and to the compiler; there is no global configuration.
type Config struct {
	FrameRate     float64 // frames per second, for converting frames to wall-clock time
	StrictOrigins bool    // reject timelines with properties missing from frame 0
}

// DefaultConfig returns a configuration with 60 fps.
func DefaultConfig() Config {
	return Config{FrameRate: 60}
}

// Seconds converts a number of frames to seconds. A non-positive frame rate
// falls back to the default of 60 fps.
func (c Config) Seconds(frames float64) float64 {
	rate := c.FrameRate
	if rate <= 0 {
		rate = DefaultConfig().FrameRate
	}
	return frames / rate
}
