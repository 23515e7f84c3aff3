/*
Package memengine is a tween engine which records containers and tweens in
memory.

It does not interpolate or render anything. Its purpose is to make the output
of the timeline compiler observable: tests inspect the recorded tweens, and
command line tools print them.

An engine starts out unprovisioned, mirroring engines which have to be loaded
before use. Call Provision to make it available.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package memengine

import (
	"fmt"
	"sync"

	"github.com/npillmayer/keyframes/tween"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// tracer traces with key 'keyframes.tween'.
func tracer() tracing.Trace {
	return tracing.Select("keyframes.tween")
}

// Engine records containers. It implements tween.Engine.
type Engine struct {
	sync.Mutex
	config     tween.Config
	available  bool
	containers []*Container
}

var _ tween.Engine = &Engine{}

// New creates an unprovisioned engine for a configuration.
func New(config tween.Config) *Engine {
	return &Engine{config: config}
}

// Provision makes the engine available.
func (e *Engine) Provision() *Engine {
	e.Lock()
	defer e.Unlock()
	e.available = true
	tracer().Debugf("memory engine provisioned, %g fps", e.config.FrameRate)
	return e
}

// IsAvailable is part of interface tween.Engine. A nil engine is never
// available.
func (e *Engine) IsAvailable() bool {
	if e == nil {
		return false
	}
	e.Lock()
	defer e.Unlock()
	return e.available
}

// CreateContainer is part of interface tween.Engine.
// Containers are numbered, starting with 1.
func (e *Engine) CreateContainer(opts tween.ContainerOptions) tween.Container {
	e.Lock()
	defer e.Unlock()
	c := &Container{id: len(e.containers) + 1, options: opts, config: e.config}
	e.containers = append(e.containers, c)
	tracer().Debugf("created container #%d, frames=%v paused=%v", c.id, opts.UseFrames, opts.Paused)
	return c
}

// Containers returns all containers created so far.
func (e *Engine) Containers() []*Container {
	e.Lock()
	defer e.Unlock()
	cs := make([]*Container, len(e.containers))
	copy(cs, e.containers)
	return cs
}

// Container looks up a container by its ID.
func (e *Engine) Container(id int) (*Container, bool) {
	e.Lock()
	defer e.Unlock()
	if id < 1 || id > len(e.containers) {
		return nil, false
	}
	return e.containers[id-1], true
}

// --- Containers ------------------------------------------------------------

// Container is a recorded timeline container. It implements tween.Container.
type Container struct {
	id       int
	options  tween.ContainerOptions
	config   tween.Config
	children []*Child
}

var _ tween.Container = &Container{}

// ID is part of interface tween.Container.
func (c *Container) ID() int {
	return c.id
}

// Options returns the options the container has been created with.
func (c *Container) Options() tween.ContainerOptions {
	return c.options
}

// AddTween is part of interface tween.Container.
func (c *Container) AddTween(target interface{}, vars tween.Vars, startOffset float64) tween.Child {
	ch := &Child{
		container:   c.id,
		index:       len(c.children),
		Target:      target,
		Vars:        vars,
		StartOffset: startOffset,
	}
	c.children = append(c.children, ch)
	return ch
}

// Duration is part of interface tween.Container. It is the maximum end
// position of all tweens, or 0 for an empty container.
func (c *Container) Duration() float64 {
	d := 0.0
	for _, ch := range c.children {
		if end := ch.StartOffset + ch.Vars.Duration; end > d {
			d = end
		}
	}
	return d
}

// Seconds returns the duration in seconds, converting frames with the
// configured frame rate if the container is frame-based.
func (c *Container) Seconds() float64 {
	if c.options.UseFrames {
		return c.config.Seconds(c.Duration())
	}
	return c.Duration()
}

// Children returns the tweens in the order they have been added.
func (c *Container) Children() []*Child {
	chs := make([]*Child, len(c.children))
	copy(chs, c.children)
	return chs
}

// Dump returns a printable tree of the container and its tweens.
func (c *Container) Dump() string {
	unit := "s"
	if c.options.UseFrames {
		unit = "f"
	}
	root := tp.NewWithRoot(fmt.Sprintf("container #%d  duration=%g%s paused=%v",
		c.id, c.Duration(), unit, c.options.Paused))
	targets := make(map[interface{}]tp.Tree)
	for _, ch := range c.children {
		branch, ok := targets[ch.Target]
		if !ok {
			branch = root.AddBranch(TargetLabel(ch.Target))
			targets[ch.Target] = branch
		}
		branch.AddMetaNode(fmt.Sprintf("@%g%s", ch.StartOffset, unit), ch.Vars.String())
	}
	return root.String()
}

// --- Children --------------------------------------------------------------

// Child is a recorded tween. It implements tween.Child.
type Child struct {
	container   int
	index       int
	Target      interface{}
	Vars        tween.Vars
	StartOffset float64
}

var _ tween.Child = &Child{}

// Container is part of interface tween.Child.
func (ch *Child) Container() int {
	return ch.container
}

// Index is part of interface tween.Child.
func (ch *Child) Index() int {
	return ch.index
}

func (ch *Child) String() string {
	return fmt.Sprintf("#%d.%d %s @%g %s", ch.container, ch.index, TargetLabel(ch.Target), ch.StartOffset, ch.Vars)
}

// TargetLabel returns a short label for a tween target.
func TargetLabel(target interface{}) string {
	switch t := target.(type) {
	case nil:
		return "<nil>"
	case *html.Node:
		if t == nil {
			return "<nil>"
		}
		if t.Type == html.ElementNode {
			return "<" + t.Data + ">"
		}
		return fmt.Sprintf("%q", t.Data)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprintf("%T", target)
}
