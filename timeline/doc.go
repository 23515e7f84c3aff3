/*
Package timeline implements keyframe timelines.

A KeyframeTimeline is an ordered collection of frames. Each frame is a point
in animation time, measured in frames rather than seconds, and carries a
sparse set of numeric property values. A property need not be present in
every frame; the value of a property between two frames setting it is
subject to interpolation by a tween engine (see package compiler).

Timelines are either bound to a DOM element or to an arbitrary object. For
DOM timelines the element is captured as an element path (see package
dom/elempath) at creation time. The path is the timeline's durable identity:
when a timeline is persisted and read back, its target is re-located by
resolving the path against the current document.

	tl := timeline.NewDOM(node)
	tl.SetParam(0, "x", 100)
	tl.SetParam(200, "x", 1000)
	data, err := timeline.Encode(tl, timeline.YAML)

Property order

Properties of a frame are kept in insertion order. Setting the value of a
property already present in a frame keeps its position. Everything derived
from a frame's properties (compiled segments, serialized data) follows this
order, so results are reproducible.

Concurrency

Timelines are not safe for concurrent use. There must be at most one writer
per timeline instance, and no reader while a write is in progress.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package timeline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'keyframes.timeline'.
func tracer() tracing.Trace {
	return tracing.Select("keyframes.timeline")
}
