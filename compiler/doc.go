/*
Package compiler compiles keyframe timelines into tween containers.

A keyframe timeline holds sparse frames: every frame sets values for some of
the animated properties. The compiler turns these into segments, time-bounded
transitions of a single property from one keyframe to the next keyframe
setting that property. Segments are handed to a tween engine, which collects
them in a paused, frame-based container.

Properties set at frame 0 produce initial-set segments. They have a duration
of 0 and are flagged to defer rendering, so the starting values do not show
before playback begins.

Ordering

Segment order is deterministic: initial-set segments come first, in the
order the properties were inserted into frame 0. Transitions follow, by
ascending frame number and, within a frame, in property insertion order.

Failures

Compile validates its input before it creates a container. A failing call
never leaves a container behind in the engine.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compiler

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'keyframes.compiler'.
func tracer() tracing.Trace {
	return tracing.Select("keyframes.compiler")
}
