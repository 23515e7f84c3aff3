/*
Package keyframes authors and replays DOM element animations described as
sparse, frame-indexed keyframes.

Overview

An animation is a timeline of frames, each frame carrying a sparse set of
numeric property values (package timeline). A timeline targeting a DOM element
does not hold on to the element across serialization boundaries; it stores an
element path instead (package dom/elempath), which is re-resolved against a
possibly changed document before the timeline is compiled.

The compiler (package compiler) turns a timeline into time-bounded
transition segments and hands them to a tween engine through a small
adapter interface (package tween). Rendering and playback timing are the
engine's business, not ours.

	doc, _ := dom.Load(r)
	tl, _ := timeline.Decode(data, timeline.YAML)
	if !tl.Resolve(doc.HTMLNode()) {
	    // target no longer addressable
	}
	container, err := compiler.Compile(tl, engine, tween.DefaultConfig())

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package keyframes

// TraceKey is the common prefix of all tracing keys of this module.
const TraceKey = "keyframes"

// TraceKeys lists the tracing keys used by the packages of this module.
var TraceKeys = []string{
	TraceKey + ".dom",
	TraceKey + ".css",
	TraceKey + ".timeline",
	TraceKey + ".tween",
	TraceKey + ".compiler",
	TraceKey + ".cli",
}
