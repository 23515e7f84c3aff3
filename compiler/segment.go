package compiler

import (
	"fmt"

	"github.com/npillmayer/keyframes/maybe"
	"github.com/npillmayer/keyframes/timeline"
)

// Segment is a compiled change of one property, from keyframe FromFrame to
// keyframe ToFrame. Segments are ephemeral and never persisted.
//
// A segment refers to the container it has been added to by container ID.
// Segments computed without an engine have Container 0 and Child -1.
type Segment struct {
	ID           int                  // position in emission order
	Container    int                  // ID of the tween container, 0 if not compiled into one
	Child        int                  // index of the tween within the container, -1 if none
	Property     string               // animated property
	FromFrame    int                  // start keyframe
	ToFrame      int                  // end keyframe
	Value        float64              // value reached at ToFrame
	Start        maybe.Maybe[float64] // value at FromFrame, Nothing for implicit origins
	IsInitialSet bool                 // zero-duration set at frame 0
}

// Duration is ToFrame − FromFrame, in frames.
func (seg Segment) Duration() int {
	return seg.ToFrame - seg.FromFrame
}

// StartOffset is the position of the segment in the container, in frames.
func (seg Segment) StartOffset() int {
	return seg.FromFrame
}

func (seg Segment) String() string {
	if seg.IsInitialSet {
		return fmt.Sprintf("seg#%d %s@%d := %g", seg.ID, seg.Property, seg.FromFrame, seg.Value)
	}
	return fmt.Sprintf("seg#%d %s %d→%d %v→%g", seg.ID, seg.Property, seg.FromFrame, seg.ToFrame,
		seg.Start, seg.Value)
}

// Segments computes the segments of a timeline in emission order. It does
// not validate the timeline's target and does not need an engine.
func Segments(tl *timeline.KeyframeTimeline) []Segment {
	if tl == nil {
		return nil
	}
	var segs []Segment
	emit := func(seg Segment) {
		seg.ID = len(segs)
		seg.Child = -1
		segs = append(segs, seg)
	}
	frames := tl.Frames()
	if f0, ok := tl.Frame(0); ok {
		for _, kv := range f0.Params {
			emit(Segment{
				Property:     kv.Name,
				Value:        kv.Value,
				Start:        maybe.Just(kv.Value),
				IsInitialSet: true,
			})
		}
	}
	for _, f := range frames {
		if f.Number == 0 {
			continue
		}
		for _, kv := range f.Params {
			emit(Segment{
				Property:  kv.Name,
				FromFrame: tl.PreviousFrame(f, kv.Name),
				ToFrame:   f.Number,
				Value:     kv.Value,
				Start:     tl.PreviousValue(f, kv.Name),
			})
		}
	}
	return segs
}
