package timeline

import (
	"sort"

	"github.com/npillmayer/keyframes/maybe"
)

// PreviousFrame returns the greatest frame number k < frame.Number at which
// property is set. If there is no such frame, PreviousFrame returns 0: frame 0
// is the implicit origin of every property, whether frame 0 sets it or not.
//
// Frames are scanned in descending order, stopping at the first match.
// PreviousFrame has no side effects.
func (tl *KeyframeTimeline) PreviousFrame(frame *Frame, property string) int {
	if frame == nil {
		return 0
	}
	i := sort.Search(len(tl.frames), func(i int) bool {
		return tl.frames[i].Number >= frame.Number
	})
	for i--; i >= 0; i-- {
		if tl.frames[i].Params.Has(property) {
			return tl.frames[i].Number
		}
	}
	return 0
}

// PreviousValue returns the value of property at PreviousFrame(frame, property).
// If the previous frame is the implicit origin and frame 0 does not set
// property, the result is Nothing.
func (tl *KeyframeTimeline) PreviousValue(frame *Frame, property string) maybe.Maybe[float64] {
	prev, ok := tl.index[tl.PreviousFrame(frame, property)]
	if !ok {
		return maybe.Nothing[float64]()
	}
	v, has := prev.Params.Get(property)
	return maybe.Of(v, has)
}

// ImplicitOrigins lists the properties whose first occurrence is after
// frame 0, in order of first occurrence. Transitions of these properties
// start at frame 0 without a defined start value.
func (tl *KeyframeTimeline) ImplicitOrigins() []string {
	seen := make(map[string]bool)
	var implicit []string
	for _, f := range tl.frames {
		for _, kv := range f.Params {
			if seen[kv.Name] {
				continue
			}
			seen[kv.Name] = true
			if f.Number > 0 {
				implicit = append(implicit, kv.Name)
			}
		}
	}
	return implicit
}
