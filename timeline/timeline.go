package timeline

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/keyframes/dom/elempath"
	"github.com/npillmayer/keyframes/maybe"
	"golang.org/x/net/html"
)

// ErrInvalidFrame is returned for frames with a negative frame number,
// duplicate frame numbers, or frames without any property.
var ErrInvalidFrame = errors.New("invalid frame")

// TargetKind tells what kind of target a timeline animates.
type TargetKind uint8

const (
	DOMTarget    TargetKind = iota // target is an element of an HTML document
	ObjectTarget                   // target is an opaque object
)

func (k TargetKind) String() string {
	switch k {
	case DOMTarget:
		return "dom"
	case ObjectTarget:
		return "object"
	}
	return fmt.Sprintf("TargetKind(%d)", int(k))
}

// MarshalText encodes k as "dom" or "object".
func (k TargetKind) MarshalText() ([]byte, error) {
	switch k {
	case DOMTarget, ObjectTarget:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("unknown target kind %d", int(k))
}

// UnmarshalText decodes "dom" or "object".
func (k *TargetKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "dom":
		*k = DOMTarget
	case "object":
		*k = ObjectTarget
	default:
		return fmt.Errorf("unknown target kind %q", string(text))
	}
	return nil
}

// Frame is a point in animation time, carrying a sparse set of property values.
type Frame struct {
	Number int    // frame number, ≥ 0
	Params Params // property values set at this frame
}

func (f *Frame) String() string {
	return fmt.Sprintf("#%d%v", f.Number, f.Params)
}

// KeyframeTimeline is an ordered collection of frames plus a target.
//
// Frames are kept in ascending order of frame numbers, and a frame index maps
// frame numbers to frames. Both are maintained by the setter methods; clients
// must not modify frames they received from Frames() or Frame().
type KeyframeTimeline struct {
	kind      TargetKind
	target    interface{}     // *html.Node for DOM timelines
	path      string          // element path of a DOM target, "" if not captured
	frames    []*Frame        // ascending frame numbers
	index     map[int]*Frame  // frame number → frame
	observers []observerEntry // see Observe
	nextObs   int
}

// NewDOM creates a timeline for a DOM element. If the element is part of a
// document, its absolute element path is captured as the timeline's
// durable identity.
func NewDOM(target *html.Node) *KeyframeTimeline {
	tl := &KeyframeTimeline{kind: DOMTarget, index: make(map[int]*Frame)}
	if target != nil {
		tl.target = target
		if path, ok := elempath.GetExpression(target, nil); ok {
			tl.path = path
		} else {
			tracer().Infof("timeline target <%s> is not part of a document; no path captured", target.Data)
		}
	}
	return tl
}

// NewObject creates a timeline for an arbitrary object.
func NewObject(target interface{}) *KeyframeTimeline {
	return &KeyframeTimeline{kind: ObjectTarget, target: target, index: make(map[int]*Frame)}
}

// Kind returns the kind of target the timeline animates.
func (tl *KeyframeTimeline) Kind() TargetKind {
	return tl.kind
}

// Target returns the target of the timeline, or nil if it is unresolved.
func (tl *KeyframeTimeline) Target() interface{} {
	if tl.target == nil {
		return nil
	}
	if n, ok := tl.target.(*html.Node); ok && n == nil {
		return nil
	}
	return tl.target
}

// Path returns the element path of a DOM target, or "" if none has been captured.
func (tl *KeyframeTimeline) Path() string {
	return tl.path
}

// Resolve re-locates the target of a DOM timeline by resolving its element
// path against root. Resolve returns false if the timeline has no path or if
// the path no longer addresses a node; the target is then left unresolved.
func (tl *KeyframeTimeline) Resolve(root *html.Node) bool {
	if tl.kind != DOMTarget || tl.path == "" {
		return false
	}
	n := elempath.GetElement(tl.path, root)
	if n == nil {
		tracer().Infof("timeline target %s cannot be resolved", tl.path)
		tl.target = nil
		return false
	}
	tl.target = n
	return true
}

// Len returns the number of frames.
func (tl *KeyframeTimeline) Len() int {
	return len(tl.frames)
}

// Frames returns the frames in ascending order.
func (tl *KeyframeTimeline) Frames() []*Frame {
	frames := make([]*Frame, len(tl.frames))
	copy(frames, tl.frames)
	return frames
}

// Frame looks up a frame by its frame number.
func (tl *KeyframeTimeline) Frame(number int) (*Frame, bool) {
	f, ok := tl.index[number]
	return f, ok
}

// FrameNumbers returns the keys of the frame index in ascending order.
func (tl *KeyframeTimeline) FrameNumbers() []int {
	numbers := make([]int, len(tl.frames))
	for i, f := range tl.frames {
		numbers[i] = f.Number
	}
	return numbers
}

// MaxFrame returns the highest frame number, or 0 for an empty timeline.
func (tl *KeyframeTimeline) MaxFrame() int {
	if len(tl.frames) == 0 {
		return 0
	}
	return tl.frames[len(tl.frames)-1].Number
}

// AddFrame inserts a new frame. params must not be empty, and number must be
// non-negative and not yet present.
func (tl *KeyframeTimeline) AddFrame(number int, params Params) error {
	if number < 0 {
		return fmt.Errorf("%w: negative frame number %d", ErrInvalidFrame, number)
	}
	if len(params) == 0 {
		return fmt.Errorf("%w: frame %d has no properties", ErrInvalidFrame, number)
	}
	if _, exists := tl.index[number]; exists {
		return fmt.Errorf("%w: duplicate frame number %d", ErrInvalidFrame, number)
	}
	var clean Params
	for _, kv := range params {
		clean = clean.With(kv.Name, kv.Value)
	}
	tl.insert(&Frame{Number: number, Params: clean})
	for _, kv := range clean {
		tl.publish(Changed{Type: ParamSet, Frame: number, Property: kv.Name,
			From: maybe.Nothing[float64](), To: maybe.Just(kv.Value)})
	}
	return nil
}

// SetParam sets property name at a frame to value v, creating the frame if
// it does not exist yet.
func (tl *KeyframeTimeline) SetParam(number int, name string, v float64) error {
	if number < 0 {
		return fmt.Errorf("%w: negative frame number %d", ErrInvalidFrame, number)
	}
	f, ok := tl.index[number]
	if !ok {
		f = &Frame{Number: number}
		tl.insert(f)
	}
	old, had := f.Params.Get(name)
	from := maybe.Of(old, had)
	f.Params = f.Params.With(name, v)
	tl.publish(Changed{Type: ParamSet, Frame: number, Property: name, From: from, To: maybe.Just(v)})
	return nil
}

// RemoveParam removes property name from a frame. A frame left without any
// property is removed from the timeline. RemoveParam returns false if the
// property was not set at that frame.
func (tl *KeyframeTimeline) RemoveParam(number int, name string) bool {
	f, ok := tl.index[number]
	if !ok {
		return false
	}
	v, ok := f.Params.Get(name)
	if !ok {
		return false
	}
	f.Params = f.Params.without(name)
	if len(f.Params) == 0 {
		tl.remove(number)
	}
	tl.publish(Changed{Type: ParamRemoved, Frame: number, Property: name,
		From: maybe.Just(v), To: maybe.Nothing[float64]()})
	return true
}

// RemoveFrame removes a frame and all of its properties.
func (tl *KeyframeTimeline) RemoveFrame(number int) bool {
	f, ok := tl.index[number]
	if !ok {
		return false
	}
	tl.remove(number)
	for _, kv := range f.Params {
		tl.publish(Changed{Type: ParamRemoved, Frame: number, Property: kv.Name,
			From: maybe.Just(kv.Value), To: maybe.Nothing[float64]()})
	}
	return true
}

func (tl *KeyframeTimeline) insert(f *Frame) {
	if tl.index == nil {
		tl.index = make(map[int]*Frame)
	}
	i := sort.Search(len(tl.frames), func(i int) bool {
		return tl.frames[i].Number >= f.Number
	})
	tl.frames = append(tl.frames, nil)
	copy(tl.frames[i+1:], tl.frames[i:])
	tl.frames[i] = f
	tl.index[f.Number] = f
}

func (tl *KeyframeTimeline) remove(number int) {
	i := sort.Search(len(tl.frames), func(i int) bool {
		return tl.frames[i].Number >= number
	})
	if i < len(tl.frames) && tl.frames[i].Number == number {
		tl.frames = append(tl.frames[:i], tl.frames[i+1:]...)
	}
	delete(tl.index, number)
}
