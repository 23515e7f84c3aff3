package timeline

import (
	"fmt"

	"github.com/npillmayer/keyframes/maybe"
)

// ChangeType tells what kind of change happened to a timeline.
type ChangeType uint8

const (
	ParamSet     ChangeType = iota // a property value has been set or replaced
	ParamRemoved                   // a property value has been removed
)

func (t ChangeType) String() string {
	if t == ParamRemoved {
		return "removed"
	}
	return "set"
}

// Changed describes a single property change of a timeline, with the values
// before and after the change. From is Nothing for newly set properties, To
// is Nothing for removed ones.
type Changed struct {
	Type     ChangeType
	Frame    int
	Property string
	From     maybe.Maybe[float64]
	To       maybe.Maybe[float64]
}

func (c Changed) String() string {
	return fmt.Sprintf("%s %s@%d %v→%v", c.Type, c.Property, c.Frame, c.From, c.To)
}

// Observer is notified about changes of a timeline.
type Observer interface {
	TimelineChanged(tl *KeyframeTimeline, change Changed)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(tl *KeyframeTimeline, change Changed)

// TimelineChanged calls f.
func (f ObserverFunc) TimelineChanged(tl *KeyframeTimeline, change Changed) {
	f(tl, change)
}

type observerEntry struct {
	id       int
	observer Observer
}

// Observe registers an observer. Observers are called synchronously, in
// order of registration, after the change has been applied. The returned
// function unregisters the observer.
func (tl *KeyframeTimeline) Observe(o Observer) (cancel func()) {
	tl.nextObs++
	id := tl.nextObs
	tl.observers = append(tl.observers, observerEntry{id: id, observer: o})
	return func() {
		for i, e := range tl.observers {
			if e.id == id {
				tl.observers = append(tl.observers[:i:i], tl.observers[i+1:]...)
				return
			}
		}
	}
}

func (tl *KeyframeTimeline) publish(c Changed) {
	tracer().Debugf("timeline change: %s", c)
	for _, e := range tl.observers {
		e.observer.TimelineChanged(tl, c)
	}
}
