package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTimeline is returned when persisted timeline data cannot be
// decoded into a consistent timeline.
var ErrInvalidTimeline = errors.New("invalid timeline data")

// Format is a serialization format for timelines.
type Format uint8

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// FormatForFile selects a format from a file name's extension. Files ending
// in .yaml or .yml are YAML, everything else is JSON.
func FormatForFile(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// record is the persisted form of a timeline. Targets are not persisted;
// DOM targets are represented by their element path.
type record struct {
	TargetKind TargetKind    `json:"targetKind" yaml:"targetKind"`
	Frames     []frameRecord `json:"frames" yaml:"frames"`
	Path       *string       `json:"path" yaml:"path"`
}

type frameRecord struct {
	Frame  int    `json:"frame" yaml:"frame"`
	Params Params `json:"params" yaml:"params"`
}

// Encode serializes a timeline.
func Encode(tl *KeyframeTimeline, format Format) ([]byte, error) {
	if tl == nil {
		return nil, fmt.Errorf("%w: nil timeline", ErrInvalidTimeline)
	}
	rec := record{TargetKind: tl.kind, Frames: make([]frameRecord, 0, len(tl.frames))}
	if tl.path != "" {
		path := tl.path
		rec.Path = &path
	}
	for _, f := range tl.frames {
		rec.Frames = append(rec.Frames, frameRecord{Frame: f.Number, Params: f.Params})
	}
	if format == YAML {
		return yaml.Marshal(&rec)
	}
	return json.MarshalIndent(&rec, "", "  ")
}

// Decode reconstructs a timeline from serialized data. The target of the
// decoded timeline is unresolved; for DOM timelines call Resolve before
// compiling.
func Decode(data []byte, format Format) (*KeyframeTimeline, error) {
	var rec record
	var err error
	if format == YAML {
		err = yaml.Unmarshal(data, &rec)
	} else {
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeline, err)
	}
	tl := &KeyframeTimeline{kind: rec.TargetKind, index: make(map[int]*Frame, len(rec.Frames))}
	if rec.Path != nil {
		if rec.TargetKind != DOMTarget {
			return nil, fmt.Errorf("%w: %s timeline must not carry an element path", ErrInvalidTimeline, rec.TargetKind)
		}
		tl.path = *rec.Path
	}
	sort.SliceStable(rec.Frames, func(i, j int) bool {
		return rec.Frames[i].Frame < rec.Frames[j].Frame
	})
	for _, fr := range rec.Frames {
		if err := tl.AddFrame(fr.Frame, fr.Params); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeline, err)
		}
	}
	tracer().Debugf("decoded %s timeline with %d frames, path=%q", tl.kind, tl.Len(), tl.path)
	return tl, nil
}
