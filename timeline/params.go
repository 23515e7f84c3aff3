package timeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Param is a single property value of a frame.
type Param struct {
	Name  string
	Value float64
}

// Params is an ordered set of property values. Names are unique, order is
// insertion order.
type Params []Param

// With returns a copy of p with property name set to v. If name is already
// present, its value is replaced in place, otherwise it is appended.
func (p Params) With(name string, v float64) Params {
	q := make(Params, len(p), len(p)+1)
	copy(q, p)
	if i := q.indexOf(name); i >= 0 {
		q[i].Value = v
		return q
	}
	return append(q, Param{Name: name, Value: v})
}

// Get returns the value of property name.
func (p Params) Get(name string) (float64, bool) {
	if i := p.indexOf(name); i >= 0 {
		return p[i].Value, true
	}
	return 0, false
}

// Has checks if property name is present.
func (p Params) Has(name string) bool {
	return p.indexOf(name) >= 0
}

// Names returns the property names in order.
func (p Params) Names() []string {
	names := make([]string, len(p))
	for i, kv := range p {
		names[i] = kv.Name
	}
	return names
}

func (p Params) indexOf(name string) int {
	for i, kv := range p {
		if kv.Name == name {
			return i
		}
	}
	return -1
}

func (p Params) without(name string) Params {
	i := p.indexOf(name)
	if i < 0 {
		return p
	}
	q := make(Params, 0, len(p)-1)
	q = append(q, p[:i]...)
	return append(q, p[i+1:]...)
}

func (p Params) String() string {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, kv := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%g", kv.Name, kv.Value)
	}
	b.WriteByte('}')
	return b.String()
}

// --- Serialization ---------------------------------------------------------
//
// Params serialize as a mapping, for JSON as well as for YAML. Both encoders
// would sort map keys, so we write and read the mapping by hand to keep the
// property order.

// MarshalJSON writes p as a JSON object with keys in property order.
func (p Params) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, kv := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(kv.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping the order of its keys.
func (p *Params) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("params must be an object, have %v", tok)
	}
	var params Params
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("params: expected property name, have %v", tok)
		}
		var v float64
		if err = dec.Decode(&v); err != nil {
			return fmt.Errorf("params: value of %q: %w", name, err)
		}
		params = params.With(name, v)
	}
	if _, err = dec.Token(); err != nil {
		return err
	}
	*p = params
	return nil
}

// MarshalYAML creates a YAML mapping node with keys in property order.
func (p Params) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, kv := range p {
		var key, value yaml.Node
		if err := key.Encode(kv.Name); err != nil {
			return nil, err
		}
		if err := value.Encode(kv.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &value)
	}
	return node, nil
}

// UnmarshalYAML reads a YAML mapping, keeping the order of its keys.
func (p *Params) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("params must be a mapping (line %d)", node.Line)
	}
	var params Params
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		var v float64
		if err := node.Content[i].Decode(&name); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("params: value of %q (line %d): %w", name, node.Content[i+1].Line, err)
		}
		params = params.With(name, v)
	}
	*p = params
	return nil
}
