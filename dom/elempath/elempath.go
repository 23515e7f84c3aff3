package elempath

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// StepKind tells which kind of node a step selects.
type StepKind uint8

const (
	ElementStep    StepKind = iota // element of the default (HTML) namespace
	NamespacedStep                 // element of a foreign namespace, e.g. SVG
	TextStep                       // text node
)

// Step is a single location step of an element path.
type Step struct {
	Kind  StepKind
	Local string // local tag name; empty for text steps
	Rank  int    // 1-based rank among matching siblings
}

// Path is a parsed element path.
type Path struct {
	Absolute bool // path starts at a document node
	Steps    []Step
}

func (s Step) String() string {
	rank := "[" + strconv.Itoa(s.Rank) + "]"
	switch s.Kind {
	case NamespacedStep:
		return "*[local-name()=" + quoted(s.Local) + "]" + rank
	case TextStep:
		return "text()" + rank
	}
	if !isPlainName(s.Local) {
		return "*[name()=" + quoted(s.Local) + "]" + rank
	}
	return s.Local + rank
}

// isPlainName checks if a tag name can be written as a bare node test.
func isPlainName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/[]*'"()`)
}

// quoted encloses name in single quotes, or in double quotes if name
// contains a single quote. There is no escaping: names containing both
// quote characters cannot be encoded.
func quoted(name string) string {
	if strings.ContainsRune(name, '\'') {
		return `"` + name + `"`
	}
	return "'" + name + "'"
}

// encodable checks if a step survives encoding and parsing.
func (s Step) encodable() bool {
	if s.Kind == TextStep {
		return true
	}
	return s.Local != "" && !(strings.ContainsRune(s.Local, '\'') && strings.ContainsRune(s.Local, '"'))
}

// String returns the canonical encoding of a path.
func (p Path) String() string {
	var b strings.Builder
	if p.Absolute {
		b.WriteByte('/')
	}
	for i, s := range p.Steps {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// matches checks if node n passes the node test of step s. The rank is not
// considered.
func (s Step) matches(n *html.Node) bool {
	switch s.Kind {
	case ElementStep:
		return n.Type == html.ElementNode && n.Namespace == "" && n.Data == s.Local
	case NamespacedStep:
		return n.Type == html.ElementNode && n.Namespace != "" && n.Data == s.Local
	case TextStep:
		return n.Type == html.TextNode
	}
	return false
}

// stepFor creates the location step leading from n's parent to n.
// Only element and text nodes are addressable.
func stepFor(n *html.Node) (Step, bool) {
	var s Step
	switch n.Type {
	case html.ElementNode:
		s.Local = n.Data
		if n.Namespace != "" {
			s.Kind = NamespacedStep
		}
	case html.TextNode:
		s.Kind = TextStep
	default:
		return s, false
	}
	if !s.encodable() {
		tracer().Infof("element path: tag name %q cannot be encoded", n.Data)
		return s, false
	}
	s.Rank = 1
	for sib := n.PrevSibling; sib != nil; sib = sib.PrevSibling {
		if s.matches(sib) {
			s.Rank++
		}
	}
	return s, true
}

// selectChild returns the child of parent matching step s at the rank
// requested by s, or nil.
func (s Step) selectChild(parent *html.Node) *html.Node {
	if s.Rank < 1 {
		return nil
	}
	k := 0
	for ch := parent.FirstChild; ch != nil; ch = ch.NextSibling {
		if s.matches(ch) {
			k++
			if k == s.Rank {
				return ch
			}
		}
	}
	return nil
}

// --- Codec -----------------------------------------------------------------

// GetExpression computes the element path of node relative to root.
// If root is nil, the document node node belongs to is used.
//
// The path is absolute if root is a document node. GetExpression returns
// false if node is not a descendant of root (or root itself), or if node
// or any of its ancestors below root is neither an element nor a text node.
func GetExpression(node *html.Node, root *html.Node) (string, bool) {
	p, ok := PathOf(node, root)
	if !ok {
		return "", false
	}
	return p.String(), true
}

// PathOf is like GetExpression, but returns the path unencoded.
func PathOf(node *html.Node, root *html.Node) (Path, bool) {
	if node == nil {
		return Path{}, false
	}
	if root == nil {
		if root = DocumentOf(node); root == nil {
			tracer().Debugf("element path: node %q is not part of a document", node.Data)
			return Path{}, false
		}
	}
	var steps []Step
	for n := node; n != root; n = n.Parent {
		if n == nil {
			tracer().Debugf("element path: node %q is not a descendant of root %q", node.Data, root.Data)
			return Path{}, false
		}
		s, ok := stepFor(n)
		if !ok {
			return Path{}, false
		}
		steps = append(steps, s)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return Path{Absolute: root.Type == html.DocumentNode, Steps: steps}, true
}

// GetElement resolves an element path against root. Absolute paths are
// resolved starting at the document node root belongs to.
//
// GetElement returns nil if expr is malformed or if any step does not find a
// matching child at the requested rank. It never panics on stale paths;
// a nil result means that the path no longer addresses a node.
func GetElement(expr string, root *html.Node) *html.Node {
	p, err := Parse(expr)
	if err != nil {
		tracer().Debugf("element path: %v", err)
		return nil
	}
	return p.Resolve(root)
}

// Resolve walks path p down from root. See GetElement.
func (p Path) Resolve(root *html.Node) *html.Node {
	if root == nil {
		return nil
	}
	ctx := root
	if p.Absolute && ctx.Type != html.DocumentNode {
		if ctx = DocumentOf(root); ctx == nil {
			return nil
		}
	}
	for i, s := range p.Steps {
		if ctx = s.selectChild(ctx); ctx == nil {
			tracer().Debugf("element path: step %d (%s) of %s does not match", i+1, s, p)
			return nil
		}
	}
	return ctx
}

// DocumentOf returns the document node n belongs to, or nil if n is
// detached from any document.
func DocumentOf(n *html.Node) *html.Node {
	for n != nil {
		if n.Type == html.DocumentNode {
			return n
		}
		n = n.Parent
	}
	return nil
}
