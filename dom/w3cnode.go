package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/keyframes/dom/elempath"
	"github.com/npillmayer/keyframes/dom/w3cdom"
	"golang.org/x/net/html"
)

// ErrSelector is returned for CSS selectors which do not compile.
var ErrSelector = errors.New("invalid selector")

// W3CNode is a read-only view onto an HTML parse tree node. It implements
// interface w3cdom.Node.
type W3CNode struct {
	h *html.Node
}

var _ w3cdom.Node = &W3CNode{}

// Load parses an HTML document and returns its document node.
func Load(r io.Reader) (*W3CNode, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromHTMLParseTree(h), nil
}

// FromHTMLParseTree wraps a node of an HTML parse tree. It returns nil for
// a nil node.
func FromHTMLParseTree(h *html.Node) *W3CNode {
	if h == nil {
		return nil
	}
	return &W3CNode{h: h}
}

// HTMLNode returns the wrapped node of the HTML parse tree.
func (w *W3CNode) HTMLNode() *html.Node {
	if w == nil {
		return nil
	}
	return w.h
}

func (w *W3CNode) String() string {
	if w == nil {
		return "<nil>"
	}
	if w.h.Type == html.ElementNode {
		return "<" + w.h.Data + ">"
	}
	return w.NodeName()
}

// NodeType is part of interface w3cdom.Node.
func (w *W3CNode) NodeType() html.NodeType {
	return w.h.Type
}

// NodeName is part of interface w3cdom.Node.
func (w *W3CNode) NodeName() string {
	switch w.h.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	}
	return w.h.Data
}

// NodeValue is part of interface w3cdom.Node.
func (w *W3CNode) NodeValue() string {
	switch w.h.Type {
	case html.TextNode, html.CommentNode:
		return w.h.Data
	}
	return ""
}

// HasAttributes is part of interface w3cdom.Node.
func (w *W3CNode) HasAttributes() bool {
	return len(w.h.Attr) > 0
}

// ParentNode is part of interface w3cdom.Node.
func (w *W3CNode) ParentNode() w3cdom.Node {
	if w.h.Parent == nil {
		return nil
	}
	return FromHTMLParseTree(w.h.Parent)
}

// HasChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) HasChildNodes() bool {
	return w.h.FirstChild != nil
}

// ChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	var l nodeList
	for ch := w.h.FirstChild; ch != nil; ch = ch.NextSibling {
		l = append(l, FromHTMLParseTree(ch))
	}
	return l
}

// Children is part of interface w3cdom.Node.
func (w *W3CNode) Children() w3cdom.NodeList {
	var l nodeList
	for ch := w.h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			l = append(l, FromHTMLParseTree(ch))
		}
	}
	return l
}

// FirstChild is part of interface w3cdom.Node.
func (w *W3CNode) FirstChild() w3cdom.Node {
	if w.h.FirstChild == nil {
		return nil
	}
	return FromHTMLParseTree(w.h.FirstChild)
}

// NextSibling is part of interface w3cdom.Node.
func (w *W3CNode) NextSibling() w3cdom.Node {
	if w.h.NextSibling == nil {
		return nil
	}
	return FromHTMLParseTree(w.h.NextSibling)
}

// Attributes is part of interface w3cdom.Node.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	return attrMap(w.h.Attr)
}

// TextContent is part of interface w3cdom.Node. It concatenates the text of
// all text nodes below w, in document order.
func (w *W3CNode) TextContent() (string, error) {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	collect(w.h)
	return b.String(), nil
}

// Path is part of interface w3cdom.Node. It returns the absolute element
// path of w, or "" if w is not addressable within a document.
func (w *W3CNode) Path() string {
	path, _ := elempath.GetExpression(w.h, nil)
	return path
}

// PathFrom returns the element path of w relative to root. It returns false
// if w is not part of root's subtree.
func (w *W3CNode) PathFrom(root *W3CNode) (string, bool) {
	return elempath.GetExpression(w.h, root.HTMLNode())
}

// Resolve locates the node addressed by an element path, relative to w.
// Absolute paths are resolved from w's document. Resolve returns nil if the
// path does not address a node.
func (w *W3CNode) Resolve(path string) *W3CNode {
	return FromHTMLParseTree(elempath.GetElement(path, w.h))
}

// QueryAll returns all elements below w which match a CSS selector, in
// document order.
func (w *W3CNode) QueryAll(selector string) ([]*W3CNode, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSelector, selector, err)
	}
	matches := sel.MatchAll(w.h)
	nodes := make([]*W3CNode, len(matches))
	for i, m := range matches {
		nodes[i] = FromHTMLParseTree(m)
	}
	tracer().Debugf("selector %q matches %d elements", selector, len(nodes))
	return nodes, nil
}

// Query returns the first element below w matching a CSS selector, or nil.
func (w *W3CNode) Query(selector string) (*W3CNode, error) {
	nodes, err := w.QueryAll(selector)
	if err != nil || len(nodes) == 0 {
		return nil, err
	}
	return nodes[0], nil
}

// Attr returns the value of attribute key. Attributes with a namespace are
// not considered.
func (w *W3CNode) Attr(key string) (string, bool) {
	for _, a := range w.h.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// --- Node lists and attributes ---------------------------------------------

type nodeList []*W3CNode

func (l nodeList) Length() int {
	return len(l)
}

func (l nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

func (l nodeList) String() string {
	names := make([]string, len(l))
	for i, n := range l {
		names[i] = n.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

type attrMap []html.Attribute

func (m attrMap) Length() int {
	return len(m)
}

func (m attrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return attr{m[i]}
}

func (m attrMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range m {
		if a.Key == key {
			return attr{a}
		}
	}
	return nil
}

type attr struct {
	a html.Attribute
}

func (a attr) Namespace() string {
	return a.a.Namespace
}

func (a attr) Key() string {
	return a.a.Key
}

func (a attr) Value() string {
	return a.a.Val
}
