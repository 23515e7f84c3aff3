package dom

import (
	"golang.org/x/net/html"
)

// Predicate tests a node during a walk.
type Predicate func(*W3CNode) bool

// NodeIsText is a predicate to match text-nodes of a DOM.
var NodeIsText Predicate = func(n *W3CNode) bool {
	return n.NodeName() == "#text"
}

// NodeIsElement is a predicate to match element nodes of a DOM.
var NodeIsElement Predicate = func(n *W3CNode) bool {
	return n.NodeType() == html.ElementNode
}

// NodeIsAddressable matches the nodes an element path can address:
// elements and text nodes.
var NodeIsAddressable Predicate = func(n *W3CNode) bool {
	return NodeIsElement(n) || NodeIsText(n)
}

// Walk visits the subtree of w in document order, w included, and returns
// all nodes matching pred. A nil predicate matches every node.
func (w *W3CNode) Walk(pred Predicate) []*W3CNode {
	var matches []*W3CNode
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		n := FromHTMLParseTree(h)
		if pred == nil || pred(n) {
			matches = append(matches, n)
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(w.h)
	return matches
}
