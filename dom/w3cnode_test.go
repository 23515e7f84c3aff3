package dom

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const testPage = `<html><head><title>dom</title></head><body>
<div id="a">
  <div id="b"></div>
  <div id="container" class="stage">
    <div><div><span id="target" class="actor">x</span></div></div>
  </div>
</div>
<svg><circle id="c1"/><circle id="c2"/></svg>
</body></html>`

func load(t *testing.T) *W3CNode {
	doc, err := Load(strings.NewReader(testPage))
	require.NoError(t, err)
	return doc
}

func TestQueryAndPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyframes.dom")
	defer teardown()
	//
	doc := load(t)
	target, err := doc.Query("div.stage span.actor")
	require.NoError(t, err)
	require.NotNil(t, target)
	path := target.Path()
	require.Equal(t, "/html[1]/body[1]/div[1]/div[2]/div[1]/div[1]/span[1]", path)
	if doc.Resolve(path).HTMLNode() != target.HTMLNode() {
		t.Errorf("expected %s to resolve to the target", path)
	}
	container, _ := doc.Query("#container")
	rel, ok := target.PathFrom(container)
	require.True(t, ok)
	require.Equal(t, "div[1]/div[1]/span[1]", rel)
	if container.Resolve(rel).HTMLNode() != target.HTMLNode() {
		t.Errorf("expected %s to resolve relative to the container", rel)
	}
	b, _ := doc.Query("#b")
	if _, ok := container.PathFrom(b); ok {
		t.Errorf("expected no path for a node outside of the root's subtree")
	}
}

func TestQueryNamespacedElements(t *testing.T) {
	doc := load(t)
	circles, err := doc.QueryAll("svg circle")
	require.NoError(t, err)
	require.Len(t, circles, 2)
	require.Equal(t, "/html[1]/body[1]/*[local-name()='svg'][1]/*[local-name()='circle'][2]",
		circles[1].Path())
	none, err := doc.Query("video")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestInvalidSelector(t *testing.T) {
	doc := load(t)
	_, err := doc.QueryAll("div[")
	if !errors.Is(err, ErrSelector) {
		t.Errorf("expected selector error, have %v", err)
	}
}

func TestW3CInterface(t *testing.T) {
	doc := load(t)
	require.Equal(t, "#document", doc.NodeName())
	require.Nil(t, doc.ParentNode())
	target, _ := doc.Query("#target")
	require.Equal(t, "span", target.NodeName())
	require.True(t, target.HasAttributes())
	require.Equal(t, "actor", target.Attributes().GetNamedItem("class").Value())
	require.Nil(t, target.Attributes().GetNamedItem("style"))
	text, err := target.TextContent()
	require.NoError(t, err)
	require.Equal(t, "x", text)
	require.Equal(t, "#text", target.FirstChild().NodeName())
	require.Equal(t, "x", target.FirstChild().NodeValue())
	require.Nil(t, target.NextSibling())
	require.Equal(t, "div", target.ParentNode().NodeName())
	a, _ := doc.Query("#a")
	if a.ChildNodes().Length() <= a.Children().Length() {
		t.Errorf("expected whitespace text nodes among child nodes of #a")
	}
	require.Equal(t, 2, a.Children().Length())
	require.Equal(t, "[<div> <div>]", a.Children().String())
	require.Nil(t, a.Children().Item(2))
	id, ok := a.Attr("id")
	require.True(t, ok)
	require.Equal(t, "a", id)
}

func TestWalkRoundTrip(t *testing.T) {
	doc := load(t)
	nodes := doc.Walk(NodeIsAddressable)
	require.NotEmpty(t, nodes)
	for _, n := range nodes {
		path := n.Path()
		if path == "" {
			t.Errorf("expected %v to be addressable", n)
			continue
		}
		if doc.Resolve(path).HTMLNode() != n.HTMLNode() {
			t.Errorf("expected %s to resolve to %v", path, n)
		}
	}
	for _, n := range doc.Walk(NodeIsText) {
		if n.NodeType() != html.TextNode {
			t.Errorf("expected text node, have %v", n)
		}
	}
}
