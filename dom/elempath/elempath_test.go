package elempath

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const testPage = `<html><head><title>paths</title></head><body>
<div id="a">
  <div id="b"></div>
  <div id="container">
    <div id="c"><div id="d"><span id="target">x</span></div></div>
  </div>
</div>
<svg id="drawing"><a id="svg-a"></a><circle id="c1"/><circle id="c2"/></svg>
<a id="html-a">link</a>
</body></html>`

func parseTestPage(t *testing.T) *html.Node {
	doc, err := html.Parse(strings.NewReader(testPage))
	if err != nil {
		t.Fatalf("cannot parse test page: %v", err)
	}
	return doc
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if found := findByID(ch, id); found != nil {
			return found
		}
	}
	return nil
}

func walk(n *html.Node, f func(*html.Node)) {
	f(n)
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		walk(ch, f)
	}
}

func TestAbsolutePath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyframes.dom")
	defer teardown()
	//
	doc := parseTestPage(t)
	target := findByID(doc, "target")
	expr, ok := GetExpression(target, nil)
	if !ok {
		t.Fatal("expected target to have an element path, hasn't")
	}
	const expected = "/html[1]/body[1]/div[1]/div[2]/div[1]/div[1]/span[1]"
	if expr != expected {
		t.Errorf("expected path %s, have %s", expected, expr)
	}
	if n := GetElement(expected, doc); n != target {
		t.Errorf("expected %s to resolve to target, resolved to %v", expected, n)
	}
}

func TestRelativePath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyframes.dom")
	defer teardown()
	//
	doc := parseTestPage(t)
	container := findByID(doc, "container")
	target := findByID(doc, "target")
	expr, ok := GetExpression(target, container)
	if !ok {
		t.Fatal("expected target to have a path relative to container, hasn't")
	}
	if expr != "div[1]/div[1]/span[1]" {
		t.Errorf("expected relative path div[1]/div[1]/span[1], have %s", expr)
	}
	if GetElement(expr, container) != target {
		t.Errorf("expected relative path %s to resolve to target, doesn't", expr)
	}
}

func TestNamespacedSteps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyframes.dom")
	defer teardown()
	//
	doc := parseTestPage(t)
	svgA := findByID(doc, "svg-a")
	htmlA := findByID(doc, "html-a")
	exprSVG, _ := GetExpression(svgA, doc)
	exprHTML, _ := GetExpression(htmlA, doc)
	t.Logf("svg a  = %s", exprSVG)
	t.Logf("html a = %s", exprHTML)
	require.Equal(t, "/html[1]/body[1]/*[local-name()='svg'][1]/*[local-name()='a'][1]", exprSVG)
	require.Equal(t, "/html[1]/body[1]/a[1]", exprHTML)
	require.Same(t, svgA, GetElement(exprSVG, doc))
	require.Same(t, htmlA, GetElement(exprHTML, doc))
	c2, _ := GetExpression(findByID(doc, "c2"), doc)
	require.True(t, strings.HasSuffix(c2, "*[local-name()='circle'][2]"), c2)
}

func TestRoundTripAllNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyframes.dom")
	defer teardown()
	//
	doc := parseTestPage(t)
	roots := []*html.Node{doc, findByID(doc, "a"), findByID(doc, "container"), findByID(doc, "drawing")}
	for _, root := range roots {
		count := 0
		walk(root, func(n *html.Node) {
			if n.Type != html.ElementNode && n.Type != html.TextNode && n != root {
				return
			}
			expr, ok := GetExpression(n, root)
			if !ok {
				t.Errorf("expected node %q to be addressable from %q", n.Data, root.Data)
				return
			}
			if back := GetElement(expr, root); back != n {
				t.Errorf("round trip failed for %s: resolved to %v", expr, back)
			}
			count++
		})
		t.Logf("%d nodes round-tripped under %q", count, root.Data)
	}
}

const oddNamesPage = `<html><body><x*y>a</x*y><a[2]></a[2]><a[2]>b</a[2]><text()></text()>
<svg><foo'bar/><g"h/><foo'bar/></svg><q'"r><span>lost</span></q'"r></body></html>`

func TestRoundTripOddTagNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyframes.dom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(oddNamesPage))
	require.NoError(t, err)
	encodings := map[string]string{}
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode && n.Type != html.TextNode {
			return
		}
		expr, ok := GetExpression(n, doc)
		if !ok {
			return
		}
		if n.Type == html.ElementNode {
			encodings[n.Data] = expr
		}
		if back := GetElement(expr, doc); back != n {
			t.Errorf("round trip of %q (%s) failed, got %v", n.Data, expr, back)
		}
	})
	expected := map[string]string{
		"x*y":     "/html[1]/body[1]/*[name()='x*y'][1]",
		"a[2]":    "/html[1]/body[1]/*[name()='a[2]'][2]",
		"text()":  "/html[1]/body[1]/*[name()='text()'][1]",
		"foo'bar": `/html[1]/body[1]/*[local-name()='svg'][1]/*[local-name()="foo'bar"][2]`,
		`g"h`:     `/html[1]/body[1]/*[local-name()='svg'][1]/*[local-name()='g"h'][1]`,
	}
	for name, path := range expected {
		require.Equal(t, path, encodings[name], "encoding of <%s>", name)
	}
	// both kinds of quotes: neither the element nor its subtree is addressable
	for _, name := range []string{`q'"r`, "span"} {
		if expr, ok := encodings[name]; ok {
			t.Errorf("expected <%s> to have no path, has %s", name, expr)
		}
	}
}

func TestNodeOutsideRoot(t *testing.T) {
	doc := parseTestPage(t)
	container := findByID(doc, "container")
	outside := findByID(doc, "b")
	if expr, ok := GetExpression(outside, container); ok {
		t.Errorf("expected node outside root to have no path, has %q", expr)
	}
	detached := &html.Node{Type: html.ElementNode, Data: "div"}
	if _, ok := GetExpression(detached, nil); ok {
		t.Error("expected detached node to have no absolute path")
	}
	if _, ok := GetExpression(nil, doc); ok {
		t.Error("expected nil node to have no path")
	}
}

func TestRootItself(t *testing.T) {
	doc := parseTestPage(t)
	expr, ok := GetExpression(doc, doc)
	require.True(t, ok)
	require.Equal(t, "/", expr)
	require.Same(t, doc, GetElement(expr, doc))
	container := findByID(doc, "container")
	expr, ok = GetExpression(container, container)
	require.True(t, ok)
	require.Equal(t, "", expr)
	require.Same(t, container, GetElement(expr, container))
}

func TestResolveMisses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyframes.dom")
	defer teardown()
	//
	doc := parseTestPage(t)
	misses := []string{
		"/html[1]/body[1]/div[7]",                 // rank exceeds matching children
		"/html[1]/body[1]/p[1]",                   // wrong tag
		"/html[1]/body[1]/*[local-name()='a'][1]", // <a> in body is not namespaced
		"/html[1]/body[1]/div[0]",                 // malformed rank
		"/html[1]//body[1]",                       // malformed
		"/html[1]/body[1]/",                       // trailing slash
		"/html[1]/body[1]/*[local-name()='svg'",   // unterminated
	}
	for _, expr := range misses {
		if n := GetElement(expr, doc); n != nil {
			t.Errorf("expected %q not to resolve, resolved to %q", expr, n.Data)
		}
	}
	if GetElement("/html[1]", nil) != nil {
		t.Error("expected nil root to resolve nothing")
	}
}

func TestAbsolutePathFromElementRoot(t *testing.T) {
	doc := parseTestPage(t)
	container := findByID(doc, "container")
	target := findByID(doc, "target")
	expr, _ := GetExpression(target, nil)
	if GetElement(expr, container) != target {
		t.Error("expected absolute path to resolve from the owning document")
	}
}

func TestPathAfterMutation(t *testing.T) {
	doc := parseTestPage(t)
	target := findByID(doc, "target")
	expr, _ := GetExpression(target, nil)
	// remove the first child <div> of the outer div: container becomes div[1]
	b := findByID(doc, "b")
	b.Parent.RemoveChild(b)
	if GetElement(expr, doc) != nil {
		t.Errorf("expected stale path %s not to resolve to an element", expr)
	}
	fresh, _ := GetExpression(target, nil)
	require.Equal(t, "/html[1]/body[1]/div[1]/div[1]/div[1]/div[1]/span[1]", fresh)
	require.Same(t, target, GetElement(fresh, doc))
}

func TestParse(t *testing.T) {
	p, err := Parse("/html/body[1]/*[local-name()=\"svg\"]/text()[2]")
	require.NoError(t, err)
	require.True(t, p.Absolute)
	require.Len(t, p.Steps, 4)
	require.Equal(t, Step{Kind: ElementStep, Local: "html", Rank: 1}, p.Steps[0])
	require.Equal(t, Step{Kind: NamespacedStep, Local: "svg", Rank: 1}, p.Steps[2])
	require.Equal(t, Step{Kind: TextStep, Rank: 2}, p.Steps[3])
	require.Equal(t, "/html[1]/body[1]/*[local-name()='svg'][1]/text()[2]", p.String())
	//
	_, err = Parse("div[x]")
	if !errors.Is(err, ErrInvalidPath) {
		t.Errorf("expected ErrInvalidPath for bad rank, have %v", err)
	}
	_, err = Parse("*[local-name()=''][1]")
	if !errors.Is(err, ErrInvalidPath) {
		t.Errorf("expected ErrInvalidPath for empty local name, have %v", err)
	}
}
