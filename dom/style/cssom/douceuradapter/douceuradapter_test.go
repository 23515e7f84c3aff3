package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

const page = `<html><head>
<style>
  .box { left: 10px }
  @keyframes fade {
    from { opacity: 0 }
    50%  { opacity: 0.8; color: red }
    to   { opacity: 1 }
  }
</style>
</head><body>
<style>
  @media screen {
    @keyframes slide { 0% { left: 0 } 100% { left: 200px } }
  }
</style>
<div class="box"></div>
</body></html>`

func TestExtractKeyframes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyframes.css")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	sheets := ExtractStyleElements(doc)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 style elements, have %d", len(sheets))
	}
	sheet := Merged(doc)
	if sheet.Empty() {
		t.Fatal("expected merged stylesheet to have rules")
	}
	if len(sheet.Rules()) != 1 || sheet.Rules()[0].Selector() != ".box" {
		t.Errorf("expected a single qualified rule .box, have %v", sheet.Rules())
	}
	fade := sheet.Keyframes("fade")
	if fade == nil {
		t.Fatal("expected to find @keyframes fade")
	}
	blocks := fade.Keyframes()
	if len(blocks) != 3 {
		t.Fatalf("expected 3 keyframe blocks, have %d", len(blocks))
	}
	if blocks[1].Selector() != "50%" || blocks[1].Value("opacity") != "0.8" {
		t.Errorf("expected 50%% { opacity: 0.8 }, have %s { opacity: %s }",
			blocks[1].Selector(), blocks[1].Value("opacity"))
	}
	if props := blocks[1].Properties(); len(props) != 2 || props[1] != "color" {
		t.Errorf("expected properties [opacity color], have %v", props)
	}
	slide := sheet.Keyframes("slide")
	if slide == nil || slide.Name() != "slide" {
		t.Fatal("expected to find @keyframes slide nested in @media")
	}
	if sheet.Keyframes("bounce") != nil {
		t.Error("expected no @keyframes bounce")
	}
}

func TestExtractWithoutHead(t *testing.T) {
	doc := &html.Node{Type: html.DocumentNode}
	if sheets := ExtractStyleElements(doc); len(sheets) != 0 {
		t.Errorf("expected no style sheets, have %d", len(sheets))
	}
}

func TestRuleImportance(t *testing.T) {
	sheet, err := Parse(`.box { left: 10px !important; top: 5px }`)
	if err != nil {
		t.Fatal(err)
	}
	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, have %d", len(rules))
	}
	r := rules[0]
	if !r.IsImportant("left") || r.IsImportant("top") || r.IsImportant("width") {
		t.Errorf("expected only left to be !important")
	}
	if r.Value("left") != "10px" || !r.Value("width").IsEmpty() {
		t.Errorf("expected left=10px and no width, have %q and %q", r.Value("left"), r.Value("width"))
	}
}
