/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/keyframes/dom/style"
	"github.com/npillmayer/keyframes/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'keyframes.css'.
func tracer() tracing.Trace {
	return tracing.Select("keyframes.css")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS source text into a stylesheet.
func Parse(source string) (*CSSStyles, error) {
	c, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules at the top level of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind == css.QualifiedRule {
			rules = append(rules, Rule(*r))
		}
	}
	return rules
}

// Keyframes finds the @keyframes rule for an animation name, including
// vendor-prefixed variants and rules nested in conditional at-rules.
// If more than one rule matches, the last one wins, as it does in browsers.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Keyframes(name string) cssom.KeyframesRule {
	var found *css.Rule
	var find func(rules []*css.Rule)
	find = func(rules []*css.Rule) {
		for _, r := range rules {
			if r.Kind != css.AtRule {
				continue
			}
			if isKeyframesAtRule(r.Name) {
				if strings.TrimSpace(r.Prelude) == name {
					found = r
				}
				continue
			}
			find(r.Rules)
		}
	}
	find(sheet.css.Rules)
	if found == nil {
		tracer().Debugf("no @keyframes rule for animation %q", name)
		return nil
	}
	return keyframes{rule: found}
}

var _ cssom.StyleSheet = &CSSStyles{}

func isKeyframesAtRule(name string) bool {
	return name == "@keyframes" || (strings.HasPrefix(name, "@-") && strings.HasSuffix(name, "-keyframes"))
}

// keyframes is an adapter for interface cssom.KeyframesRule.
type keyframes struct {
	rule *css.Rule
}

func (kf keyframes) Name() string {
	return strings.TrimSpace(kf.rule.Prelude)
}

func (kf keyframes) Keyframes() []cssom.Rule {
	blocks := make([]cssom.Rule, 0, len(kf.rule.Rules))
	for _, r := range kf.rule.Rules {
		blocks = append(blocks, Rule(*r))
	}
	return blocks
}

var _ cssom.KeyframesRule = keyframes{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return strings.TrimSpace(r.Prelude)
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return style.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which fail to parse are
// skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css = append(css, extractStyles(body)...)
	return css
}

// Merged returns all style elements of a document as a single stylesheet.
func Merged(htmldoc *html.Node) *CSSStyles {
	merged := &CSSStyles{}
	for _, sheet := range ExtractStyleElements(htmldoc) {
		merged.AppendRules(sheet)
	}
	return merged
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		c, err := parser.Parse(ch.FirstChild.Data)
		if err != nil {
			tracer().Errorf("cannot parse <style> element: %v", err)
			continue
		}
		css = append(css, Wrap(c))
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
