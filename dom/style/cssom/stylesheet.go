package cssom

import (
	"strconv"
	"strings"

	"github.com/npillmayer/keyframes/dom/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from their
// clients, we introduce an interface for CSS stylesheets. Clients will have
// to provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet)              // append rules from another stylesheet
	Empty() bool                         // does this stylesheet contain any rules?
	Rules() []Rule                       // all the (qualified) rules of a stylesheet
	Keyframes(name string) KeyframesRule // @keyframes rule for an animation name, or nil
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// KeyframesRule represents an @keyframes at-rule. Every keyframe block is a
// Rule, with a selector consisting of one or more comma-separated offsets
// ("from", "to", or a percentage).
type KeyframesRule interface {
	Name() string      // animation name
	Keyframes() []Rule // keyframe blocks in source order
}

// KeyframeOffsets parses the selector of a keyframe block into offsets
// in the range [0…1]. Invalid offsets make the whole selector invalid.
func KeyframeOffsets(selector string) ([]float64, bool) {
	var offsets []float64
	for _, part := range strings.Split(selector, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "from":
			offsets = append(offsets, 0)
			continue
		case "to":
			offsets = append(offsets, 1)
			continue
		}
		if !strings.HasSuffix(part, "%") {
			tracer().Debugf("keyframe selector %q is not an offset", part)
			return nil, false
		}
		pcnt, err := strconv.ParseFloat(strings.TrimSuffix(part, "%"), 64)
		if err != nil || pcnt < 0 || pcnt > 100 {
			tracer().Debugf("keyframe selector %q is out of range", part)
			return nil, false
		}
		offsets = append(offsets, pcnt/100)
	}
	return offsets, len(offsets) > 0
}
