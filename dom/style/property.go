/*
Package style provides raw CSS property values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'keyframes.dom'
func tracer() tracing.Trace {
	return tracing.Select("keyframes.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//     opacity: 0.5
//
// a property value of "0.5" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks whether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// Number interprets a property as a number with an optional unit, e.g.
//
//     0.5   100px   -30deg   75%   .25em
//
// It returns the numeric part. Values which do not start with a number, or
// which contain anything but a unit after it (e.g. "10px 20px" or
// "translateX(10px)"), are not numeric.
func (p Property) Number() (float64, bool) {
	n, unit, ok := p.split()
	if !ok {
		return 0, false
	}
	for _, r := range unit {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '%') {
			tracer().Debugf("property value %q is not numeric", p)
			return 0, false
		}
	}
	return n, true
}

// Unit returns the unit of a numeric property, e.g. "px" for "100px".
// Unitless numbers return "".
func (p Property) Unit() string {
	_, unit, ok := p.split()
	if !ok {
		return ""
	}
	return unit
}

func (p Property) split() (float64, string, bool) {
	s := strings.TrimSpace(string(p))
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+' ||
			((c == 'e' || c == 'E') && end > 0 && end+1 < len(s) && isExpStart(s[end+1])) {
			end++
			if c == 'e' || c == 'E' {
				end++ // consume sign or first exponent digit
			}
			continue
		}
		break
	}
	if end == 0 {
		return 0, "", false
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, "", false
	}
	return n, s[end:], true
}

func isExpStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '-' || c == '+'
}
