/*
Package cssom provides interfaces for CSS stylesheets.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. We do not
implement styling here; our interest in stylesheets is limited to the
animations they define. An @keyframes rule describes an animation as a
sequence of keyframe blocks, each positioned at a percentage of the
animation's run time:

	@keyframes fade {
	    from { opacity: 0 }
	    50%  { opacity: 0.8 }
	    to   { opacity: 1 }
	}

Package timeline is able to import such a rule as a keyframe timeline.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet, Rule and KeyframesRule. A concrete implementation may be found
in sub-package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'keyframes.css'.
func tracer() tracing.Trace {
	return tracing.Select("keyframes.css")
}
