/*
Package elempath computes and resolves element paths.

An element path addresses a node of an HTML parse tree by the sequence of
steps leading from a root node down to it. Every step names the node's tag
and its 1-based rank among those siblings which share the same tag:

	/html[1]/body[1]/div[2]/span[1]

Elements from a foreign namespace (SVG or MathML subtrees embedded in HTML)
are written with a local-name predicate, so that an SVG <a> will never be
confused with an HTML <a>:

	/html[1]/body[1]/*[local-name()='svg'][1]/*[local-name()='circle'][3]

Text nodes are addressed as text()[k].

HTML tag names containing characters of the path syntax (one of /[]*'"()),
which the HTML tokenizer happily accepts, are written with a name predicate,
e.g. *[name()='x*y'][1]. Tag names containing both kinds of quotes cannot
be encoded; such elements and their descendants have no element path.

Paths computed relative to a document node are absolute (they carry a leading
slash). Paths computed relative to any other node carry no leading slash and
have to be resolved against the same root again.

Element paths are the durable identity of animation targets: they survive
serialization, where pointers to nodes do not. GetExpression and GetElement
are exact inverses for every node reachable from a given root, as long as the
tree is not changed in between.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package elempath

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'keyframes.dom'.
func tracer() tracing.Trace {
	return tracing.Select("keyframes.dom")
}
