/*
Package dom provides a W3C-style view onto HTML parse trees.

Documents are parsed with golang.org/x/net/html. W3CNode wraps an
*html.Node and implements interface w3cdom.Node, adding the operations
keyframe authoring needs: selecting animation targets with CSS selectors
and addressing nodes by element path (see package elempath).

	doc, err := dom.Load(strings.NewReader(page))
	…
	targets, err := doc.QueryAll("div.actor > span")
	path := targets[0].Path()   // e.g. "/html[1]/body[1]/div[1]/span[1]"
	same := doc.Resolve(path)   // same node as targets[0]

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'keyframes.dom'.
func tracer() tracing.Trace {
	return tracing.Select("keyframes.dom")
}
