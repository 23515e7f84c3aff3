/*
Command kfx is a developer tool for keyframe timelines.

It computes and resolves element paths, imports CSS @keyframes rules into
timelines, compiles timelines against a recording tween engine and draws
documents as GraphViz diagrams.

	kfx path page.html "div.stage span"
	kfx import page.html bounce --target "#ball" --frames 120 -o bounce.yaml
	kfx compile bounce.yaml --doc page.html --tree

Settings may be given as environment variables, optionally read from a
.env file: KFX_TRACE (error, info, debug) and KFX_FPS.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

func main() {
	Execute()
}
