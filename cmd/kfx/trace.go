package main

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'keyframes.cli'.
func tracer() tracing.Trace {
	return tracing.Select("keyframes.cli")
}
