package compiler

import "errors"

var (
	// ErrInvalidInput flags timelines which cannot be compiled: no frames,
	// no resolved target, or undefined origins in strict mode.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEngineUnavailable is returned if the tween engine has not been
	// provisioned. Callers may retry after provisioning.
	ErrEngineUnavailable = errors.New("tween engine unavailable")
	// ErrUnsupportedTarget is returned for timelines not targeting DOM elements.
	ErrUnsupportedTarget = errors.New("unsupported target")
)
