package renderer

import "errors"

var (
	ErrInterrupted  = errors.New("renderer: interrupted while rendering")
	ErrPoolShutdown = errors.New("renderer: worker pool closed unexpectedly")
)
