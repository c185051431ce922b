package httpserver

import "errors"

var (
	ErrStart          = errors.New("httpserver: start failed")
	ErrAlreadyRunning = errors.New("httpserver: already running")
	ErrShutdown       = errors.New("httpserver: graceful shutdown failed")
)
