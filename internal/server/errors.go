package server

import "errors"

var (
	errNoListenAddress = errors.New("no control API listen address configured")
)
