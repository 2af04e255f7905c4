package main

import "errors"

var (
	// ErrLiveUnsupported occurs when live kernel state is requested on an
	// operating system without the GEOM sysctl tree.
	ErrLiveUnsupported = errors.New("live topology requires FreeBSD (use -file)")
)
