//go:build !freebsd

package main

// kernelSource is unavailable off FreeBSD; a document file must be given.
func kernelSource() (graphProvider, error) {
	return nil, ErrLiveUnsupported
}
