//go:build freebsd

package main

import "github.com/desertwitch/geomesh"

// kernelSource reads snapshots from the running kernel's sysctl tree.
func kernelSource() (graphProvider, error) {
	return geomesh.NewSource(&geomesh.Unix{}), nil
}
