//go:build freebsd

package geomesh

import "golang.org/x/sys/unix"

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Sysctl wraps around [unix.Sysctl].
func (*Unix) Sysctl(name string) (string, error) {
	return unix.Sysctl(name)
}

// Current reads and decodes the running system's storage topology.
func Current() (*Graph, error) {
	return NewSource(&Unix{}).Graph()
}
