package geomesh

import "fmt"

// ConfXMLName is the kernel sysctl node publishing the GEOM configuration
// document.
const ConfXMLName = "kern.geom.confxml"

type sysctlProvider interface {
	Sysctl(name string) (string, error)
}

// Source reads configuration document snapshots from a running kernel's
// sysctl tree. It is the only collaborator touching system state; everything
// downstream operates on the returned document alone.
type Source struct {
	sysctlHandler sysctlProvider
}

// NewSource returns a pointer to a new kernel [Source] using the given sysctl
// implementation ([Unix] on FreeBSD builds).
func NewSource(sysctlHandler sysctlProvider) *Source {
	return &Source{
		sysctlHandler: sysctlHandler,
	}
}

// ReadDocument reads one raw configuration document from the kernel.
func (s *Source) ReadDocument() ([]byte, error) {
	value, err := s.sysctlHandler.Sysctl(ConfXMLName)
	if err != nil {
		return nil, fmt.Errorf("(geomesh) failed reading %s: %w", ConfXMLName, err)
	}

	return []byte(value), nil
}

// Graph reads one document from the kernel and decodes it into a fresh
// snapshot. Each call produces an independent, immutable [Graph].
func (s *Source) Graph() (*Graph, error) {
	data, err := s.ReadDocument()
	if err != nil {
		return nil, err
	}

	return Decode(data)
}
