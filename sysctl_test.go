package geomesh

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSysctl is a mock implementation of the sysctl provider interface.
type fakeSysctl struct {
	value string
	err   error

	requested []string
}

func (f *fakeSysctl) Sysctl(name string) (string, error) {
	f.requested = append(f.requested, name)

	if f.err != nil {
		return "", f.err
	}

	return f.value, nil
}

// TestSource_ReadDocument_Success verifies the source queries the right
// sysctl node and hands back the raw document.
func TestSource_ReadDocument_Success(t *testing.T) {
	t.Parallel()

	fake := &fakeSysctl{value: "<mesh></mesh>"}
	source := NewSource(fake)

	data, err := source.ReadDocument()
	require.NoError(t, err, "unexpected error from ReadDocument")

	assert.Equal(t, []byte("<mesh></mesh>"), data, "document bytes mismatch")
	assert.Equal(t, []string{ConfXMLName}, fake.requested, "unexpected sysctl nodes queried")
}

// TestSource_ReadDocument_Fail verifies kernel read failures propagate.
func TestSource_ReadDocument_Fail(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("operation not permitted")
	source := NewSource(&fakeSysctl{err: sentinel})

	data, err := source.ReadDocument()
	require.Error(t, err, "expected an error from ReadDocument")
	assert.ErrorIs(t, err, sentinel, "error should wrap the sysctl failure")
	assert.Nil(t, data, "expected no document on read failure")
}

// TestSource_Graph_Success verifies the end-to-end path from a kernel read to
// a decoded snapshot.
func TestSource_Graph_Success(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/sample.xml")
	require.NoError(t, err, "unexpected error reading the sample document")

	source := NewSource(&fakeSysctl{value: string(data)})

	graph, err := source.Graph()
	require.NoError(t, err, "unexpected error from Graph")
	assert.Equal(t, 9, graph.GeomCount(), "geom count mismatch")

	direct, err := Decode(data)
	require.NoError(t, err, "unexpected error from Decode")
	assert.Equal(t, direct.Fingerprint(), graph.Fingerprint(), "source and direct decode should agree")
}

// TestSource_Graph_Fail verifies decode failures propagate through the
// source.
func TestSource_Graph_Fail(t *testing.T) {
	t.Parallel()

	source := NewSource(&fakeSysctl{value: "not a document"})

	graph, err := source.Graph()
	require.Error(t, err, "expected an error from Graph")
	assert.ErrorIs(t, err, ErrMalformedDocument, "error should wrap ErrMalformedDocument")
	assert.Nil(t, graph, "expected no graph on decode failure")
}
