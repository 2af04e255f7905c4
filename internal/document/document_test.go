package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Success_Basic simulates parsing a small well-formed document.
func TestParse_Success_Basic(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(`<mesh><class id="0x123"><name>FD</name></class></mesh>`))
	require.NoError(t, err, "unexpected error from Parse")

	assert.Equal(t, "mesh", root.Tag, "root tag mismatch")
	require.Len(t, root.Children, 1, "unexpected number of root children")

	class := root.Children[0]
	assert.Equal(t, "class", class.Tag, "child tag mismatch")
	assert.Equal(t, "0x123", class.Attr["id"], "attribute value mismatch")

	name, exists := class.ChildText("name")
	assert.True(t, exists, "expected a name child")
	assert.Equal(t, "FD", name, "name text mismatch")
}

// TestParse_Success_SiblingOrder ensures sibling elements keep their exact
// document order, which later stages rely on for determinism.
func TestParse_Success_SiblingOrder(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(`<config><b>1</b><a>2</a><b>3</b><c>4</c></config>`))
	require.NoError(t, err, "unexpected error from Parse")

	var tags []string
	var texts []string
	for _, child := range root.Children {
		tags = append(tags, child.Tag)
		texts = append(texts, child.Text)
	}

	assert.Equal(t, []string{"b", "a", "b", "c"}, tags, "sibling order not preserved")
	assert.Equal(t, []string{"1", "2", "3", "4"}, texts, "sibling texts not preserved")
}

// TestParse_Success_TextTrimming ensures surrounding whitespace of element
// text is stripped at every nesting depth.
func TestParse_Success_TextTrimming(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte("<provider>\n  <name>\n    ada0\n  </name>\n</provider>"))
	require.NoError(t, err, "unexpected error from Parse")

	name, exists := root.ChildText("name")
	assert.True(t, exists, "expected a name child")
	assert.Equal(t, "ada0", name, "text should be whitespace-trimmed")
}

// TestParse_Success_ChildrenByTag ensures tag-filtered child enumeration
// returns all matches in document order.
func TestParse_Success_ChildrenByTag(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(`<geom><provider id="0x1"/><consumer id="0x2"/><provider id="0x3"/></geom>`))
	require.NoError(t, err, "unexpected error from Parse")

	providers := root.ChildrenByTag("provider")
	require.Len(t, providers, 2, "unexpected number of provider children")
	assert.Equal(t, "0x1", providers[0].Attr["id"], "first provider mismatch")
	assert.Equal(t, "0x3", providers[1].Attr["id"], "second provider mismatch")

	assert.Nil(t, root.FirstChild("config"), "expected no config child")
}

// TestParse_Fail_UnclosedTag simulates a truncated document.
func TestParse_Fail_UnclosedTag(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(`<mesh><class><name>DISK</name>`))
	require.Error(t, err, "expected an error from Parse")
	assert.ErrorIs(t, err, ErrMalformed, "error should wrap ErrMalformed")
	assert.Nil(t, root, "expected no tree on malformed input")
}

// TestParse_Fail_MismatchedTags simulates syntactically invalid markup.
func TestParse_Fail_MismatchedTags(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(`<mesh><class></mesh></class>`))
	require.Error(t, err, "expected an error from Parse")
	assert.ErrorIs(t, err, ErrMalformed, "error should wrap ErrMalformed")
	assert.Nil(t, root, "expected no tree on malformed input")
}

// TestParse_Fail_Empty simulates input containing no element at all.
func TestParse_Fail_Empty(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte("   \n  "))
	require.Error(t, err, "expected an error from Parse")
	assert.ErrorIs(t, err, ErrMalformed, "error should wrap ErrMalformed")
	assert.Nil(t, root, "expected no tree on empty input")
}

// TestParse_Fail_MultipleRoots simulates a document with two top-level
// elements.
func TestParse_Fail_MultipleRoots(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(`<mesh></mesh><mesh></mesh>`))
	require.Error(t, err, "expected an error from Parse")
	assert.ErrorIs(t, err, ErrMultipleRoots, "error should wrap ErrMultipleRoots")
	assert.ErrorIs(t, err, ErrMalformed, "error should also wrap ErrMalformed")
	assert.Nil(t, root, "expected no tree on malformed input")
}
