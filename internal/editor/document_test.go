package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readDoc(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSelectedText(t *testing.T) {
	path := writeDoc(t, "one\ntwo\nthree\nfour\n")

	doc, err := Open(path, &Selection{Start: 2, End: 3})
	require.NoError(t, err)

	text, ok := doc.SelectedText()
	assert.True(t, ok)
	assert.Equal(t, "two\nthree", text)
}

func TestNoSelection(t *testing.T) {
	path := writeDoc(t, "one\ntwo\n")

	doc, err := Open(path, nil)
	require.NoError(t, err)

	_, ok := doc.SelectedText()
	assert.False(t, ok)
	assert.Equal(t, "one\ntwo\n", doc.Text())
}

func TestSelectionOutOfRange(t *testing.T) {
	path := writeDoc(t, "one\ntwo\n")

	_, err := Open(path, &Selection{Start: 2, End: 9})
	assert.Error(t, err)

	_, err = Open(path, &Selection{Start: 0, End: 1})
	assert.Error(t, err)

	// The trailing newline does not count as a selectable third line.
	_, err = Open(path, &Selection{Start: 2, End: 3})
	assert.Error(t, err)

	_, err = Open(path, &Selection{Start: 2, End: 2})
	assert.NoError(t, err)
}

func TestPlaceholderResolved(t *testing.T) {
	path := writeDoc(t, "one\ntwo\nthree\n")

	doc, err := Open(path, &Selection{Start: 1, End: 2})
	require.NoError(t, err)

	ph, err := doc.InsertPlaceholder()
	require.NoError(t, err)
	assert.Contains(t, readDoc(t, path), PlaceholderText, "placeholder inserted before the provider call")

	require.NoError(t, ph.Resolve("the result"))

	content := readDoc(t, path)
	assert.Zero(t, strings.Count(content, PlaceholderText))
	assert.Contains(t, content, "the result")

	// The deferred discard after a resolve must not touch the result.
	require.NoError(t, ph.Discard())
	assert.Equal(t, content, readDoc(t, path))
}

func TestPlaceholderDiscardedOnFailure(t *testing.T) {
	original := "one\ntwo\nthree\n"
	path := writeDoc(t, original)

	doc, err := Open(path, &Selection{Start: 2, End: 2})
	require.NoError(t, err)

	ph, err := doc.InsertPlaceholder()
	require.NoError(t, err)
	require.NoError(t, ph.Discard())

	content := readDoc(t, path)
	assert.Zero(t, strings.Count(content, PlaceholderText))
	assert.Equal(t, original, content)
}

func TestPlaceholderWithoutSelection(t *testing.T) {
	path := writeDoc(t, "no trailing newline")

	doc, err := Open(path, nil)
	require.NoError(t, err)

	ph, err := doc.InsertPlaceholder()
	require.NoError(t, err)
	require.NoError(t, ph.Resolve("appended"))

	content := readDoc(t, path)
	assert.Zero(t, strings.Count(content, PlaceholderText))
	assert.Equal(t, "no trailing newline\nappended", content)
}

// Documents that already contain the marker string must never have that
// text touched; only the line the placeholder was inserted at is.
func TestPlaceholderIgnoresMatchingUserText(t *testing.T) {
	original := "Status: " + PlaceholderText + " report due Friday\nsecond line\n"
	path := writeDoc(t, original)

	doc, err := Open(path, &Selection{Start: 2, End: 2})
	require.NoError(t, err)

	ph, err := doc.InsertPlaceholder()
	require.NoError(t, err)
	require.NoError(t, ph.Resolve("RESULT"))

	content := readDoc(t, path)
	assert.Equal(t, "Status: "+PlaceholderText+" report due Friday\nsecond line\nRESULT\n", content)
	assert.Equal(t, 1, strings.Count(content, PlaceholderText), "only the user's own text remains")
}

func TestPlaceholderDiscardIgnoresMatchingUserText(t *testing.T) {
	original := PlaceholderText + " is my favorite phrase\nsecond line\n"
	path := writeDoc(t, original)

	doc, err := Open(path, &Selection{Start: 1, End: 1})
	require.NoError(t, err)

	ph, err := doc.InsertPlaceholder()
	require.NoError(t, err)
	require.NoError(t, ph.Discard())

	assert.Equal(t, original, readDoc(t, path))
}

func TestDiscardTwiceIsNoop(t *testing.T) {
	path := writeDoc(t, "one\n")

	doc, err := Open(path, nil)
	require.NoError(t, err)

	ph, err := doc.InsertPlaceholder()
	require.NoError(t, err)
	require.NoError(t, ph.Discard())
	require.NoError(t, ph.Discard())
	assert.Equal(t, "one\n", readDoc(t, path))
}
