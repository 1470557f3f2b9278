package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillnotes/quill/internal/editor"
	"github.com/quillnotes/quill/internal/ops"
	"github.com/quillnotes/quill/internal/provider"
)

func TestParseLines(t *testing.T) {
	sel, err := parseLines("3:7")
	require.NoError(t, err)
	assert.Equal(t, &editor.Selection{Start: 3, End: 7}, sel)

	sel, err = parseLines("")
	require.NoError(t, err)
	assert.Nil(t, sel)

	for _, bad := range []string{"3", "a:b", "3:", ":7"} {
		_, err := parseLines(bad)
		assert.Error(t, err, "parseLines(%q)", bad)
	}
}

// TestRunOpSuccess exercises the full command flow: selection, placeholder,
// provider call, and result insertion.
func TestRunOpSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.md")
	require.NoError(t, os.WriteFile(path, []byte("a rough draft\nmore text\n"), 0644))

	doc, err := editor.Open(path, &editor.Selection{Start: 1, End: 1})
	require.NoError(t, err)
	text, ok := doc.SelectedText()
	require.True(t, ok)

	mock := &provider.MockClient{Response: "a polished draft"}
	creator := ops.NewCreator(mock, "gpt-4o-mini", "")
	notifier := &editor.WriterNotifier{Out: &bytes.Buffer{}}

	require.NoError(t, runOp(context.Background(), doc, notifier, text, creator.RewordContent))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "a polished draft")
	assert.Zero(t, strings.Count(string(content), editor.PlaceholderText))
	require.Len(t, mock.ChatRequests, 1, "exactly one outstanding request per command")
	assert.Equal(t, "a rough draft", mock.ChatRequests[0].Message)
}

// TestRunOpProviderFailure verifies the placeholder is cleaned up and the
// error surfaced as a notice when the provider call fails.
func TestRunOpProviderFailure(t *testing.T) {
	original := "a rough draft\n"
	path := filepath.Join(t.TempDir(), "draft.md")
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	doc, err := editor.Open(path, nil)
	require.NoError(t, err)

	mock := &provider.MockClient{Err: &provider.ProviderError{Provider: "openai", Status: 401, Body: "invalid api key"}}
	creator := ops.NewCreator(mock, "gpt-4o-mini", "")
	var notices bytes.Buffer
	notifier := &editor.WriterNotifier{Out: &notices}

	err = runOp(context.Background(), doc, notifier, doc.Text(), creator.GenerateOutline)
	require.Error(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content), "document restored after failure")
	assert.Zero(t, strings.Count(string(content), editor.PlaceholderText))
	assert.Contains(t, notices.String(), "invalid api key")
}
