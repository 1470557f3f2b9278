package cmd

import (
	"context"

	"github.com/quillnotes/quill/internal/editor"
)

// textOp is one prompt-templated operation applied to document text.
type textOp func(ctx context.Context, text string) (string, error)

// runOp drives the placeholder lifecycle shared by every document
// command: insert the placeholder, issue the provider call, then resolve
// it with the result or discard it. The deferred discard is a no-op after
// a successful resolve, so the marker is removed exactly once on every
// exit path.
func runOp(ctx context.Context, doc *editor.Document, notifier editor.Notifier, text string, op textOp) error {
	ph, err := doc.InsertPlaceholder()
	if err != nil {
		return err
	}
	defer func() {
		_ = ph.Discard()
	}()

	result, err := op(ctx, text)
	if err != nil {
		notifier.Error(err.Error())
		return err
	}
	return ph.Resolve(result)
}
