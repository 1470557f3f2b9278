// Package editor provides the host-document collaborators: file-backed
// documents with line-range selections, the transient loading placeholder,
// and user notifications.
package editor

import (
	"fmt"
	"os"
	"strings"
)

// PlaceholderText is the transient marker inserted into a document while
// a completion request is in flight.
const PlaceholderText = "Generating..."

// Selection is an inclusive 1-based line range within a document.
type Selection struct {
	Start int
	End   int
}

// Document is one file-backed text document. All mutations are written
// back to the file immediately.
type Document struct {
	path    string
	content string
	sel     *Selection
}

// Open reads a document from path. sel may be nil for no selection.
func Open(path string, sel *Selection) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc := &Document{path: path, content: string(data), sel: sel}
	if sel != nil {
		if err := doc.validateSelection(); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Text returns the whole document text.
func (d *Document) Text() string {
	return d.content
}

// SelectedText returns the selected line range and whether a selection
// exists.
func (d *Document) SelectedText() (string, bool) {
	if d.sel == nil {
		return "", false
	}
	lines := strings.Split(d.content, "\n")
	return strings.Join(lines[d.sel.Start-1:d.sel.End], "\n"), true
}

// InsertPlaceholder inserts the loading placeholder on its own line after
// the selection, or at the end of the document when there is no selection,
// and writes the file. The returned Placeholder must be resolved or
// discarded; Discard is safe to defer unconditionally.
func (d *Document) InsertPlaceholder() (*Placeholder, error) {
	lines := strings.Split(d.content, "\n")
	// A trailing newline yields a final empty element; insert before it
	// so the marker lands on its own line.
	idx := len(lines)
	if n := len(lines); n > 0 && lines[n-1] == "" {
		idx = n - 1
	}
	if d.sel != nil {
		idx = d.sel.End
	}

	var out []string
	out = append(out, lines[:idx]...)
	out = append(out, PlaceholderText)
	out = append(out, lines[idx:]...)
	d.content = strings.Join(out, "\n")

	if err := d.write(); err != nil {
		return nil, err
	}
	return &Placeholder{doc: d, line: idx}, nil
}

// lineCount returns the number of real lines, not counting the empty
// element a trailing newline produces.
func (d *Document) lineCount() int {
	lines := strings.Split(d.content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		return n - 1
	}
	return len(lines)
}

func (d *Document) validateSelection() error {
	count := d.lineCount()
	if d.sel.Start < 1 || d.sel.End < d.sel.Start || d.sel.End > count {
		return fmt.Errorf("selection %d:%d out of range for %d-line document", d.sel.Start, d.sel.End, count)
	}
	return nil
}

func (d *Document) write() error {
	if err := os.WriteFile(d.path, []byte(d.content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.path, err)
	}
	return nil
}

// Placeholder is the scoped handle for one inserted loading marker,
// addressed by the line it was inserted at so document text that happens
// to match the marker string is never touched. Exactly one of Resolve or
// Discard takes effect; whichever runs second is a no-op, so callers
// defer Discard and call Resolve on success.
type Placeholder struct {
	doc  *Document
	line int
	done bool
}

// Resolve replaces the placeholder line with text and writes the file.
func (p *Placeholder) Resolve(text string) error {
	if p.done {
		return nil
	}
	p.done = true
	lines := strings.Split(p.doc.content, "\n")
	lines[p.line] = text
	p.doc.content = strings.Join(lines, "\n")
	return p.doc.write()
}

// Discard removes the placeholder line and writes the file. No-op after
// Resolve or a previous Discard.
func (p *Placeholder) Discard() error {
	if p.done {
		return nil
	}
	p.done = true
	lines := strings.Split(p.doc.content, "\n")
	lines = append(lines[:p.line], lines[p.line+1:]...)
	p.doc.content = strings.Join(lines, "\n")
	return p.doc.write()
}
