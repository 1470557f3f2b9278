package editor

import (
	"fmt"
	"io"
)

// Notifier surfaces user-facing notices, the CLI analogue of editor
// toasts.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// WriterNotifier writes notices to an io.Writer, usually stderr.
type WriterNotifier struct {
	Out io.Writer
}

// Info implements Notifier.Info.
func (n *WriterNotifier) Info(msg string) {
	fmt.Fprintln(n.Out, msg)
}

// Warn implements Notifier.Warn.
func (n *WriterNotifier) Warn(msg string) {
	fmt.Fprintln(n.Out, "warning: "+msg)
}

// Error implements Notifier.Error.
func (n *WriterNotifier) Error(msg string) {
	fmt.Fprintln(n.Out, "error: "+msg)
}
