// Package clipboard writes generated text to the system clipboard on a
// best-effort basis. The native clipboard is the primary path; when it
// is unavailable (headless hosts, SSH sessions) an OSC 52 escape
// sequence is emitted so supporting terminals copy on the client side.
// Failure is reported as a boolean and never as a panic or error the
// caller must handle.
package clipboard

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Copy writes text to the clipboard, returning whether any path
// succeeded.
func Copy(text string) bool {
	if err := clipboard.WriteAll(text); err == nil {
		return true
	}

	// Fallback: OSC 52 through the controlling terminal. Stderr keeps
	// the sequence out of any redirected stdout.
	seq := osc52.New(text)
	if _, err := seq.WriteTo(os.Stderr); err != nil {
		return false
	}
	return true
}
