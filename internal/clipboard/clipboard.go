// Package clipboard provides cross-platform clipboard support.
package clipboard

import "github.com/atotto/clipboard"

// Write copies text to the system clipboard.
func Write(text string) error {
	return clipboard.WriteAll(text)
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}
