package editor

// Clipboard is the system clipboard as seen by Cut, Copy and Paste.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// MemoryClipboard is a process-local clipboard. It is the default when no
// system clipboard is configured.
type MemoryClipboard struct {
	text string
}

// Read returns the stored text.
func (c *MemoryClipboard) Read() (string, error) {
	return c.text, nil
}

// Write stores text.
func (c *MemoryClipboard) Write(text string) error {
	c.text = text
	return nil
}
