package source

import (
	"os"
	"strings"
)

// Reader returns the content stored under uri. Any failure (missing file,
// permissions, I/O) is reported as absence.
type Reader func(uri FileID) (string, bool)

// ReadOS is the Reader backed by the local filesystem.
func ReadOS(uri FileID) (string, bool) {
	path, ok := URIToPath(uri)
	if !ok {
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	// #nosec G304 -- path comes from a resolved include or an opened document
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return removeBOM(string(data)), true
}

// Overlay serves open editor buffers first and falls back to another reader.
type Overlay struct {
	docs     map[FileID]string
	fallback Reader
}

// NewOverlay creates an Overlay on top of fallback (ReadOS when nil).
func NewOverlay(fallback Reader) *Overlay {
	if fallback == nil {
		fallback = ReadOS
	}
	return &Overlay{docs: make(map[FileID]string), fallback: fallback}
}

// Set stores the buffer content for uri.
func (o *Overlay) Set(uri FileID, content string) {
	o.docs[uri] = content
}

// Forget drops the buffer for uri; later reads go to the fallback.
func (o *Overlay) Forget(uri FileID) {
	delete(o.docs, uri)
}

// Read implements Reader.
func (o *Overlay) Read(uri FileID) (string, bool) {
	if content, ok := o.docs[uri]; ok {
		return content, true
	}
	return o.fallback(uri)
}

func removeBOM(content string) string {
	return strings.TrimPrefix(content, "\uFEFF")
}
