package source

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// PathToURI converts a filesystem path into a file:// URI. A trailing separator
// is preserved so that directory URIs keep resolving relative references
// inside the directory.
func PathToURI(path string) FileID {
	if path == "" {
		return ""
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// C:/foo → /C:/foo
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return FileID(u.String())
}

// URIToPath converts a file:// URI back into a filesystem path.
// Non-file URIs yield ok=false.
func URIToPath(uri FileID) (string, bool) {
	u, err := url.Parse(string(uri))
	if err != nil || u.Scheme != "file" {
		return "", false
	}
	p := u.Path
	if runtime.GOOS == "windows" && len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p), true
}

// ResolveURI resolves a relative reference (as written in an include
// directive) against base, the same way a browser resolves a relative link:
// a file base resolves against its directory, a base ending in "/" resolves
// inside itself.
func ResolveURI(base FileID, relative string) (FileID, bool) {
	b, err := url.Parse(string(base))
	if err != nil {
		return "", false
	}
	ref := &url.URL{Path: filepath.ToSlash(relative)}
	return FileID(b.ResolveReference(ref).String()), true
}

// DisplayPath returns the filesystem path of uri when it has one, or the URI itself.
func DisplayPath(uri FileID) string {
	if p, ok := URIToPath(uri); ok {
		return p
	}
	return string(uri)
}
