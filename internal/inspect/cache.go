package inspect

import (
	"slices"

	"nvgtls/internal/source"
)

// visit is the per-file visitation state.
type visit uint8

const (
	notStarted visit = iota
	inProgress
	done
)

type entry struct {
	result *Result
	state  visit
}

// Cache maps files to their latest Result. One file (the predefined one) is
// pinned and survives Clear.
type Cache struct {
	entries map[source.FileID]*entry
	pinned  source.FileID
}

func NewCache(pinned source.FileID) *Cache {
	return &Cache{entries: make(map[source.FileID]*entry), pinned: pinned}
}

// Get returns the stored result, which may still be a placeholder.
func (c *Cache) Get(uri source.FileID) (*Result, bool) {
	e, ok := c.entries[uri]
	if !ok {
		return nil, false
	}
	return e.result, true
}

func (c *Cache) state(uri source.FileID) visit {
	if e, ok := c.entries[uri]; ok {
		return e.state
	}
	return notStarted
}

// begin stores the placeholder for uri and marks it in progress.
func (c *Cache) begin(uri source.FileID) {
	c.entries[uri] = &entry{result: EmptyResult(uri), state: inProgress}
}

// Put stores res as the finished result for uri, replacing any previous entry.
func (c *Cache) Put(uri source.FileID, res *Result) {
	c.entries[uri] = &entry{result: res, state: done}
}

// Clear drops every entry except the pinned one.
func (c *Cache) Clear() {
	for uri := range c.entries {
		if uri != c.pinned {
			delete(c.entries, uri)
		}
	}
}

func (c *Cache) Len() int { return len(c.entries) }

// URIs returns the cached files in lexical order.
func (c *Cache) URIs() []source.FileID {
	uris := make([]source.FileID, 0, len(c.entries))
	for uri := range c.entries {
		uris = append(uris, uri)
	}
	slices.Sort(uris)
	return uris
}
