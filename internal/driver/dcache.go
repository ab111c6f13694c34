package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"nvgtls/internal/diag"
	"nvgtls/internal/project"
	"nvgtls/internal/source"
	"nvgtls/internal/token"
)

// Current schema version - increment when TokenPayload format changes
const diskCacheSchemaVersion uint16 = 2

// schemaDigest salts every key, so a schema bump never reads old entries.
var schemaDigest = project.HashContent("nvgtls/tokens", strconv.Itoa(int(diskCacheSchemaVersion)))

// TokenCacheKey is the disk cache key for content stored as uri.
func TokenCacheKey(uri source.FileID, content string) project.Digest {
	return project.Combine(schemaDigest, project.HashContent(string(uri), content))
}

// DiskCache хранит снимки токенизации на диске, ключ — TokenCacheKey(uri, content).
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// TokenPayload is one cached tokenization.
type TokenPayload struct {
	// Schema version for safe invalidation when format changes
	Schema  uint16
	URI     source.FileID
	Tokens  []token.Token
	Lexical []diag.Diagnostic
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens (creating if needed) a cache rooted at dir.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, "tokens", key.String()+".mp.zst")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *TokenPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	renamed := false
	defer func() {
		if !renamed {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	// msgpack поверх zstd: снимки токенов хорошо сжимаются
	zw, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(zw).Encode(payload); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err := os.Rename(f.Name(), p); err != nil {
		return err
	}
	renamed = true
	return nil
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key project.Digest, out *TokenPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		return false, err
	}
	defer zr.Close()
	if err := msgpack.NewDecoder(zr).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// Load implements inspect.TokenCache. Read or decode failures count as a miss.
func (c *DiskCache) Load(uri source.FileID, content string) ([]token.Token, []diag.Diagnostic, bool) {
	var payload TokenPayload
	ok, err := c.Get(TokenCacheKey(uri, content), &payload)
	if err != nil {
		log.Warningf("token cache read for %q: %s", uri, err)
		return nil, nil, false
	}
	if !ok || payload.Schema != diskCacheSchemaVersion || payload.URI != uri {
		return nil, nil, false
	}
	log.Debugf("token cache hit for %q", uri)
	return payload.Tokens, payload.Lexical, true
}

// Store implements inspect.TokenCache. Write failures are logged and ignored.
func (c *DiskCache) Store(uri source.FileID, content string, tokens []token.Token, lexical []diag.Diagnostic) {
	payload := &TokenPayload{
		Schema:  diskCacheSchemaVersion,
		URI:     uri,
		Tokens:  tokens,
		Lexical: lexical,
	}
	if err := c.Put(TokenCacheKey(uri, content), payload); err != nil {
		log.Warningf("token cache write for %q: %s", uri, err)
	}
}
