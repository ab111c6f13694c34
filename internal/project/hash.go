package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest - фиксированный 256 битный хеш
type Digest [32]byte

// HashContent хеширует пару (uri, content); разделитель исключает коллизии склейки.
func HashContent(uri, content string) Digest {
	h := sha256.New()
	_, _ = h.Write([]byte(uri))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(content))
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Combine строит хеш H( first || rest1 || rest2 ... ). Порядок аргументов значим.
func Combine(first Digest, rest ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(first[:])
	for _, d := range rest {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
