// Package cache implements the portable build cache: a gzip-compressed JSON
// snapshot of the bundling engine's cache whose absolute base path is
// rewritten to a placeholder token so the file survives relocation of the
// working directory.
package cache

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildCache = (*Portable)(nil)

// Portable implements ports.BuildCache. Save retains the last blob so
// rebuilds within the same run reuse it without touching the file again.
type Portable struct {
	disabled bool
	mu       sync.Mutex
	held     *domain.CacheBlob
}

// NewPortable creates a Portable cache. A disabled cache turns Restore and
// Save into no-ops.
func NewPortable(disabled bool) *Portable {
	return &Portable{disabled: disabled}
}

// Restore loads and rehydrates the cache file at cachePath. It returns nil,
// nil when caching is disabled, when a blob is already held in process, or
// when no cache file exists. A file that cannot be decompressed or parsed is
// a hard error: a corrupt cache cannot be safely used.
func (p *Portable) Restore(cachePath, basePath string) (*domain.CacheBlob, error) {
	if p.disabled {
		return nil, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.held != nil {
		return p.held, nil
	}

	//nolint:gosec // Path is derived from trusted build configuration
	data, err := os.ReadFile(filepath.FromSlash(cachePath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDecode.Error()), "path", cachePath)
	}

	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDecode.Error()), "path", cachePath)
	}
	text, err := io.ReadAll(gz)
	if err == nil {
		err = gz.Close()
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDecode.Error()), "path", cachePath)
	}

	text = bytes.ReplaceAll(text, []byte(domain.BasePathToken), jsonEncoded(normalize(basePath)))

	var blob domain.CacheBlob
	if err := json.Unmarshal(text, &blob); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDecode.Error()), "path", cachePath)
	}

	p.held = &blob
	return &blob, nil
}

// Save persists blob to cachePath with every literal occurrence of basePath
// replaced by the placeholder token, compressed at maximum ratio, overwriting
// any prior file. The blob is retained in process for reuse within the same
// run.
func (p *Portable) Save(cachePath, basePath string, blob *domain.CacheBlob) error {
	if p.disabled {
		return nil
	}

	p.mu.Lock()
	p.held = blob
	p.mu.Unlock()

	text, err := json.Marshal(blob)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheEncode.Error()), "path", cachePath)
	}

	// Substitution happens on the serialized text, matching the JSON-escaped
	// rendering of basePath so Save and Restore are exact inverses even when
	// the path would be escaped inside JSON strings.
	text = bytes.ReplaceAll(text, jsonEncoded(normalize(basePath)), []byte(domain.BasePathToken))

	var buf bytes.Buffer
	gz, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheEncode.Error()), "path", cachePath)
	}
	if _, err := gz.Write(text); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheEncode.Error()), "path", cachePath)
	}
	if err := gz.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheEncode.Error()), "path", cachePath)
	}

	target := filepath.FromSlash(cachePath)
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheEncode.Error()), "path", cachePath)
	}
	//nolint:gosec // Path is derived from trusted build configuration
	if err := os.WriteFile(target, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheEncode.Error()), "path", cachePath)
	}

	return nil
}

// jsonEncoded returns the JSON string rendering of s without the surrounding
// quotes.
func jsonEncoded(s string) []byte {
	b, _ := json.Marshal(s)
	return b[1 : len(b)-1]
}

func normalize(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
