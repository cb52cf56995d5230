package dictionary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileCache stores raw lookup responses on disk, one file per word, so a
// word already fetched never spends another request against a metered
// backend. Responses are kept per backend because the same word can yield
// different payloads from different references.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (c *FileCache) filePath(backend, word string) string {
	return filepath.Join(c.rootDir, backend, word+".json")
}

// Fetch returns the cached response for word, or calls fetch and stores the
// result before returning it.
func (c *FileCache) Fetch(backend, word string, fetch func() ([]byte, error)) ([]byte, error) {
	localFilePath := c.filePath(backend, word)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := c.read(backend, word)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := fetch()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(localFilePath), 0o755); err != nil {
		return contents, fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(localFilePath)
	if err != nil {
		return contents, fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return contents, fmt.Errorf("file.Write > %w", err)
	}
	return contents, nil
}

func (c *FileCache) read(backend, word string) ([]byte, error) {
	file, err := os.Open(c.filePath(backend, word))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
