package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// FileFetcher reads sources from a directory tree.
type FileFetcher struct {
	fsys    fs.FS
	pattern string
}

// NewFileFetcher serves sources below root. An empty pattern means DefaultPattern.
func NewFileFetcher(root, pattern string) (*FileFetcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data dir %q is not a directory", root)
	}
	return NewFSFetcher(os.DirFS(root), pattern)
}

// NewFSFetcher serves sources from any fs.FS.
func NewFSFetcher(fsys fs.FS, pattern string) (*FileFetcher, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid source pattern %q", pattern)
	}
	return &FileFetcher{fsys: fsys, pattern: pattern}, nil
}

// Fetch reads one file. Names are slash-separated paths relative to the root.
func (f *FileFetcher) Fetch(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

// List walks the tree and returns every file matching the pattern, in lexical order.
func (f *FileFetcher) List(ctx context.Context) ([]string, error) {
	var names []string
	err := doublestar.GlobWalk(f.fsys, f.pattern, func(path string, d fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover sources: %w", err)
	}
	return names, nil
}

var _ Fetcher = (*FileFetcher)(nil)
