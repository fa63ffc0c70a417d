// Package filesystem stores package fragments as files under a root directory.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"packagedsl/internal/application/common/slogger"
	domainerrors "packagedsl/internal/domain/errors/domain"
)

const defaultExtension = ".swift"

// FragmentStore implements outbound.FragmentStore on the local filesystem.
// Paths it returns and accepts are relative to the root and slash separated.
type FragmentStore struct {
	extension string
}

// NewFragmentStore creates a store that lists files ending in extension.
func NewFragmentStore(extension string) *FragmentStore {
	if extension == "" {
		extension = defaultExtension
	}
	return &FragmentStore{extension: extension}
}

// List returns every fragment under root in lexical path order. Hidden
// directories such as .build and .git are not descended into, and paths matched by
// the root's ignore file are left out.
func (s *FragmentStore) List(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open fragment root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fragment root %s: %w", root, domainerrors.ErrNotADirectory)
	}

	rules, err := loadIgnoreRules(root)
	if err != nil {
		return nil, err
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") || rules.Ignored(rel) {
				slogger.Debug(ctx, "Skipping directory", slogger.Fields{"path": rel})
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || filepath.Ext(path) != s.extension || rules.Ignored(rel) {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list fragments in %s: %w", root, err)
	}

	slices.Sort(paths)
	slogger.Debug(ctx, "Listed fragments", slogger.Fields{"root": root, "count": len(paths)})
	return paths, nil
}

// Read returns the content of one fragment.
func (s *FragmentStore) Read(ctx context.Context, root, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := resolve(root, path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragment %s: %w", path, err)
	}
	return content, nil
}

// Write replaces a fragment, creating parent directories as needed.
func (s *FragmentStore) Write(ctx context.Context, root, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := resolve(root, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return fmt.Errorf("failed to write fragment %s: %w", path, err)
	}
	slogger.Debug(ctx, "Wrote fragment", slogger.Fields{"path": path, "bytes": len(content)})
	return nil
}

// Remove deletes one fragment.
func (s *FragmentStore) Remove(ctx context.Context, root, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := resolve(root, path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove fragment %s: %w", path, err)
	}
	slogger.Debug(ctx, "Removed fragment", slogger.Fields{"path": path})
	return nil
}

// resolve joins a relative fragment path onto root, refusing paths that escape it.
func resolve(root, path string) (string, error) {
	if path == "" || filepath.IsAbs(path) {
		return "", fmt.Errorf("fragment path %q: %w", path, domainerrors.ErrInvalidPath)
	}
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("fragment path %q: %w", path, domainerrors.ErrInvalidPath)
	}
	return filepath.Join(root, clean), nil
}
