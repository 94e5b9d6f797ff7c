// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cmdmap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/cmdnames/logger"
)

// DefaultExt is the extension of candidate source files in directory scans.
const DefaultExt = ".cs"

// ErrNotExist is returned by [Scanner.Scan] when the path is neither an
// existing file nor an existing directory.
var ErrNotExist = errors.New("not a file or directory")

// Scanner runs an [Extractor] over a file or a directory tree.
type Scanner struct {
	Extractor *Extractor
	// Ext is the extension marker of files scanned in directories.
	// If empty, DefaultExt is used.
	Ext string
}

// Scan extracts the mapping for path.
//
// A regular file is extracted directly regardless of its extension. A
// directory is walked recursively and every regular file, or symbolic
// link to one, with the configured extension is extracted. Links to
// directories are not followed. Directory entries are visited in
// lexical order, so on key collisions the file whose path sorts last
// wins.
func (s *Scanner) Scan(ctx context.Context, path string) (Mapping, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrNotExist, err)
	}
	switch {
	case fi.Mode().IsRegular():
		return s.Extractor.ExtractFile(ctx, path), nil
	case fi.IsDir():
		return s.scanDir(ctx, path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrNotExist)
	}
}

func (s *Scanner) scanDir(ctx context.Context, root string) (Mapping, error) {
	s.Extractor.logf("scanning directory: %s", root)

	ext := s.Ext
	if ext == "" {
		ext = DefaultExt
	}

	acc := make(Mapping)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// The root itself was checked by Scan; anything failing here
			// is a subtree or file that went away or is unreadable.
			s.Extractor.logf("error reading file %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Links to files are scanned, links to directories are not
			// descended into. A dangling link is reported by ExtractFile.
			if fi, err := os.Stat(path); err == nil && !fi.Mode().IsRegular() {
				logger.Debug(ctx, "skipping link to non-regular file", slog.String("path", path))
				return nil
			}
		} else if !d.Type().IsRegular() {
			logger.Debug(ctx, "skipping non-regular file", slog.String("path", path))
			return nil
		}
		acc.Merge(s.Extractor.ExtractFile(ctx, path))
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "directory scanned", slog.String("root", root), slog.Int("entries", len(acc)))
	return acc, nil
}
