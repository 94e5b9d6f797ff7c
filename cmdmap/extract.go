// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cmdmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.astrophena.name/cmdnames/logger"
)

// DefaultNamespace is the enum type that qualifies command identifiers.
const DefaultNamespace = "ApplicationCommand"

// Word and space classes follow Unicode, so that non-ASCII identifiers
// and separators such as NBSP are recognized.
const (
	word  = `[\p{L}\p{N}_]`
	space = `\s\v\p{Z}\x1c-\x1f\x85`
	ws    = `[` + space + `]*`
	ws1   = `[` + space + `]+`
	// Any token without parentheses, whitespace, commas or quotes.
	wild = `[^()` + space + `,"]+`
)

var identRe = regexp.MustCompile(`^[\p{L}_]` + word + `*$`)

// ValidNamespace reports whether ns can be used as a namespace token.
func ValidNamespace(ns string) bool { return identRe.MatchString(ns) }

// Extractor finds registration calls in source text.
type Extractor struct {
	// Logf receives diagnostics about files that could not be read.
	// If nil, diagnostics are dropped.
	Logf func(format string, args ...any)

	namespace string
	re        *regexp.Regexp
}

// NewExtractor returns an Extractor matching identifiers qualified by
// namespace. It returns an error if namespace is not a word identifier.
func NewExtractor(namespace string) (*Extractor, error) {
	if !ValidNamespace(namespace) {
		return nil, fmt.Errorf("invalid namespace %q", namespace)
	}
	// Outer type and inner callee are wildcards. Only the last string
	// literal of the inner call is captured.
	re := regexp.MustCompile(`new` + ws1 + wild + ws + `\(` + ws + wild + ws + `\(` +
		`(?:` + ws + `".*?"` + ws + `,` + ws + `)*` + ws + `"(.*?)"` + ws + `\)` +
		ws + `,` + ws + `(` + regexp.QuoteMeta(namespace) + `\.` + word + `+)` + ws + `\)` + ws + `;`)
	return &Extractor{namespace: namespace, re: re}, nil
}

// Namespace returns the namespace token the Extractor matches.
func (e *Extractor) Namespace() string { return e.namespace }

// Extract returns the mapping of all registration calls found in src.
// Later calls overwrite earlier ones with the same key.
func (e *Extractor) Extract(src []byte) Mapping {
	m := make(Mapping)
	for _, match := range e.re.FindAllSubmatch(src, -1) {
		name := Escape(strings.TrimSpace(string(match[1])))
		ident := string(match[2])
		key := ident[strings.LastIndexByte(ident, '.')+1:]
		m[key] = name
	}
	return m
}

// Escape escapes s for use inside a double-quoted C# string literal.
// Backslashes are doubled before quotes are escaped.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// ExtractFile reads the file at path and extracts its mapping.
//
// Read failures are reported through Logf and yield an empty mapping.
// Content that is not valid UTF-8 silently yields an empty mapping.
func (e *Extractor) ExtractFile(ctx context.Context, path string) Mapping {
	src, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e.logf("file not found at %s", path)
		} else {
			e.logf("error reading file %s: %v", path, err)
		}
		return Mapping{}
	}
	if !utf8.Valid(src) {
		logger.Debug(ctx, "skipping non-text file", slog.String("path", path))
		return Mapping{}
	}
	m := e.Extract(src)
	logger.Debug(ctx, "extracted", slog.String("path", path), slog.Int("matches", len(m)))
	return m
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (e *Extractor) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}
