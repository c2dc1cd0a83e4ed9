// Package load reads stylesheets from disk or standard input and expands glob patterns.
package load

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Stdin is the file name that reads standard input.
const Stdin = "-"

// ErrNoMatch is returned when a glob pattern matches no files.
var ErrNoMatch = errors.New("no files match")

// ReadFile reads a stylesheet, see Decode. Stdin reads from r.
func ReadFile(name string, r io.Reader) ([]byte, error) {
	var data []byte
	var err error
	if name == Stdin {
		data, err = io.ReadAll(r)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode removes a UTF-8 byte order mark and decodes UTF-16 with a byte order mark to UTF-8. Other input is returned unchanged.
func Decode(data []byte) ([]byte, error) {
	if !hasBOM(data) {
		return data, nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

func hasBOM(data []byte) bool {
	return 3 <= len(data) && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF ||
		2 <= len(data) && (data[0] == 0xFE && data[1] == 0xFF || data[0] == 0xFF && data[1] == 0xFE)
}

// Expand returns the files matching the glob patterns in order, without duplicates. Patterns without glob characters are returned as is.
func Expand(patterns []string) ([]string, error) {
	files := []string{}
	seen := map[string]bool{}
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			files = append(files, name)
		}
	}

	for _, pattern := range patterns {
		if pattern == Stdin || !containsGlob(pattern) {
			add(pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pattern, err)
		} else if len(matches) == 0 {
			return nil, fmt.Errorf("%w %s", ErrNoMatch, pattern)
		}
		for _, match := range matches {
			add(match)
		}
	}
	return files, nil
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
