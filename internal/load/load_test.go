package load

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestDecode(t *testing.T) {
	var decodeTests = []struct {
		name     string
		data     string
		expected string
	}{
		{"plain", "a{b:c}", "a{b:c}"},
		{"invalid utf-8", "a{b:\xff}", "a{b:\xff}"},
		{"utf-8 bom", "\xef\xbb\xbfa{}", "a{}"},
		{"utf-16le bom", "\xff\xfea\x00{\x00}\x00", "a{}"},
		{"utf-16be bom", "\xfe\xff\x00a\x00{\x00}", "a{}"},
		{"utf-16 non-ascii", "\xff\xfe\xfc\x00", "ü"},
		{"empty", "", ""},
	}
	for _, tt := range decodeTests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Decode([]byte(tt.data))
			test.Error(t, err)
			test.String(t, string(out), tt.expected)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "a.css")
	test.Error(t, os.WriteFile(name, []byte("\xef\xbb\xbfa{}"), 0644))

	data, err := ReadFile(name, nil)
	test.Error(t, err)
	test.String(t, string(data), "a{}")

	data, err = ReadFile(Stdin, strings.NewReader("b{}"))
	test.Error(t, err)
	test.String(t, string(data), "b{}")

	_, err = ReadFile(filepath.Join(dir, "missing.css"), nil)
	test.That(t, errors.Is(err, os.ErrNotExist), "expected not exist error")
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.css", "b.txt", "sub/c.css", "sub/deep/d.css"} {
		name = filepath.Join(dir, filepath.FromSlash(name))
		test.Error(t, os.MkdirAll(filepath.Dir(name), 0755))
		test.Error(t, os.WriteFile(name, []byte("a{}"), 0644))
	}
	join := func(names ...string) []string {
		for i, name := range names {
			names[i] = filepath.Join(dir, filepath.FromSlash(name))
		}
		return names
	}

	files, err := Expand(join("*.css"))
	test.Error(t, err)
	test.T(t, files, join("a.css"))

	files, err = Expand(join("**/*.css"))
	test.Error(t, err)
	sort.Strings(files)
	test.T(t, files, join("a.css", "sub/c.css", "sub/deep/d.css"))

	files, err = Expand(append(join("sub/c.css", "sub/*.css"), Stdin))
	test.Error(t, err)
	test.T(t, files, append(join("sub/c.css"), Stdin))

	files, err = Expand(join("missing.css"))
	test.Error(t, err)
	test.T(t, files, join("missing.css"))

	_, err = Expand(join("*.scss"))
	test.That(t, errors.Is(err, ErrNoMatch), "expected no match error")
}
