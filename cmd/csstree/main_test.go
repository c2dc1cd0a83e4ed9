package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd(strings.NewReader(stdin), stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestTokens(t *testing.T) {
	out, _, err := run(t, "a{b:c}", "tokens", "-")
	require.NoError(t, err)
	assert.Equal(t, `0..1 Word("a")
1..2 OpenCurly("{")
2..3 Word("b")
3..4 Colon(":")
4..5 Word("c")
5..6 CloseCurly("}")
`, out)
}

func TestTokensLenient(t *testing.T) {
	_, _, err := run(t, "a /* b", "tokens", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unclosed comment")

	out, _, err := run(t, "a /* b", "tokens", "--lenient", "-")
	require.NoError(t, err)
	assert.Equal(t, "0..1 Word(\"a\")\n1..2 Space(\" \")\n2..6 Comment(\"/* b\")\n", out)

	t.Setenv("CSSTREE_LENIENT", "true")
	_, _, err = run(t, "a /* b", "tokens", "-")
	require.NoError(t, err)
}

func TestParse(t *testing.T) {
	out, _, err := run(t, "a{b:c}", "parse", "-")
	require.NoError(t, err)
	assert.Equal(t, "Root@0..6\n  Rule@0..6\n    selector: `a`\n    Declaration@2..5\n      prop: `b`\n      value: `c`\n", out)

	out, _, err = run(t, "a{b:c}", "parse", "--format", "json", "-")
	require.NoError(t, err)
	tree := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Equal(t, "Root", tree["type"])
	rule := tree["nodes"].([]any)[0].(map[string]any)
	assert.Equal(t, "a", rule["selector"])
	assert.Equal(t, 6.0, rule["end"])

	out, _, err = run(t, "@media screen{}", "parse", "-f", "yaml", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "type: AtRule")
	assert.Contains(t, out, "name: media")
	assert.Contains(t, out, "params: screen")

	_, _, err = run(t, "a{}", "parse", "--format", "xml", "-")
	assert.EqualError(t, err, `unknown format "xml"`)
}

func TestParseError(t *testing.T) {
	_, _, err := run(t, "a{b:c", "parse", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instead of EOF")
	assert.Contains(t, err.Error(), "in - on line 1")

	_, _, err = run(t, "@media x{a{b:c}}", "parse", "--max-depth", "1", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nesting too deep")

	t.Setenv("CSSTREE_MAX_DEPTH", "1")
	_, _, err = run(t, "@media x{a{b:c}}", "parse", "-")
	require.Error(t, err)
}

func TestPrint(t *testing.T) {
	src := "a {\n  color: #ffffff;\n  margin: 16px;\n}\n/* end */\n"
	out, _, err := run(t, src, "print", "-")
	require.NoError(t, err)
	assert.Equal(t, src, out)

	out, _, err = run(t, src, "print", "--minify", "--short-colors", "--px-to-rem", "-")
	require.NoError(t, err)
	assert.Equal(t, "a{color:#fff;margin:1rem}", out)

	out, _, err = run(t, "a{margin:15px}", "print", "--px-to-rem", "--root-value", "10", "-")
	require.NoError(t, err)
	assert.Equal(t, "a{margin:1.5rem}", out)

	t.Setenv("CSSTREE_ROOT_VALUE", "8")
	out, _, err = run(t, "a{margin:16px}", "print", "--px-to-rem", "-")
	require.NoError(t, err)
	assert.Equal(t, "a{margin:2rem}", out)

	out, _, err = run(t, "a{color:red}", "print", "--reverse-props", "-")
	require.NoError(t, err)
	assert.Equal(t, "a{roloc:red}", out)
}

func TestPrintSourceMap(t *testing.T) {
	dir := writeFiles(t, map[string]string{"in.css": "a {\n  b: c;\n}"})
	output := filepath.Join(dir, "out.css")
	mapFile := filepath.Join(dir, "out.css.map")

	_, _, err := run(t, "", "print", "--minify", "-o", output, "--source-map", mapFile, filepath.Join(dir, "in.css"))
	require.NoError(t, err)

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "a{b:c}\n/*# sourceMappingURL=out.css.map */\n", string(out))

	data, err := os.ReadFile(mapFile)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 3.0, m["version"])
	assert.Equal(t, "out.css", m["file"])
	assert.Equal(t, "AAAA,EACE,GACF", m["mappings"])
	assert.Equal(t, []any{"a {\n  b: c;\n}"}, m["sourcesContent"])
}

func TestCheck(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.css":  "a{b:c}",
		"bad.css":   "a{",
		"other.txt": "a{",
	})

	out, stderr, err := run(t, "", "check", "--jobs", "1", filepath.Join(dir, "*.css"))
	require.EqualError(t, err, "1 of 2 files failed")
	assert.Contains(t, out, "bad.css")
	assert.NotContains(t, out, "good.css")
	assert.Contains(t, stderr, "checked 2 files")

	_, _, err = run(t, "", "check", filepath.Join(dir, "good.css"))
	require.NoError(t, err)

	_, _, err = run(t, "", "check", filepath.Join(dir, "*.scss"))
	require.Error(t, err)
}

func TestCheckConfig(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.css": "a{b:c} /* d",
	})
	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("files:\n  - "+filepath.Join(dir, "*.css")+"\nlenient: true\n"), 0644))

	_, _, err := run(t, "", "check", "--config", config)
	require.NoError(t, err)

	_, _, err = run(t, "", "check", "--config", config, "--lenient=false")
	require.EqualError(t, err, "1 of 1 files failed")

	_, _, err = run(t, "", "check")
	require.EqualError(t, err, "no files specified and no files found in config")

	_, _, err = run(t, "", "check", "--config", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "csstree "))

	out, _, err = run(t, "", "version", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"goVersion"`)
}
