package batch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "AAPL.txt", "")
	write(t, dir, "MSFT.txt", "")
	write(t, dir, "notes.md", "")
	write(t, dir, "nested/IBM.txt", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.txt"), 0o755))

	files, err := Discover(dir, "*.txt")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "AAPL.txt"),
		filepath.Join(dir, "MSFT.txt"),
	}, files)

	files, err = Discover(dir, "**/*.txt")
	require.NoError(t, err)
	assert.Contains(t, files, filepath.Join(dir, "nested", "IBM.txt"))
}

func TestDiscover_SkipsHidden(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.txt", "")
	write(t, dir, ".hidden.txt", "")
	write(t, dir, ".cache/b.txt", "")

	files, err := Discover(dir, "*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt")}, files)

	files, err = Discover(dir, "**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt")}, files)

	files, err = Discover(dir, ".*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, ".hidden.txt")}, files)
}

func TestRun_HiddenFileNotConverted(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, ".hidden.txt", "<td>1</td>")

	var out bytes.Buffer
	summary, err := Run(context.Background(), Options{Dir: dir, Out: &out})
	require.NoError(t, err)

	assert.True(t, summary.NoInput)
	assert.NoFileExists(t, filepath.Join(dir, ".hidden.csv"))
}

func TestDiscover_BadPattern(t *testing.T) {
	_, err := Discover(t.TempDir(), "[")
	require.Error(t, err)
	assert.ErrorIs(t, err, doublestar.ErrBadPattern)
}

func TestRun_NoInput(t *testing.T) {
	var out bytes.Buffer

	summary, err := Run(context.Background(), Options{Dir: t.TempDir(), Out: &out})

	require.NoError(t, err)
	assert.True(t, summary.NoInput)
	assert.Equal(t, 0, summary.Found)
	assert.Equal(t, "Error: no *.txt files found\n", out.String())
}

func TestRun_MixedFiles(t *testing.T) {
	dir := t.TempDir()
	good := write(t, dir, "AAPL.txt", "<tr><td>2024-01-02</td><td>187.15</td></tr>")
	empty := write(t, dir, "EMPTY.txt", "no table")
	bad := write(t, dir, "LATIN.txt", "<td>caf\xe9</td>")

	var out bytes.Buffer
	summary, err := Run(context.Background(), Options{Dir: dir, Out: &out})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Found)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
	assert.False(t, summary.NoInput)
	require.Len(t, summary.Results, 3)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Found 3 *.txt files to process", lines[0])
	assert.Equal(t, "All files processed", lines[4])

	body := strings.Join(lines[1:4], "\n")
	assert.Contains(t, body, "Success: converted "+good+" to "+filepath.Join(dir, "AAPL.csv"))
	assert.Contains(t, body, "Error: no table data found in file "+empty)
	assert.Contains(t, body, "Error: failed to process file "+bad+" - ")

	assert.FileExists(t, filepath.Join(dir, "AAPL.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "EMPTY.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "LATIN.csv"))
}

func TestRun_Unescape(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "T.txt", "<td>AT&amp;T</td>")

	_, err := Run(context.Background(), Options{Dir: dir, Unescape: true, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "T.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\nAT&T\n")
}

func TestRun_CustomPattern(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.html", "<td>1</td>")
	write(t, dir, "b.txt", "<td>2</td>")

	var out bytes.Buffer
	summary, err := Run(context.Background(), Options{Dir: dir, Pattern: "*.html", Out: &out})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Succeeded)
	assert.FileExists(t, filepath.Join(dir, "a.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "b.csv"))
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.txt", "<td>1</td>")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	summary, err := Run(ctx, Options{Dir: dir, Out: &out})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, summary.Results)
	assert.NotContains(t, out.String(), "All files processed")
	assert.NoFileExists(t, filepath.Join(dir, "a.csv"))
}

func TestRun_BadPattern(t *testing.T) {
	_, err := Run(context.Background(), Options{Dir: t.TempDir(), Pattern: "[", Out: &bytes.Buffer{}})
	assert.Error(t, err)
}
