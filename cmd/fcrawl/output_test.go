package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/michaelscutari/fcrawl/internal/crawl"
	"github.com/michaelscutari/fcrawl/internal/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	sample   = []entry.Dir{{
		Path:    "/data/logs",
		ModTime: fixedNow.Add(-48 * time.Hour),
		Files: []entry.File{
			{Name: "b.log", ModTime: fixedNow.Add(-time.Hour)},
			{Name: "a.log", ModTime: fixedNow.Add(-2 * time.Hour)},
		},
	}}
)

func testPrinter(buf *bytes.Buffer, format string) *printer {
	p := newPrinter(buf, format, false)
	p.now = func() time.Time { return fixedNow }
	return p
}

func TestPrintTextFiles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testPrinter(&buf, "text").Print(crawl.KindFiles, "/data/logs", sample))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "/data/logs/  (2 files, modified 2 days ago)", lines[0])
	assert.Contains(t, lines[1], "b.log")
	assert.Contains(t, lines[1], "(1 hour ago)")
	assert.Contains(t, lines[2], "a.log")
	assert.NotContains(t, buf.String(), "\x1b[", "color disabled")
}

func TestPrintTextNoResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testPrinter(&buf, "text").Print(crawl.KindFiles, "/x", nil))
	assert.Equal(t, "no matching files\n", buf.String())

	buf.Reset()
	require.NoError(t, testPrinter(&buf, "text").Print(crawl.KindDirs, "/x", nil))
	assert.Equal(t, "no matching directories\n", buf.String())
}

func TestPrintTextRecursiveSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testPrinter(&buf, "text").Print(crawl.KindRecursive, "/data", sample))
	assert.True(t, strings.HasSuffix(buf.String(), "2 files in 1 directories under /data\n"))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testPrinter(&buf, "json").Print(crawl.KindFiles, "/data/logs", sample))

	var got result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "files", got.Kind)
	require.Len(t, got.Dirs, 1)
	assert.Equal(t, []string{"b.log", "a.log"}, []string{got.Dirs[0].Files[0].Name, got.Dirs[0].Files[1].Name})
}

func TestPrintJSONEmptyIsList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testPrinter(&buf, "json").Print(crawl.KindFiles, "/x", nil))
	assert.Contains(t, buf.String(), `"dirs": []`)
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testPrinter(&buf, "yaml").Print(crawl.KindRecursive, "/data", sample))

	var got result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "recursive", got.Kind)
	assert.Equal(t, "/data/logs", got.Dirs[0].Path)
}

func TestPrintUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, testPrinter(&buf, "xml").Print(crawl.KindFiles, "/x", sample))
}
