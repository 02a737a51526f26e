package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofindup/findup/internal/dupfind/testutil"
	"github.com/gofindup/findup/internal/report"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestScan_ReportsDuplicates(t *testing.T) {
	root := testutil.Tree(t, map[string]string{
		"a.txt": "hello",
		"b.txt": "hello",
		"c.txt": "world",
	})

	out, err := runCommand(t, "--quiet", root)
	require.NoError(t, err)

	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.txt")
	assert.NotContains(t, out, "c.txt")
	assert.Contains(t, out, "Duplicates found: 1 in 1 groups")
}

func TestScan_JSONExport(t *testing.T) {
	root := testutil.Tree(t, map[string]string{
		"a.txt": "hello",
		"b.txt": "hello",
	})
	outputPath := filepath.Join(t.TempDir(), "dups.json")

	_, err := runCommand(t, "--quiet", "--output", outputPath, root)
	require.NoError(t, err)

	doc, err := report.Load(outputPath)
	require.NoError(t, err)
	require.Len(t, doc.Groups, 1)
	for _, paths := range doc.Groups {
		assert.ElementsMatch(t, []string{
			filepath.Join(root, "a.txt"),
			filepath.Join(root, "b.txt"),
		}, paths)
	}
}

func TestScan_AutoDeleteKeepNewest(t *testing.T) {
	root := testutil.Tree(t, map[string]string{
		"old.txt": "hello",
		"new.txt": "hello",
	})
	past := mustTime(t, root, "old.txt")

	out, err := runCommand(t, "--quiet", "--auto-delete", "--keep", "newest", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 files")

	_, statErr := os.Stat(filepath.Join(root, "new.txt"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(past)
	assert.True(t, os.IsNotExist(statErr))
}

func TestScan_InvalidRoot(t *testing.T) {
	_, err := runCommand(t, "--quiet", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestScan_BadFlagValues(t *testing.T) {
	root := t.TempDir()

	_, err := runCommand(t, "--algo", "md5", root)
	assert.Error(t, err)

	_, err = runCommand(t, "--keep", "oldest", root)
	assert.Error(t, err)
}

func TestHash_File(t *testing.T) {
	root := testutil.Tree(t, map[string]string{"a.txt": "hello"})
	path := filepath.Join(root, "a.txt")

	out, err := runCommand(t, "hash", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	// Same content hashed twice gives identical output.
	again, err := runCommand(t, "hash", path)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestHash_DirectoryRequiresSignature(t *testing.T) {
	root := testutil.Tree(t, map[string]string{"a.txt": "hello"})

	_, err := runCommand(t, "hash", root)
	assert.Error(t, err)

	out, err := runCommand(t, "hash", "--signature", root)
	require.NoError(t, err)
	assert.Contains(t, out, root)
}

// mustTime backdates the named file and returns its full path.
func mustTime(t *testing.T, root, name string) string {
	t.Helper()
	path := filepath.Join(root, name)
	info, err := os.Stat(path)
	require.NoError(t, err)
	past := info.ModTime().Add(-24 * time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))
	return path
}
