package dupfind

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofindup/findup/internal/dupfind/testutil"
)

func TestParseRetentionPolicy(t *testing.T) {
	policy, err := ParseRetentionPolicy("")
	require.NoError(t, err)
	assert.Equal(t, KeepFirst, policy)

	policy, err = ParseRetentionPolicy("newest")
	require.NoError(t, err)
	assert.Equal(t, KeepNewest, policy)

	_, err = ParseRetentionPolicy("oldest")
	assert.Error(t, err)
}

func TestDeleteDuplicates_KeepFirst(t *testing.T) {
	root := testutil.Tree(t, map[string]string{
		"a.txt": "hello",
		"b.txt": "hello",
		"c.txt": "hello",
	})

	result, err := Find(context.Background(), Options{Root: root})
	require.NoError(t, err)
	require.Len(t, result.Groups, 1)

	summary, err := DeleteDuplicates(result.Groups, KeepFirst, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.GroupsProcessed)
	assert.Equal(t, 2, summary.FilesDeleted)
	assert.Equal(t, int64(10), summary.BytesReclaimed)
	assert.Empty(t, summary.Failures)

	// First in path order survives.
	_, err = os.Stat(filepath.Join(root, "a.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "b.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, "c.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteDuplicates_KeepNewest(t *testing.T) {
	root := testutil.Tree(t, map[string]string{
		"old.txt": "hello",
		"new.txt": "hello",
	})

	past := time.Now().Add(-24 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(root, "old.txt"), past, past))

	result, err := Find(context.Background(), Options{Root: root})
	require.NoError(t, err)
	require.Len(t, result.Groups, 1)

	summary, err := DeleteDuplicates(result.Groups, KeepNewest, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FilesDeleted)
	assert.Equal(t, int64(5), summary.BytesReclaimed)

	_, err = os.Stat(filepath.Join(root, "new.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "old.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteDuplicates_PartialFailureContinues(t *testing.T) {
	root := testutil.Tree(t, map[string]string{
		"a.txt": "hello",
		"b.txt": "hello",
		"c.txt": "hello",
	})

	result, err := Find(context.Background(), Options{Root: root})
	require.NoError(t, err)
	require.Len(t, result.Groups, 1)

	// Remove b.txt behind the executor's back to force one failure.
	require.NoError(t, os.Remove(filepath.Join(root, "b.txt")))

	summary, err := DeleteDuplicates(result.Groups, KeepFirst, nil)
	assert.Error(t, err)

	// c.txt is still deleted despite b.txt failing.
	assert.Equal(t, 1, summary.FilesDeleted)
	assert.Equal(t, int64(5), summary.BytesReclaimed)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, DeleteFailed, summary.Failures[0].Kind)
	assert.Equal(t, filepath.Join(root, "b.txt"), summary.Failures[0].Path)

	_, err = os.Stat(filepath.Join(root, "a.txt"))
	assert.NoError(t, err)
}
