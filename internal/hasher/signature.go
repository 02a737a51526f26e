package hasher

import (
	"context"
	"encoding/hex"
	"path/filepath"
	"slices"

	"github.com/gofindup/findup/internal/fsscan"
)

// TreeSignature folds every readable file under dir into a single digest.
// Files are visited in sorted relative-path order so the signature is
// deterministic; each file contributes its slash-separated relative path,
// a NUL delimiter, and its hex content digest. The delimiter keeps the
// (path, digest) records unambiguous, since paths never contain NUL.
// Unreadable files are skipped, matching the tolerance of the rest of the
// tool, so a signature only covers what could be read.
func (a Algorithm) TreeSignature(ctx context.Context, dir string, exclude map[string]struct{}) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	var files []fsscan.FileMetadata
	for metadata := range fsscan.WalkDirectory(absDir, exclude) {
		if metadata.Error != nil {
			continue
		}
		files = append(files, metadata)
	}
	slices.SortFunc(files, func(l, r fsscan.FileMetadata) int {
		if l.Path < r.Path {
			return -1
		}
		if l.Path > r.Path {
			return 1
		}
		return 0
	})

	combined := a.New()
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		digest, err := a.File(ctx, file.Path)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(absDir, file.Path)
		if err != nil {
			rel = file.Path
		}
		combined.Write([]byte(filepath.ToSlash(rel)))
		combined.Write([]byte{0})
		combined.Write([]byte(digest))
	}
	return hex.EncodeToString(combined.Sum(nil)), nil
}
