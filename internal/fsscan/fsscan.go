package fsscan

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// DefaultExcludes are directory names skipped by every walk unless the
// caller supplies their own exclusion set.
var DefaultExcludes = []string{".git", ".venv", "venv", "node_modules"}

// WalkFS walks the filesystem and yields one FileMetadata per regular file.
// Directories whose base name is in exclude are pruned along with their
// subtrees. Symbolic links are not followed; a symlinked directory is never
// descended into and a symlinked file is not reported. Traversal errors are
// yielded inline with Error set so the caller can record and continue.
// This is useful for testing with custom filesystems or for fuzzing.
func WalkFS(fsys fs.FS, exclude map[string]struct{}) iter.Seq[FileMetadata] {
	return func(yield func(FileMetadata) bool) {
		if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield(FileMetadata{Path: path, Error: err}) {
					return fs.SkipAll
				}
				// Skip the subtree, not the walk.
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if _, skip := exclude[d.Name()]; skip && path != "." {
					return fs.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				if !yield(FileMetadata{Path: path, Error: err}) {
					return fs.SkipAll
				}
				return nil
			}
			if !yield(FileMetadata{
				Path:  path,
				Size:  info.Size(),
				Mtime: info.ModTime().UnixNano(),
				Mode:  info.Mode(),
			}) {
				return fs.SkipAll
			}
			return nil
		}); err != nil {
			yield(FileMetadata{Path: "", Error: err})
		}
	}
}

// WalkDirectory walks a directory on the OS filesystem, yielding absolute
// paths. For testing with custom filesystems, use WalkFS instead.
func WalkDirectory(dir string, exclude map[string]struct{}) iter.Seq[FileMetadata] {
	return func(yield func(FileMetadata) bool) {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			yield(FileMetadata{Path: dir, Error: err})
			return
		}
		for metadata := range WalkFS(os.DirFS(absDir), exclude) {
			if metadata.Path != "" {
				metadata.Path = filepath.Join(absDir, filepath.FromSlash(metadata.Path))
			}
			if !yield(metadata) {
				return
			}
		}
	}
}

// ExcludeSet converts a list of directory names into the set form consumed
// by the walk functions. Nil input yields DefaultExcludes.
func ExcludeSet(names []string) map[string]struct{} {
	if names == nil {
		names = DefaultExcludes
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
