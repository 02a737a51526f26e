package fsscan

import "io/fs"

type FileMetadata struct {
	Path  string
	Size  int64
	Mtime int64
	Mode  fs.FileMode
	Error error
}
