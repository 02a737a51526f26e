// Package report renders scan results as text and as a versioned JSON
// export.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/gofindup/findup/internal/dupfind"
)

// Version is the JSON export schema version.
const Version = 1

// CompressedExt is appended to export paths written with compression.
const CompressedExt = ".zst"

type SkippedEntry struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Document is the persisted form of a scan result. Groups maps hex digests
// to path lists, matching the layout older tooling expects, with metadata
// alongside for forward compatibility.
type Document struct {
	Version   int                 `json:"version"`
	ScanID    string              `json:"scan_id"`
	Root      string              `json:"root"`
	Algorithm string              `json:"algorithm"`
	CreatedAt time.Time           `json:"created_at"`
	Groups    map[string][]string `json:"groups"`
	Skipped   []SkippedEntry      `json:"skipped,omitempty"`
}

// New builds a Document from a scan result, stamping it with a fresh scan
// id and the current time.
func New(res *dupfind.Result) *Document {
	doc := &Document{
		Version:   Version,
		ScanID:    uuid.NewString(),
		Root:      res.Root,
		Algorithm: string(res.Algorithm),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Groups:    make(map[string][]string, len(res.Groups)),
	}
	for _, g := range res.Groups {
		doc.Groups[g.Digest] = g.Paths()
	}
	for _, s := range res.Skipped {
		doc.Skipped = append(doc.Skipped, SkippedEntry{Path: s.Path, Reason: s.Kind.String()})
	}
	return doc
}

// Write encodes the document as indented JSON.
func (d *Document) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteFile writes the export to path. With compress set, the JSON is zstd
// compressed and CompressedExt is appended unless already present.
func (d *Document) WriteFile(path string, compress bool) (string, error) {
	if compress && !strings.HasSuffix(path, CompressedExt) {
		path += CompressedExt
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if !compress {
		if err := d.Write(f); err != nil {
			return "", fmt.Errorf("write export: %w", err)
		}
		return path, nil
	}

	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return "", fmt.Errorf("create zstd writer: %w", err)
	}
	if err := d.Write(zw); err != nil {
		zw.Close()
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("close zstd writer: %w", err)
	}
	return path, nil
}

// Read decodes a JSON export.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("unsupported export version %d", doc.Version)
	}
	return &doc, nil
}

// Load reads an export written by WriteFile, transparently decompressing
// paths with the CompressedExt suffix.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !strings.HasSuffix(path, CompressedExt) {
		return Read(f)
	}
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open zstd reader: %w", err)
	}
	defer zr.Close()
	return Read(zr)
}
