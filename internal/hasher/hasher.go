// Package hasher computes streaming content digests for files.
//
// The default algorithm is xxhash64, a fast non-cryptographic hash chosen
// for throughput: the duplicate finder only needs to detect accidental
// duplication, not resist deliberately constructed collisions. Callers that
// need pre-image resistance or a wider collision margin should select
// blake3 or sha256 instead.
package hasher

import (
	"context"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	sha256 "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"

	"github.com/gofindup/findup/internal/poolutil"
)

// Algorithm identifies a content digest algorithm.
type Algorithm string

const (
	XXH64  Algorithm = "xxh64"
	Blake3 Algorithm = "blake3"
	SHA256 Algorithm = "sha256"

	// DefaultAlgorithm is used when the caller does not pick one.
	DefaultAlgorithm = XXH64
)

// ChunkSize is the read granularity for streaming hashing. Peak memory per
// worker is bounded by this regardless of file size.
const ChunkSize = 8 * 1024

var chunkPool = poolutil.NewBytePool(ChunkSize, 16)

// ParseAlgorithm validates a user-supplied algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case XXH64, Blake3, SHA256:
		return Algorithm(s), nil
	case "":
		return DefaultAlgorithm, nil
	default:
		return "", fmt.Errorf("unknown hash algorithm %q (want xxh64, blake3 or sha256)", s)
	}
}

// New returns a fresh digest accumulator for the algorithm.
func (a Algorithm) New() hash.Hash {
	switch a {
	case Blake3:
		return blake3.New()
	case SHA256:
		return sha256.New()
	default:
		return xxhash.New()
	}
}

// Reader streams r through a digest accumulator in fixed-size chunks and
// returns the hex digest. Cancellation is observed between chunks.
func (a Algorithm) Reader(ctx context.Context, r io.Reader) (string, error) {
	h := a.New()
	buf := chunkPool.Get()
	defer chunkPool.Put(buf)

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// File computes the hex digest of the file's content.
func (a Algorithm) File(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return a.Reader(ctx, f)
}
