package filehash

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/hasher/internal/digest"
	"github.com/vvka-141/hasher/internal/progress"
	"github.com/vvka-141/hasher/pkg/hasher"
)

// Hasher streams one input at a time through a digest algorithm.
// It reads in fixed-size chunks so arbitrarily large files are hashed with
// bounded memory, reporting bytes to the progress sink after each chunk.
// Hasher is safe for concurrent use: each call builds its own hash state
// and read buffer.
type Hasher struct {
	algorithm  digest.Algorithm
	bufferSize int
	sink       progress.Sink
}

// New creates a file hasher for the given algorithm.
// Panics if bufferSize is not positive; callers validate sizes before I/O.
// A nil sink disables progress reporting.
func New(algorithm digest.Algorithm, bufferSize int, sink progress.Sink) *Hasher {
	if bufferSize < 1 {
		panic("bufferSize must be positive")
	}
	if sink == nil {
		sink = progress.Null{}
	}
	return &Hasher{
		algorithm:  algorithm,
		bufferSize: bufferSize,
		sink:       sink,
	}
}

// HashFile hashes one input. Per-input failures (missing path, directory,
// read error) are recorded in the Result rather than returned, so one bad
// input never prevents others from completing.
func (h *Hasher) HashFile(ctx context.Context, in hasher.Input) hasher.Result {
	defer h.sink.FileDone()

	if in.Stdin {
		return h.hashReader(ctx, in, os.Stdin)
	}

	info, err := os.Stat(in.Name)
	if err != nil {
		return hasher.Result{Input: in, Err: err}
	}
	if info.IsDir() {
		return hasher.Result{Input: in, Err: fmt.Errorf("%s: is a directory", in.Name)}
	}

	f, err := os.Open(in.Name)
	if err != nil {
		return hasher.Result{Input: in, Err: err}
	}
	defer f.Close()

	return h.hashReader(ctx, in, f)
}

// HashReader hashes an arbitrary stream, attributing the result to in.
// Used directly in tests and for standard input.
func (h *Hasher) HashReader(ctx context.Context, in hasher.Input, r io.Reader) hasher.Result {
	defer h.sink.FileDone()
	return h.hashReader(ctx, in, r)
}

func (h *Hasher) hashReader(ctx context.Context, in hasher.Input, r io.Reader) hasher.Result {
	hs, err := digest.New(h.algorithm)
	if err != nil {
		return hasher.Result{Input: in, Err: err}
	}

	buf := make([]byte, h.bufferSize)
	var total int64

	for {
		if err := ctx.Err(); err != nil {
			return hasher.Result{Input: in, Bytes: total, Err: err}
		}

		n, err := r.Read(buf)
		if n > 0 {
			// hash.Hash.Write never returns an error.
			hs.Write(buf[:n])
			total += int64(n)
			h.sink.Add(int64(n))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return hasher.Result{Input: in, Bytes: total, Err: fmt.Errorf("reading %s: %w", in.Name, err)}
		}
	}

	return hasher.Result{Input: in, Digest: digest.HexSum(hs), Bytes: total}
}
