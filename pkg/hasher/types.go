package hasher

import (
	"errors"
	"fmt"
)

// Input identifies one source of bytes to hash.
type Input struct {
	// Name is the display identifier: the path as given on the command
	// line, or StdinName for standard input.
	Name string

	// Stdin marks the input as the process standard input.
	Stdin bool
}

// Result is the outcome of hashing one input. It is produced exactly once
// per input and is immutable after creation. A failed input carries its
// error here instead of aborting the rest of the batch.
type Result struct {
	Input Input

	// Digest is the lowercase hex encoding of the finalized hash.
	// Empty when Err is non-nil.
	Digest string

	// Bytes is the number of bytes read from the input.
	Bytes int64

	Err error
}

// Outcome classifies one manifest entry after verification.
type Outcome int

const (
	// OutcomeMatched means the computed digest equals the expected digest.
	OutcomeMatched Outcome = iota

	// OutcomeMismatched means the file was hashed but the digest differs.
	OutcomeMismatched

	// OutcomeMissing means the manifest path does not exist on disk.
	OutcomeMissing

	// OutcomeUnreadable means the file exists but could not be read.
	OutcomeUnreadable
)

// String returns the human-readable outcome label used in verify output.
func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "OK"
	case OutcomeMismatched:
		return "FAILED"
	case OutcomeMissing:
		return "FAILED (missing)"
	case OutcomeUnreadable:
		return "FAILED (unreadable)"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Verification couples one manifest entry with its computed outcome.
type Verification struct {
	// Path is the manifest path, as written in the checksum file.
	Path string

	// Expected is the lowercase hex digest from the manifest.
	Expected string

	// Actual is the computed digest. Empty for Missing/Unreadable outcomes.
	Actual string

	Outcome Outcome

	// Err holds the underlying I/O error for Missing/Unreadable outcomes.
	Err error
}

// RunConfig contains all parameters needed for one hashing invocation.
type RunConfig struct {
	// Algorithm is the catalog name of the digest algorithm.
	Algorithm string

	// Inputs is the ordered list of sources to hash. At most one entry
	// may be standard input.
	Inputs []Input

	// ManifestPath switches to verify mode when non-empty.
	ManifestPath string

	// Parallel is the worker count (>= 1).
	Parallel int

	// BufferSize is the read chunk size in bytes (>= 1).
	BufferSize int

	// Progress enables progress reporting to the diagnostic stream.
	Progress bool

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the RunConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
// Validation happens before any file I/O so a bad invocation fails fast.
func (c *RunConfig) Validate() error {
	var errs []error

	if c.Algorithm == "" {
		errs = append(errs, fmt.Errorf("algorithm is required: %w", ErrInvalidConfig))
	}

	if c.Parallel < 1 {
		errs = append(errs, fmt.Errorf("parallel count %d must be at least 1: %w", c.Parallel, ErrInvalidParallelism))
	}

	if c.BufferSize < 1 {
		errs = append(errs, fmt.Errorf("buffer size %d must be at least 1 byte: %w", c.BufferSize, ErrInvalidBufferSize))
	}

	stdinCount := 0
	for _, in := range c.Inputs {
		if in.Stdin {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		errs = append(errs, fmt.Errorf("%d inputs read standard input: %w", stdinCount, ErrStdinConflict))
	}

	return errors.Join(errs...)
}
