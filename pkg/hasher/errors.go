package hasher

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := run(ctx, cfg)
//	if errors.Is(err, hasher.ErrVerificationFailed) {
//	    // At least one manifest entry did not match
//	}
var (
	// ErrUnknownAlgorithm indicates the requested algorithm is not in the catalog.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrStdinConflict indicates standard input was requested more than once.
	ErrStdinConflict = errors.New("standard input requested more than once")

	// ErrInvalidParallelism indicates the worker count is out of range.
	ErrInvalidParallelism = errors.New("invalid parallel count")

	// ErrInvalidBufferSize indicates the read chunk size is out of range.
	ErrInvalidBufferSize = errors.New("invalid buffer size")

	// ErrManifestInvalid indicates the checksum manifest could not be parsed.
	ErrManifestInvalid = errors.New("invalid checksum manifest")

	// ErrVerificationFailed indicates at least one manifest entry did not match.
	ErrVerificationFailed = errors.New("verification failed")

	// ErrHashingFailed indicates at least one input could not be hashed.
	ErrHashingFailed = errors.New("hashing failed")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUnknownAlgorithm),
		errors.Is(err, ErrStdinConflict),
		errors.Is(err, ErrInvalidParallelism),
		errors.Is(err, ErrInvalidBufferSize):
		return ExitUsageError
	case errors.Is(err, ErrManifestInvalid),
		errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrVerificationFailed),
		errors.Is(err, ErrHashingFailed):
		return ExitGeneralError
	}

	// Cobra reports flag and argument misuse as plain errors; classify the
	// common patterns so scripts can rely on exit code 2 for usage mistakes.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "accepts ") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "missing required argument") ||
		strings.Contains(errStr, "invalid argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
