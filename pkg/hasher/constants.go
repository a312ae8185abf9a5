package hasher

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // All inputs hashed / all manifest entries matched
	ExitGeneralError = 1  // Read error or verification mismatch
	ExitUsageError   = 2  // CLI usage error (unknown algorithm, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or unparseable manifest
)

const (
	// DefaultBufferSize is the read chunk size used when hashing, in bytes.
	// Large enough to amortize syscall overhead, small enough to keep
	// per-worker memory bounded.
	DefaultBufferSize = 64 * 1024

	// DefaultManifestName is the checksum file used when --checksum-file is
	// given without a value.
	DefaultManifestName = "CHECKSUMS"

	// StdinName is the display identifier for standard input, matching the
	// coreutils convention.
	StdinName = "-"
)
