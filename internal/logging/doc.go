// Package logging provides concrete implementations of the hasher.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to the diagnostic stream with
//     thread-safe output, keeping stdout reserved for digest lines
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
