// Package digest exposes the fixed catalog of supported hash algorithms.
//
// The catalog is an immutable table mapping algorithm name to constructor,
// built once at startup. Each constructor yields a fresh hash.Hash, so a
// file can be hashed incrementally (update-then-finalize) without loading
// it fully into memory. Adding an algorithm means adding a catalog entry.
//
// Names follow the Python hashlib convention (sha256, sha3_512, shake_128,
// blake2b) so manifests produced by either implementation interoperate.
//
// # Example Usage
//
//	h, err := digest.New(digest.SHA256)
//	if err != nil {
//	    return err
//	}
//	h.Write(chunk)
//	fmt.Println(digest.HexSum(h))
//
// # Thread Safety
//
// The catalog itself is read-only and safe for concurrent use. Individual
// hash.Hash states are not; each worker must create its own via New.
package digest
