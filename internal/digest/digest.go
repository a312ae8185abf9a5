package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"github.com/vvka-141/hasher/pkg/hasher"
)

// Algorithm names the digest algorithm to use. The set of valid values is
// the fixed catalog below; anything else is rejected by New before any I/O.
type Algorithm string

const (
	MD5        Algorithm = "md5"
	SHA1       Algorithm = "sha1"
	SHA224     Algorithm = "sha224"
	SHA256     Algorithm = "sha256"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA512224  Algorithm = "sha512_224"
	SHA512256  Algorithm = "sha512_256"
	SHA3224    Algorithm = "sha3_224"
	SHA3256    Algorithm = "sha3_256"
	SHA3384    Algorithm = "sha3_384"
	SHA3512    Algorithm = "sha3_512"
	Shake128   Algorithm = "shake_128"
	Shake256   Algorithm = "shake_256"
	BLAKE2b    Algorithm = "blake2b"
	BLAKE2b256 Algorithm = "blake2b_256"
	BLAKE2s    Algorithm = "blake2s"
	BLAKE3     Algorithm = "blake3"
	XXH64      Algorithm = "xxh64"
)

// catalog maps each supported name to its constructor. Initialized once,
// never mutated. SHAKE variants finalize to their conventional fixed output
// lengths (32 bytes for shake_128, 64 bytes for shake_256).
var catalog = map[Algorithm]func() (hash.Hash, error){
	MD5:        func() (hash.Hash, error) { return md5.New(), nil },
	SHA1:       func() (hash.Hash, error) { return sha1.New(), nil },
	SHA224:     func() (hash.Hash, error) { return sha256.New224(), nil },
	SHA256:     func() (hash.Hash, error) { return sha256.New(), nil },
	SHA384:     func() (hash.Hash, error) { return sha512.New384(), nil },
	SHA512:     func() (hash.Hash, error) { return sha512.New(), nil },
	SHA512224:  func() (hash.Hash, error) { return sha512.New512_224(), nil },
	SHA512256:  func() (hash.Hash, error) { return sha512.New512_256(), nil },
	SHA3224:    func() (hash.Hash, error) { return sha3.New224(), nil },
	SHA3256:    func() (hash.Hash, error) { return sha3.New256(), nil },
	SHA3384:    func() (hash.Hash, error) { return sha3.New384(), nil },
	SHA3512:    func() (hash.Hash, error) { return sha3.New512(), nil },
	Shake128:   func() (hash.Hash, error) { return sha3.NewShake128(), nil },
	Shake256:   func() (hash.Hash, error) { return sha3.NewShake256(), nil },
	BLAKE2b:    func() (hash.Hash, error) { return blake2b.New512(nil) },
	BLAKE2b256: func() (hash.Hash, error) { return blake2b.New256(nil) },
	BLAKE2s:    func() (hash.Hash, error) { return blake2s.New256(nil) },
	BLAKE3:     func() (hash.Hash, error) { return blake3.New(), nil },
	XXH64:      func() (hash.Hash, error) { return xxhash.New(), nil },
}

// names is the sorted catalog, computed once for error messages and help text.
var names = func() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, string(name))
	}
	sort.Strings(out)
	return out
}()

// New returns a fresh hash state for the named algorithm.
// An unknown name fails with hasher.ErrUnknownAlgorithm listing the valid set.
func New(name Algorithm) (hash.Hash, error) {
	ctor, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", hasher.ErrUnknownAlgorithm, name, strings.Join(names, ", "))
	}
	h, err := ctor()
	if err != nil {
		return nil, fmt.Errorf("initializing %s: %w", name, err)
	}
	return h, nil
}

// Supported reports whether name is in the catalog.
func Supported(name Algorithm) bool {
	_, ok := catalog[name]
	return ok
}

// Names returns the sorted list of supported algorithm names.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// HexSum finalizes h and returns the lowercase hex digest.
func HexSum(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}

// Sum hashes data in one shot with the named algorithm.
func Sum(name Algorithm, data []byte) (string, error) {
	h, err := New(name)
	if err != nil {
		return "", err
	}
	h.Write(data)
	return HexSum(h), nil
}
