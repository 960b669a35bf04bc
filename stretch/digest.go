package stretch

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"slices"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// AlgorithmName identifies a digest algorithm.
// Using a named string type prevents accidental confusion with plain strings.
type AlgorithmName string

// Built-in algorithm names.  Deprecated algorithms (MD5, SHA-1) are
// intentionally absent.
const (
	// SHA-2 family (NIST FIPS 180-4)
	AlgorithmSHA256    AlgorithmName = "sha-256"
	AlgorithmSHA384    AlgorithmName = "sha-384"
	AlgorithmSHA512    AlgorithmName = "sha-512"
	AlgorithmSHA512256 AlgorithmName = "sha-512/256"

	// SHA-3 family (NIST FIPS 202)
	AlgorithmSHA3256 AlgorithmName = "sha3-256"
	AlgorithmSHA3384 AlgorithmName = "sha3-384"
	AlgorithmSHA3512 AlgorithmName = "sha3-512"

	// Legacy Keccak (pre-FIPS padding).  Several older ecosystems shipped
	// this under the name "SHA3"; hashes produced by those libraries verify
	// only against these variants, not the FIPS 202 ones above.
	AlgorithmKeccak256 AlgorithmName = "keccak-256"
	AlgorithmKeccak512 AlgorithmName = "keccak-512"

	// BLAKE2b family (RFC 7693)
	AlgorithmBLAKE2b256 AlgorithmName = "blake2b-256"
	AlgorithmBLAKE2b512 AlgorithmName = "blake2b-512"
)

// Digest is the absorb/finalize capability consumed by [Stretch].
//
// A Digest accumulates ordered input across [Digest.Absorb] calls and
// produces a fixed-length value from [Digest.FinalizeAndReset], which also
// resets the internal state so the same Digest can be reused for the next
// round.  Implementations are not required to be safe for concurrent use;
// each stretch computation owns its Digest exclusively.
type Digest interface {
	// Absorb feeds chunks into the digest state in order.  The chunks are
	// treated as a single ordered input stream: Absorb(a, b) is equivalent
	// to Absorb(a) followed by Absorb(b).
	Absorb(chunks ...[]byte)

	// FinalizeAndReset returns the digest of everything absorbed since the
	// last reset, then resets the state for a fresh computation.
	FinalizeAndReset() []byte

	// Size returns the digest length in bytes.
	Size() int

	// Algorithm returns the name of the implemented algorithm.
	Algorithm() AlgorithmName
}

// builtins maps each built-in algorithm name to a constructor for the
// underlying hash primitive.  The nil-key blake2b constructors cannot fail.
var builtins = map[AlgorithmName]func() hash.Hash{
	AlgorithmSHA256:    sha256.New,
	AlgorithmSHA384:    sha512.New384,
	AlgorithmSHA512:    sha512.New,
	AlgorithmSHA512256: sha512.New512_256,
	AlgorithmSHA3256:   func() hash.Hash { return sha3.New256() },
	AlgorithmSHA3384:   func() hash.Hash { return sha3.New384() },
	AlgorithmSHA3512:   func() hash.Hash { return sha3.New512() },
	AlgorithmKeccak256: func() hash.Hash { return sha3.NewLegacyKeccak256() },
	AlgorithmKeccak512: func() hash.Hash { return sha3.NewLegacyKeccak512() },
	AlgorithmBLAKE2b256: func() hash.Hash {
		h, _ := blake2b.New256(nil)
		return h
	},
	AlgorithmBLAKE2b512: func() hash.Hash {
		h, _ := blake2b.New512(nil)
		return h
	},
}

// New returns a fresh [Digest] for one of the built-in algorithms.
// Returns [ErrUnknownAlgorithm] for names outside the built-in set; custom
// algorithms go through a [Registry] instead.
func New(name AlgorithmName) (Digest, error) {
	ctor, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return &hashDigest{name: name, h: ctor()}, nil
}

// Algorithms returns the sorted names of all built-in algorithms.
func Algorithms() []AlgorithmName {
	names := make([]AlgorithmName, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Wrap adapts any [hash.Hash] into a [Digest] under the given name.
// Useful for registering custom algorithms with a [Registry].
func Wrap(name AlgorithmName, h hash.Hash) Digest {
	return &hashDigest{name: name, h: h}
}

// hashDigest adapts a stdlib/x-crypto hash.Hash to the Digest capability.
type hashDigest struct {
	name AlgorithmName
	h    hash.Hash
}

func (d *hashDigest) Absorb(chunks ...[]byte) {
	for _, c := range chunks {
		// hash.Hash.Write never returns an error.
		d.h.Write(c)
	}
}

func (d *hashDigest) FinalizeAndReset() []byte {
	sum := d.h.Sum(nil)
	d.h.Reset()
	return sum
}

func (d *hashDigest) Size() int { return d.h.Size() }

func (d *hashDigest) Algorithm() AlgorithmName { return d.name }
