// Package hashinfo bundles stretch-hash parameters into a storable scheme.
//
// A [Scheme] fixes the algorithm, round count, output format, and a caller-
// chosen identifier.  [Scheme.Generate] produces a self-delimiting composite
// string suitable for a database column:
//
//	<delimiter><identifier><delimiter><base64-salt><delimiter><encoded-hash>
//
// for example, with the default "$" delimiter:
//
//	$stretch-v1$mxkDzGeSBTUhhPhVBFTS6g==$4hvvzqZio+l9vGifQ7xF2+FKiyWRcb4lV3OSo9PsfUw=
//
// [Scheme.Verify] parses the composite string back and re-runs the stretch
// computation.  The identifier lets an application tell apart hashes from
// different schemes during a migration; this package keeps it an opaque
// caller-chosen label and maintains no identifier registry.
//
// The salt is generated per hash with crypto/rand and encoded with standard
// base64.  The hash segment uses the Scheme's Format, which must be textual
// ([stretch.FormatHex] or [stretch.FormatBase64]) — a composite string is
// text, so raw binary output has no place in it.
package hashinfo

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/hasbyte1/go-stretch/stretch"
)

const (
	// DefaultDelimiter separates the segments of a composite string.
	DefaultDelimiter = "$"

	// DefaultSaltLen is the random salt length in bytes used when
	// Scheme.SaltLen is zero.
	DefaultSaltLen = 16

	// DefaultRounds is the round count used by [DefaultScheme].
	DefaultRounds = 10000
)

// delimiter bytes that would collide with the hex/base64 alphabets or the
// identifier are rejected.
const reservedDelimiterBytes = "0123456789abcdefABCDEF" +
	"ghijklmnopqrstuvwxyzGHIJKLMNOPQRSTUVWXYZ+/="

// Scheme fixes the parameters of a stored stretch hash.
//
// A Scheme is a value type; construct one, validate implicitly through
// Generate/Verify, and reuse it freely across goroutines (all methods are
// read-only).
type Scheme struct {
	// Algorithm names the digest algorithm, resolved through the built-in
	// set (see [stretch.Algorithms]).
	Algorithm stretch.AlgorithmName

	// Rounds is the stretch round count.  Must be ≥ 1.
	Rounds int

	// Format encodes the hash segment.  Must be [stretch.FormatHex] or
	// [stretch.FormatBase64].
	Format stretch.Format

	// Identifier labels hashes produced by this Scheme inside the composite
	// string.  Required; must not contain the delimiter.
	Identifier string

	// Delimiter separates composite-string segments.  A single byte outside
	// the hex/base64 alphabets.  Empty means [DefaultDelimiter].
	Delimiter string

	// SaltLen is the generated salt length in bytes.  Zero means
	// [DefaultSaltLen]; otherwise must be ≥ 8.
	SaltLen int
}

// DefaultScheme returns a Scheme with sha-256, [DefaultRounds] rounds,
// base64 output, and the given identifier.
func DefaultScheme(identifier string) Scheme {
	return Scheme{
		Algorithm:  stretch.AlgorithmSHA256,
		Rounds:     DefaultRounds,
		Format:     stretch.FormatBase64,
		Identifier: identifier,
	}
}

// Parsed holds the segments split out of a composite stored string.
type Parsed struct {
	// Identifier is the scheme label carried by the string.
	Identifier string

	// Salt is the decoded per-hash salt.
	Salt []byte

	// Hash is the encoded hash segment, still in the Scheme's Format.
	Hash string
}

func (s Scheme) validate() error {
	if s.Identifier == "" {
		return fmt.Errorf("%w: identifier must not be empty", ErrInvalidScheme)
	}
	if s.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be ≥ 1, got %d", ErrInvalidScheme, s.Rounds)
	}
	switch s.Format {
	case stretch.FormatHex, stretch.FormatBase64:
	default:
		return fmt.Errorf("%w: format must be hex or base64, got %q", ErrInvalidScheme, s.Format)
	}
	if _, err := stretch.New(s.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScheme, err)
	}
	delim := s.delimiter()
	if len(delim) != 1 || strings.Contains(reservedDelimiterBytes, delim) {
		return fmt.Errorf("%w: delimiter %q must be a single byte outside the hash alphabet",
			ErrInvalidScheme, delim)
	}
	if strings.Contains(s.Identifier, delim) {
		return fmt.Errorf("%w: identifier %q contains the delimiter", ErrInvalidScheme, s.Identifier)
	}
	if s.SaltLen != 0 && s.SaltLen < 8 {
		return fmt.Errorf("%w: salt_len must be ≥ 8, got %d", ErrInvalidScheme, s.SaltLen)
	}
	return nil
}

func (s Scheme) delimiter() string {
	if s.Delimiter == "" {
		return DefaultDelimiter
	}
	return s.Delimiter
}

func (s Scheme) saltLen() int {
	if s.SaltLen == 0 {
		return DefaultSaltLen
	}
	return s.SaltLen
}

// Generate hashes password under the Scheme with a fresh random salt and
// returns the composite stored string.
func (s Scheme) Generate(password []byte) (string, error) {
	if err := s.validate(); err != nil {
		return "", err
	}
	salt, err := randomSalt(s.saltLen())
	if err != nil {
		return "", err
	}
	return s.GenerateWithSalt(password, salt)
}

// GenerateWithSalt is the deterministic variant of [Generate] for callers
// that manage salts themselves (or reproduce a known hash).
func (s Scheme) GenerateWithSalt(password, salt []byte) (string, error) {
	if err := s.validate(); err != nil {
		return "", err
	}
	encoded, err := stretch.StretchString(s.params(password, salt))
	if err != nil {
		return "", err
	}
	delim := s.delimiter()
	return delim + s.Identifier +
		delim + base64.StdEncoding.EncodeToString(salt) +
		delim + encoded, nil
}

// Parse splits a composite stored string into its segments and decodes the
// salt.  It does not verify the hash.
func (s Scheme) Parse(stored string) (Parsed, error) {
	if err := s.validate(); err != nil {
		return Parsed{}, err
	}
	// The leading delimiter produces an empty first element.
	parts := strings.Split(stored, s.delimiter())
	if len(parts) != 4 || parts[0] != "" {
		return Parsed{}, fmt.Errorf("%w: expected 3 %q-delimited segments, got %d",
			ErrMalformedHash, s.delimiter(), len(parts)-1)
	}
	if parts[1] != s.Identifier {
		return Parsed{}, fmt.Errorf("%w: stored %q, scheme %q",
			ErrIdentifierMismatch, parts[1], s.Identifier)
	}
	salt, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return Parsed{}, fmt.Errorf("%w: invalid salt base64: %v", ErrMalformedHash, err)
	}
	return Parsed{Identifier: parts[1], Salt: salt, Hash: parts[3]}, nil
}

// Verify parses stored and reports whether password reproduces its hash
// segment.  Comparison happens in constant time inside the stretch core.
func (s Scheme) Verify(password []byte, stored string) (bool, error) {
	p, err := s.Parse(stored)
	if err != nil {
		return false, err
	}
	return stretch.VerifyString(s.params(password, p.Salt), p.Hash)
}

// params builds the stretch parameters for this Scheme.  validate() has
// already pinned the algorithm name, so resolution cannot fail here.
func (s Scheme) params(password, salt []byte) stretch.Params {
	d, _ := stretch.New(s.Algorithm)
	return stretch.Params{
		Password: password,
		Salt:     salt,
		Digest:   d,
		Rounds:   s.Rounds,
		Format:   s.Format,
	}
}

// randomSalt returns n cryptographically random bytes.
func randomSalt(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("hashinfo: failed to generate salt: %w", err)
	}
	return b, nil
}
