package stretch

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Format selects the encoding of the final digest.
type Format string

const (
	// FormatBinary returns the raw digest bytes unencoded.
	// It is the zero value, so an unset Params.Format means binary.
	FormatBinary Format = "binary"

	// FormatHex encodes the digest as lowercase hexadecimal — two characters
	// per byte, no separators, no prefix.
	FormatHex Format = "hex"

	// FormatBase64 encodes the digest as standard base64 (RFC 4648 standard
	// alphabet, with padding) on a single line.
	FormatBase64 Format = "base64"
)

// Params carries the inputs to a stretch computation.
//
// Required-versus-empty follows Go's nil/empty slice distinction: a nil
// Password or Salt is treated as absent and rejected, while a non-nil empty
// slice is a valid (empty) value.  Callers must therefore be explicit:
//
//	stretch.Params{Password: []byte{}, Salt: salt, ...}  // valid, empty password
//	stretch.Params{Salt: salt, ...}                      // ErrMissingPassword
type Params struct {
	// Password is the secret being stretched.  Required; may be empty.
	Password []byte

	// Salt is the caller-supplied salt.  Required; may be empty.
	// This package never generates salts.
	Salt []byte

	// Digest is the algorithm capability.  Required.
	// Obtain one from [New], a [Registry], or [Wrap].
	Digest Digest

	// Rounds is the number of chained digest rounds.  Must be ≥ 1.
	// Cost grows linearly with Rounds; the chain is inherently sequential,
	// so an attacker cannot parallelise a single guess.
	Rounds int

	// Format selects the output encoding.  The zero value is [FormatBinary].
	Format Format
}

func (p Params) validate() error {
	if p.Password == nil {
		return ErrMissingPassword
	}
	if p.Salt == nil {
		return ErrMissingSalt
	}
	if p.Digest == nil {
		return ErrMissingDigest
	}
	if p.Rounds < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidRounds, p.Rounds)
	}
	switch p.Format {
	case "", FormatBinary, FormatHex, FormatBase64:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, p.Format)
	}
}

// Stretch runs the iterative stretching computation and returns the final
// digest encoded per p.Format: the raw digest bytes for [FormatBinary], or
// the ASCII text of the encoding for [FormatHex] and [FormatBase64].
//
// The computation starts from an empty accumulator; each round absorbs the
// accumulator, then the password, then the salt as one ordered input stream
// and finalizes into the new accumulator.  After p.Rounds rounds the
// accumulator is the result.
//
// Output is a pure function of the inputs.  All argument errors wrap
// [ErrInvalidArgument] and are raised before any digest work.
func Stretch(p Params) ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	acc := []byte{}
	for i := 0; i < p.Rounds; i++ {
		p.Digest.Absorb(acc, p.Password, p.Salt)
		acc = p.Digest.FinalizeAndReset()
	}
	return encode(acc, p.Format), nil
}

// StretchString is a convenience for the textual formats.  It returns the
// hex or base64 text as a string, and rejects [FormatBinary] (raw digest
// bytes are not text — use [Stretch]).
func StretchString(p Params) (string, error) {
	if err := requireTextual(p.Format); err != nil {
		return "", err
	}
	out, err := Stretch(p)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify recomputes Stretch(p) and reports whether the result equals
// reference.  Comparison is byte-for-byte for [FormatBinary] and
// exact-text (case-sensitive, no normalisation) for the textual formats,
// performed in constant time.
//
// A nil reference is [ErrMissingReference]; an empty non-nil reference is a
// present value that simply never matches a digest.
func Verify(p Params, reference []byte) (bool, error) {
	if reference == nil {
		return false, ErrMissingReference
	}
	computed, err := Stretch(p)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(computed, reference) == 1, nil
}

// VerifyString verifies a hex- or base64-encoded reference hash.
// Rejects [FormatBinary] for the same reason as [StretchString].
func VerifyString(p Params, reference string) (bool, error) {
	if err := requireTextual(p.Format); err != nil {
		return false, err
	}
	return Verify(p, []byte(reference))
}

func requireTextual(f Format) error {
	switch f {
	case FormatHex, FormatBase64:
		return nil
	default:
		return fmt.Errorf("%w: %q is not a textual format", ErrInvalidFormat, f)
	}
}

// encode applies the output encoding to a finalized digest.
// Format has already been validated.
func encode(digest []byte, f Format) []byte {
	switch f {
	case FormatHex:
		out := make([]byte, hex.EncodedLen(len(digest)))
		hex.Encode(out, digest)
		return out
	case FormatBase64:
		out := make([]byte, base64.StdEncoding.EncodedLen(len(digest)))
		base64.StdEncoding.Encode(out, digest)
		return out
	default:
		return digest
	}
}
