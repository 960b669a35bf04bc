package hashinfo

import "errors"

// Sentinel errors returned by hashinfo operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := scheme.Verify(password, stored)
//	if errors.Is(err, hashinfo.ErrMalformedHash) {
//	    // stored string does not have the expected shape
//	}
var (
	// ErrInvalidScheme is returned when a [Scheme] has an out-of-range or
	// inconsistent field (missing identifier, binary format, bad delimiter,
	// rounds below 1, unknown algorithm).
	ErrInvalidScheme = errors.New("hashinfo: invalid scheme")

	// ErrMalformedHash is returned when a stored hash string cannot be
	// parsed: wrong segment count, missing leading delimiter, or invalid
	// salt encoding.
	ErrMalformedHash = errors.New("hashinfo: malformed stored hash string")

	// ErrIdentifierMismatch is returned when a stored hash string carries a
	// different identifier than the [Scheme] it is parsed with.
	ErrIdentifierMismatch = errors.New("hashinfo: identifier does not match scheme")
)
