package stretch

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella error for every precondition violation
// in this package.  All argument errors wrap it, so a caller that does not
// care about the specific cause can match once:
//
//	_, err := stretch.Stretch(p)
//	if errors.Is(err, stretch.ErrInvalidArgument) {
//	    // reject the request; nothing was computed
//	}
//
// Argument errors are always raised before any digest work begins.
var ErrInvalidArgument = errors.New("stretch: invalid argument")

// Specific causes.  Each wraps [ErrInvalidArgument] and can be matched
// individually with [errors.Is].
var (
	// ErrMissingPassword is returned when Params.Password is nil.
	// An empty (non-nil) password is valid; an absent one is not.
	ErrMissingPassword = fmt.Errorf("%w: password is required (empty is allowed, nil is not)", ErrInvalidArgument)

	// ErrMissingSalt is returned when Params.Salt is nil.
	// An empty (non-nil) salt is valid; an absent one is not.
	ErrMissingSalt = fmt.Errorf("%w: salt is required (empty is allowed, nil is not)", ErrInvalidArgument)

	// ErrMissingDigest is returned when Params.Digest is nil.
	ErrMissingDigest = fmt.Errorf("%w: digest algorithm is required", ErrInvalidArgument)

	// ErrInvalidRounds is returned when Params.Rounds is below 1.
	ErrInvalidRounds = fmt.Errorf("%w: rounds must be ≥ 1", ErrInvalidArgument)

	// ErrInvalidFormat is returned when Params.Format is not one of
	// [FormatBinary], [FormatHex], or [FormatBase64], or when a textual
	// format is required but FormatBinary was supplied.
	ErrInvalidFormat = fmt.Errorf("%w: unrecognised output format", ErrInvalidArgument)

	// ErrUnknownAlgorithm is returned by [New] and [Registry.New] when no
	// algorithm is registered under the requested name.
	ErrUnknownAlgorithm = fmt.Errorf("%w: unknown digest algorithm", ErrInvalidArgument)

	// ErrMissingReference is returned by [Verify] when the reference hash
	// is nil.
	ErrMissingReference = fmt.Errorf("%w: reference hash is required", ErrInvalidArgument)
)

// Registry registration errors.
var (
	// ErrEmptyAlgorithmName is returned by [Registry.Register] when the
	// supplied algorithm name is an empty string.
	ErrEmptyAlgorithmName = errors.New("stretch: algorithm name must not be empty")

	// ErrNilFactory is returned by [Registry.Register] when a nil factory
	// is supplied.
	ErrNilFactory = errors.New("stretch: digest factory must not be nil")
)
