// Package stretch implements iterative password-hash stretching: a password
// and salt are fed through a chained sequence of digest rounds, producing a
// hash whose cost to brute-force scales linearly with the round count.
//
// # Architecture
//
// The central abstraction is the [Digest] interface — an absorb/finalize
// capability implemented by adapters over the SHA-2, SHA-3, legacy Keccak,
// and BLAKE2b hash families.  The stretching algorithm itself is algorithm-
// agnostic: it only requires that a Digest can accumulate ordered input and
// finalize into a fixed-length value, resetting for the next round.
//
// [Stretch] runs the rounds and encodes the final digest as raw bytes,
// lowercase hex, or standard base64.  [Verify] recomputes and compares in
// constant time.
//
// The [Registry] is a thread-safe named registry of digest algorithms with a
// nominated default — register custom [Digest] factories alongside the
// built-ins, or use [NewDefaultRegistry] for the batteries-included variant.
//
// # Quick start
//
//	d, _ := stretch.New(stretch.AlgorithmSHA256)
//	hash, err := stretch.Stretch(stretch.Params{
//		Password: []byte("my-secret-password"),
//		Salt:     []byte("per-user-salt"),
//		Digest:   d,
//		Rounds:   5000,
//		Format:   stretch.FormatBase64,
//	})
//
// # Determinism
//
// For fixed (password, salt, algorithm, rounds), output is a pure function
// of the inputs — no randomness, no side effects.  Salts are caller-supplied;
// this package never generates them.  See the hashinfo package for a
// storage-oriented wrapper that does.
//
// # Security notes
//
//   - Digest chaining is sequential by construction: round n depends on the
//     output of round n−1, so the work cannot be parallelised by an attacker.
//   - This is deliberately not a memory-hard KDF.  Where memory-hardness is
//     required, use Argon2id instead; this package exists to reproduce and
//     verify hashes produced by iterative-stretching schemes.
//   - Verification compares digests in constant time.
package stretch
