package domain

import "errors"

var (
	// ErrCandidateNotFound is returned when a candidate is not registered
	ErrCandidateNotFound = errors.New("candidate not found")

	// ErrChallengeNotFound is returned when no challenge exists for a token
	ErrChallengeNotFound = errors.New("challenge not found")

	// ErrChallengeConsumed is returned when a challenge has already been used
	ErrChallengeConsumed = errors.New("challenge already consumed")

	// ErrSignatureMismatch is returned when a submitted signature does not
	// prove control of the claimed address. Intentionally generic: callers
	// never learn which of the verification checks failed.
	ErrSignatureMismatch = errors.New("signature mismatch")

	// ErrMalformedSignature is returned when a signature is not a valid
	// recoverable ECDSA signature
	ErrMalformedSignature = errors.New("malformed signature")
)
