package store

import (
	"context"

	"github.com/khaihkd/tomochain-governance/internal/domain"
	"github.com/khaihkd/tomochain-governance/internal/store/schema"
)

// CandidateFilter holds filters for listing candidates
type CandidateFilter struct {
	Statuses []domain.CandidateStatus
	Limit    int
	Offset   int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetCandidateByAddress retrieves a candidate by its address (nil if unknown)
	GetCandidateByAddress(ctx context.Context, address string) (*schema.Candidate, error)
	// ListCandidates retrieves candidates with optional status filters plus the total count
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]schema.Candidate, uint64, error)
	// UpsertCandidate inserts or updates a candidate keyed by address
	UpsertCandidate(ctx context.Context, candidate *schema.Candidate) error
	// UpdateCandidateName sets the display name of a candidate; reports whether a row matched
	UpdateCandidateName(ctx context.Context, address string, name string) (bool, error)

	// InsertEpochStatus appends an epoch status record. Records are immutable:
	// inserting an epoch that already exists is a no-op.
	InsertEpochStatus(ctx context.Context, status *schema.EpochStatus) error
	// ListEpochStatuses retrieves the epoch records whose category set contains
	// the candidate address, sorted by epoch descending
	ListEpochStatuses(ctx context.Context, category domain.EpochCategory, candidate string, limit, offset int) ([]schema.EpochStatus, error)
	// CountEpochStatuses counts the epoch records whose category set contains
	// the candidate address
	CountEpochStatuses(ctx context.Context, category domain.EpochCategory, candidate string) (uint64, error)

	// UpsertChallenge inserts a challenge, replacing any prior challenge for
	// the same claimed address (at most one live challenge per address)
	UpsertChallenge(ctx context.Context, challenge *schema.OwnershipChallenge) error
	// GetChallengeByToken retrieves a challenge by its token (nil if unknown)
	GetChallengeByToken(ctx context.Context, token string) (*schema.OwnershipChallenge, error)
	// GetChallengeByAddress retrieves the live challenge for a claimed address (nil if none)
	GetChallengeByAddress(ctx context.Context, address string) (*schema.OwnershipChallenge, error)
	// ConsumeChallenge atomically transitions an issued challenge to consumed,
	// storing the submitted message and signature. Returns false if the token
	// is unknown or the challenge was already consumed.
	ConsumeChallenge(ctx context.Context, token string, message string, signature string) (bool, error)
}
