package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/khaihkd/tomochain-governance/internal/domain"
	"github.com/khaihkd/tomochain-governance/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// GetCandidateByAddress retrieves a candidate by its address
func (s *pgStore) GetCandidateByAddress(ctx context.Context, address string) (*schema.Candidate, error) {
	var candidate schema.Candidate
	err := s.db.WithContext(ctx).
		Where("address = ?", domain.NormalizeAddress(address)).
		First(&candidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &candidate, nil
}

// ListCandidates retrieves candidates with optional status filters plus the total count
func (s *pgStore) ListCandidates(ctx context.Context, filter CandidateFilter) ([]schema.Candidate, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Candidate{})
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	var candidates []schema.Candidate
	err := query.
		Order("capacity DESC, address ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&candidates).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}

	return candidates, uint64(total), nil //nolint:gosec,G115
}

// UpsertCandidate inserts or updates a candidate keyed by address
func (s *pgStore) UpsertCandidate(ctx context.Context, candidate *schema.Candidate) error {
	candidate.Address = domain.NormalizeAddress(candidate.Address)
	candidate.Owner = domain.NormalizeAddress(candidate.Owner)
	candidate.UpdatedAt = time.Now()

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"owner", "status", "capacity", "updated_at"}),
		}).
		Create(candidate).Error
	if err != nil {
		return fmt.Errorf("failed to upsert candidate: %w", err)
	}
	return nil
}

// UpdateCandidateName sets the display name of a candidate
func (s *pgStore) UpdateCandidateName(ctx context.Context, address string, name string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Candidate{}).
		Where("address = ?", domain.NormalizeAddress(address)).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to update candidate name: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// InsertEpochStatus appends an epoch status record. The epoch is the natural
// key and records are immutable, so conflicts are dropped rather than updated.
func (s *pgStore) InsertEpochStatus(ctx context.Context, status *schema.EpochStatus) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "epoch"}},
			DoNothing: true,
		}).
		Create(status).Error
	if err != nil {
		return fmt.Errorf("failed to insert epoch status: %w", err)
	}
	return nil
}

// categoryColumn maps an epoch category to its JSONB column
func categoryColumn(category domain.EpochCategory) (string, error) {
	switch category {
	case domain.CategoryMasternode:
		return "masternodes", nil
	case domain.CategoryPenalty:
		return "penalties", nil
	case domain.CategoryPropose:
		return "proposes", nil
	}
	return "", fmt.Errorf("unknown epoch category: %s", category)
}

// membershipPredicate builds the JSONB containment argument for a single address
func membershipPredicate(candidate string) (datatypes.JSON, error) {
	member, err := json.Marshal([]string{domain.NormalizeAddress(candidate)})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal membership predicate: %w", err)
	}
	return datatypes.JSON(member), nil
}

// ListEpochStatuses retrieves the epoch records whose category set contains
// the candidate address, sorted by epoch descending
func (s *pgStore) ListEpochStatuses(ctx context.Context, category domain.EpochCategory, candidate string, limit, offset int) ([]schema.EpochStatus, error) {
	column, err := categoryColumn(category)
	if err != nil {
		return nil, err
	}
	member, err := membershipPredicate(candidate)
	if err != nil {
		return nil, err
	}

	var records []schema.EpochStatus
	err = s.db.WithContext(ctx).
		Where(fmt.Sprintf("%s @> ?", column), member).
		Order("epoch DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s epochs: %w", category, err)
	}

	return records, nil
}

// CountEpochStatuses counts the epoch records whose category set contains the
// candidate address
func (s *pgStore) CountEpochStatuses(ctx context.Context, category domain.EpochCategory, candidate string) (uint64, error) {
	column, err := categoryColumn(category)
	if err != nil {
		return 0, err
	}
	member, err := membershipPredicate(candidate)
	if err != nil {
		return 0, err
	}

	var count int64
	err = s.db.WithContext(ctx).
		Model(&schema.EpochStatus{}).
		Where(fmt.Sprintf("%s @> ?", column), member).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count %s epochs: %w", category, err)
	}

	return uint64(count), nil //nolint:gosec,G115
}

// UpsertChallenge inserts a challenge, replacing any prior challenge for the
// same claimed address. The ON CONFLICT upsert keeps the single-live-challenge
// invariant under concurrent issue calls.
func (s *pgStore) UpsertChallenge(ctx context.Context, challenge *schema.OwnershipChallenge) error {
	challenge.ClaimedAddress = domain.NormalizeAddress(challenge.ClaimedAddress)
	challenge.CandidateAddress = domain.NormalizeAddress(challenge.CandidateAddress)
	challenge.UpdatedAt = time.Now()

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "claimed_address"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "candidate_address", "message", "signature", "status", "updated_at"}),
		}).
		Create(challenge).Error
	if err != nil {
		return fmt.Errorf("failed to upsert challenge: %w", err)
	}
	return nil
}

// GetChallengeByToken retrieves a challenge by its token
func (s *pgStore) GetChallengeByToken(ctx context.Context, token string) (*schema.OwnershipChallenge, error) {
	var challenge schema.OwnershipChallenge
	err := s.db.WithContext(ctx).
		Where("token = ?", token).
		First(&challenge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get challenge by token: %w", err)
	}
	return &challenge, nil
}

// GetChallengeByAddress retrieves the live challenge for a claimed address
func (s *pgStore) GetChallengeByAddress(ctx context.Context, address string) (*schema.OwnershipChallenge, error) {
	var challenge schema.OwnershipChallenge
	err := s.db.WithContext(ctx).
		Where("claimed_address = ?", domain.NormalizeAddress(address)).
		First(&challenge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get challenge by address: %w", err)
	}
	return &challenge, nil
}

// ConsumeChallenge atomically transitions an issued challenge to consumed.
// The status guard in the WHERE clause makes the transition a check-and-set:
// of two racing consume calls for the same token, exactly one matches a row.
func (s *pgStore) ConsumeChallenge(ctx context.Context, token string, message string, signature string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.OwnershipChallenge{}).
		Where("token = ? AND status = ?", token, schema.ChallengeIssued).
		Updates(map[string]interface{}{
			"message":    message,
			"signature":  signature,
			"status":     schema.ChallengeConsumed,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to consume challenge: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
