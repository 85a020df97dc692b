package schema

import (
	"time"
)

// ChallengeStatus is the lifecycle state of an ownership challenge
type ChallengeStatus string

const (
	// ChallengeIssued means the challenge has been generated but not yet signed
	ChallengeIssued ChallengeStatus = "issued"
	// ChallengeConsumed means a valid signature was submitted; terminal state
	ChallengeConsumed ChallengeStatus = "consumed"
)

// OwnershipChallenge represents the ownership_challenges table - one live
// challenge per claimed address, consumable exactly once
type OwnershipChallenge struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Token is the opaque one-time challenge identifier (UUID)
	Token string `gorm:"column:token;not null;uniqueIndex;type:varchar(36)"`
	// ClaimedAddress is the account claiming control, lower-cased hex.
	// Unique: issuing a new challenge for an address replaces the old one.
	ClaimedAddress string `gorm:"column:claimed_address;not null;uniqueIndex;type:text"`
	// CandidateAddress is the candidate named in the challenge message
	CandidateAddress string `gorm:"column:candidate_address;not null;type:text"`
	// Message is the human-readable text the claimant must sign
	Message string `gorm:"column:message;not null;type:text"`
	// Signature is the hex-encoded signature stored on consumption
	Signature *string `gorm:"column:signature;type:text"`
	// Status is the challenge state (issued, consumed)
	Status ChallengeStatus `gorm:"column:status;not null;default:'issued';type:text"`
	// CreatedAt is the timestamp when this challenge was issued
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last state change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OwnershipChallenge model
func (OwnershipChallenge) TableName() string {
	return "ownership_challenges"
}
