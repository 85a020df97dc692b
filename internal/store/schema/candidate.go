package schema

import (
	"time"

	"github.com/khaihkd/tomochain-governance/internal/domain"
)

// Candidate represents the candidates table - an address registered to become
// a masternode via a staking deposit
type Candidate struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the candidate address, lower-cased hex (case-insensitive key)
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
	// Owner is the address that staked the deposit and controls the candidate
	Owner string `gorm:"column:owner;not null;type:text;index"`
	// Name is an optional human-readable candidate name
	Name *string `gorm:"column:name;type:text"`
	// Status is the candidate lifecycle state (PROPOSED, MASTERNODE, SLASHED, RESIGNED)
	Status domain.CandidateStatus `gorm:"column:status;not null;type:text;index"`
	// Capacity is the staked amount in wei (decimal string; exceeds native integer range)
	Capacity string `gorm:"column:capacity;not null;default:'0';type:numeric(64)"`
	// CreatedAt is the timestamp when this candidate was first seen
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last status or stake change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Candidate model
func (Candidate) TableName() string {
	return "candidates"
}
