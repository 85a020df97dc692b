package schema

import (
	"time"

	"gorm.io/datatypes"
)

// EpochStatus represents the epoch_statuses table - one immutable record per
// epoch holding the three disjoint address sets written by the chain indexer.
// Append-only: rows are never updated once written.
type EpochStatus struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Epoch is the epoch number (natural key, at most one record per epoch)
	Epoch uint64 `gorm:"column:epoch;not null;uniqueIndex"`
	// Masternodes is the JSON array of addresses in the active signing set
	Masternodes datatypes.JSON `gorm:"column:masternodes;not null;type:jsonb"`
	// Penalties is the JSON array of addresses slashed during the epoch
	Penalties datatypes.JSON `gorm:"column:penalties;not null;type:jsonb"`
	// Proposes is the JSON array of addresses proposed during the epoch
	Proposes datatypes.JSON `gorm:"column:proposes;not null;type:jsonb"`
	// BlockCreatedAt is the timestamp of the epoch checkpoint block
	BlockCreatedAt time.Time `gorm:"column:block_created_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the EpochStatus model
func (EpochStatus) TableName() string {
	return "epoch_statuses"
}
