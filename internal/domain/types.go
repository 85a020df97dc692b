package domain

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/oklog/ulid/v2"
)

// CandidateStatus represents the lifecycle state of a masternode candidate
type CandidateStatus string

const (
	// StatusProposed means the candidate has staked a deposit and is waiting for votes
	StatusProposed CandidateStatus = "PROPOSED"
	// StatusMasternode means the candidate is in the active signing set
	StatusMasternode CandidateStatus = "MASTERNODE"
	// StatusSlashed means the candidate was penalized during an epoch
	StatusSlashed CandidateStatus = "SLASHED"
	// StatusResigned means the candidate withdrew its deposit
	StatusResigned CandidateStatus = "RESIGNED"
)

// IsValidCandidateStatus checks if a status is one of the known states
func IsValidCandidateStatus(s CandidateStatus) bool {
	switch s {
	case StatusProposed, StatusMasternode, StatusSlashed, StatusResigned:
		return true
	}
	return false
}

// EpochCategory identifies one of the three per-epoch event streams recorded
// for a candidate. The declaration order is also the tie-break order when
// entries from different categories share an epoch.
type EpochCategory string

const (
	CategoryPropose    EpochCategory = "propose"
	CategoryPenalty    EpochCategory = "penalty"
	CategoryMasternode EpochCategory = "masternode"
)

// EpochCategories lists all categories in merge tie-break order
var EpochCategories = []EpochCategory{CategoryPropose, CategoryPenalty, CategoryMasternode}

// Status maps a category to the status reported in reward history entries
func (c EpochCategory) Status() CandidateStatus {
	switch c {
	case CategoryPropose:
		return StatusProposed
	case CategoryPenalty:
		return StatusSlashed
	case CategoryMasternode:
		return StatusMasternode
	}
	return ""
}

// NormalizeAddress returns the canonical lower-cased hex form of an address.
// Addresses are compared case-insensitively everywhere in the system.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// NormalizeAddresses normalizes a list of addresses, dropping empty entries
func NormalizeAddresses(addresses []string) []string {
	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		normalized := NormalizeAddress(addr)
		if normalized != "" {
			result = append(result, normalized)
		}
	}
	return result
}

// IsValidAddress checks that an address is a well-formed hex address
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// SameAddress compares two addresses case-insensitively
func SameAddress(a, b string) bool {
	return NormalizeAddress(a) == NormalizeAddress(b)
}

// EventType represents the type of indexer event consumed from JetStream
type EventType string

const (
	// EventTypeEpoch carries the per-epoch status sets written at an epoch checkpoint
	EventTypeEpoch EventType = "epoch"
	// EventTypeCandidate carries a candidate registration or status change
	EventTypeCandidate EventType = "candidate"
)

// EpochEvent is the per-epoch checkpoint event published by the chain indexer.
// One event per epoch; records are append-only and immutable once written.
type EpochEvent struct {
	EventID        string    `json:"event_id"` // ULID
	Epoch          uint64    `json:"epoch"`
	Masternodes    []string  `json:"masternodes"`
	Penalties      []string  `json:"penalties"`
	Proposes       []string  `json:"proposes"`
	BlockCreatedAt time.Time `json:"block_created_at"`
}

// Valid checks the event is well formed
func (e *EpochEvent) Valid() bool {
	if _, err := ulid.Parse(e.EventID); err != nil {
		return false
	}
	if e.Epoch == 0 || e.BlockCreatedAt.IsZero() {
		return false
	}
	for _, set := range [][]string{e.Masternodes, e.Penalties, e.Proposes} {
		for _, addr := range set {
			if !IsValidAddress(addr) {
				return false
			}
		}
	}
	return true
}

// CandidateEvent is published when a candidate registers, changes status or
// adjusts its stake.
type CandidateEvent struct {
	EventID  string          `json:"event_id"` // ULID
	Address  string          `json:"address"`
	Owner    string          `json:"owner"`
	Status   CandidateStatus `json:"status"`
	Capacity string          `json:"capacity"` // staked amount in wei, decimal string
}

// Valid checks the event is well formed
func (e *CandidateEvent) Valid() bool {
	if _, err := ulid.Parse(e.EventID); err != nil {
		return false
	}
	if !IsValidAddress(e.Address) || !IsValidAddress(e.Owner) {
		return false
	}
	return IsValidCandidateStatus(e.Status)
}
