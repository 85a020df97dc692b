package dto

import (
	"time"

	"github.com/khaihkd/tomochain-governance/internal/domain"
	"github.com/khaihkd/tomochain-governance/internal/history"
	"github.com/khaihkd/tomochain-governance/internal/providers/tomochain"
	"github.com/khaihkd/tomochain-governance/internal/store/schema"
)

// CandidateResponse is the public view of a candidate
type CandidateResponse struct {
	Address  string                 `json:"address"`
	Owner    string                 `json:"owner"`
	Name     *string                `json:"name,omitempty"`
	Status   domain.CandidateStatus `json:"status"`
	Capacity string                 `json:"capacity"`
}

// CandidateListResponse is a page of candidates
type CandidateListResponse struct {
	Items []CandidateResponse `json:"items"`
	Total uint64              `json:"total"`
}

// NewCandidateResponse maps a stored candidate to its public view
func NewCandidateResponse(candidate *schema.Candidate) CandidateResponse {
	return CandidateResponse{
		Address:  candidate.Address,
		Owner:    candidate.Owner,
		Name:     candidate.Name,
		Status:   candidate.Status,
		Capacity: candidate.Capacity,
	}
}

// RewardHistoryEntryResponse is one row of reward history.
// Reward is a decimal wei string since amounts exceed the JSON-safe integer
// range.
type RewardHistoryEntryResponse struct {
	Epoch      uint64                 `json:"epoch"`
	Status     domain.CandidateStatus `json:"status"`
	Reward     string                 `json:"reward"`
	SignNumber uint64                 `json:"signNumber"`
	RewardTime time.Time              `json:"rewardTime"`
}

// RewardHistoryResponse is a page of reward history
type RewardHistoryResponse struct {
	Items []RewardHistoryEntryResponse `json:"items"`
	Total uint64                       `json:"total"`
}

// NewRewardHistoryResponse maps a history page to its public view
func NewRewardHistoryResponse(page *history.Page) RewardHistoryResponse {
	items := make([]RewardHistoryEntryResponse, 0, len(page.Items))
	for _, entry := range page.Items {
		items = append(items, RewardHistoryEntryResponse{
			Epoch:      entry.Epoch,
			Status:     entry.Status,
			Reward:     entry.RewardAmount.String(),
			SignNumber: entry.SignNumber,
			RewardTime: entry.RewardTime,
		})
	}
	return RewardHistoryResponse{
		Items: items,
		Total: page.Total,
	}
}

// ChallengeResponse is returned when a challenge is issued
type ChallengeResponse struct {
	Token           string `json:"token"`
	Message         string `json:"message"`
	VerificationURL string `json:"verificationUrl"`
}

// ChallengeSignatureResponse is returned when reading back a consumed
// challenge. An empty signature means the challenge has not been consumed
// yet.
type ChallengeSignatureResponse struct {
	Signature string `json:"signature"`
}

// ConfigResponse is the public chain configuration snapshot
type ConfigResponse struct {
	ChainID      uint64 `json:"chainId"`
	LatestBlock  uint64 `json:"latestBlock"`
	CurrentEpoch uint64 `json:"currentEpoch"`
	EpochBlocks  uint64 `json:"epochBlocks"`
	// EpochRewardPool is the per-epoch reward pool in wei
	EpochRewardPool string `json:"epochRewardPool"`
}

// NewConfigResponse maps a chain snapshot to its public view
func NewConfigResponse(info *tomochain.ChainInfo, rewardPool string) ConfigResponse {
	return ConfigResponse{
		ChainID:         info.ChainID,
		LatestBlock:     info.LatestBlock,
		CurrentEpoch:    info.CurrentEpoch,
		EpochBlocks:     info.EpochBlocks,
		EpochRewardPool: rewardPool,
	}
}
