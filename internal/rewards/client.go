package rewards

import (
	"context"
	"fmt"
	"time"

	"github.com/khaihkd/tomochain-governance/internal/adapter"
)

// EpochReward is the reward engine's payload for one candidate at one epoch
type EpochReward struct {
	// SignNumber is how many blocks the candidate signed during the epoch
	SignNumber uint64 `json:"signNumber"`
	// Reward is the engine-computed reward in wei, as a decimal string
	Reward string `json:"reward"`
	// RewardTime is when the reward was checkpointed
	RewardTime time.Time `json:"rewardTime"`
}

// Client talks to the external reward engine
//
//go:generate mockgen -source=client.go -destination=../mocks/rewards_client.go -package=mocks -mock_names=Client=MockRewardsClient
type Client interface {
	// RewardsByEpoch fetches the reward payload for a candidate at an epoch.
	// A nil payload means the engine has no record for that epoch.
	RewardsByEpoch(ctx context.Context, candidate, owner, reason string, epoch uint64) (*EpochReward, error)

	// TotalSignNumber fetches the total signed-block count across all signers
	// at an epoch
	TotalSignNumber(ctx context.Context, epoch uint64) (uint64, error)
}

type httpClient struct {
	http    adapter.HTTPClient
	baseURL string
}

// NewClient creates a reward engine client against baseURL
func NewClient(http adapter.HTTPClient, baseURL string) Client {
	return &httpClient{
		http:    http,
		baseURL: baseURL,
	}
}

type rewardsByEpochRequest struct {
	Address string `json:"address"`
	Owner   string `json:"owner"`
	Reason  string `json:"reason"`
	Epoch   uint64 `json:"epoch"`
}

type rewardsByEpochResponse struct {
	Items []EpochReward `json:"items"`
}

func (c *httpClient) RewardsByEpoch(ctx context.Context, candidate, owner, reason string, epoch uint64) (*EpochReward, error) {
	var resp rewardsByEpochResponse
	err := c.http.PostJSON(ctx, c.baseURL+"/rewards/epoch", rewardsByEpochRequest{
		Address: candidate,
		Owner:   owner,
		Reason:  reason,
		Epoch:   epoch,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch epoch rewards: %w", err)
	}

	if len(resp.Items) == 0 {
		return nil, nil
	}
	return &resp.Items[0], nil
}

type totalSignNumberRequest struct {
	Epoch uint64 `json:"epoch"`
}

type totalSignNumberResponse struct {
	SignNumber uint64 `json:"signNumber"`
}

func (c *httpClient) TotalSignNumber(ctx context.Context, epoch uint64) (uint64, error) {
	var resp totalSignNumberResponse
	err := c.http.PostJSON(ctx, c.baseURL+"/rewards/signers", totalSignNumberRequest{Epoch: epoch}, &resp)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch total sign number: %w", err)
	}
	return resp.SignNumber, nil
}
