package rewards

import (
	"context"
	"fmt"
	"math/big"
	"time"
)

// Outcome is a resolved reward for one masternode epoch
type Outcome struct {
	// Amount is the reward in wei
	Amount *big.Int
	// SignNumber is how many blocks the candidate signed during the epoch
	SignNumber uint64
	// RewardTime is when the reward was checkpointed
	RewardTime time.Time
}

// Resolver apportions the fixed per-epoch reward pool to a candidate based on
// its share of signed blocks, as reported by the reward engine.
type Resolver struct {
	client Client
	pool   *big.Int
}

// NewResolver creates a resolver distributing pool wei per epoch
func NewResolver(client Client, pool *big.Int) *Resolver {
	return &Resolver{
		client: client,
		pool:   pool,
	}
}

// Resolve computes the reward for a candidate at one masternode epoch.
// When the engine has no record for the epoch, the result is a zero reward
// stamped with the epoch's block time. Token amounts exceed the native
// integer range, so all arithmetic runs on big.Int with the multiplication
// ahead of the division.
func (r *Resolver) Resolve(ctx context.Context, candidate, owner string, epoch uint64, blockCreatedAt time.Time) (*Outcome, error) {
	payload, err := r.client.RewardsByEpoch(ctx, candidate, owner, "Voter", epoch)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return &Outcome{
			Amount:     big.NewInt(0),
			SignNumber: 0,
			RewardTime: blockCreatedAt,
		}, nil
	}

	totalSigners, err := r.client.TotalSignNumber(ctx, epoch)
	if err != nil {
		return nil, err
	}

	var amount *big.Int
	if totalSigners > 0 {
		amount = new(big.Int).Mul(r.pool, new(big.Int).SetUint64(payload.SignNumber))
		amount.Div(amount, new(big.Int).SetUint64(totalSigners))
	} else {
		var ok bool
		amount, ok = new(big.Int).SetString(payload.Reward, 10)
		if !ok {
			return nil, fmt.Errorf("reward engine returned a malformed reward amount: %q", payload.Reward)
		}
	}

	return &Outcome{
		Amount:     amount,
		SignNumber: payload.SignNumber,
		RewardTime: payload.RewardTime,
	}, nil
}
