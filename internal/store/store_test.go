package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/khaihkd/tomochain-governance/internal/domain"
	"github.com/khaihkd/tomochain-governance/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestCandidate(address, owner string, status domain.CandidateStatus, capacity string) *schema.Candidate {
	return &schema.Candidate{
		Address:  address,
		Owner:    owner,
		Status:   status,
		Capacity: capacity,
	}
}

func buildTestEpochStatus(epoch uint64, masternodes, penalties, proposes []string) *schema.EpochStatus {
	mustJSON := func(addrs []string) datatypes.JSON {
		if addrs == nil {
			addrs = []string{}
		}
		raw, err := json.Marshal(addrs)
		if err != nil {
			panic(err)
		}
		return datatypes.JSON(raw)
	}
	return &schema.EpochStatus{
		Epoch:          epoch,
		Masternodes:    mustJSON(masternodes),
		Penalties:      mustJSON(penalties),
		Proposes:       mustJSON(proposes),
		BlockCreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func buildTestChallenge(claimed, candidate string) *schema.OwnershipChallenge {
	return &schema.OwnershipChallenge{
		Token:            uuid.NewString(),
		ClaimedAddress:   claimed,
		CandidateAddress: candidate,
		Message:          fmt.Sprintf("I am the owner of candidate [%s]", candidate),
		Status:           schema.ChallengeIssued,
	}
}

// =============================================================================
// Test: Candidates
// =============================================================================

func testCandidates(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("upsert then get normalizes addresses", func(t *testing.T) {
		candidate := buildTestCandidate(
			"0xAAAA567890123456789012345678901234567890",
			"0xBBBB567890123456789012345678901234567890",
			domain.StatusProposed,
			"50000000000000000000000",
		)
		require.NoError(t, store.UpsertCandidate(ctx, candidate))

		got, err := store.GetCandidateByAddress(ctx, "0xAAAA567890123456789012345678901234567890")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "0xaaaa567890123456789012345678901234567890", got.Address)
		assert.Equal(t, "0xbbbb567890123456789012345678901234567890", got.Owner)
		assert.Equal(t, domain.StatusProposed, got.Status)
	})

	t.Run("get unknown candidate returns nil without error", func(t *testing.T) {
		got, err := store.GetCandidateByAddress(ctx, "0x00000000000000000000000000000000000000ff")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("upsert replaces status and capacity for existing address", func(t *testing.T) {
		address := "0xcccc567890123456789012345678901234567890"
		owner := "0xdddd567890123456789012345678901234567890"
		require.NoError(t, store.UpsertCandidate(ctx, buildTestCandidate(address, owner, domain.StatusProposed, "100")))
		require.NoError(t, store.UpsertCandidate(ctx, buildTestCandidate(address, owner, domain.StatusMasternode, "200")))

		got, err := store.GetCandidateByAddress(ctx, address)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.StatusMasternode, got.Status)
		assert.Equal(t, "200", got.Capacity)

		_, total, err := store.ListCandidates(ctx, CandidateFilter{
			Statuses: []domain.CandidateStatus{domain.StatusMasternode},
			Limit:    10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
	})

	t.Run("list filters by status and paginates", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			address := fmt.Sprintf("0x%040d", i+100)
			owner := fmt.Sprintf("0x%040d", i+200)
			status := domain.StatusMasternode
			if i%2 == 1 {
				status = domain.StatusSlashed
			}
			require.NoError(t, store.UpsertCandidate(ctx, buildTestCandidate(address, owner, status, fmt.Sprintf("%d", 1000-i))))
		}

		masternodes, total, err := store.ListCandidates(ctx, CandidateFilter{
			Statuses: []domain.CandidateStatus{domain.StatusMasternode},
			Limit:    2,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		assert.Len(t, masternodes, 2)

		all, total, err := store.ListCandidates(ctx, CandidateFilter{Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, uint64(5), total)
		assert.Len(t, all, 5)
	})

	t.Run("update name reports whether a row matched", func(t *testing.T) {
		address := "0xeeee567890123456789012345678901234567890"
		require.NoError(t, store.UpsertCandidate(ctx, buildTestCandidate(address, address, domain.StatusProposed, "0")))

		updated, err := store.UpdateCandidateName(ctx, address, "atlas-node")
		require.NoError(t, err)
		assert.True(t, updated)

		got, err := store.GetCandidateByAddress(ctx, address)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.Name)
		assert.Equal(t, "atlas-node", *got.Name)

		updated, err = store.UpdateCandidateName(ctx, "0x00000000000000000000000000000000000000aa", "ghost")
		require.NoError(t, err)
		assert.False(t, updated)
	})
}

// =============================================================================
// Test: EpochStatuses
// =============================================================================

func testEpochStatuses(t *testing.T, store Store) {
	ctx := context.Background()

	mn := "0x1111111111111111111111111111111111111111"
	other := "0x2222222222222222222222222222222222222222"

	t.Run("insert is idempotent per epoch", func(t *testing.T) {
		first := buildTestEpochStatus(10, []string{mn}, nil, nil)
		require.NoError(t, store.InsertEpochStatus(ctx, first))

		// The duplicate carries a different membership set; the original must win.
		duplicate := buildTestEpochStatus(10, []string{other}, nil, nil)
		require.NoError(t, store.InsertEpochStatus(ctx, duplicate))

		count, err := store.CountEpochStatuses(ctx, domain.CategoryMasternode, mn)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), count)

		count, err = store.CountEpochStatuses(ctx, domain.CategoryMasternode, other)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), count)
	})

	t.Run("membership queries honor category and candidate", func(t *testing.T) {
		require.NoError(t, store.InsertEpochStatus(ctx, buildTestEpochStatus(20, []string{mn, other}, nil, nil)))
		require.NoError(t, store.InsertEpochStatus(ctx, buildTestEpochStatus(21, []string{other}, []string{mn}, nil)))
		require.NoError(t, store.InsertEpochStatus(ctx, buildTestEpochStatus(22, nil, nil, []string{mn})))

		masternodeEpochs, err := store.ListEpochStatuses(ctx, domain.CategoryMasternode, mn, 100, 0)
		require.NoError(t, err)
		require.Len(t, masternodeEpochs, 1)
		assert.Equal(t, uint64(20), masternodeEpochs[0].Epoch)

		penaltyEpochs, err := store.ListEpochStatuses(ctx, domain.CategoryPenalty, mn, 100, 0)
		require.NoError(t, err)
		require.Len(t, penaltyEpochs, 1)
		assert.Equal(t, uint64(21), penaltyEpochs[0].Epoch)

		proposeEpochs, err := store.ListEpochStatuses(ctx, domain.CategoryPropose, mn, 100, 0)
		require.NoError(t, err)
		require.Len(t, proposeEpochs, 1)
		assert.Equal(t, uint64(22), proposeEpochs[0].Epoch)
	})

	t.Run("membership lookup is case-insensitive on the candidate", func(t *testing.T) {
		require.NoError(t, store.InsertEpochStatus(ctx, buildTestEpochStatus(30, []string{mn}, nil, nil)))

		upper := "0x1111111111111111111111111111111111111111"
		epochs, err := store.ListEpochStatuses(ctx, domain.CategoryMasternode, upper, 100, 0)
		require.NoError(t, err)
		assert.NotEmpty(t, epochs)
	})

	t.Run("list is epoch-descending and paginated", func(t *testing.T) {
		for epoch := uint64(40); epoch < 45; epoch++ {
			require.NoError(t, store.InsertEpochStatus(ctx, buildTestEpochStatus(epoch, []string{mn}, nil, nil)))
		}

		page, err := store.ListEpochStatuses(ctx, domain.CategoryMasternode, mn, 3, 0)
		require.NoError(t, err)
		require.Len(t, page, 3)
		assert.Equal(t, uint64(44), page[0].Epoch)
		assert.Equal(t, uint64(43), page[1].Epoch)
		assert.Equal(t, uint64(42), page[2].Epoch)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := store.ListEpochStatuses(ctx, domain.EpochCategory("bogus"), mn, 10, 0)
		assert.Error(t, err)

		_, err = store.CountEpochStatuses(ctx, domain.EpochCategory("bogus"), mn)
		assert.Error(t, err)
	})
}

// =============================================================================
// Test: OwnershipChallenges
// =============================================================================

func testOwnershipChallenges(t *testing.T, store Store) {
	ctx := context.Background()

	claimed := "0x3333333333333333333333333333333333333333"
	candidate := "0x4444444444444444444444444444444444444444"

	t.Run("issue then read by token and by address", func(t *testing.T) {
		challenge := buildTestChallenge(claimed, candidate)
		require.NoError(t, store.UpsertChallenge(ctx, challenge))

		byToken, err := store.GetChallengeByToken(ctx, challenge.Token)
		require.NoError(t, err)
		require.NotNil(t, byToken)
		assert.Equal(t, schema.ChallengeIssued, byToken.Status)
		assert.Equal(t, claimed, byToken.ClaimedAddress)

		byAddress, err := store.GetChallengeByAddress(ctx, claimed)
		require.NoError(t, err)
		require.NotNil(t, byAddress)
		assert.Equal(t, challenge.Token, byAddress.Token)
	})

	t.Run("reissue replaces the live challenge for the address", func(t *testing.T) {
		first := buildTestChallenge(claimed, candidate)
		require.NoError(t, store.UpsertChallenge(ctx, first))

		second := buildTestChallenge(claimed, candidate)
		require.NoError(t, store.UpsertChallenge(ctx, second))

		live, err := store.GetChallengeByAddress(ctx, claimed)
		require.NoError(t, err)
		require.NotNil(t, live)
		assert.Equal(t, second.Token, live.Token)

		// The superseded token no longer resolves.
		stale, err := store.GetChallengeByToken(ctx, first.Token)
		require.NoError(t, err)
		assert.Nil(t, stale)
	})

	t.Run("consume succeeds once and stores the signature", func(t *testing.T) {
		challenge := buildTestChallenge(claimed, candidate)
		require.NoError(t, store.UpsertChallenge(ctx, challenge))

		ok, err := store.ConsumeChallenge(ctx, challenge.Token, challenge.Message, "0xdeadbeef")
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := store.GetChallengeByToken(ctx, challenge.Token)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, schema.ChallengeConsumed, got.Status)
		require.NotNil(t, got.Signature)
		assert.Equal(t, "0xdeadbeef", *got.Signature)

		ok, err = store.ConsumeChallenge(ctx, challenge.Token, challenge.Message, "0xdeadbeef")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("consume of unknown token reports no match", func(t *testing.T) {
		ok, err := store.ConsumeChallenge(ctx, uuid.NewString(), "msg", "0x00")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("reissue after consume reopens the challenge under a fresh token", func(t *testing.T) {
		consumed := buildTestChallenge(claimed, candidate)
		require.NoError(t, store.UpsertChallenge(ctx, consumed))
		ok, err := store.ConsumeChallenge(ctx, consumed.Token, consumed.Message, "0x01")
		require.NoError(t, err)
		require.True(t, ok)

		fresh := buildTestChallenge(claimed, candidate)
		require.NoError(t, store.UpsertChallenge(ctx, fresh))

		live, err := store.GetChallengeByAddress(ctx, claimed)
		require.NoError(t, err)
		require.NotNil(t, live)
		assert.Equal(t, fresh.Token, live.Token)
		assert.Equal(t, schema.ChallengeIssued, live.Status)

		// The consumed token was replaced, not resurrected.
		ok, err = store.ConsumeChallenge(ctx, consumed.Token, consumed.Message, "0x02")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

// RunStoreTests runs the complete store test suite against a Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Candidates", testCandidates},
		{"EpochStatuses", testEpochStatuses},
		{"OwnershipChallenges", testOwnershipChallenges},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
