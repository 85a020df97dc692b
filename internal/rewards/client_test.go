package rewards_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaihkd/tomochain-governance/internal/mocks"
	"github.com/khaihkd/tomochain-governance/internal/rewards"
)

const testEngineURL = "https://rewards.example.com"

func setupTestClient(t *testing.T) (*mocks.MockHTTPClient, rewards.Client) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	httpClient := mocks.NewMockHTTPClient(ctrl)
	return httpClient, rewards.NewClient(httpClient, testEngineURL)
}

func TestRewardsByEpoch(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the engine payload", func(t *testing.T) {
		httpClient, client := setupTestClient(t)
		httpClient.EXPECT().
			PostJSON(ctx, testEngineURL+"/rewards/epoch", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload, result interface{}) error {
				raw, err := json.Marshal(payload)
				require.NoError(t, err)
				assert.JSONEq(t, `{
					"address": "0xcandidate",
					"owner": "0xowner",
					"reason": "Voter",
					"epoch": 5
				}`, string(raw))

				return json.Unmarshal([]byte(`{
					"items": [
						{"signNumber": 300, "reward": "83000000000000000000", "rewardTime": "2026-03-01T12:00:00Z"}
					]
				}`), result)
			})

		payload, err := client.RewardsByEpoch(ctx, "0xcandidate", "0xowner", "Voter", 5)

		require.NoError(t, err)
		require.NotNil(t, payload)
		assert.Equal(t, uint64(300), payload.SignNumber)
		assert.Equal(t, "83000000000000000000", payload.Reward)
		assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), payload.RewardTime)
	})

	t.Run("returns nil when the engine has no record", func(t *testing.T) {
		httpClient, client := setupTestClient(t)
		httpClient.EXPECT().
			PostJSON(ctx, testEngineURL+"/rewards/epoch", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, result interface{}) error {
				return json.Unmarshal([]byte(`{"items": []}`), result)
			})

		payload, err := client.RewardsByEpoch(ctx, "0xcandidate", "0xowner", "Voter", 5)

		require.NoError(t, err)
		assert.Nil(t, payload)
	})

	t.Run("propagates transport failures", func(t *testing.T) {
		httpClient, client := setupTestClient(t)
		httpClient.EXPECT().
			PostJSON(ctx, testEngineURL+"/rewards/epoch", gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		_, err := client.RewardsByEpoch(ctx, "0xcandidate", "0xowner", "Voter", 5)

		assert.ErrorContains(t, err, "failed to fetch epoch rewards")
	})
}

func TestTotalSignNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the signer count", func(t *testing.T) {
		httpClient, client := setupTestClient(t)
		httpClient.EXPECT().
			PostJSON(ctx, testEngineURL+"/rewards/signers", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload, result interface{}) error {
				raw, err := json.Marshal(payload)
				require.NoError(t, err)
				assert.JSONEq(t, `{"epoch": 5}`, string(raw))

				return json.Unmarshal([]byte(`{"signNumber": 900}`), result)
			})

		total, err := client.TotalSignNumber(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, uint64(900), total)
	})

	t.Run("propagates transport failures", func(t *testing.T) {
		httpClient, client := setupTestClient(t)
		httpClient.EXPECT().
			PostJSON(ctx, testEngineURL+"/rewards/signers", gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		_, err := client.TotalSignNumber(ctx, 5)

		assert.ErrorContains(t, err, "failed to fetch total sign number")
	})
}
