package ingest_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaihkd/tomochain-governance/internal/adapter"
	"github.com/khaihkd/tomochain-governance/internal/config"
	"github.com/khaihkd/tomochain-governance/internal/domain"
	"github.com/khaihkd/tomochain-governance/internal/ingest"
	"github.com/khaihkd/tomochain-governance/internal/logger"
	"github.com/khaihkd/tomochain-governance/internal/mocks"
	"github.com/khaihkd/tomochain-governance/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testIngesterMocks struct {
	ctrl     *gomock.Controller
	natsJS   *mocks.MockNatsJetStream
	natsConn *mocks.MockNatsConn
	js       *mocks.MockJetStream
	consumer *mocks.MockNatsConsumer
	consCtx  *mocks.MockConsumeContext
	store    *mocks.MockStore
}

func setupTestIngester(t *testing.T) *testIngesterMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &testIngesterMocks{
		ctrl:     ctrl,
		natsJS:   mocks.NewMockNatsJetStream(ctrl),
		natsConn: mocks.NewMockNatsConn(ctrl),
		js:       mocks.NewMockJetStream(ctrl),
		consumer: mocks.NewMockNatsConsumer(ctrl),
		consCtx:  mocks.NewMockConsumeContext(ctrl),
		store:    mocks.NewMockStore(ctrl),
	}
}

func testNATSConfig() config.NATSConfig {
	return config.NATSConfig{
		URL:            "nats://localhost:4222",
		StreamName:     "MASTERNODE_EVENTS",
		ConsumerName:   "epoch-ingest",
		MaxReconnects:  10,
		ReconnectWait:  time.Second,
		ConnectionName: "test-ingest",
		AckWait:        30 * time.Second,
		MaxDeliver:     3,
	}
}

// runIngester connects the mocked pipeline, starts Run in the background, and
// returns the captured message handler
func runIngester(t *testing.T, tm *testIngesterMocks, ctx context.Context) adapter.MessageHandler {
	t.Helper()

	cfg := testNATSConfig()
	tm.natsJS.EXPECT().Connect(cfg.URL, gomock.Any()).Return(tm.natsConn, tm.js, nil)
	tm.js.EXPECT().CreateOrUpdateConsumer(gomock.Any(), cfg.StreamName, gomock.Any()).Return(tm.consumer, nil)
	tm.consumer.EXPECT().Info(gomock.Any()).Return(&jetstream.ConsumerInfo{Name: cfg.ConsumerName}, nil)

	handlerCh := make(chan adapter.MessageHandler, 1)
	tm.consumer.EXPECT().Consume(gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, _ ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			handlerCh <- handler
			return tm.consCtx, nil
		})
	tm.consCtx.EXPECT().Stop()

	ing, err := ingest.NewIngester(cfg, tm.natsJS, tm.store, adapter.NewJSON())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- ing.Run(ctx)
	}()
	t.Cleanup(func() {
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Error("ingester did not shut down")
		}
	})

	select {
	case handler := <-handlerCh:
		return handler
	case <-time.After(5 * time.Second):
		t.Fatal("ingester never subscribed")
		return nil
	}
}

func epochMessage(t *testing.T, tm *testIngesterMocks, event domain.EpochEvent) *mocks.MockJetStreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg := mocks.NewMockJetStreamMessage(tm.ctrl)
	msg.EXPECT().Subject().Return(ingest.SubjectEpoch).AnyTimes()
	msg.EXPECT().Data().Return(data).AnyTimes()
	return msg
}

func TestIngester_Run(t *testing.T) {
	validEpochEvent := domain.EpochEvent{
		EventID:        ulid.Make().String(),
		Epoch:          42,
		Masternodes:    []string{"0x1111111111111111111111111111111111111111"},
		Penalties:      []string{},
		Proposes:       []string{"0x2222222222222222222222222222222222222222"},
		BlockCreatedAt: time.Now().UTC(),
	}

	t.Run("valid epoch event is stored and acked", func(t *testing.T) {
		tm := setupTestIngester(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		handler := runIngester(t, tm, ctx)

		var stored *schema.EpochStatus
		tm.store.EXPECT().InsertEpochStatus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, status *schema.EpochStatus) error {
				stored = status
				return nil
			})

		msg := epochMessage(t, tm, validEpochEvent)
		acked := make(chan struct{})
		msg.EXPECT().Ack().DoAndReturn(func() error {
			close(acked)
			return nil
		})

		handler(msg)

		select {
		case <-acked:
		case <-time.After(5 * time.Second):
			t.Fatal("message was never acked")
		}

		require.NotNil(t, stored)
		assert.Equal(t, uint64(42), stored.Epoch)
		assert.JSONEq(t, `["0x1111111111111111111111111111111111111111"]`, string(stored.Masternodes))
		assert.JSONEq(t, `[]`, string(stored.Penalties))
	})

	t.Run("store failure naks the message for redelivery", func(t *testing.T) {
		tm := setupTestIngester(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		handler := runIngester(t, tm, ctx)

		tm.store.EXPECT().InsertEpochStatus(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		msg := epochMessage(t, tm, validEpochEvent)
		naked := make(chan struct{})
		msg.EXPECT().Nak().DoAndReturn(func() error {
			close(naked)
			return nil
		})

		handler(msg)

		select {
		case <-naked:
		case <-time.After(5 * time.Second):
			t.Fatal("message was never naked")
		}
	})

	t.Run("malformed epoch event is terminated", func(t *testing.T) {
		tm := setupTestIngester(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		handler := runIngester(t, tm, ctx)

		invalid := validEpochEvent
		invalid.EventID = "not-a-ulid"

		msg := epochMessage(t, tm, invalid)
		termed := make(chan struct{})
		msg.EXPECT().Term().DoAndReturn(func() error {
			close(termed)
			return nil
		})

		handler(msg)

		select {
		case <-termed:
		case <-time.After(5 * time.Second):
			t.Fatal("message was never terminated")
		}
	})

	t.Run("candidate event upserts the candidate", func(t *testing.T) {
		tm := setupTestIngester(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		handler := runIngester(t, tm, ctx)

		event := domain.CandidateEvent{
			EventID:  ulid.Make().String(),
			Address:  "0x3333333333333333333333333333333333333333",
			Owner:    "0x4444444444444444444444444444444444444444",
			Status:   domain.StatusMasternode,
			Capacity: "50000000000000000000000",
		}
		data, err := json.Marshal(event)
		require.NoError(t, err)

		msg := mocks.NewMockJetStreamMessage(tm.ctrl)
		msg.EXPECT().Subject().Return(ingest.SubjectCandidate).AnyTimes()
		msg.EXPECT().Data().Return(data).AnyTimes()

		var stored *schema.Candidate
		tm.store.EXPECT().UpsertCandidate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, candidate *schema.Candidate) error {
				stored = candidate
				return nil
			})

		acked := make(chan struct{})
		msg.EXPECT().Ack().DoAndReturn(func() error {
			close(acked)
			return nil
		})

		handler(msg)

		select {
		case <-acked:
		case <-time.After(5 * time.Second):
			t.Fatal("message was never acked")
		}

		require.NotNil(t, stored)
		assert.Equal(t, event.Address, stored.Address)
		assert.Equal(t, domain.StatusMasternode, stored.Status)
	})
}

func TestIngester_NewIngester_ConnectError(t *testing.T) {
	tm := setupTestIngester(t)

	cfg := testNATSConfig()
	tm.natsJS.EXPECT().Connect(cfg.URL, gomock.Any()).
		Return(nil, nil, errors.New("no servers available"))

	_, err := ingest.NewIngester(cfg, tm.natsJS, tm.store, adapter.NewJSON())
	assert.Error(t, err)
}
