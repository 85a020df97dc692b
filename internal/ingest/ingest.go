package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/khaihkd/tomochain-governance/internal/adapter"
	"github.com/khaihkd/tomochain-governance/internal/config"
	"github.com/khaihkd/tomochain-governance/internal/domain"
	"github.com/khaihkd/tomochain-governance/internal/logger"
	"github.com/khaihkd/tomochain-governance/internal/store"
	"github.com/khaihkd/tomochain-governance/internal/store/schema"
)

// Subjects published by the chain indexer
const (
	SubjectEpoch     = "masternode.epoch"
	SubjectCandidate = "masternode.candidate"
)

// Ingester consumes indexer events from JetStream and writes them to the
// record store
type Ingester interface {
	// Run starts consuming until the context is cancelled
	Run(ctx context.Context) error
	// Close closes the NATS connection
	Close()
}

type ingester struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	store  store.Store
	json   adapter.JSON
	config config.NATSConfig
}

// NewIngester connects to NATS and creates an epoch ingester
func NewIngester(cfg config.NATSConfig, natsJS adapter.NatsJetStream, st store.Store, jsonAdapter adapter.JSON) (Ingester, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(fmt.Errorf("disconnected from NATS: %w", err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &ingester{
		nc:     nc,
		js:     js,
		store:  st,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// Run starts consuming until the context is cancelled
func (i *ingester) Run(ctx context.Context) error {
	logger.Info("starting epoch ingester",
		zap.String("stream", i.config.StreamName),
		zap.String("consumer", i.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:        i.config.ConsumerName,
		AckPolicy:      jetstream.AckExplicitPolicy,
		AckWait:        i.config.AckWait,
		MaxDeliver:     i.config.MaxDeliver,
		FilterSubjects: []string{SubjectEpoch, SubjectCandidate},
	}

	consumer, err := i.js.CreateOrUpdateConsumer(ctx, i.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("consumer ready", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down epoch ingester")
			return ctx.Err()
		case msg := <-msgChan:
			i.handleMessage(ctx, msg)
		}
	}
}

// errDropMessage marks a payload that can never be processed, no matter how
// often it is redelivered
var errDropMessage = errors.New("unprocessable message")

// handleMessage dispatches one message by subject. Unparseable or invalid
// payloads are terminated; store failures are NAKed for redelivery.
func (i *ingester) handleMessage(ctx context.Context, msg adapter.Message) {
	var err error
	switch msg.Subject() {
	case SubjectEpoch:
		err = i.handleEpochEvent(ctx, msg)
	case SubjectCandidate:
		err = i.handleCandidateEvent(ctx, msg)
	default:
		err = fmt.Errorf("%w: unexpected subject %s", errDropMessage, msg.Subject())
	}

	switch {
	case errors.Is(err, errDropMessage):
		logger.Warn("dropping event", zap.Error(err), zap.String("subject", msg.Subject()))
		if termErr := msg.Term(); termErr != nil {
			logger.Error(fmt.Errorf("failed to terminate message: %w", termErr))
		}
	case err != nil:
		logger.Error(err, zap.String("subject", msg.Subject()))
		if nakErr := msg.Nak(); nakErr != nil {
			logger.Error(fmt.Errorf("failed to NAK message: %w", nakErr))
		}
	default:
		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error(fmt.Errorf("failed to ACK message: %w", ackErr))
		}
	}
}

func (i *ingester) handleEpochEvent(ctx context.Context, msg adapter.Message) error {
	var event domain.EpochEvent
	if err := i.json.Unmarshal(msg.Data(), &event); err != nil {
		return fmt.Errorf("%w: failed to unmarshal epoch event: %v", errDropMessage, err)
	}
	if !event.Valid() {
		return fmt.Errorf("%w: malformed epoch event %s", errDropMessage, event.EventID)
	}

	record, err := i.epochRecord(&event)
	if err != nil {
		return fmt.Errorf("%w: failed to build epoch record: %v", errDropMessage, err)
	}

	if err := i.store.InsertEpochStatus(ctx, record); err != nil {
		return err
	}

	logger.Info("indexed epoch",
		zap.Uint64("epoch", event.Epoch),
		zap.Int("masternodes", len(event.Masternodes)),
		zap.Int("penalties", len(event.Penalties)),
		zap.Int("proposes", len(event.Proposes)))
	return nil
}

func (i *ingester) handleCandidateEvent(ctx context.Context, msg adapter.Message) error {
	var event domain.CandidateEvent
	if err := i.json.Unmarshal(msg.Data(), &event); err != nil {
		return fmt.Errorf("%w: failed to unmarshal candidate event: %v", errDropMessage, err)
	}
	if !event.Valid() {
		return fmt.Errorf("%w: malformed candidate event %s", errDropMessage, event.EventID)
	}

	now := time.Now()
	candidate := &schema.Candidate{
		Address:   event.Address,
		Owner:     event.Owner,
		Status:    event.Status,
		Capacity:  event.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := i.store.UpsertCandidate(ctx, candidate); err != nil {
		return err
	}

	logger.Info("indexed candidate",
		zap.String("address", candidate.Address),
		zap.String("status", string(event.Status)))
	return nil
}

// epochRecord converts an epoch event into its storage form with normalized
// address sets
func (i *ingester) epochRecord(event *domain.EpochEvent) (*schema.EpochStatus, error) {
	encode := func(addrs []string) (datatypes.JSON, error) {
		raw, err := i.json.Marshal(domain.NormalizeAddresses(addrs))
		if err != nil {
			return nil, err
		}
		return datatypes.JSON(raw), nil
	}

	masternodes, err := encode(event.Masternodes)
	if err != nil {
		return nil, err
	}
	penalties, err := encode(event.Penalties)
	if err != nil {
		return nil, err
	}
	proposes, err := encode(event.Proposes)
	if err != nil {
		return nil, err
	}

	return &schema.EpochStatus{
		Epoch:          event.Epoch,
		Masternodes:    masternodes,
		Penalties:      penalties,
		Proposes:       proposes,
		BlockCreatedAt: event.BlockCreatedAt,
	}, nil
}

// Close closes the NATS connection
func (i *ingester) Close() {
	if i.nc == nil {
		return
	}
	i.nc.Close()
}
