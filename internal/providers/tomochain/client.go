package tomochain

import (
	"context"
	"fmt"

	"github.com/khaihkd/tomochain-governance/internal/adapter"
)

// ChainInfo is a snapshot of the chain head used by the public config endpoint
type ChainInfo struct {
	// ChainID identifies the network
	ChainID uint64
	// LatestBlock is the current head block number
	LatestBlock uint64
	// CurrentEpoch is the epoch containing the head block
	CurrentEpoch uint64
	// EpochBlocks is the fixed epoch length in blocks
	EpochBlocks uint64
}

// Client reads chain state from a TomoChain RPC node
type Client struct {
	eth         adapter.EthClient
	epochBlocks uint64
}

// NewClient creates a chain client. epochBlocks is the fixed epoch length.
func NewClient(eth adapter.EthClient, epochBlocks uint64) (*Client, error) {
	if epochBlocks == 0 {
		return nil, fmt.Errorf("epoch length must be positive")
	}
	return &Client{
		eth:         eth,
		epochBlocks: epochBlocks,
	}, nil
}

// Info returns the current chain head and the epoch it falls in
func (c *Client) Info(ctx context.Context) (*ChainInfo, error) {
	chainID, err := c.eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain id: %w", err)
	}

	block, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch block number: %w", err)
	}

	return &ChainInfo{
		ChainID:      chainID.Uint64(),
		LatestBlock:  block,
		CurrentEpoch: block / c.epochBlocks,
		EpochBlocks:  c.epochBlocks,
	}, nil
}

// Close releases the underlying RPC connection
func (c *Client) Close() {
	c.eth.Close()
}
