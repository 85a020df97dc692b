package history

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/khaihkd/tomochain-governance/internal/domain"
	"github.com/khaihkd/tomochain-governance/internal/rewards"
	"github.com/khaihkd/tomochain-governance/internal/store"
	"github.com/khaihkd/tomochain-governance/internal/store/schema"
)

// Entry is one row of a candidate's reward history, derived per query and
// never persisted
type Entry struct {
	Epoch        uint64
	Status       domain.CandidateStatus
	RewardAmount *big.Int
	SignNumber   uint64
	RewardTime   time.Time
}

// Page is one page of reward history. Total sums the three per-category
// counts, so an epoch appearing in more than one category counts once per
// category.
type Page struct {
	Items []Entry
	Total uint64
}

// categoryResult wraps the outcome of one category query
type categoryResult struct {
	category domain.EpochCategory
	records  []schema.EpochStatus
	count    uint64
	err      error
}

// entryResult wraps the outcome of one per-epoch reward resolution
type entryResult struct {
	entry Entry
	err   error
}

// Service merges the three per-epoch event streams of a candidate into one
// epoch-descending reward history. The three category queries run
// concurrently, as do the per-epoch reward lookups within the masternode
// branch; the final merge waits for all of them.
type Service struct {
	store    store.Store
	resolver *rewards.Resolver
	listPool pond.ResultPool[*categoryResult]
	itemPool pond.ResultPool[*entryResult]
}

// NewService creates a reward history service with maxWorkers concurrent
// store/engine calls
func NewService(s store.Store, resolver *rewards.Resolver, maxWorkers int) *Service {
	if maxWorkers <= 0 {
		maxWorkers = 10
	}
	return &Service{
		store:    s,
		resolver: resolver,
		listPool: pond.NewResultPool[*categoryResult](maxWorkers),
		itemPool: pond.NewResultPool[*entryResult](maxWorkers),
	}
}

// History returns the merged reward history page for a candidate. Each
// category is truncated to (limit, offset) before the merge, so a page only
// approximates true cross-category pagination; the per-category truncation is
// the documented contract, not a bug to paper over.
func (s *Service) History(ctx context.Context, candidate, owner string, limit, page int) (*Page, error) {
	candidate = domain.NormalizeAddress(candidate)
	owner = domain.NormalizeAddress(owner)
	offset := (page - 1) * limit

	tasks := make([]pond.Result[*categoryResult], 0, len(domain.EpochCategories))
	for _, category := range domain.EpochCategories {
		category := category
		tasks = append(tasks, s.listPool.Submit(func() *categoryResult {
			return s.queryCategory(ctx, category, candidate, limit, offset)
		}))
	}

	results := make([]*categoryResult, 0, len(tasks))
	for _, task := range tasks {
		result, err := task.Wait()
		if err != nil {
			return nil, err
		}
		if result.err != nil {
			return nil, fmt.Errorf("failed to query %s epochs: %w", result.category, result.err)
		}
		results = append(results, result)
	}

	var total uint64
	entries := make([]Entry, 0, limit)
	for _, result := range results {
		total += result.count
		mapped, err := s.mapRecords(ctx, result.category, result.records, candidate, owner)
		if err != nil {
			return nil, err
		}
		entries = append(entries, mapped...)
	}

	// Stable so that equal epochs keep the propose, penalty, masternode
	// concatenation order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Epoch > entries[j].Epoch
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return &Page{Items: entries, Total: total}, nil
}

// queryCategory lists and counts one category's epochs
func (s *Service) queryCategory(ctx context.Context, category domain.EpochCategory, candidate string, limit, offset int) *categoryResult {
	records, err := s.store.ListEpochStatuses(ctx, category, candidate, limit, offset)
	if err != nil {
		return &categoryResult{category: category, err: err}
	}
	count, err := s.store.CountEpochStatuses(ctx, category, candidate)
	if err != nil {
		return &categoryResult{category: category, err: err}
	}
	return &categoryResult{category: category, records: records, count: count}
}

// mapRecords converts raw epoch records into history entries. Penalty and
// propose epochs carry no reward; masternode epochs fan out to the reward
// engine concurrently.
func (s *Service) mapRecords(ctx context.Context, category domain.EpochCategory, records []schema.EpochStatus, candidate, owner string) ([]Entry, error) {
	if category != domain.CategoryMasternode {
		entries := make([]Entry, 0, len(records))
		for _, record := range records {
			entries = append(entries, Entry{
				Epoch:        record.Epoch,
				Status:       category.Status(),
				RewardAmount: big.NewInt(0),
				SignNumber:   0,
				RewardTime:   record.BlockCreatedAt,
			})
		}
		return entries, nil
	}

	tasks := make([]pond.Result[*entryResult], 0, len(records))
	for _, record := range records {
		record := record
		tasks = append(tasks, s.itemPool.Submit(func() *entryResult {
			outcome, err := s.resolver.Resolve(ctx, candidate, owner, record.Epoch, record.BlockCreatedAt)
			if err != nil {
				return &entryResult{err: err}
			}
			return &entryResult{entry: Entry{
				Epoch:        record.Epoch,
				Status:       domain.StatusMasternode,
				RewardAmount: outcome.Amount,
				SignNumber:   outcome.SignNumber,
				RewardTime:   outcome.RewardTime,
			}}
		}))
	}

	entries := make([]Entry, 0, len(tasks))
	for _, task := range tasks {
		result, err := task.Wait()
		if err != nil {
			return nil, err
		}
		if result.err != nil {
			return nil, fmt.Errorf("failed to resolve epoch reward: %w", result.err)
		}
		entries = append(entries, result.entry)
	}
	return entries, nil
}
