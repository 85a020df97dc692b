package rest

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/khaihkd/tomochain-governance/internal/domain"
)

const MAX_PAGE_SIZE = 100

// RewardHistoryQueryParams holds query parameters for
// GET /api/candidates/:candidate/rewards
type RewardHistoryQueryParams struct {
	Owner string `form:"owner"`
	Limit int    `form:"limit,default=100"`
	Page  int    `form:"page,default=1"`
}

// ParseRewardHistoryQuery parses query parameters for the reward history
// endpoint
func ParseRewardHistoryQuery(c *gin.Context) (*RewardHistoryQueryParams, error) {
	var params RewardHistoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Validate checks the parsed query parameters
func (p *RewardHistoryQueryParams) Validate() error {
	if !domain.IsValidAddress(p.Owner) {
		return errors.New("owner must be a valid address")
	}
	if p.Limit < 1 || p.Limit > MAX_PAGE_SIZE {
		return errors.New("limit must be between 1 and 100")
	}
	if p.Page < 1 {
		return errors.New("page must be at least 1")
	}
	return nil
}

// ListCandidatesQueryParams holds query parameters for GET /api/candidates
type ListCandidatesQueryParams struct {
	Statuses []string `form:"status"`
	Limit    int      `form:"limit,default=100"`
	Page     int      `form:"page,default=1"`
}

// ParseListCandidatesQuery parses query parameters for the candidate listing
// endpoint
func ParseListCandidatesQuery(c *gin.Context) (*ListCandidatesQueryParams, error) {
	var params ListCandidatesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Validate checks the parsed query parameters
func (p *ListCandidatesQueryParams) Validate() error {
	for _, status := range p.Statuses {
		if !domain.IsValidCandidateStatus(domain.CandidateStatus(strings.ToUpper(status))) {
			return errors.New("status must be one of PROPOSED, MASTERNODE, SLASHED, RESIGNED")
		}
	}
	if p.Limit < 1 || p.Limit > MAX_PAGE_SIZE {
		return errors.New("limit must be between 1 and 100")
	}
	if p.Page < 1 {
		return errors.New("page must be at least 1")
	}
	return nil
}

// CandidateStatuses returns the parsed status filters in canonical form
func (p *ListCandidatesQueryParams) CandidateStatuses() []domain.CandidateStatus {
	statuses := make([]domain.CandidateStatus, 0, len(p.Statuses))
	for _, status := range p.Statuses {
		statuses = append(statuses, domain.CandidateStatus(strings.ToUpper(status)))
	}
	return statuses
}

// Offset converts (page, limit) to a row offset
func (p *ListCandidatesQueryParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
