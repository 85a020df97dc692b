package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/khaihkd/tomochain-governance/internal/api/rest/dto"
	"github.com/khaihkd/tomochain-governance/internal/challenge"
	"github.com/khaihkd/tomochain-governance/internal/domain"
	"github.com/khaihkd/tomochain-governance/internal/history"
	"github.com/khaihkd/tomochain-governance/internal/providers/tomochain"
	"github.com/khaihkd/tomochain-governance/internal/store"
)

// HistoryService merges per-epoch event streams into reward history pages
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_services.go -package=mocks
type HistoryService interface {
	History(ctx context.Context, candidate, owner string, limit, page int) (*history.Page, error)
}

// ChallengeProtocol drives the ownership challenge lifecycle
type ChallengeProtocol interface {
	Issue(ctx context.Context, candidateAddress, claimant string) (*challenge.Issued, error)
	Consume(ctx context.Context, token, message, signature, claimedSigner string) error
	Read(ctx context.Context, token string) (string, error)
}

// ChainReader reads the current chain head state
type ChainReader interface {
	Info(ctx context.Context) (*tomochain.ChainInfo, error)
}

// Handler defines the interface for REST API handlers
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// GetConfig returns the public chain configuration snapshot
	// GET /api/config
	GetConfig(c *gin.Context)

	// ListCandidates retrieves candidates with optional status filters
	// GET /api/candidates?status=<status>&limit=<limit>&page=<page>
	ListCandidates(c *gin.Context)

	// GetCandidate retrieves a single candidate by address
	// GET /api/candidates/:candidate
	GetCandidate(c *gin.Context)

	// UpdateCandidate updates the display name of a candidate (requires authentication)
	// PUT /api/candidates/:candidate
	UpdateCandidate(c *gin.Context)

	// GetRewardHistory retrieves the merged reward history of a candidate
	// GET /api/candidates/:candidate/rewards?owner=<address>&limit=<limit>&page=<page>
	GetRewardHistory(c *gin.Context)

	// IssueChallenge creates a fresh ownership challenge
	// POST /api/owner/challenges
	IssueChallenge(c *gin.Context)

	// VerifyChallenge consumes a challenge against a submitted signature
	// POST /api/owner/challenges/verify
	VerifyChallenge(c *gin.Context)

	// GetChallengeSignature reads back the stored signature of a consumed challenge
	// GET /api/owner/challenges/:token/signature
	GetChallengeSignature(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store      store.Store
	history    HistoryService
	protocol   ChallengeProtocol
	chain      ChainReader
	rewardPool string
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store, historyService HistoryService, protocol ChallengeProtocol, chain ChainReader, rewardPool string) Handler {
	return &handler{
		store:      st,
		history:    historyService,
		protocol:   protocol,
		chain:      chain,
		rewardPool: rewardPool,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "tomochain-governance-api",
	})
}

// GetConfig returns the public chain configuration snapshot
func (h *handler) GetConfig(c *gin.Context) {
	info, err := h.chain.Info(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, "Failed to read chain state")
		return
	}

	c.JSON(http.StatusOK, dto.NewConfigResponse(info, h.rewardPool))
}

// ListCandidates retrieves candidates with optional status filters
func (h *handler) ListCandidates(c *gin.Context) {
	queryParams, err := ParseListCandidatesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	candidates, total, err := h.store.ListCandidates(c.Request.Context(), store.CandidateFilter{
		Statuses: queryParams.CandidateStatuses(),
		Limit:    queryParams.Limit,
		Offset:   queryParams.Offset(),
	})
	if err != nil {
		respondInternalError(c, "Failed to list candidates")
		return
	}

	items := make([]dto.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		items = append(items, dto.NewCandidateResponse(&candidates[i]))
	}

	c.JSON(http.StatusOK, dto.CandidateListResponse{Items: items, Total: total})
}

// GetCandidate retrieves a single candidate by address
func (h *handler) GetCandidate(c *gin.Context) {
	address := c.Param("candidate")
	if !domain.IsValidAddress(address) {
		respondBadRequest(c, "Invalid candidate address")
		return
	}

	candidate, err := h.store.GetCandidateByAddress(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, "Failed to get candidate")
		return
	}
	if candidate == nil {
		respondNotFound(c, "Candidate not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewCandidateResponse(candidate))
}

// UpdateCandidate updates the display name of a candidate
func (h *handler) UpdateCandidate(c *gin.Context) {
	address := c.Param("candidate")
	if !domain.IsValidAddress(address) {
		respondBadRequest(c, "Invalid candidate address")
		return
	}

	var req dto.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	updated, err := h.store.UpdateCandidateName(c.Request.Context(), address, req.Name)
	if err != nil {
		respondInternalError(c, "Failed to update candidate")
		return
	}
	if !updated {
		respondNotFound(c, "Candidate not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetRewardHistory retrieves the merged reward history of a candidate
func (h *handler) GetRewardHistory(c *gin.Context) {
	address := c.Param("candidate")
	if !domain.IsValidAddress(address) {
		respondBadRequest(c, "Invalid candidate address")
		return
	}

	queryParams, err := ParseRewardHistoryQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	candidate, err := h.store.GetCandidateByAddress(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, "Failed to get candidate")
		return
	}
	if candidate == nil {
		respondNotFound(c, "Candidate not found")
		return
	}

	page, err := h.history.History(c.Request.Context(), address, queryParams.Owner, queryParams.Limit, queryParams.Page)
	if err != nil {
		// The reward engine is the only external dependency on this path; a
		// failure there blocks the whole page.
		respondUpstreamError(c, "Failed to compute reward history")
		return
	}

	c.JSON(http.StatusOK, dto.NewRewardHistoryResponse(page))
}

// IssueChallenge creates a fresh ownership challenge
func (h *handler) IssueChallenge(c *gin.Context) {
	var req dto.IssueChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	issued, err := h.protocol.Issue(c.Request.Context(), req.Candidate, req.Account)
	if err != nil {
		if errors.Is(err, domain.ErrCandidateNotFound) {
			respondNotFound(c, "Candidate not found")
			return
		}
		respondInternalError(c, "Failed to issue challenge")
		return
	}

	c.JSON(http.StatusCreated, dto.ChallengeResponse{
		Token:           issued.Token,
		Message:         issued.Message,
		VerificationURL: issued.VerificationURL,
	})
}

// VerifyChallenge consumes a challenge against a submitted signature
func (h *handler) VerifyChallenge(c *gin.Context) {
	var req dto.VerifyChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	err := h.protocol.Consume(c.Request.Context(), req.Token, req.Message, req.Signature, req.Signer)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	case errors.Is(err, domain.ErrChallengeNotFound):
		respondNotFound(c, "Challenge not found")
	case errors.Is(err, domain.ErrChallengeConsumed):
		respondConflict(c, "Challenge already consumed")
	case errors.Is(err, domain.ErrMalformedSignature):
		respondValidationError(c, "signature is not a valid recoverable signature")
	case errors.Is(err, domain.ErrSignatureMismatch):
		respondUnauthorized(c, "Signature verification failed")
	default:
		respondInternalError(c, "Failed to verify challenge")
	}
}

// GetChallengeSignature reads back the stored signature of a consumed
// challenge. An issued challenge returns an empty signature rather than an
// error; the caller polls until consumption.
func (h *handler) GetChallengeSignature(c *gin.Context) {
	token := c.Param("token")
	if _, err := uuid.Parse(token); err != nil {
		respondBadRequest(c, "Invalid challenge token")
		return
	}

	sig, err := h.protocol.Read(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrChallengeNotFound) {
			respondNotFound(c, "Challenge not found")
			return
		}
		respondInternalError(c, "Failed to read challenge")
		return
	}

	c.JSON(http.StatusOK, dto.ChallengeSignatureResponse{Signature: sig})
}
