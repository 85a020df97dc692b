package dto

import (
	"errors"

	"github.com/khaihkd/tomochain-governance/internal/domain"
)

// UpdateCandidateRequest is the body of PUT /api/candidates/:candidate
type UpdateCandidateRequest struct {
	Name string `json:"name"`
}

// Validate checks the request body
func (r *UpdateCandidateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if len(r.Name) > 64 {
		return errors.New("name must be at most 64 characters")
	}
	return nil
}

// IssueChallengeRequest is the body of POST /api/owner/challenges
type IssueChallengeRequest struct {
	// Candidate is the candidate address whose ownership is being claimed
	Candidate string `json:"candidate"`
	// Account is the address that will sign the challenge
	Account string `json:"account"`
}

// Validate checks the request body
func (r *IssueChallengeRequest) Validate() error {
	if !domain.IsValidAddress(r.Candidate) {
		return errors.New("candidate must be a valid address")
	}
	if !domain.IsValidAddress(r.Account) {
		return errors.New("account must be a valid address")
	}
	return nil
}

// VerifyChallengeRequest is the body of POST /api/owner/challenges/verify
type VerifyChallengeRequest struct {
	Token     string `json:"token"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
	// Signer is the address the caller claims produced the signature
	Signer string `json:"signer"`
}

// Validate checks the request body
func (r *VerifyChallengeRequest) Validate() error {
	if r.Token == "" {
		return errors.New("token is required")
	}
	if r.Message == "" {
		return errors.New("message is required")
	}
	if r.Signature == "" {
		return errors.New("signature is required")
	}
	if !domain.IsValidAddress(r.Signer) {
		return errors.New("signer must be a valid address")
	}
	return nil
}
