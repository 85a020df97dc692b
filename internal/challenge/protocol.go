package challenge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/khaihkd/tomochain-governance/internal/adapter"
	"github.com/khaihkd/tomochain-governance/internal/domain"
	"github.com/khaihkd/tomochain-governance/internal/signature"
	"github.com/khaihkd/tomochain-governance/internal/store"
	"github.com/khaihkd/tomochain-governance/internal/store/schema"
)

// Issued is the result of issuing an ownership challenge
type Issued struct {
	// Token is the one-time challenge identifier
	Token string
	// Message is the text the claimant must sign
	Message string
	// VerificationURL is where the signed message should be submitted
	VerificationURL string
}

// Protocol orchestrates the ownership challenge lifecycle: issue a signable
// message, consume it exactly once against a valid signature, and read back
// the stored signature afterwards.
type Protocol struct {
	store   store.Store
	clock   adapter.Clock
	baseURL string
}

// NewProtocol creates a new ownership challenge protocol
func NewProtocol(s store.Store, clock adapter.Clock, baseURL string) *Protocol {
	return &Protocol{
		store:   s,
		clock:   clock,
		baseURL: baseURL,
	}
}

// Issue creates a fresh challenge binding claimant to candidateAddress,
// replacing any prior challenge for the same claimant. The candidate must be
// known.
func (p *Protocol) Issue(ctx context.Context, candidateAddress, claimant string) (*Issued, error) {
	candidateAddress = domain.NormalizeAddress(candidateAddress)
	claimant = domain.NormalizeAddress(claimant)

	candidate, err := p.store.GetCandidateByAddress(ctx, candidateAddress)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, domain.ErrCandidateNotFound
	}

	token := uuid.NewString()
	message := fmt.Sprintf("[TomoMaster %s] I am the owner of candidate [%s]",
		p.clock.Now().UTC().Format("2006-01-02T15:04:05Z"), candidateAddress)

	record := &schema.OwnershipChallenge{
		Token:            token,
		ClaimedAddress:   claimant,
		CandidateAddress: candidateAddress,
		Message:          message,
		Status:           schema.ChallengeIssued,
		CreatedAt:        p.clock.Now(),
	}
	if err := p.store.UpsertChallenge(ctx, record); err != nil {
		return nil, err
	}

	return &Issued{
		Token:           token,
		Message:         message,
		VerificationURL: fmt.Sprintf("%s/api/owner/challenges/verify", p.baseURL),
	}, nil
}

// Consume verifies a signed challenge and transitions it to consumed. All
// three authorization checks collapse into the one SignatureMismatch error so
// a caller cannot probe which check failed.
func (p *Protocol) Consume(ctx context.Context, token, message, sig, claimedSigner string) error {
	record, err := p.store.GetChallengeByToken(ctx, token)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrChallengeNotFound
	}
	if record.Status != schema.ChallengeIssued {
		return domain.ErrChallengeConsumed
	}

	recovered, err := signature.RecoverSigner(message, sig)
	if err != nil {
		return err
	}

	if !domain.SameAddress(recovered, claimedSigner) ||
		!domain.SameAddress(recovered, record.ClaimedAddress) ||
		message != record.Message {
		return domain.ErrSignatureMismatch
	}

	consumed, err := p.store.ConsumeChallenge(ctx, token, message, sig)
	if err != nil {
		return err
	}
	if !consumed {
		// Lost the race to a concurrent consume of the same token.
		return domain.ErrChallengeConsumed
	}

	return nil
}

// Read returns the stored signature for a consumed challenge. An issued
// challenge is not yet readable; the result stays readable until the claimant
// issues a new challenge that supersedes this one.
func (p *Protocol) Read(ctx context.Context, token string) (string, error) {
	record, err := p.store.GetChallengeByToken(ctx, token)
	if err != nil {
		return "", err
	}
	if record == nil {
		return "", domain.ErrChallengeNotFound
	}
	if record.Status != schema.ChallengeConsumed || record.Signature == nil {
		return "", nil
	}
	return *record.Signature, nil
}
