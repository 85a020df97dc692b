package signature

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/khaihkd/tomochain-governance/internal/domain"
)

// RecoverSigner recovers the address that produced signatureHex over message
// using the Ethereum personal-sign scheme. The recovered address is returned
// lower-cased. Wallets emit the recovery byte as 27/28 while go-ethereum
// expects 0/1, so both encodings are accepted.
func RecoverSigner(message string, signatureHex string) (string, error) {
	sig, err := hexutil.Decode(signatureHex)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedSignature, err)
	}
	if len(sig) != crypto.SignatureLength {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", domain.ErrMalformedSignature, crypto.SignatureLength, len(sig))
	}

	normalized := make([]byte, crypto.SignatureLength)
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pubKey, err := crypto.SigToPub(accounts.TextHash([]byte(message)), normalized)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedSignature, err)
	}

	return domain.NormalizeAddress(crypto.PubkeyToAddress(*pubKey).Hex()), nil
}
