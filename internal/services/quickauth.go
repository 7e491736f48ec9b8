package services

import (
	"crypto"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chevoisiatesalvati/guess-what/internal/config"
)

// QuickAuthVerifier checks Farcaster quick auth tokens: EdDSA JWTs whose
// subject is the user's fid.
type QuickAuthVerifier struct {
	key    crypto.PublicKey
	issuer string
	domain string
}

// NewQuickAuthVerifier returns nil when no public key is configured.
func NewQuickAuthVerifier(cfg *config.Config) (*QuickAuthVerifier, error) {
	if cfg.QuickAuthPublicKey == "" {
		return nil, nil
	}

	key, err := jwt.ParseEdPublicKeyFromPEM([]byte(cfg.QuickAuthPublicKey))
	if err != nil {
		return nil, fmt.Errorf("failed to parse quick auth public key: %v", err)
	}
	return NewQuickAuthVerifierWithKey(key, cfg.QuickAuthIssuer, cfg.QuickAuthDomain), nil
}

func NewQuickAuthVerifierWithKey(key crypto.PublicKey, issuer, domain string) *QuickAuthVerifier {
	return &QuickAuthVerifier{key: key, issuer: issuer, domain: domain}
}

// Verify returns the fid the token was issued for.
func (v *QuickAuthVerifier) Verify(token string) (int64, error) {
	if v == nil {
		return 0, ErrQuickAuthNotEnabled
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.domain != "" {
		opts = append(opts, jwt.WithAudience(v.domain))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.key, nil
	}, opts...)
	if err != nil {
		return 0, fmt.Errorf("invalid quick auth token: %w", err)
	}

	fid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || fid <= 0 {
		return 0, fmt.Errorf("invalid quick auth subject %q", claims.Subject)
	}
	return fid, nil
}
