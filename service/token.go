package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shaj13/go-guardian/v2/auth"
	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/exception"
	"github.com/velora-app/velora-api/utils"
	"github.com/velora-app/velora-api/view"
	"gopkg.in/square/go-jose.v2"
	"gopkg.in/square/go-jose.v2/jwt"
)

const TokenIssuer = "velora"

type TokenService interface {
	IssueToken(user view.User) (*view.AccessToken, error)
	ValidateToken(ctx context.Context, token string) (auth.Info, time.Time, error)
	RevokeToken(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	// RevokeUser invalidates every credential of userId issued so far.
	RevokeUser(ctx context.Context, userId string) error
	IsUserRevoked(ctx context.Context, userId string) (bool, error)
}

// minUserRevocationTTL outlives the authentication cache in the security package.
const minUserRevocationTTL = 10 * time.Minute

type tokenClaims struct {
	Email string `json:"email"`
}

func NewTokenService(secret []byte, ttl time.Duration, revocationStore TokenRevocationStore) (TokenService, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("token secret is empty")
	}
	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.HS256, Key: secret}, (&jose.SignerOptions{}).WithType("JWT"))
	if err != nil {
		return nil, fmt.Errorf("failed to create token signer: %w", err)
	}
	return &tokenServiceImpl{
		secret:          secret,
		ttl:             ttl,
		signer:          signer,
		revocationStore: revocationStore,
		now:             time.Now,
	}, nil
}

type tokenServiceImpl struct {
	secret          []byte
	ttl             time.Duration
	signer          jose.Signer
	revocationStore TokenRevocationStore
	now             func() time.Time
}

func (t *tokenServiceImpl) IssueToken(user view.User) (*view.AccessToken, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)
	std := jwt.Claims{
		Issuer:    TokenIssuer,
		Subject:   user.Id,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Expiry:    jwt.NewNumericDate(expiresAt),
	}
	raw, err := jwt.Signed(t.signer).Claims(std).Claims(tokenClaims{Email: user.Email}).CompactSerialize()
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	return &view.AccessToken{Token: raw, ExpiresAt: expiresAt}, nil
}

func (t *tokenServiceImpl) ValidateToken(ctx context.Context, token string) (auth.Info, time.Time, error) {
	parsed, err := jwt.ParseSigned(token)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("token parse error: %w", err)
	}
	if len(parsed.Headers) != 1 || parsed.Headers[0].Algorithm != string(jose.HS256) {
		return nil, time.Time{}, fmt.Errorf("unexpected token signing algorithm")
	}

	var std jwt.Claims
	var custom tokenClaims
	if err := parsed.Claims(t.secret, &std, &custom); err != nil {
		return nil, time.Time{}, fmt.Errorf("claims extraction error: %w", err)
	}
	if err := std.ValidateWithLeeway(jwt.Expected{Issuer: TokenIssuer, Time: t.now()}, 0); err != nil {
		return nil, time.Time{}, fmt.Errorf("token is not valid: %w", err)
	}
	if std.Subject == "" || std.Expiry == nil {
		return nil, time.Time{}, fmt.Errorf("token is not valid: subject or expiry missing")
	}

	revoked, err := t.IsRevoked(ctx, token)
	if err != nil {
		return nil, time.Time{}, err
	}
	if revoked {
		return nil, time.Time{}, &exception.CustomError{
			Status:  http.StatusUnauthorized,
			Code:    exception.TokenRevoked,
			Message: exception.TokenRevokedMsg,
		}
	}

	userRevoked, err := t.IsUserRevoked(ctx, std.Subject)
	if err != nil {
		return nil, time.Time{}, err
	}
	if userRevoked {
		return nil, time.Time{}, accountDeleted(std.Subject)
	}

	return auth.NewDefaultUser(custom.Email, std.Subject, []string{}, auth.Extensions{}), std.Expiry.Time(), nil
}

// RevokeToken marks token as unusable until it would have expired anyway.
// Tokens that do not validate are ignored.
func (t *tokenServiceImpl) RevokeToken(ctx context.Context, token string) error {
	_, expiresAt, err := t.ValidateToken(ctx, token)
	if err != nil {
		log.Debugf("Skipping revocation of invalid token: %v", err)
		return nil
	}
	ttl := expiresAt.Sub(t.now())
	if ttl <= 0 {
		return nil
	}
	return t.revocationStore.Revoke(ctx, tokenKey(token), ttl)
}

func (t *tokenServiceImpl) IsRevoked(ctx context.Context, token string) (bool, error) {
	if t.revocationStore == nil {
		return false, nil
	}
	return t.revocationStore.IsRevoked(ctx, tokenKey(token))
}

func (t *tokenServiceImpl) RevokeUser(ctx context.Context, userId string) error {
	if t.revocationStore == nil {
		return fmt.Errorf("token revocation store is not configured")
	}
	ttl := t.ttl
	if ttl < minUserRevocationTTL {
		ttl = minUserRevocationTTL
	}
	log.Infof("Revoking all credentials of user %s for %v", userId, ttl)
	return t.revocationStore.Revoke(ctx, userKey(userId), ttl)
}

func (t *tokenServiceImpl) IsUserRevoked(ctx context.Context, userId string) (bool, error) {
	if t.revocationStore == nil {
		return false, nil
	}
	return t.revocationStore.IsRevoked(ctx, userKey(userId))
}

func accountDeleted(userId string) error {
	return &exception.CustomError{
		Status:  http.StatusUnauthorized,
		Code:    exception.AccountDeleted,
		Message: exception.AccountDeletedMsg,
		Params:  map[string]interface{}{"userId": userId},
	}
}

func userKey(userId string) string {
	return "user:" + userId
}

func tokenKey(token string) string {
	return utils.CreateSHA256Hash([]byte(token))
}
