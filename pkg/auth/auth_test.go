package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jordanlanch/salesagent/pkg/cache"
	"github.com/jordanlanch/salesagent/pkg/domain"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-minimum-32-characters-long"

func setupTestRedis(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestPassword(t *testing.T) {
	hashed, err := HashPassword("s3nha-forte")
	require.NoError(t, err)
	assert.NotEqual(t, "s3nha-forte", hashed)

	again, err := HashPassword("s3nha-forte")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, again, "bcrypt salts every hash")

	assert.True(t, CheckPassword(hashed, "s3nha-forte"))
	assert.False(t, CheckPassword(hashed, "errada"))
	assert.False(t, CheckPassword("", "s3nha-forte"))
}

func TestToken(t *testing.T) {
	now := time.Now()
	token, expires, err := IssueToken("admin@example.com", secret, time.Hour, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), expires, time.Second)

	claims, err := ParseToken(token, secret, now)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, tokenIssuer, claims.Issuer)

	_, err = ParseToken(token, "wrong-secret-key-minimum-32-characters-long", now)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	_, err = ParseToken("invalid.token.here", secret, now)
	assert.Error(t, err)

	_, err = ParseToken(token, secret, now.Add(2*time.Hour))
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseToken_RejectsForeignTokens(t *testing.T) {
	now := time.Now()
	sign := func(method jwt.SigningMethod, claims *Claims, key any) string {
		t.Helper()
		raw, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return raw
	}
	base := func() *Claims {
		return &Claims{Email: "admin@example.com", Role: RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}}
	}

	otherIssuer := base()
	otherIssuer.Issuer = "someone-else"
	_, err := ParseToken(sign(jwt.SigningMethodHS256, otherIssuer, []byte(secret)), secret, now)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	noExpiry := base()
	noExpiry.ExpiresAt = nil
	_, err = ParseToken(sign(jwt.SigningMethodHS256, noExpiry, []byte(secret)), secret, now)
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)

	_, err = ParseToken(sign(jwt.SigningMethodHS512, base(), []byte(secret)), secret, now)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	viewer := base()
	viewer.Role = "viewer"
	_, err = ParseToken(sign(jwt.SigningMethodHS256, viewer, []byte(secret)), secret, now)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidClaims)
}

func TestRevocations(t *testing.T) {
	client, mr := setupTestRedis(t)
	r := NewRevocations(client)
	ctx := context.Background()

	require.NoError(t, r.Revoke(ctx, "token.one", time.Second))
	require.NoError(t, r.Revoke(ctx, "token.stale", 0))

	revoked, err := r.IsRevoked(ctx, "token.one")
	require.NoError(t, err)
	assert.True(t, revoked)

	for _, tok := range []string{"token.two", "token.stale"} {
		revoked, err = r.IsRevoked(ctx, tok)
		require.NoError(t, err)
		assert.False(t, revoked, tok)
	}

	mr.FastForward(2 * time.Second)
	revoked, err = r.IsRevoked(ctx, "token.one")
	require.NoError(t, err)
	assert.False(t, revoked)

	assert.Len(t, revokedKey("token.one"), len(revokedPrefix)+64)
	assert.False(t, mr.Exists("token.one"))
}

func newService(t *testing.T, revoked *Revocations) *Service {
	t.Helper()
	hash, err := HashPassword("s3nha-forte")
	require.NoError(t, err)
	return NewService(Config{Secret: secret, AdminEmail: "admin@example.com", PasswordHash: hash}, revoked)
}

func TestService_Login(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	resp, err := svc.Login(ctx, models.LoginRequest{Email: " Admin@Example.com", Password: "s3nha-forte"})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", resp.Email)
	assert.NotEmpty(t, resp.ExpiresAt)

	claims, err := svc.Validate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "admin@example.com", Password: "errada"})
	assert.True(t, domain.IsUnauthorized(err))
	_, err = svc.Login(ctx, models.LoginRequest{Email: "outro@example.com", Password: "s3nha-forte"})
	assert.True(t, domain.IsUnauthorized(err))

	unconfigured := NewService(Config{Secret: secret}, nil)
	_, err = unconfigured.Login(ctx, models.LoginRequest{Email: "", Password: ""})
	assert.True(t, domain.IsUnauthorized(err))
}

func TestService_Logout(t *testing.T) {
	client, _ := setupTestRedis(t)
	svc := newService(t, NewRevocations(client))
	ctx := context.Background()

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "admin@example.com", Password: "s3nha-forte"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, resp.Token))

	_, err = svc.Validate(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	assert.True(t, domain.IsUnauthorized(svc.Logout(ctx, "garbage")))
}
