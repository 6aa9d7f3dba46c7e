package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfiscal/notafiscal-api/internal/domain/entity"
	"github.com/openfiscal/notafiscal-api/internal/upstream"
	"github.com/openfiscal/notafiscal-api/pkg/apperror"
	"github.com/openfiscal/notafiscal-api/pkg/utils"
)

type fakeVerifier struct {
	wantLogin  string
	wantDigest string
	identity   *utils.Identity
	err        error
	gotDigest  string
}

func (f *fakeVerifier) VerifyPassword(ctx context.Context, login, passwordDigest string) (*utils.Identity, error) {
	f.gotDigest = passwordDigest
	if f.err != nil {
		return nil, f.err
	}
	if login != f.wantLogin || passwordDigest != f.wantDigest {
		return nil, &upstream.StatusError{StatusCode: 401}
	}
	return f.identity, nil
}

type fakeTokenRepo struct {
	revoked map[string]bool
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{revoked: map[string]bool{}}
}

func (f *fakeTokenRepo) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	f.revoked[token.JTI] = true
	return nil
}

func (f *fakeTokenRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func (f *fakeTokenRepo) DeleteExpired(ctx context.Context) error { return nil }

func sha256Hex(s string) string {
	digest := sha256.Sum256([]byte(s))
	return hex.EncodeToString(digest[:])
}

func TestLogin(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", time.Hour)
	verifier := &fakeVerifier{
		wantLogin:  "maria",
		wantDigest: sha256Hex("1234"),
		identity:   &utils.Identity{UserID: 7, Login: "maria", Nivel: 2},
	}
	svc := NewAuthService(verifier, newFakeTokenRepo(), manager)

	out, err := svc.Login(context.Background(), &LoginInput{Login: "maria", Senha: "1234"})
	require.NoError(t, err)

	assert.Equal(t, "maria", out.Login)
	assert.Equal(t, 2, out.Nivel)
	assert.Equal(t, sha256Hex("1234"), verifier.gotDigest, "plaintext must never travel upstream")

	claims, err := manager.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, *verifier.identity, claims.Identity)
}

func TestLoginBadCredentials(t *testing.T) {
	verifier := &fakeVerifier{wantLogin: "maria", wantDigest: sha256Hex("1234")}
	svc := NewAuthService(verifier, newFakeTokenRepo(), utils.NewJWTManager("s", time.Hour))

	_, err := svc.Login(context.Background(), &LoginInput{Login: "maria", Senha: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLoginUpstreamTransportFault(t *testing.T) {
	verifier := &fakeVerifier{err: context.DeadlineExceeded}
	svc := NewAuthService(verifier, newFakeTokenRepo(), utils.NewJWTManager("s", time.Hour))

	_, err := svc.Login(context.Background(), &LoginInput{Login: "maria", Senha: "1234"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLogoutRevokesJTI(t *testing.T) {
	repo := newFakeTokenRepo()
	svc := NewAuthService(&fakeVerifier{}, repo, utils.NewJWTManager("s", time.Hour))

	claims := &utils.Claims{
		Identity: utils.Identity{Login: "maria"},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	require.NoError(t, svc.Logout(context.Background(), claims))

	revoked, err := repo.IsRevoked(context.Background(), "jti-123")
	require.NoError(t, err)
	assert.True(t, revoked)
}
