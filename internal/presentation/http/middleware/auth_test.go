package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfiscal/notafiscal-api/pkg/utils"
)

type fakeRevocations struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[jti], nil
}

func newTestRouter(jwtManager *utils.JWTManager, revocations RevocationChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtManager, revocations), func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"login": claims.Identity.Login})
	})
	return router
}

func testIdentity() utils.Identity {
	return utils.Identity{UserID: 7, Login: "maria", Email: "maria@example.com", Nivel: 1, Ativado: "S"}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.GenerateToken(testIdentity())
	require.NoError(t, err)

	router := newTestRouter(jwtManager, &fakeRevocations{revoked: map[string]bool{}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "maria")
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	router := newTestRouter(jwtManager, &fakeRevocations{revoked: map[string]bool{}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	router := newTestRouter(jwtManager, &fakeRevocations{revoked: map[string]bool{}})

	for _, header := range []string{"Basic abc", "Bearer", "Bearer a b"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthMiddlewareRejectsTokenSignedWithOtherSecret(t *testing.T) {
	other := utils.NewJWTManager("other-secret", time.Hour)
	token, err := other.GenerateToken(testIdentity())
	require.NoError(t, err)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	router := newTestRouter(jwtManager, &fakeRevocations{revoked: map[string]bool{}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.GenerateToken(testIdentity())
	require.NoError(t, err)

	claims, err := jwtManager.ValidateToken(token)
	require.NoError(t, err)

	router := newTestRouter(jwtManager, &fakeRevocations{revoked: map[string]bool{claims.ID: true}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "logged out")
}

func TestAuthMiddlewareFailsClosedOnRevocationStoreError(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.GenerateToken(testIdentity())
	require.NoError(t, err)

	router := newTestRouter(jwtManager, &fakeRevocations{err: assert.AnError})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
