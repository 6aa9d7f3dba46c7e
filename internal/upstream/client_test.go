package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfiscal/notafiscal-api/internal/config"
)

func upstreamConfig(url string) config.UpstreamConfig {
	return config.UpstreamConfig{
		UserServiceURL:    url,
		ProductServiceURL: url,
		Timeout:           2 * time.Second,
	}
}

func TestVerifyPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/verifica_senha", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["login"] == "maria" && body["senha"] == "digest" {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"user_id": 7, "login": "maria", "email": "m@x.com", "nivel": 2, "ativado": "S",
			})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewUserClient(upstreamConfig(srv.URL))

	identity, err := client.VerifyPassword(context.Background(), "maria", "digest")
	require.NoError(t, err)
	assert.Equal(t, "maria", identity.Login)
	assert.Equal(t, 2, identity.Nivel)
	assert.Equal(t, 7, identity.UserID)

	_, err = client.VerifyPassword(context.Background(), "maria", "wrong")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestUserListForwardsBearerAndBody(t *testing.T) {
	payload := `{"Users":[{"login":"maria","nivel":2}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/usuarios", r.URL.Path)
		require.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	blob, err := NewUserClient(upstreamConfig(srv.URL)).List(context.Background(), "svc-token")
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(blob))
}

func TestProductRegister(t *testing.T) {
	var got ProductRegistration
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/registrar", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	reg := ProductRegistration{Nome: "Widget", Descricao: "ACME", Preco: 15.0, Quantidade: 2}
	err := NewProductClient(upstreamConfig(srv.URL)).Register(context.Background(), "svc-token", reg)
	require.NoError(t, err)
	assert.Equal(t, reg, got)
}

func TestProductDeleteMapsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/produto/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := NewProductClient(upstreamConfig(srv.URL)).Delete(context.Background(), "svc-token", 42)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestTransportFaultIsNotStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewUserClient(upstreamConfig(srv.URL)).List(context.Background(), "t")
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}
