package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/nodebook-local/auth"
	"github.com/andrewpaige1/nodebook-local/config"
	"github.com/andrewpaige1/nodebook-local/utils"
)

func subjectEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ := utils.GetSubject(r)
		_, _ = w.Write([]byte(subject))
	})
}

func TestEnsureValidToken(t *testing.T) {
	env := config.Environment{
		JWTSecretKey: "test-secret",
		JWTIssuer:    "nodebook-local",
		JWTAudience:  "nodebook-app",
	}
	mw, err := EnsureValidToken(env, zerolog.Nop())
	require.NoError(t, err)
	handler := mw(subjectEcho())

	issuer := auth.Issuer{Secret: env.JWTSecretKey, Issuer: env.JWTIssuer, Audience: env.JWTAudience}
	token, err := issuer.CreateToken("device-1", time.Hour)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "device-1", rec.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/folders", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign audience", func(t *testing.T) {
		other := issuer
		other.Audience = "someone-else"
		foreign, err := other.CreateToken("device-1", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
		req.Header.Set("Authorization", "Bearer "+foreign)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestEnsureValidTokenWithoutSecret(t *testing.T) {
	mw, err := EnsureValidToken(config.Environment{}, zerolog.Nop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	mw(subjectEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/folders", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/folders", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "POST", line["method"])
	assert.Equal(t, "/api/folders", line["path"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
	assert.EqualValues(t, len("short and stout"), line["bytes"])
}
