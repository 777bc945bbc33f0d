package middleware

import (
	"context"
	"net/http"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/rs/zerolog"

	"github.com/andrewpaige1/nodebook-local/config"
)

// EnsureValidToken returns a middleware that rejects requests without a
// valid HS256 device token. When no secret is configured every request is
// let through, which is how the API runs on a single device.
func EnsureValidToken(env config.Environment, logger zerolog.Logger) (func(http.Handler) http.Handler, error) {
	if env.JWTSecretKey == "" {
		logger.Warn().Msg("JWT_SECRET_KEY not set, API is unauthenticated")
		return func(next http.Handler) http.Handler { return next }, nil
	}

	keyFunc := func(context.Context) (interface{}, error) {
		return []byte(env.JWTSecretKey), nil
	}
	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		env.JWTIssuer,
		[]string{env.JWTAudience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, err
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Info().Err(err).Str("path", r.URL.Path).Msg("Rejected request token")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Failed to validate JWT."}`))
	}

	mw := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)
	return mw.CheckJWT, nil
}
