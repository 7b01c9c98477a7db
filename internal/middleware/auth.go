package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	clerkuser "github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/labstack/echo/v4"

	"github.com/wedora/backend/internal/errs"
	"github.com/wedora/backend/internal/server"
)

// AuthMiddleware enforces authentication using Clerk and resolves the
// verified identity for downstream handlers.
type AuthMiddleware struct {
	server *server.Server
}

// NewAuthMiddleware constructs an AuthMiddleware and registers the Clerk
// secret key once for the whole process.
func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	clerk.SetKey(s.Config.Auth.SecretKey)

	return &AuthMiddleware{
		server: s,
	}
}

// RequireAuth validates the Authorization bearer token via Clerk, then
// resolves the user's primary verified email through the Clerk user API
// and stores it alongside the subject id in Echo context. History and
// other identity-scoped endpoints trust only this email, never one sent
// by the client.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)

				response := errs.NewUnauthorizedError("Unauthorized", false)
				if err := json.NewEncoder(w).Encode(response); err != nil {
					auth.server.Logger.Error().
						Err(err).
						Str("function", "RequireAuth").
						Msg("failed to write JSON response")
				}
			}))))(
		func(c echo.Context) error {
			start := time.Now()

			claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
			if !ok {
				auth.server.Logger.Error().
					Str("function", "RequireAuth").
					Str("request_id", GetRequestID(c)).
					Dur("duration", time.Since(start)).
					Msg("could not get session claims from context")

				return errs.NewUnauthorizedError("Unauthorized", false)
			}

			email, err := auth.resolveVerifiedEmail(c, claims.Subject)
			if err != nil {
				auth.server.Logger.Error().
					Err(err).
					Str("function", "RequireAuth").
					Str("user_id", claims.Subject).
					Str("request_id", GetRequestID(c)).
					Msg("could not resolve verified email for user")

				return errs.NewUnauthorizedError("Unauthorized", false)
			}

			c.Set(UserIDKey, claims.Subject)
			c.Set(UserEmailKey, email)

			auth.server.Logger.Info().
				Str("function", "RequireAuth").
				Str("user_id", claims.Subject).
				Str("request_id", GetRequestID(c)).
				Dur("duration", time.Since(start)).
				Msg("user authenticated successfully")

			return next(c)
		})
}

// resolveVerifiedEmail fetches the Clerk user record and returns the
// primary email address. The session token does not carry the email, so
// this round trip is required.
func (auth *AuthMiddleware) resolveVerifiedEmail(c echo.Context, userID string) (string, error) {
	usr, err := clerkuser.Get(c.Request().Context(), userID)
	if err != nil {
		return "", err
	}

	for _, addr := range usr.EmailAddresses {
		if usr.PrimaryEmailAddressID != nil && addr.ID == *usr.PrimaryEmailAddressID {
			return addr.EmailAddress, nil
		}
	}

	if len(usr.EmailAddresses) > 0 {
		return usr.EmailAddresses[0].EmailAddress, nil
	}

	return "", errs.NewUnauthorizedError("Unauthorized", false)
}
