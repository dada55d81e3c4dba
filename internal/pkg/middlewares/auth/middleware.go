package auth

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"medassist/internal/pkg/config"
	"medassist/pkg/logger"
)

const (
	RoleDriver     = "driver"
	RolePharmacist = "pharmacist"
	RoleAdmin      = "admin"
)

// tokenTypeAccess: сервисы принимают только access-токены,
// refresh-токены с тем же секретом не проходят.
const tokenTypeAccess = "access"

type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
	Type  string   `json:"type"`
}

// Identity это проверенная личность вызывающего, кладется в контекст запроса.
type Identity struct {
	UserID string
	Roles  []string
}

type identityCtxKey struct{}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	return identity, ok
}

func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// Middleware проверяет подпись, срок действия, issuer/audience и тип токена.
// Любой дефект токена -> 401 без деталей подписи в ответе.
func Middleware(log handlerLogger, cfg *config.JWT) func(http.Handler) http.Handler {
	authLog := log.With()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				writeUnauthenticated(w, "missing bearer token")
				return
			}

			claims := &Claims{}
			_, err := jwt.ParseWithClaims(token, claims,
				func(*jwt.Token) (interface{}, error) {
					return []byte(cfg.Secret), nil
				},
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
				jwt.WithIssuer(cfg.Issuer),
				jwt.WithAudience(cfg.Audience),
				jwt.WithExpirationRequired(),
			)
			if err != nil {
				authLog.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("token verification failed")
				writeUnauthenticated(w, "invalid or expired token")
				return
			}

			if claims.Type != tokenTypeAccess {
				writeUnauthenticated(w, "invalid token type")
				return
			}
			if claims.Subject == "" {
				writeUnauthenticated(w, "invalid or expired token")
				return
			}

			identity := Identity{
				UserID: claims.Subject,
				Roles:  claims.Roles,
			}

			ctx := ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает вызов только при наличии требуемой роли либо admin.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeUnauthenticated(w, "missing bearer token")
				return
			}

			if !slices.Contains(identity.Roles, role) && !slices.Contains(identity.Roles, RoleAdmin) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				//nolint:errcheck // тело ошибки best effort
				w.Write([]byte(`{"success":false,"message":"` + role + ` access required"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthenticated(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	//nolint:errcheck // тело ошибки best effort
	w.Write([]byte(`{"success":false,"message":"` + msg + `"}`))
}
