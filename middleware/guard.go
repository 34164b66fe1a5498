package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	goACL "github.com/MrEthical07/goACL"
	"github.com/golang-jwt/jwt/v5"
)

type callerContextKey struct{}

// CallerFromContext returns the account resolved by [Guard] for the current
// request.
func CallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(callerContextKey{}).(string)
	return caller, ok
}

// Guard enforces a policy on every request before the wrapped handler runs.
// The caller account is the subject claim of an HMAC-signed bearer token;
// requests without a valid identity get 401, callers failing the policy get
// 403, and the handler body never executes on either.
func Guard(engine *goACL.Engine, policy goACL.Policy, key []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			caller, ok := subjectFromToken(raw, key)
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := goACL.WithCaller(r.Context(), caller)
			if err := engine.Check(ctx, policy); err != nil {
				if errors.Is(err, goACL.ErrAuthorizationDenied) {
					http.Error(w, "forbidden", http.StatusForbidden)
					return
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			ctx = context.WithValue(ctx, callerContextKey{}, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func subjectFromToken(raw string, key []byte) (string, bool) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", false
	}

	return subject, true
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
