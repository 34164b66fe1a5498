package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	goACL "github.com/MrEthical07/goACL"
	"github.com/golang-jwt/jwt/v5"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newGuardedServer(t *testing.T) (*httptest.Server, *goACL.Engine) {
	t.Helper()

	engine, err := goACL.New().
		WithRoles("L1", "L2").
		WithAdmins("L2", "admin1").
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	if _, err := engine.GrantRole(goACL.WithCaller(context.Background(), "admin1"), "L2", "bob"); err != nil {
		t.Fatalf("grant failed: %v", err)
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFromContext(r.Context())
		if !ok {
			t.Error("caller missing from request context")
		}
		_, _ = w.Write([]byte(caller))
	})

	server := httptest.NewServer(Guard(engine, goACL.Single("L2"), testKey)(handler))
	t.Cleanup(server.Close)

	return server, engine
}

func signToken(t *testing.T, subject string, key []byte) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return signed
}

func get(t *testing.T, url, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request failed: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestGuardAllowsMember(t *testing.T) {
	server, _ := newGuardedServer(t)

	resp := get(t, server.URL, signToken(t, "bob", testKey))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGuardDeniesNonMember(t *testing.T) {
	server, _ := newGuardedServer(t)

	resp := get(t, server.URL, signToken(t, "mallory", testKey))
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestGuardRejectsMissingToken(t *testing.T) {
	server, _ := newGuardedServer(t)

	resp := get(t, server.URL, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestGuardRejectsWrongKey(t *testing.T) {
	server, _ := newGuardedServer(t)

	resp := get(t, server.URL, signToken(t, "bob", []byte("wrong-key-wrong-key-wrong-key-00")))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestGuardRejectsTokenWithoutSubject(t *testing.T) {
	server, _ := newGuardedServer(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString(testKey)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	resp := get(t, server.URL, signed)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
