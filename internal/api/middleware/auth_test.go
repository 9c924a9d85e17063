package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mikelm2020/estatehub/internal/core/domain"
	"github.com/mikelm2020/estatehub/internal/core/token"
)

func newTestCodec() *token.Codec {
	return token.NewCodec("test-secret", "HS256", 20*time.Minute)
}

func signedTokenAt(t *testing.T, codec *token.Codec, issuedAt time.Time) string {
	t.Helper()
	agent := &domain.Agent{ID: "agent-1", Username: "alice", Role: domain.RoleAgent}
	signed, err := codec.EncodeAt(agent, issuedAt)
	if err != nil {
		t.Fatalf("EncodeAt returned error: %v", err)
	}
	return signed
}

// invokeAuth runs the middleware against a request carrying authHeader and
// returns the captured principal (if the chain continued) and the error.
func invokeAuth(t *testing.T, codec *token.Codec, authHeader string) (domain.Principal, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/agents", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured domain.Principal
	handler := Auth(codec)(func(c echo.Context) error {
		captured, _ = c.Get(PrincipalKey).(domain.Principal)
		return c.NoContent(http.StatusOK)
	})
	return captured, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	codec := newTestCodec()
	signed := signedTokenAt(t, codec, time.Now().UTC())

	principal, err := invokeAuth(t, codec, "Bearer "+signed)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if principal.ID != "agent-1" || principal.Username != "alice" || principal.Role != domain.RoleAgent {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestAuth_SchemeIsCaseInsensitive(t *testing.T) {
	codec := newTestCodec()
	signed := signedTokenAt(t, codec, time.Now().UTC())

	if _, err := invokeAuth(t, codec, "bearer "+signed); err != nil {
		t.Fatalf("lowercase scheme must be accepted, got %v", err)
	}
}

func TestAuth_FailuresAreIndistinguishable(t *testing.T) {
	codec := newTestCodec()
	expired := signedTokenAt(t, codec, time.Now().UTC().Add(-21*time.Minute))
	foreign := signedTokenAt(t, token.NewCodec("other-secret", "HS256", 20*time.Minute), time.Now().UTC())

	// Missing header, malformed header, expired token, and a token signed
	// with a foreign secret must all produce the same generic 401 so the
	// response does not leak why authentication failed.
	cases := map[string]string{
		"missing header": "",
		"no scheme":      "just-a-token",
		"wrong scheme":   "Basic dXNlcjpwYXNz",
		"expired":        "Bearer " + expired,
		"tampered":       "Bearer " + foreign,
		"garbage":        "Bearer not.a.jwt",
	}

	for name, header := range cases {
		_, err := invokeAuth(t, codec, header)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("%s: expected *echo.HTTPError, got %v", name, err)
		}
		if httpErr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, httpErr.Code)
		}
		if httpErr.Message != "authentication failed" {
			t.Fatalf("%s: body must be the generic message, got %v", name, httpErr.Message)
		}
	}
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/admin/property/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(PrincipalKey, domain.Principal{ID: "agent-1", Username: "root", Role: domain.RoleAdmin})

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	if err := handler(c); err != nil {
		t.Fatalf("admin must pass the admin gate: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRBAC_RejectsOtherRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/admin/property/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(PrincipalKey, domain.Principal{ID: "agent-1", Username: "alice", Role: domain.RoleAgent})

	called := false
	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("RBAC writes the response itself, got error %v", err)
	}
	if called {
		t.Fatalf("handler must not run for a disallowed role")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_MissingPrincipal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/admin/property/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		return nil
	})
	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a principal, got %v", err)
	}
}
