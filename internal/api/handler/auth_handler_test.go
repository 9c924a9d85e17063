package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mikelm2020/estatehub/internal/core/domain"
	"github.com/mikelm2020/estatehub/internal/core/ports"
)

// stubAuthService lets each test pin just the method it exercises.
type stubAuthService struct {
	registerFn       func(ctx context.Context, input ports.RegisterAgentInput) (*domain.Agent, error)
	loginFn          func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	currentAgentFn   func(ctx context.Context, principal domain.Principal) (*domain.Agent, error)
	changePasswordFn func(ctx context.Context, principal domain.Principal, current, updated string) error
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterAgentInput) (*domain.Agent, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) CurrentAgent(ctx context.Context, principal domain.Principal) (*domain.Agent, error) {
	return s.currentAgentFn(ctx, principal)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, principal domain.Principal, current, updated string) error {
	return s.changePasswordFn(ctx, principal, current, updated)
}

func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const registerBody = `{
	"name": "Alice Doe",
	"email": "alice@example.com",
	"username": "alice",
	"password": "secret123",
	"phone": "5551234567",
	"role": "agent"
}`

func TestAuthHandler_Register(t *testing.T) {
	var got ports.RegisterAgentInput
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterAgentInput) (*domain.Agent, error) {
			got = input
			return &domain.Agent{ID: "agent-1", Username: input.Username, Role: domain.Role(input.Role)}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(registerBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTestContext(req)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Username != "alice" || got.Role != "agent" || got.Password != "secret123" {
		t.Fatalf("unexpected input forwarded to service: %+v", got)
	}
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterAgentInput) (*domain.Agent, error) {
			t.Fatal("service must not be called for an invalid payload")
			return nil, nil
		},
	})

	cases := map[string]string{
		"short password": `{"name":"A","email":"a@b.com","username":"alice","password":"short","phone":"555","role":"agent"}`,
		"bad role":       `{"name":"A","email":"a@b.com","username":"alice","password":"secret123","phone":"555","role":"superuser"}`,
		"bad email":      `{"name":"A","email":"not-an-email","username":"alice","password":"secret123","phone":"555","role":"agent"}`,
		"missing fields": `{"username":"alice"}`,
	}

	for name, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c, _ := newTestContext(req)

		err := h.Register(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %v", name, err)
		}
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "alice" || password != "secret123" {
				return nil, domain.ErrInvalidCredentials
			}
			return &ports.LoginResult{AccessToken: "signed-token", TokenType: "bearer"}, nil
		},
	})

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, rec := newTestContext(req)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "signed-token" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_LoginFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, _ := newTestContext(req)

	// The handler propagates the domain error; the central error handler
	// turns it into the generic 401 envelope.
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
