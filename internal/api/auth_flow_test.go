package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mikelm2020/estatehub/internal/api/handler"
	"github.com/mikelm2020/estatehub/internal/api/middleware"
	"github.com/mikelm2020/estatehub/internal/core/domain"
	"github.com/mikelm2020/estatehub/internal/core/service"
	"github.com/mikelm2020/estatehub/internal/core/token"
)

// memAgentRepository is an in-memory credential store for flow tests.
type memAgentRepository struct {
	mu     sync.Mutex
	agents map[string]*domain.Agent
}

func newMemAgentRepository() *memAgentRepository {
	return &memAgentRepository{agents: make(map[string]*domain.Agent)}
}

func (r *memAgentRepository) Create(_ context.Context, agent *domain.Agent) (*domain.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agents[agent.Username]; ok {
		return nil, domain.ErrAgentExists
	}
	r.agents[agent.Username] = agent
	return agent, nil
}

func (r *memAgentRepository) FindByUsername(_ context.Context, username string) (*domain.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	agent, ok := r.agents[username]
	if !ok {
		return nil, domain.ErrAgentNotFound
	}
	return agent, nil
}

func (r *memAgentRepository) FindByID(_ context.Context, id string) (*domain.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, agent := range r.agents {
		if agent.ID == id {
			return agent, nil
		}
	}
	return nil, domain.ErrAgentNotFound
}

func (r *memAgentRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, agent := range r.agents {
		if agent.ID == id {
			agent.PasswordHash = passwordHash
			return nil
		}
	}
	return domain.ErrAgentNotFound
}

// newAuthTestServer wires the auth surface the way NewRouter does, with the
// persistence swapped for an in-memory store.
func newAuthTestServer(codec *token.Codec) *echo.Echo {
	log := zerolog.Nop()
	authService := service.NewAuthService(newMemAgentRepository(), codec, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	authHandler := handler.NewAuthHandler(authService)
	agentHandler := handler.NewAgentHandler(authService)
	authRequired := middleware.Auth(codec)

	e.POST("/auth", authHandler.Register)
	e.POST("/token", authHandler.Login)
	agents := e.Group("/agents", authRequired)
	agents.GET("", agentHandler.Me)
	agents.PUT("/password", agentHandler.ChangePassword)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doAuthed(e *echo.Echo, method, path, bearer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const aliceJSON = `{
	"name": "Alice Doe",
	"email": "alice@example.com",
	"username": "alice",
	"password": "secret123",
	"phone": "5551234567",
	"role": "agent"
}`

func TestAuthFlow_RegisterLoginResolve(t *testing.T) {
	codec := token.NewCodec("flow-secret", "HS256", 20*time.Minute)
	e := newAuthTestServer(codec)

	if rec := doJSON(e, http.MethodPost, "/auth", aliceJSON); rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec := doForm(e, "/token", url.Values{"username": {"alice"}, "password": {"secret123"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var loginResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if loginResp.TokenType != "bearer" || loginResp.AccessToken == "" {
		t.Fatalf("unexpected login response: %+v", loginResp)
	}

	rec = doAuthed(e, http.MethodGet, "/agents", loginResp.AccessToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var me domain.Agent
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode agent: %v", err)
	}
	if me.Username != "alice" || me.Role != domain.RoleAgent {
		t.Fatalf("unexpected agent: %+v", me)
	}
	if strings.Contains(rec.Body.String(), "secret123") {
		t.Fatalf("response must never carry password material: %s", rec.Body.String())
	}
}

func TestAuthFlow_LoginFailuresShareOneBody(t *testing.T) {
	codec := token.NewCodec("flow-secret", "HS256", 20*time.Minute)
	e := newAuthTestServer(codec)

	if rec := doJSON(e, http.MethodPost, "/auth", aliceJSON); rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}

	wrongPass := doForm(e, "/token", url.Values{"username": {"alice"}, "password": {"wrong"}})
	noUser := doForm(e, "/token", url.Values{"username": {"mallory"}, "password": {"secret123"}})

	for name, rec := range map[string]*httptest.ResponseRecorder{"wrong password": wrongPass, "unknown user": noUser} {
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rec.Code)
		}
	}
	if wrongPass.Body.String() != noUser.Body.String() {
		t.Fatalf("failure bodies must match: %q vs %q", wrongPass.Body, noUser.Body)
	}
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(wrongPass.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error != "authentication failed" {
		t.Fatalf("expected the generic message, got %q", envelope.Error)
	}
}

func TestAuthFlow_ExpiredToken(t *testing.T) {
	codec := token.NewCodec("flow-secret", "HS256", 20*time.Minute)
	e := newAuthTestServer(codec)

	stale, err := codec.EncodeAt(&domain.Agent{ID: "agent-1", Username: "alice", Role: domain.RoleAgent}, time.Now().UTC().Add(-21*time.Minute))
	if err != nil {
		t.Fatalf("EncodeAt returned error: %v", err)
	}

	rec := doAuthed(e, http.MethodGet, "/agents", stale, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for an expired token, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "authentication failed") {
		t.Fatalf("expected the generic message, got %s", rec.Body.String())
	}
}

func TestAuthFlow_PasswordRotation(t *testing.T) {
	codec := token.NewCodec("flow-secret", "HS256", 20*time.Minute)
	e := newAuthTestServer(codec)

	if rec := doJSON(e, http.MethodPost, "/auth", aliceJSON); rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}
	rec := doForm(e, "/token", url.Values{"username": {"alice"}, "password": {"secret123"}})
	var loginResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	rec = doAuthed(e, http.MethodPut, "/agents/password", loginResp.AccessToken,
		`{"password":"secret123","new_password":"rotated456"}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("rotate: expected 204, got %d (%s)", rec.Code, rec.Body.String())
	}

	if rec := doForm(e, "/token", url.Values{"username": {"alice"}, "password": {"secret123"}}); rec.Code != http.StatusUnauthorized {
		t.Fatalf("old password must stop working, got %d", rec.Code)
	}
	if rec := doForm(e, "/token", url.Values{"username": {"alice"}, "password": {"rotated456"}}); rec.Code != http.StatusOK {
		t.Fatalf("new password must work, got %d", rec.Code)
	}
}
