// Package token encodes and decodes the signed claims bundle that carries a
// request's identity between login and the identity-resolving middleware.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

var (
	// ErrExpired and ErrInvalid are distinguished for logging and metrics
	// only; the API boundary collapses both into one generic 401.
	ErrExpired       = errors.New("token expired")
	ErrInvalid       = errors.New("token invalid")
	ErrMissingClaims = errors.New("token missing required claims")
)

// Claims is the bundle embedded in every issued token. Subject carries the
// username; AgentID the account id.
type Claims struct {
	AgentID string      `json:"id"`
	Role    domain.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies claim bundles with a shared secret. The signing
// method is pinned at construction; tokens declaring any other algorithm are
// rejected regardless of their signature.
type Codec struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// DefaultTTL is applied when no token lifetime is configured.
const DefaultTTL = 20 * time.Minute

// NewCodec builds a Codec. alg must name an HMAC method ("HS256", "HS384",
// "HS512"); anything else falls back to HS256. ttl <= 0 selects DefaultTTL.
func NewCodec(secret string, alg string, ttl time.Duration) *Codec {
	method := jwt.SigningMethodHS256
	switch alg {
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), method: method, ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Encode mints a signed token for agent, expiring TTL from now. This is the
// only place claims are created; they are never mutated afterwards.
func (c *Codec) Encode(agent *domain.Agent) (string, error) {
	return c.EncodeAt(agent, time.Now().UTC())
}

// EncodeAt is Encode with an explicit issue time.
func (c *Codec) EncodeAt(agent *domain.Agent, now time.Time) (string, error) {
	claims := Claims{
		AgentID: agent.ID,
		Role:    agent.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   agent.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// Decode verifies signature, algorithm, and expiry, and returns the claims.
// A token with an unrecognised role value is invalid even when correctly
// signed; a token without subject or agent id fails with ErrMissingClaims.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != c.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{c.method.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tkn.Valid {
		return nil, ErrInvalid
	}
	if claims.Subject == "" || claims.AgentID == "" {
		return nil, ErrMissingClaims
	}
	if claims.Role != "" && !claims.Role.Valid() {
		return nil, ErrInvalid
	}
	return &claims, nil
}

// Principal converts verified claims into the per-request identity.
func (cl *Claims) Principal() domain.Principal {
	return domain.Principal{
		ID:       cl.AgentID,
		Username: cl.Subject,
		Role:     cl.Role,
	}
}
