package auth

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for expired, malformed or mis-signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload carried by access tokens. The subject is the
// user id; the role travels as a custom claim so the API never needs a user
// lookup to build the acting identity.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager issues and parses HS256-signed access tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a token manager. ttl bounds token lifetime; zero
// falls back to 24 hours.
func NewJWTManager(secret string, ttl time.Duration) JWTManager {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return JWTManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs an access token for the given identity.
func (m JWTManager) Issue(userID kernel.UUID, role identity.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates a signed token and reconstructs the acting identity.
func (m JWTManager) Parse(signedToken string) (identity.Actor, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&Claims{},
		func(_ *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return identity.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return identity.Actor{}, ErrInvalidToken
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return identity.Actor{}, ErrInvalidToken
	}
	role, err := identity.RoleFromString(claims.Role)
	if err != nil {
		return identity.Actor{}, ErrInvalidToken
	}

	return identity.NewActor(userID, role)
}
