package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/homegrove/estate/pkg/types"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the single JWT claim set shared by all four roles. The role the
// token was issued for is embedded, so a seller token can never pass a staff
// check even if the cookies are swapped.
type Claims struct {
	AccountID string     `json:"account_id"`
	Role      types.Role `json:"role"`
	jwt.StandardClaims
}

// Maker signs and verifies principal tokens.
type Maker struct {
	secret []byte
	ttl    time.Duration
}

func NewMaker(secret string, ttl time.Duration) *Maker {
	return &Maker{secret: []byte(secret), ttl: ttl}
}

func (m *Maker) TTL() time.Duration {
	return m.ttl
}

// Sign issues a token for the given principal.
func (m *Maker) Sign(p types.Principal) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID: p.AccountID,
		Role:      p.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.ttl).Unix(),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and checks it was issued for the expected role.
func (m *Maker) Verify(tokenStr string, want types.Role) (*types.Principal, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	if claims.AccountID == "" || claims.Role != want {
		return nil, ErrInvalidToken
	}
	return &types.Principal{AccountID: claims.AccountID, Role: claims.Role}, nil
}
