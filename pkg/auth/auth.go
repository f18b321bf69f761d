package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type ctxKey int

const userKey ctxKey = iota + 1

var ErrInvalidToken = errors.New("invalid token")

// User is the authenticated caller. Permissions hold capability names
// granted by the issuer's role configuration.
type User struct {
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

func (u User) Has(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

type Claims struct {
	Profile User `json:"profile"`
	jwt.RegisteredClaims
}

// NewToken signs an HS256 token for u valid for ttl starting at now.
func NewToken(secret []byte, u User, ttl time.Duration, now time.Time) (string, error) {
	claims := Claims{
		Profile: u,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func ParseToken(secret []byte, token string) (*Claims, error) {
	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !parsed.Valid || claims.Profile.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func SetAuthContext(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func FromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey).(User)
	return u, ok
}
