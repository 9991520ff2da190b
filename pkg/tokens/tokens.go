package tokens

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"melodia/pkg/utils"
)

// Claims is the full claim set carried by a bearer token. ProfileID is empty
// until the session activates a profile.
type Claims struct {
	Email     string `json:"email"`
	ProfileID string `json:"profile_id,omitempty"`
	jwt.RegisteredClaims
}

// Maker signs and verifies session tokens. The signing key and expiry window
// are fixed at construction and never mutated.
type Maker struct {
	secret []byte
	ttl    time.Duration
}

func NewMaker(secret string, ttl time.Duration) *Maker {
	return &Maker{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *Maker) Issue(email, profileID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:     email,
		ProfileID: profileID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify returns the claims of a valid token. Expired, forged and malformed
// tokens all fail with the same sentinel so callers cannot tell them apart.
func (m *Maker) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, utils.ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil || !token.Valid {
		return nil, utils.ErrInvalidToken
	}

	return claims, nil
}
