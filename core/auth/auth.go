package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 60 * time.Minute

type Claims struct {
	RunID string `json:"run_id"`
	jwt.RegisteredClaims
}

// Signer issues HS256 bearer tokens for outgoing requests.
type Signer struct {
	secret  []byte
	subject string
	runID   string
	now     func() time.Time
}

func NewSigner(secret, subject, runID string) *Signer {
	return &Signer{
		secret:  []byte(secret),
		subject: subject,
		runID:   runID,
		now:     time.Now,
	}
}

// Token - signed token valid for one hour from now
func (s *Signer) Token() (string, error) {
	now := s.now()
	claims := &Claims{
		RunID: s.runID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses a token issued by this signer. Used by tests and local debugging.
func (s *Signer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
