package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims - полезная нагрузка access-токена.
// Kind различает пространства идентичностей (user/admin),
// Role определяет уровень доступа (player/admin/owner).
type Claims struct {
	SubjectID string `json:"sub_id"`
	Kind      string `json:"kind"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken создает подписанный JWT для субъекта
func GenerateToken(subjectID, kind, role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		SubjectID: subjectID,
		Kind:      kind,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken проверяет подпись и срок действия токена
func ParseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// Identity строит Identity из проверенных claims
func (c *Claims) Identity() Identity {
	return Identity{
		SubjectID: c.SubjectID,
		Kind:      c.Kind,
		Role:      c.Role,
	}
}
