package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"renovation-marketplace-api/internal/entity"
)

// Claims carried by a session token. ContractorId is empty for
// homeowner and admin accounts. The registered ID (jti) identifies the
// user_session row so logout can revoke the token.
type Claims struct {
	UserId       string `json:"user_id"`
	ContractorId string `json:"contractor_id,omitempty"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the given actor and returns
// the token string together with its jti.
func GenerateToken(session *entity.Session, secretKey string, ttl time.Duration) (string, uuid.UUID, error) {
	tokenId := uuid.New()
	claims := &Claims{
		UserId: session.UserId.String(),
		Role:   session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenId.String(),
			Subject:   session.UserId.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	if session.ContractorId.Valid {
		claims.ContractorId = session.ContractorId.UUID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, tokenId, nil
}

// ParseToken verifies a token string and rebuilds the actor session.
func ParseToken(tokenString string, secretKey string) (*entity.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userId, err := uuid.Parse(claims.UserId)
	if err != nil {
		return nil, fmt.Errorf("malformed user id in token: %w", err)
	}

	tokenId, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, fmt.Errorf("malformed token id: %w", err)
	}

	session := &entity.Session{
		UserId:  userId,
		Role:    claims.Role,
		TokenId: tokenId,
	}
	if claims.ContractorId != "" {
		contractorId, err := uuid.Parse(claims.ContractorId)
		if err != nil {
			return nil, fmt.Errorf("malformed contractor id in token: %w", err)
		}
		session.ContractorId = uuid.NullUUID{UUID: contractorId, Valid: true}
	}

	return session, nil
}
