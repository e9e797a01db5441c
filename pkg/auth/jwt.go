package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=auth

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

type JWTServiceInterface interface {
	GenerateJWT(caller domain.Caller, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	Admin     bool   `json:"admin"`
	jwt.StandardClaims
}

func (c *Claims) Caller() domain.Caller {
	return domain.Caller{ID: c.AccountID, Role: c.Role, Admin: c.Admin}
}

type JWTService struct {
	secret []byte
	issuer string
}

func NewJWTService(secret, issuer string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

func (s *JWTService) GenerateJWT(caller domain.Caller, expirationTime time.Time) (string, error) {
	claims := Claims{
		AccountID: caller.ID,
		Role:      caller.Role,
		Admin:     caller.Admin,
		StandardClaims: jwt.StandardClaims{
			Subject:   caller.ID,
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.AccountID == "" || claims.Issuer != s.issuer {
		return nil, ErrInvalidTokenClaims
	}
	return claims, nil
}
