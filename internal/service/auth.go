package service

import (
	"fmt"

	"github.com/UgurucanDuman/Autonova/pkg/config"
	"github.com/UgurucanDuman/Autonova/pkg/jwt"
)

type AuthServicer interface {
	ValidateAccessToken(tokenString string) (*config.UserClaims, error)
	IssueTokenPair(claims *config.UserClaims) (jwt.Tokens, error)
}

// AuthService validates bearer tokens for the seller and admin
// surfaces. Registration and password flows live elsewhere; this
// service only guards the API.
type AuthService struct {
	JM *jwt.JwtManager
}

func NewAuthService() (*AuthService, error) {
	jwtManger, err := jwt.NewJwtManager()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AuthService: %w", err)
	}
	return &AuthService{
		JM: jwtManger,
	}, nil
}

func (as *AuthService) ValidateAccessToken(tokenString string) (*config.UserClaims, error) {
	return as.JM.ValidateAccessToken(tokenString)
}

func (as *AuthService) IssueTokenPair(claims *config.UserClaims) (jwt.Tokens, error) {
	return as.JM.GenerateTokenPair(claims.UserID, claims.Role)
}
