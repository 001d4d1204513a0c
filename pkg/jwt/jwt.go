package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/UgurucanDuman/Autonova/pkg/config"
	"github.com/UgurucanDuman/Autonova/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type JWTManager interface {
	GenerateTokenPair(userID uuid.UUID, role string) (Tokens, error)
	ValidateAccessToken(tokenString string) (*config.UserClaims, error)
	ValidateRefreshToken(tokenString string) (*config.RefreshClaims, error)
}

type JwtManager struct {
	accessSecret  []byte
	refreshSecret []byte
}

func NewJwtManager() (*JwtManager, error) {
	accessSecret := utils.GetEnv("ACCESS_TOKEN_SECRET", "")
	refreshSecret := utils.GetEnv("REFRESH_TOKEN_SECRET", "")

	if accessSecret == "" || refreshSecret == "" {
		return nil, fmt.Errorf("JWT secrets must be set in environment: ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET")
	}

	return &JwtManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}, nil
}

// GenerateTokenPair creates both an access token and a refresh token
func (jm *JwtManager) GenerateTokenPair(userID uuid.UUID, role string) (Tokens, error) {
	now := time.Now()

	accessClaims := config.UserClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.AccessTokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	signedAccessToken, err := accessToken.SignedString(jm.accessSecret)
	if err != nil {
		return Tokens{}, err
	}

	refreshClaims := config.RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.RefreshTokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(), // unique jwt id for rotation
		},
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	signedRefreshToken, err := refreshToken.SignedString(jm.refreshSecret)
	if err != nil {
		return Tokens{}, err
	}

	return Tokens{
		AccessToken:  signedAccessToken,
		RefreshToken: signedRefreshToken,
	}, nil
}

// ValidateAccessToken parses and validates the access token string
func (jm *JwtManager) ValidateAccessToken(tokenString string) (*config.UserClaims, error) {
	claims := &config.UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jm.accessSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}
	return claims, nil
}

// ValidateRefreshToken parses and validates the refresh token string
func (jm *JwtManager) ValidateRefreshToken(tokenString string) (*config.RefreshClaims, error) {
	claims := &config.RefreshClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jm.refreshSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid refresh token")
	}
	return claims, nil
}
