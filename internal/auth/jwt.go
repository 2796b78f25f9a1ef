package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/smokequit/smokequit-api/internal/config"
	"github.com/smokequit/smokequit-api/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the decoded identity a token carries. The role claim is parsed
// into the closed Role enum exactly once, here; nothing downstream touches
// the raw claim again.
type Claims struct {
	UserID   int64
	Username string
	Email    string
	Role     models.Role
}

// GenerateToken signs an HS256 token for the account using the configured
// secret, issuer, audience and expiry.
func GenerateToken(account *models.SystemAccount, cfg *config.Config) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   account.ID,
		"name":  account.Username,
		"email": account.Email,
		"role":  int(account.Role),
		"iss":   cfg.JWTIssuer,
		"aud":   cfg.JWTAudience,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Duration(cfg.JWTExpiryMinutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ValidateToken parses and verifies a token string and returns its claims.
func ValidateToken(tokenString string, cfg *config.Config) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	},
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithAudience(cfg.JWTAudience),
	)
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	roleID, ok := mapClaims["role"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, ok := models.ParseRole(int(roleID))
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{
		UserID: int64(sub),
		Role:   role,
	}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Username = name
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	return claims, nil
}
