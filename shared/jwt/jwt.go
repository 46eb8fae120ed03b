package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

type JwtService interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

// NewToken signs an HS256 access token carrying the user id and username.
func (j *Jwt) NewToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{}
	claims["id"] = user.Id
	claims["username"] = user.Username
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return nil, &internal_errors.AuthenticationError{Message: "Missing authentication"}
	}

	if !token.Valid {
		return nil, &internal_errors.AuthenticationError{Message: "Missing authentication"}
	}

	return token, nil
}

// UserFromToken reads the id and username claims back into a user.
func UserFromToken(token *jwt.Token) (domain.User, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, &internal_errors.AuthenticationError{Message: "Missing authentication"}
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return domain.User{}, &internal_errors.AuthenticationError{Message: "Missing authentication"}
	}
	username, _ := claims["username"].(string)
	return domain.User{Id: id, Username: username}, nil
}
