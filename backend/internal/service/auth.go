package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	users UserRepository
	jwt   Jwt
	cost  int
}

func NewAuth(users UserRepository, jwt Jwt) *Auth {
	return &Auth{users: users, jwt: jwt, cost: bcrypt.DefaultCost}
}

// Register stores a new account with a bcrypt password hash.
func (a *Auth) Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	reg, err := domain.NewRegisterUser(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	if err := a.users.VerifyAvailableUsername(ctx, reg.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), a.cost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.RegisteredUser{}, err
	}

	return a.users.AddUser(ctx, domain.User{
		Username: reg.Username,
		Password: string(passHash),
		Fullname: reg.Fullname,
	})
}

// Login checks credentials and returns a signed access token.
func (a *Auth) Login(ctx context.Context, payload domain.Payload) (string, error) {
	login, err := domain.NewUserLogin(payload)
	if err != nil {
		return "", err
	}

	user, err := a.users.GetUserByUsername(ctx, login.Username)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return "", &internal_errors.InvariantError{Message: "username tidak ditemukan"}
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		return "", &internal_errors.AuthenticationError{Message: "kredensial yang Anda masukkan salah"}
	}

	return a.jwt.NewToken(user)
}
