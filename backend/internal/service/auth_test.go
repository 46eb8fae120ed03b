package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/itchan-dev/forum/backend/internal/service/mocks"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

type fakeJwt struct {
	NewTokenFunc func(user domain.User) (string, error)
}

func (f *fakeJwt) NewToken(user domain.User) (string, error) {
	if f.NewTokenFunc != nil {
		return f.NewTokenFunc(user)
	}
	return "token-" + user.Id, nil
}

func newTestAuth(users UserRepository, jwt Jwt) *Auth {
	a := NewAuth(users, jwt)
	a.cost = bcrypt.MinCost
	return a
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	payload := domain.Payload{"username": "dicoding", "password": "secret", "fullname": "Dicoding Indonesia"}

	t.Run("stores hashed password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		expected := domain.RegisteredUser{Id: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}

		gomock.InOrder(
			users.EXPECT().VerifyAvailableUsername(ctx, "dicoding").Return(nil),
			users.EXPECT().AddUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user domain.User) (domain.RegisteredUser, error) {
				assert.Equal(t, "dicoding", user.Username)
				assert.Equal(t, "Dicoding Indonesia", user.Fullname)
				assert.NotEqual(t, "secret", user.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
				return expected, nil
			}),
		)

		registered, err := newTestAuth(users, &fakeJwt{}).Register(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, expected, registered)
	})

	t.Run("taken username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		taken := &internal_errors.InvariantError{Message: "username tidak tersedia"}
		users.EXPECT().VerifyAvailableUsername(ctx, "dicoding").Return(taken)

		_, err := newTestAuth(users, &fakeJwt{}).Register(ctx, payload)
		assert.Same(t, taken, err)
	})

	t.Run("restricted username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)

		_, err := newTestAuth(users, &fakeJwt{}).Register(ctx, domain.Payload{"username": "dico ding", "password": "secret", "fullname": "Dicoding"})
		var vErr *internal_errors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, internal_errors.RestrictedChar, vErr.Kind)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := domain.User{Id: "user-123", Username: "dicoding", Password: string(hash), Fullname: "Dicoding Indonesia"}

	t.Run("returns token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		users.EXPECT().GetUserByUsername(ctx, "dicoding").Return(stored, nil)

		token, err := newTestAuth(users, &fakeJwt{}).Login(ctx, domain.Payload{"username": "dicoding", "password": "secret"})
		require.NoError(t, err)
		assert.Equal(t, "token-user-123", token)
	})

	t.Run("unknown username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		users.EXPECT().GetUserByUsername(ctx, "ghost").Return(domain.User{}, &internal_errors.NotFoundError{Message: "user tidak ditemukan"})

		_, err := newTestAuth(users, &fakeJwt{}).Login(ctx, domain.Payload{"username": "ghost", "password": "secret"})
		assert.True(t, internal_errors.Is[*internal_errors.InvariantError](err))
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		users.EXPECT().GetUserByUsername(ctx, "dicoding").Return(stored, nil)

		_, err := newTestAuth(users, &fakeJwt{}).Login(ctx, domain.Payload{"username": "dicoding", "password": "wrong"})
		var authErr *internal_errors.AuthenticationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "kredensial yang Anda masukkan salah", authErr.Message)
	})

	t.Run("token error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		users.EXPECT().GetUserByUsername(ctx, "dicoding").Return(stored, nil)
		signErr := errors.New("sign failed")
		jwt := &fakeJwt{NewTokenFunc: func(domain.User) (string, error) { return "", signErr }}

		_, err := newTestAuth(users, jwt).Login(ctx, domain.Payload{"username": "dicoding", "password": "secret"})
		assert.ErrorIs(t, err, signErr)
	})
}
