package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func TestRoundTrip(t *testing.T) {
	svc := New("test_secret", time.Hour)
	token, err := svc.NewToken(domain.User{Id: "user-123", Username: "dicoding"})
	require.NoError(t, err)

	decoded, err := svc.DecodeToken(token)
	require.NoError(t, err)

	user, err := UserFromToken(decoded)
	require.NoError(t, err)
	assert.Equal(t, "user-123", user.Id)
	assert.Equal(t, "dicoding", user.Username)
}

func TestDecodeToken(t *testing.T) {
	svc := New("test_secret", time.Hour)

	t.Run("wrong key", func(t *testing.T) {
		token, err := New("other_secret", time.Hour).NewToken(domain.User{Id: "user-123"})
		require.NoError(t, err)

		_, err = svc.DecodeToken(token)
		assert.True(t, internal_errors.Is[*internal_errors.AuthenticationError](err))
	})

	t.Run("expired", func(t *testing.T) {
		token, err := New("test_secret", -time.Minute).NewToken(domain.User{Id: "user-123"})
		require.NoError(t, err)

		_, err = svc.DecodeToken(token)
		assert.True(t, internal_errors.Is[*internal_errors.AuthenticationError](err))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.DecodeToken("not-a-token")
		assert.Error(t, err)
	})
}
