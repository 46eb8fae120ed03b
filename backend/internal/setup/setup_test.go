package setup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itchan-dev/forum/shared/config"
)

func TestSetupDependencies_Badger(t *testing.T) {
	cfg := config.New(
		config.Public{JwtTTL: time.Hour, Storage: config.Storage{Driver: config.DriverBadger, BadgerDir: t.TempDir()}},
		config.Private{JwtKey: "k"},
	)

	deps, err := SetupDependencies(context.Background(), cfg)
	require.NoError(t, err)
	defer deps.Storage.Cleanup()

	assert.NotNil(t, deps.Handler)
	assert.NotNil(t, deps.AuthMiddleware)
	assert.NotNil(t, deps.Metrics)
	require.NoError(t, deps.Storage.Ping(context.Background()))
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	cfg := config.New(config.Public{Storage: config.Storage{Driver: "mysql"}}, config.Private{JwtKey: "k"})
	_, err := OpenStorage(context.Background(), cfg)
	assert.Error(t, err)
}
