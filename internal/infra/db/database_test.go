//go:build unit

package db_test

import (
	"testing"
	"time"

	"cowork-booking/internal/infra/db"
	"cowork-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolConfig(t *testing.T) {
	cfg := config.NewTestConfig().DB
	cfg.MaxConns = 7
	cfg.MinConns = 1
	cfg.StatementTimeout = 2500 * time.Millisecond
	cfg.LockTimeout = time.Second

	poolCfg, err := db.NewPoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(7), poolCfg.MaxConns)
	assert.Equal(t, int32(1), poolCfg.MinConns)
	assert.Equal(t, "2500", poolCfg.ConnConfig.RuntimeParams["statement_timeout"])
	assert.Equal(t, "1000", poolCfg.ConnConfig.RuntimeParams["lock_timeout"])
	assert.Equal(t, "UTC", poolCfg.ConnConfig.RuntimeParams["timezone"])
	assert.Equal(t, cfg.Host, poolCfg.ConnConfig.Host)
}

func TestNewPoolConfig_ZeroTimeoutsAreOmitted(t *testing.T) {
	cfg := config.NewTestConfig().DB
	cfg.StatementTimeout = 0
	cfg.LockTimeout = 0

	poolCfg, err := db.NewPoolConfig(cfg)
	require.NoError(t, err)

	_, hasStatement := poolCfg.ConnConfig.RuntimeParams["statement_timeout"]
	_, hasLock := poolCfg.ConnConfig.RuntimeParams["lock_timeout"]
	assert.False(t, hasStatement)
	assert.False(t, hasLock)
}
