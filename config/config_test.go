package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.NotEmpty(t, cfg.Server.Addr)
	require.Equal(t, 10, cfg.Timeline.PageSize)
	require.Equal(t, 20*time.Second, cfg.Timeline.CacheTTL)
	require.NotEmpty(t, cfg.JWT.Secret)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TIMELINE_SERVER_ADDR", ":9999")
	t.Setenv("TIMELINE_TIMELINE_PAGE_SIZE", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Server.Addr)
	require.Equal(t, 5, cfg.Timeline.PageSize)
}
