package bootstrap_test

import (
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/fault-lib/pkg/bootstrap"
	"github.com/Goden-Gun/fault-lib/pkg/config"
)

func TestInitLogger_LevelAndFallback(t *testing.T) {
	require.NoError(t, bootstrap.InitLogger(config.LogConfig{Format: "json", Level: "debug"}))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	// Invalid level falls back to info instead of failing startup.
	require.NoError(t, bootstrap.InitLogger(config.LogConfig{Format: "text", Level: "verbose"}))
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestInitServiceLogger_FileOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LogConfig{
		Format: "json",
		Level:  "info",
		File:   &config.LogFileConfig{Enabled: true, Dir: dir, Filename: "checkout"},
	}
	require.NoError(t, bootstrap.InitServiceLogger(cfg, "checkout"))
	log.Info("file output probe")
	log.SetOutput(os.Stdout)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestInitResolver(t *testing.T) {
	t.Parallel()

	res, err := bootstrap.InitResolver(config.ResolverConfig{Source: "none"}, nil)
	require.NoError(t, err)
	assert.Nil(t, res)

	// Defaults resolve the empty source to "none".
	res, err = bootstrap.InitResolver(config.ResolverConfig{}, nil)
	require.NoError(t, err)
	assert.Nil(t, res)

	_, err = bootstrap.InitResolver(config.ResolverConfig{Source: "redis"}, nil)
	require.Error(t, err)

	_, err = bootstrap.InitResolver(config.ResolverConfig{Source: "carrier-pigeon"}, nil)
	require.Error(t, err)
}

func TestInitReporter_Disabled(t *testing.T) {
	t.Parallel()

	r, err := bootstrap.InitReporter(config.ReporterConfig{Enabled: false}, "svc")
	require.NoError(t, err)
	assert.Nil(t, r)
}
