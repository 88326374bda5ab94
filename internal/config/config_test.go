package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/config/configs"
)

const ownerHex = "0x00000000000000000000000000000000000000a1"

func TestLoadDefaults(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{
		"LEDGER_OWNER": ownerHex,
	}})
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.False(t, cfg.Psql.RunMigrations)
	assert.Equal(t, configs.StoragePostgres, cfg.Ledger.Storage)
	assert.Equal(t, common.HexToAddress(ownerHex), cfg.Ledger.Owner)
	assert.Equal(t, common.HexToAddress("0x01"), cfg.Ledger.Address)
	assert.Equal(t, common.HexToAddress("0x02"), cfg.Ledger.RegistryAddress)
	assert.Equal(t, "DonationAwardContract", cfg.Ledger.RegistryName)
	assert.Equal(t, "DWNFT", cfg.Ledger.RegistrySymbol)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{
		"ENV":                     "dev",
		"HTTP_PORT":               "9000",
		"LOG_FORMAT":              "json",
		"PSQL_MAX_CONNS":          "8",
		"LEDGER_STORAGE":          "memory",
		"LEDGER_OWNER":            ownerHex,
		"LEDGER_ADDRESS":          "0x0000000000000000000000000000000000001001",
		"LEDGER_REGISTRY_ADDRESS": "0x0000000000000000000000000000000000001002",
		"LEDGER_REGISTRY_SYMBOL":  "AWD",
	}})
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, uint16(9000), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, int32(8), cfg.Psql.MaxConns)
	assert.Equal(t, configs.StorageMemory, cfg.Ledger.Storage)
	assert.Equal(t, common.HexToAddress("0x1001"), cfg.Ledger.Address)
	assert.Equal(t, "AWD", cfg.Ledger.RegistrySymbol)
}

func TestLoadRejects(t *testing.T) {
	tests := map[string]map[string]string{
		"missing owner": {},
		"malformed owner": {
			"LEDGER_OWNER": "vitalik",
		},
		"zero owner": {
			"LEDGER_OWNER": "0x0000000000000000000000000000000000000000",
		},
		"unknown storage": {
			"LEDGER_OWNER":   ownerHex,
			"LEDGER_STORAGE": "redis",
		},
		"shared address": {
			"LEDGER_OWNER":            ownerHex,
			"LEDGER_REGISTRY_ADDRESS": "0x0000000000000000000000000000000000000001",
		},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parse(env.Options{Environment: vars})
			require.Error(t, err)
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, configs.Logger{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, configs.Logger{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, configs.Logger{Level: "err"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, configs.Logger{Level: "verbose"}.SlogLevel())
	assert.Equal(t, "text", configs.Logger{Format: "yaml"}.SlogFormat())
}

func TestLoggerNew(t *testing.T) {
	var buf bytes.Buffer
	logger := configs.Logger{Level: "warn", Format: "json"}.New(&buf, "dev")

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"env":"dev"`)
}
