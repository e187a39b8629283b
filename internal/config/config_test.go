package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := Load()
	req.NoError(err)

	req.Equal("0.0.0.0", cfg.Server.Host)
	req.Equal(3000, cfg.Server.Port)
	req.Equal("0.0.0.0:3000", cfg.Server.Addr())
	req.Equal(30*time.Second, cfg.WebSocket.PingInterval)
	req.Equal(60*time.Second, cfg.WebSocket.PongWait)
	req.Equal(int64(4096), cfg.WebSocket.MaxMessageSize)
	req.Equal(256, cfg.WebSocket.SendBuffer)
	req.Equal("localhost:6379", cfg.Redis.Address)
	req.Equal("upchat:upload", cfg.Redis.KeyPrefix)
	req.Equal(time.Duration(0), cfg.Redis.KeyTTL)
	req.Equal(int64(8<<20), cfg.Upload.MaxFileSize)
	req.Equal("./client", cfg.Static.Dir)
	req.Equal("info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	req := require.New(t)

	t.Setenv("PORT", "8081")
	t.Setenv("IP", "127.0.0.1")
	t.Setenv("REDIS_ADDRESS", "redis.internal:6380")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	req.NoError(err)

	req.Equal(8081, cfg.Server.Port)
	req.Equal("127.0.0.1", cfg.Server.Host)
	req.Equal("redis.internal:6380", cfg.Redis.Address)
	req.Equal("debug", cfg.Log.Level)
}
