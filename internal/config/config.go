package config

import (
	"errors"
	"os"
)

type Config struct {
	HTTPAddr    string
	GRPCAddr    string
	MySQLDSN    string
	RedisAddr   string
	TokenSecret string
	Strategy    string
}

// Load reads configuration from the environment. The token secret has no
// default: it must be injected, never embedded in the binary.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		GRPCAddr:    getenv("GRPC_ADDR", ":50051"),
		MySQLDSN:    getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/seckill?parseTime=true"),
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		TokenSecret: os.Getenv("TOKEN_SECRET"),
		Strategy:    getenv("PURCHASE_STRATEGY", "orchestrated"),
	}

	if cfg.TokenSecret == "" {
		return Config{}, errors.New("TOKEN_SECRET must be set")
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
