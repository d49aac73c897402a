package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string // mysql or sqlite
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite file path
}

type Redis struct {
	Addr string
}

type Config struct {
	HTTP  HTTP
	DB    DB
	Redis Redis
	JWT   struct {
		Secret string
		Issuer string
		ExpMin int
	}
	AuthRateLimit int // requests per second per IP on /api/auth/*
}

func Load(path string, onChange func()) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 5000)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "trackfitnessgoals")
	v.SetDefault("db.path", "trackfitnessgoals.db")
	v.SetDefault("redis.addr", "")
	v.SetDefault("auth_rate_limit", 10)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP:  HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB:    DB{Driver: v.GetString("db.driver"), Host: v.GetString("db.host"), Port: v.GetInt("db.port"), User: v.GetString("db.user"), Pass: v.GetString("db.pass"), Name: v.GetString("db.name"), Path: v.GetString("db.path")},
		Redis: Redis{Addr: v.GetString("redis.addr")},
	}
	cfg.JWT.Secret = v.GetString("jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "trackfitnessgoals"
	}
	cfg.JWT.ExpMin = v.GetInt("jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	cfg.AuthRateLimit = v.GetInt("auth_rate_limit")

	if onChange != nil {
		v.OnConfigChange(func(e fsnotify.Event) { onChange() })
		v.WatchConfig()
	}
	return cfg, nil
}
