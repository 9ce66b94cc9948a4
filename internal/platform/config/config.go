// Package config loads process configuration once at startup into an
// immutable value. Services receive it (or slices of it) by parameter;
// nothing re-reads the environment per request.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures everything the server needs for its lifetime.
type Config struct {
	// Addr is the listen address for the public HTTP API.
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	// UserdataSecret is the server-held symmetric secret keying identity
	// token derivation. The process refuses to start without it.
	UserdataSecret string `env:"USERDATA_AUTH,required"`

	// Membership service settings (Discord-style guild membership API).
	MembershipBaseURL string        `env:"MEMBERSHIP_BASE_URL" envDefault:"https://discord.com/api/v10"`
	MembershipToken   string        `env:"DISCORD_TOKEN,required"`
	GuildID           string        `env:"GUILD_ID,required"`
	MembershipTimeout time.Duration `env:"MEMBERSHIP_TIMEOUT" envDefault:"10s"`

	// Operational log webhook. Empty disables webhook notification; the
	// structured log still records every invocation.
	WebhookURL string `env:"LOG_WEBHOOK_URL"`

	Postgres PostgresConfig `envPrefix:"PG_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
}

// PostgresConfig holds connection settings for the progression store.
type PostgresConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER,required"`
	Password string `env:"PASSWORD,required"`
	DBName   string `env:"DBNAME" envDefault:"userdata"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

// DSN renders the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig holds settings for the optional per-identity lock backend.
// An empty URL means the in-process lock is used instead.
type RedisConfig struct {
	URL          string        `env:"URL"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
}

// FromEnv builds the Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
