package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Driver: "postgres", Password: "secret"},
		JWT:      JWTConfig{Secret: "jwt-secret"},
		Timebank: TimebankConfig{Timezone: "America/Sao_Paulo", RecomputeEvery: time.Hour, RecomputeWorker: 2},
	}
}

func TestValidate_ResolvesTimezone(t *testing.T) {
	cfg := validConfig()

	require.NoError(t, cfg.Validate())
	require.NotNil(t, cfg.Timebank.Location)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timebank.Location.String())
}

func TestValidate_Failures(t *testing.T) {
	cases := map[string]func(c *Config){
		"missing db password": func(c *Config) { c.Database.Password = "" },
		"unknown driver":      func(c *Config) { c.Database.Driver = "oracle" },
		"missing jwt secret":  func(c *Config) { c.JWT.Secret = "" },
		"bad timezone":        func(c *Config) { c.Timebank.Timezone = "Mars/Olympus" },
		"no workers":          func(c *Config) { c.Timebank.RecomputeWorker = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_MemoryDriverNeedsNoPassword(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "memory"
	cfg.Database.Password = ""

	assert.NoError(t, cfg.Validate())
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		User: "postgres", Password: "pw", Host: "db", Port: 5432, Name: "timebank", SSLMode: "disable",
	}}

	assert.Equal(t, "postgres://postgres:pw@db:5432/timebank?sslmode=disable", cfg.DatabaseURL())
}
