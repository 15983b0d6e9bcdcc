package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func productionConfig() *Config {
	return &Config{
		Env:              "production",
		Port:             "8460",
		JWTSecret:        "secure-secret-at-least-32-chars-long",
		DBPassword:       "secure-password",
		StorageAccessKey: "access",
		StorageSecretKey: "secret",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Valid production config", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Default JWT secret in production", func(c *Config) {
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Short JWT secret in production", func(c *Config) { c.JWTSecret = "too-short" }, true},
		{"Default DB password in production", func(c *Config) { c.DBPassword = "password" }, true},
		{"Empty DB password in production", func(c *Config) { c.DBPassword = "" }, true},
		{"Missing storage credentials in production", func(c *Config) {
			c.StorageAccessKey = ""
		}, true},
		{"Short JWT secret in development", func(c *Config) {
			c.Env = "development"
			c.JWTSecret = "dev"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := productionConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"production", true},
		{"prod", true},
		{"development", false},
		{"test", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, (&Config{Env: tt.env}).IsProduction(), "env %q", tt.env)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8460", c.Port)
	assert.Equal(t, "localhost:6379", c.RedisURL)
	assert.Equal(t, "lycka-media", c.StorageBucket)
	assert.True(t, c.StoragePathStyle)
	assert.False(t, c.IsProduction())
}
