package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStrictMissingCredentials(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()

	require.Error(t, err)
}

func TestValidateWithCredentials(t *testing.T) {
	cfg := &Config{}
	cfg.Merchant.ID = "M1"
	cfg.Merchant.Secret = "secret"

	require.NoError(t, cfg.Validate())
}

func TestValidateDemoFallback(t *testing.T) {
	cfg := &Config{}
	cfg.Merchant.AllowDemo = true

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "demo-merchant", cfg.Merchant.ID)
	assert.Equal(t, "demo-secret", cfg.Merchant.Secret)
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8081", cfg.Gateway.URL)
	assert.Equal(t, 10, cfg.Gateway.TimeoutSeconds)
	assert.False(t, cfg.Merchant.AllowDemo)
}
