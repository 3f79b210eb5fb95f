package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "remote", cfg.Validator.Mode)
	assert.Equal(t, "sha256", cfg.Password.Algorithm)

	// Policy defaults: fuzzy search on, duplicate rejection on, open reads.
	assert.True(t, cfg.Policy.AllowFuzzySearch)
	assert.True(t, cfg.Policy.RejectDuplicateRegistration)
	assert.False(t, cfg.Policy.RequireAuthOnRead)
}

func TestLoadPolicyOverrides(t *testing.T) {
	t.Setenv("REQUIRE_AUTH_ON_READ", "true")
	t.Setenv("ALLOW_FUZZY_SEARCH", "false")
	t.Setenv("REJECT_DUPLICATE_REGISTRATION", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Policy.RequireAuthOnRead)
	assert.False(t, cfg.Policy.AllowFuzzySearch)
	assert.False(t, cfg.Policy.RejectDuplicateRegistration)
}

func TestValidatorFunctionName(t *testing.T) {
	v := ValidatorConfig{Service: "artistry", Stage: "prod"}
	assert.Equal(t, "artistry-prod-ValidateToken", v.FunctionName())
}

func TestValidateRejectsBadMode(t *testing.T) {
	t.Setenv("TOKEN_VALIDATOR_MODE", "offline")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_VALIDATOR_MODE")
}

func TestValidateRejectsLocalModeInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_VALIDATOR_MODE", "local")

	_, err := Load()
	require.Error(t, err)
}
