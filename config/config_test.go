package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "0123456789abcdef0123456789abcdef"

func validSecurity() *SecurityConfig {
	return &SecurityConfig{
		SigningKey:                  testSigningKey,
		ClockSkewSeconds:            5,
		AccessTokenLifetimeMinutes:  15,
		RefreshTokenLifetimeMinutes: 60,
	}
}

func TestSecurityConfig_Durations(t *testing.T) {
	sec := validSecurity()

	assert.Equal(t, 5*time.Second, sec.ClockSkew())
	assert.Equal(t, 15*time.Minute, sec.AccessTokenLifetime())
	assert.Equal(t, time.Hour, sec.RefreshTokenLifetime())
	assert.Zero(t, sec.PurgeInterval())

	sec.PurgeIntervalMinutes = 10
	assert.Equal(t, 10*time.Minute, sec.PurgeInterval())
}

func TestSecurityConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SecurityConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(*SecurityConfig) {}},
		{name: "short key", mutate: func(s *SecurityConfig) { s.SigningKey = "short" }, wantErr: true},
		{name: "negative skew", mutate: func(s *SecurityConfig) { s.ClockSkewSeconds = -1 }, wantErr: true},
		{name: "zero access lifetime", mutate: func(s *SecurityConfig) { s.AccessTokenLifetimeMinutes = 0 }, wantErr: true},
		{name: "zero refresh lifetime", mutate: func(s *SecurityConfig) { s.RefreshTokenLifetimeMinutes = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec := validSecurity()
			tt.mutate(sec)

			err := sec.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  env: test
  log:
    level: info
http:
  port: 8080
security:
  signingKey: ""
  clockSkewSeconds: 0
  accessTokenLifetimeMinutes: 15
  refreshTokenLifetimeMinutes: 60
  corsOrigins:
    - http://localhost:3000
users:
  - username: alice
    displayName: Alice
    passwordHash: abc
    roles: [Normal, Admin]
testRoutes:
  enabled: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gatekeeper-test.yaml"), []byte(yamlBody), 0o600))

	t.Chdir(dir)
	t.Setenv("SECURITY_SIGNINGKEY", testSigningKey)
	t.Setenv("SECURITY_CLOCKSKEWSECONDS", "7")

	cfg, err := LoadWithEnv[Config]("gatekeeper-test")
	require.NoError(t, err)
	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, testSigningKey, cfg.Security.SigningKey)
	assert.Equal(t, 7*time.Second, cfg.Security.ClockSkew())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Security.CORSOrigins)
	require.Len(t, cfg.Users, 1)
	assert.Equal(t, "alice", cfg.Users[0].Username)
	assert.Equal(t, []string{"Normal", "Admin"}, cfg.Users[0].Roles)
	assert.True(t, cfg.TestRoutes.Enabled)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults_RequiresSecurity(t *testing.T) {
	cfg := &Config{}

	assert.Error(t, cfg.applyDefaults())
}
