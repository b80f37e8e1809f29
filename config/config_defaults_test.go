package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Storage)
	require.NotNil(t, cfg.Sweeper)
	require.NotNil(t, cfg.Staff)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 60*time.Second, cfg.Storage.SignedURLTTL)
	assert.Equal(t, "public/contact-submissions/", cfg.Storage.ContactPrefix)
	assert.Equal(t, 10*time.Second, cfg.Storage.DeleteTimeout)
	assert.Equal(t, defaultSweeperSchedule, cfg.Sweeper.Schedule)
	assert.Equal(t, 24*time.Hour, cfg.Sweeper.GracePeriod)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Storage: &StorageConfig{SignedURLTTL: 5 * time.Minute, ContactPrefix: "contact/", DeleteTimeout: time.Second},
		Sweeper: &SweeperConfig{Schedule: "@hourly", GracePeriod: time.Hour},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 5*time.Minute, cfg.Storage.SignedURLTTL)
	assert.Equal(t, "contact/", cfg.Storage.ContactPrefix)
	assert.Equal(t, time.Second, cfg.Storage.DeleteTimeout)
	assert.Equal(t, "@hourly", cfg.Sweeper.Schedule)
	assert.Equal(t, time.Hour, cfg.Sweeper.GracePeriod)
}
