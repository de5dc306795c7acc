// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "blood-press-log.db?_journal_mode=WAL",

		"OCR_BASE_URL":        "https://api.openai.com",
		"OCR_API_KEY":         "sk-test",
		"OCR_MODEL":           "gpt-4o",
		"OCR_REQUEST_TIMEOUT": "15s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "blood-press-log.db?_journal_mode=WAL", cfg.Storage.DB.DSN)

	assert.Equal(t, "https://api.openai.com", cfg.OCR.BaseURL)
	assert.Equal(t, "sk-test", cfg.OCR.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OCR.Model)
	assert.Equal(t, 15*time.Second, cfg.OCR.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SERVER_ADDRESS":          "localhost:8080",
		"STORAGE_DB_DATABASE_URI": "blood.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "blood.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.OCR.APIKey)
	assert.Zero(t, cfg.Server.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "not-a-duration",
	})

	// Act
	err := parseEnv(&StructuredConfig{})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for key, value := range vars {
		t.Setenv(key, value)
	}
}
