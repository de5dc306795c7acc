package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no sources fails
// validation: the database DSN is mandatory.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.Nil(t, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple sources
// are merged into one result; earlier sources win for non-zero fields.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Server: Server{HTTPAddress: "localhost:8080"},
		},
		&StructuredConfig{
			Server:  Server{HTTPAddress: "ignored:9999", RequestTimeout: 30 * time.Second},
			Storage: Storage{DB: DB{DSN: "blood.db"}},
			OCR:     OCR{APIKey: "sk-test"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "blood.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sk-test", cfg.OCR.APIKey)
}

// TestWithEnv_AppendsEnvConfig verifies that withEnv reads the current
// environment into a new config source.
func TestWithEnv_AppendsEnvConfig(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env.db", b.configs[0].Storage.DB.DSN)
}

// TestWithJSON_UsesPathFromEarlierSources verifies that withJSON resolves the
// file path from configs already collected (env or flags).
func TestWithJSON_UsesPathFromEarlierSources(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{
			"db": map[string]any{"dsn": "json.db"},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b = b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.db", b.configs[1].Storage.DB.DSN)
}

// TestWithJSON_NoPathIsNoop verifies that withJSON does nothing when no
// source specified a JSON file path.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	require.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithJSON_BadFileSetsError verifies that an unreadable JSON file is
// recorded in the builder error.
func TestWithJSON_BadFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "missing.json"})
	b = b.withJSON()

	require.Error(t, b.err)
}

func TestValidate(t *testing.T) {
	valid := &StructuredConfig{Storage: Storage{DB: DB{DSN: "blood.db"}}}
	require.NoError(t, valid.validate())

	invalid := &StructuredConfig{}
	require.ErrorIs(t, invalid.validate(), ErrInvalidStorageConfigs)
}
