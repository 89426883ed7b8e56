/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/serviceroulette/errors"
)

// clearEnv unsets every variable Load reads so the developer's shell cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		FileEnvVar,
		"ROULETTE_TABLE_NAME", "ROULETTE_REGION", "ROULETTE_API_VERSION",
		"ROULETTE_ENDPOINT", "ROULETTE_ACCESS_KEY", "ROULETTE_SECRET_KEY",
		"ROULETTE_PAGE_SIZE", "ROULETTE_CONSISTENT_READ",
		"ROULETTE_RESPONSE_FORMAT", "ROULETTE_LOG_LEVEL",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roulette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "Project-ServiceCatalog", cfg.TableName)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "2012-08-10", cfg.APIVersion)
	assert.Equal(t, FormatEnvelope, cfg.ResponseFormat)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(FileEnvVar, writeFile(t, `
tableName: Staging-ServiceCatalog
region: eu-west-1
pageSize: 50
consistentRead: true
responseFormat: proxy
`))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Staging-ServiceCatalog", cfg.TableName)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, int32(50), cfg.PageSize)
	assert.True(t, cfg.ConsistentRead)
	assert.Equal(t, FormatProxy, cfg.ResponseFormat)
	// untouched keys keep their defaults
	assert.Equal(t, DynamoDBAPIVersion, cfg.APIVersion)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(FileEnvVar, writeFile(t, "tableName: FromFile\nregion: eu-west-1\n"))
	t.Setenv("ROULETTE_TABLE_NAME", "FromEnv")
	t.Setenv("ROULETTE_ENDPOINT", "http://localhost:8000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "FromEnv", cfg.TableName)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "http://localhost:8000", cfg.Endpoint)
}

func TestMergeFileErrors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		cfg := Default()
		err := cfg.MergeFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		cfg := Default()
		err := cfg.MergeFile(writeFile(t, "tablename: typo\n"))
		require.Error(t, err)
	})

	t.Run("EmptyFile", func(t *testing.T) {
		cfg := Default()
		require.NoError(t, cfg.MergeFile(writeFile(t, "")))
		assert.Equal(t, Default(), cfg)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"EmptyTable", func(c *Config) { c.TableName = "" }, "tableName"},
		{"EmptyRegion", func(c *Config) { c.Region = "" }, "region"},
		{"WrongAPIVersion", func(c *Config) { c.APIVersion = "2011-12-05" }, "apiVersion"},
		{"NegativePageSize", func(c *Config) { c.PageSize = -1 }, "pageSize"},
		{"HalfCredentials", func(c *Config) { c.AccessKey = "AKIA" }, "accessKey"},
		{"UnknownFormat", func(c *Config) { c.ResponseFormat = "xml" }, "responseFormat"},
		{"BadLogLevel", func(c *Config) { c.LogLevel = "chatty" }, "logLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			var ve *errors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	t.Run("Defaults", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROULETTE_API_VERSION", "2011-12-05")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func writeDotenv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPrecedence(t *testing.T) {
	t.Run("FileOverridesDotenv", func(t *testing.T) {
		clearEnv(t)
		dotenv := writeDotenv(t, "ROULETTE_TABLE_NAME=FromDotenv\nROULETTE_REGION=ap-south-1\n")
		t.Setenv(FileEnvVar, writeFile(t, "tableName: FromYAML\n"))

		cfg, err := load(dotenv)
		require.NoError(t, err)

		assert.Equal(t, "FromYAML", cfg.TableName)
		// keys the YAML file leaves alone still come from .env
		assert.Equal(t, "ap-south-1", cfg.Region)
	})

	t.Run("EnvOverridesDotenv", func(t *testing.T) {
		clearEnv(t)
		dotenv := writeDotenv(t, "ROULETTE_TABLE_NAME=FromDotenv\n")
		t.Setenv("ROULETTE_TABLE_NAME", "FromEnv")

		cfg, err := load(dotenv)
		require.NoError(t, err)
		assert.Equal(t, "FromEnv", cfg.TableName)
	})

	t.Run("DotenvOverridesDefaults", func(t *testing.T) {
		clearEnv(t)
		dotenv := writeDotenv(t, "ROULETTE_TABLE_NAME=FromDotenv\nROULETTE_PAGE_SIZE=25\n")

		cfg, err := load(dotenv)
		require.NoError(t, err)
		assert.Equal(t, "FromDotenv", cfg.TableName)
		assert.Equal(t, int32(25), cfg.PageSize)

		_, exported := os.LookupEnv("ROULETTE_TABLE_NAME")
		assert.False(t, exported, ".env values stay out of the process environment")
	})

	t.Run("MissingDotenv", func(t *testing.T) {
		clearEnv(t)

		cfg, err := load(filepath.Join(t.TempDir(), ".env"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("InvalidDotenvValue", func(t *testing.T) {
		clearEnv(t)
		dotenv := writeDotenv(t, "ROULETTE_PAGE_SIZE=lots\n")

		_, err := load(dotenv)
		require.Error(t, err)
	})
}
