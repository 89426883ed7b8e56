/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads the handler configuration once at process start.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/suparena/serviceroulette/errors"
)

const (
	// FileEnvVar names the optional YAML configuration file.
	FileEnvVar = "ROULETTE_CONFIG_FILE"

	// DynamoDBAPIVersion is the only DynamoDB API version the SDK speaks.
	DynamoDBAPIVersion = "2012-08-10"

	DefaultTableName = "Project-ServiceCatalog"
	DefaultRegion    = "us-east-1"

	FormatEnvelope = "envelope"
	FormatProxy    = "proxy"
)

// Store holds the settings needed to reach the record store.
type Store struct {
	TableName  string `yaml:"tableName" env:"ROULETTE_TABLE_NAME"`
	Region     string `yaml:"region" env:"ROULETTE_REGION"`
	APIVersion string `yaml:"apiVersion" env:"ROULETTE_API_VERSION"`
	// Endpoint overrides the service endpoint, e.g. http://localhost:8000 for DynamoDB Local.
	Endpoint  string `yaml:"endpoint" env:"ROULETTE_ENDPOINT"`
	AccessKey string `yaml:"accessKey" env:"ROULETTE_ACCESS_KEY"`
	SecretKey string `yaml:"secretKey" env:"ROULETTE_SECRET_KEY"`
	// PageSize limits items per scan page; 0 leaves it to DynamoDB.
	PageSize       int32 `yaml:"pageSize" env:"ROULETTE_PAGE_SIZE"`
	ConsistentRead bool  `yaml:"consistentRead" env:"ROULETTE_CONSISTENT_READ"`
}

// Config is the complete handler configuration.
type Config struct {
	Store          `yaml:",inline"`
	ResponseFormat string `yaml:"responseFormat" env:"ROULETTE_RESPONSE_FORMAT"`
	LogLevel       string `yaml:"logLevel" env:"ROULETTE_LOG_LEVEL"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Store: Store{
			TableName:  DefaultTableName,
			Region:     DefaultRegion,
			APIVersion: DynamoDBAPIVersion,
		},
		ResponseFormat: FormatEnvelope,
		LogLevel:       "info",
	}
}

// DotenvFile is the optional dotenv file read by Load, relative to the working directory.
const DotenvFile = ".env"

// Load builds the configuration from defaults, an optional .env file, an
// optional YAML file named by ROULETTE_CONFIG_FILE and the environment, in
// increasing order of precedence.
func Load() (Config, error) {
	return load(DotenvFile)
}

func load(dotenvPath string) (Config, error) {
	cfg := Default()

	// the dotenv values are applied to cfg only, never exported to the
	// process environment, so the YAML file can still override them
	dotenv, err := godotenv.Read(dotenvPath)
	switch {
	case err == nil:
		if err := env.ParseWithOptions(&cfg, env.Options{Environment: dotenv}); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", dotenvPath, err)
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
	}

	if path := os.Getenv(FileEnvVar); path != "" {
		if err := cfg.MergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MergeFile overlays the settings found in a YAML file onto cfg.
// Keys absent from the file keep their current values.
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.TableName == "":
		return errors.NewValidationError("tableName", "must not be empty")
	case c.Region == "":
		return errors.NewValidationError("region", "must not be empty")
	case c.APIVersion != DynamoDBAPIVersion:
		return errors.NewValidationError("apiVersion",
			fmt.Sprintf("unsupported DynamoDB API version %q, only %s is available", c.APIVersion, DynamoDBAPIVersion))
	case c.PageSize < 0:
		return errors.NewValidationError("pageSize", "must not be negative")
	case (c.AccessKey == "") != (c.SecretKey == ""):
		return errors.NewValidationError("accessKey", "accessKey and secretKey must be set together")
	case c.ResponseFormat != FormatEnvelope && c.ResponseFormat != FormatProxy:
		return errors.NewValidationError("responseFormat",
			fmt.Sprintf("must be %q or %q, got %q", FormatEnvelope, FormatProxy, c.ResponseFormat))
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.NewValidationError("logLevel", err.Error())
	}
	return nil
}
