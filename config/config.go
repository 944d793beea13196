/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/suparena/relstore"
	"github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/strategy"
)

// Storage backends
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendDynamoDB = "dynamodb"
)

// Environments
const (
	EnvDevelopment = "dev"
	EnvProduction  = "prod"
)

type Config struct {
	Env        string         `yaml:"env"`
	Backend    string         `yaml:"backend"`
	File       FileConfig     `yaml:"file"`
	DynamoDB   DynamoDBConfig `yaml:"dynamodb"`
	Strategies StrategyConfig `yaml:"strategies"`
}

type FileConfig struct {
	Path string `yaml:"path"`
}

type DynamoDBConfig struct {
	Table     string `yaml:"table"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// StrategyConfig selects the default persistence strategies.
type StrategyConfig struct {
	Cascade    bool   `yaml:"cascade"`
	Hydrate    bool   `yaml:"hydrate"`
	SoftDelete bool   `yaml:"soft_delete"`
	LedgerKey  string `yaml:"ledger_key"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Env:     EnvDevelopment,
		Backend: BackendFile,
		File:    FileConfig{Path: defaultFilePath()},
		Strategies: StrategyConfig{
			SoftDelete: true,
			LedgerKey:  strategy.DefaultLedgerKey,
		},
	}
}

func defaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "relstore", "store.yaml")
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty) and environment variables, in that order. envFiles are
// loaded into the environment first with godotenv; missing env files are
// ignored.
func Load(path string, envFiles ...string) (*Config, error) {
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides allows environment variables to override YAML config values
func applyEnvOverrides(cfg *Config) error {
	strs := map[string]*string{
		"RELSTORE_ENV":        &cfg.Env,
		"RELSTORE_BACKEND":    &cfg.Backend,
		"RELSTORE_FILE":       &cfg.File.Path,
		"RELSTORE_LEDGER_KEY": &cfg.Strategies.LedgerKey,
		"AWS_DDB_TABLE":       &cfg.DynamoDB.Table,
		"AWS_REGION":          &cfg.DynamoDB.Region,
		"AWS_DDB_ENDPOINT":    &cfg.DynamoDB.Endpoint,
		"AWS_ACCESS_KEY":      &cfg.DynamoDB.AccessKey,
		"AWS_SECRET_KEY":      &cfg.DynamoDB.SecretKey,
	}
	for name, target := range strs {
		if v := os.Getenv(name); v != "" {
			*target = v
		}
	}

	bools := map[string]*bool{
		"RELSTORE_CASCADE":     &cfg.Strategies.Cascade,
		"RELSTORE_HYDRATE":     &cfg.Strategies.Hydrate,
		"RELSTORE_SOFT_DELETE": &cfg.Strategies.SoftDelete,
	}
	for name, target := range bools {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", name, err)
		}
		*target = b
	}
	return nil
}

// Validate checks that the selected backend is fully configured.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return errors.NewValidationError("env", fmt.Sprintf("unknown environment %q", c.Env))
	}

	switch c.Backend {
	case BackendMemory:
	case BackendFile:
		if c.File.Path == "" {
			return errors.NewValidationError("file.path", "required for the file backend")
		}
	case BackendDynamoDB:
		if c.DynamoDB.Table == "" {
			return errors.NewValidationError("dynamodb.table", "required for the dynamodb backend")
		}
		if c.DynamoDB.Region == "" {
			return errors.NewValidationError("dynamodb.region", "required for the dynamodb backend")
		}
	default:
		return errors.NewValidationError("backend", fmt.Sprintf("unknown backend %q", c.Backend))
	}
	return nil
}

// StorageOptions translates the strategy settings into relstore options.
func (c *Config) StorageOptions() []relstore.Option {
	return []relstore.Option{
		relstore.WithCascade(c.Strategies.Cascade),
		relstore.WithHydrate(c.Strategies.Hydrate),
		relstore.WithSoftDelete(c.Strategies.SoftDelete),
		relstore.WithLedgerKey(c.Strategies.LedgerKey),
	}
}

// NewLogger builds a production logger for prod and a development logger
// otherwise.
func (c *Config) NewLogger() (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	switch c.Env {
	case EnvProduction:
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("can't init logger: %w", err)
	}
	return logger, nil
}
