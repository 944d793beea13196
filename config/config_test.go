/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/kv/file"
	"github.com/suparena/relstore/models"
	"github.com/suparena/relstore/strategy"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Backend)
	assert.NotEmpty(t, cfg.File.Path)
	assert.True(t, cfg.Strategies.SoftDelete)
	assert.Equal(t, strategy.DefaultLedgerKey, cfg.Strategies.LedgerKey)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "relstore.yaml", `
env: prod
backend: dynamodb
dynamodb:
  table: relstore
  region: eu-west-1
strategies:
  cascade: true
  soft_delete: false
  ledger_key: pending
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, BackendDynamoDB, cfg.Backend)
	assert.Equal(t, "relstore", cfg.DynamoDB.Table)
	assert.Equal(t, "eu-west-1", cfg.DynamoDB.Region)
	assert.True(t, cfg.Strategies.Cascade)
	assert.False(t, cfg.Strategies.SoftDelete)
	assert.Equal(t, "pending", cfg.Strategies.LedgerKey)
	assert.NotEmpty(t, cfg.File.Path, "unset sections keep their defaults")
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, "relstore.yaml", "backend: file\n")
	t.Setenv("RELSTORE_BACKEND", "memory")
	t.Setenv("RELSTORE_HYDRATE", "true")
	t.Setenv("RELSTORE_LEDGER_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.True(t, cfg.Strategies.Hydrate)
	assert.Equal(t, "from-env", cfg.Strategies.LedgerKey)
}

func TestLoadEnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "RELSTORE_CASCADE=true\n")
	t.Setenv("RELSTORE_CASCADE", "")
	os.Unsetenv("RELSTORE_CASCADE")

	cfg, err := Load("", envFile, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.True(t, cfg.Strategies.Cascade)
}

func TestLoadErrors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("BadBool", func(t *testing.T) {
		t.Setenv("RELSTORE_SOFT_DELETE", "maybe")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("UnknownBackend", func(t *testing.T) {
		t.Setenv("RELSTORE_BACKEND", "etcd")
		_, err := Load("")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("DynamoDBWithoutTable", func(t *testing.T) {
		path := writeFile(t, "relstore.yaml", "backend: dynamodb\ndynamodb:\n  region: us-east-1\n")
		_, err := Load(path)
		var ve *errors.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "dynamodb.table", ve.Field)
	})

	t.Run("UnknownEnv", func(t *testing.T) {
		t.Setenv("RELSTORE_ENV", "staging")
		_, err := Load("")
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()
	cfg := Default()
	cfg.Backend = BackendMemory

	storage, err := cfg.OpenStorage(ctx, zap.NewNop())
	require.NoError(t, err)

	tag, err := storage.Save(ctx, &models.Tag{Label: "x"})
	require.NoError(t, err)
	require.NoError(t, storage.Delete(ctx, tag))

	sets, err := storage.DeleteSets(ctx)
	require.NoError(t, err)
	assert.True(t, sets.Contains(models.TagType, tag.GetID()), "soft delete is the default")
}

func TestOpenFileStore(t *testing.T) {
	cfg := Default()
	cfg.File.Path = filepath.Join(t.TempDir(), "store.yaml")

	store, err := cfg.OpenStore(context.Background())
	require.NoError(t, err)
	require.IsType(t, &file.Store{}, store)
	assert.Equal(t, cfg.File.Path, store.(*file.Store).Path())
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{EnvDevelopment, EnvProduction} {
		cfg := Default()
		cfg.Env = env
		logger, err := cfg.NewLogger()
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}
