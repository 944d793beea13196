/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/suparena/relstore"
	"github.com/suparena/relstore/kv"
	"github.com/suparena/relstore/kv/ddb"
	"github.com/suparena/relstore/kv/file"
	"github.com/suparena/relstore/kv/mock"
)

// OpenStore opens the configured key-value backend.
func (c *Config) OpenStore(ctx context.Context) (kv.Store, error) {
	switch c.Backend {
	case BackendMemory:
		return mock.New(), nil
	case BackendFile:
		return file.Open(c.File.Path)
	case BackendDynamoDB:
		return ddb.Open(ctx, ddb.ClientOptions{
			AccessKey: c.DynamoDB.AccessKey,
			SecretKey: c.DynamoDB.SecretKey,
			Region:    c.DynamoDB.Region,
			Endpoint:  c.DynamoDB.Endpoint,
		}, c.DynamoDB.Table)
	}
	return nil, fmt.Errorf("unknown backend %q", c.Backend)
}

// OpenStorage opens the configured backend and wraps it in a relstore.Storage
// using the configured strategies.
func (c *Config) OpenStorage(ctx context.Context, logger *zap.Logger) (*relstore.Storage, error) {
	store, err := c.OpenStore(ctx)
	if err != nil {
		return nil, err
	}
	opts := append(c.StorageOptions(), relstore.WithLogger(logger))
	return relstore.New(store, opts...), nil
}
