/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

func getIntegrationStore(t *testing.T) *Store {
	t.Helper()
	if err := godotenv.Load(); err != nil {
		t.Log("No .env file found, proceeding with environment variables")
	}

	table := os.Getenv("AWS_DDB_TABLE")
	if table == "" {
		t.Skip("AWS_DDB_TABLE not set; skipping DynamoDB integration test")
	}

	store, err := Open(context.Background(), ClientOptions{
		AccessKey: os.Getenv("AWS_ACCESS_KEY"),
		SecretKey: os.Getenv("AWS_SECRET_KEY"),
		Region:    os.Getenv("AWS_REGION"),
		Endpoint:  os.Getenv("AWS_DDB_ENDPOINT"),
	}, table)
	require.NoError(t, err)
	return store
}

func TestIntegrationSetGetDelete(t *testing.T) {
	store := getIntegrationStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "relstore-it/Host/1", []byte(`{"id":1}`)))

	value, err := store.Get(ctx, "relstore-it/Host/1")
	require.NoError(t, err)
	require.Equal(t, `{"id":1}`, string(value))

	require.NoError(t, store.Delete(ctx, "relstore-it/Host/1"))
}
