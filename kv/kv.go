/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kv

import "context"

//go:generate mockgen -source=kv.go -destination=kvmock/kvmock.go -package=kvmock

// Store is the flat key-value substrate every record and the delete-set
// ledger are persisted through. Values are opaque bytes.
type Store interface {
	// Get returns the value stored under key. Absent keys fail with an error
	// matching errors.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
