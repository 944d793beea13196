/*
Package kv defines the key-value interface underneath relstore.

	type Store interface {
	    Get(ctx context.Context, key string) ([]byte, error)
	    Set(ctx context.Context, key string, value []byte) error
	    Delete(ctx context.Context, key string) error
	}

Get signals an absent key with an error matching errors.ErrNotFound; every
implementation must keep that contract because the soft-delete ledger relies
on it to lazily start from an empty document.

Implementations:
  - mock: in-memory store with error injection, for tests and ephemeral use
  - file: a single YAML document on disk, the default for local tools
  - ddb: DynamoDB single-table store
  - kvmock: generated gomock mock
*/
package kv
