/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package relstore

import (
	"time"

	"go.uber.org/zap"

	"github.com/suparena/relstore/registry"
	"github.com/suparena/relstore/strategy"
)

type options struct {
	cascade    bool
	hydrate    bool
	softDelete bool
	ledgerKey  string
	logger     *zap.Logger
	registry   *registry.Registry
	now        func() time.Time
}

func defaultOptions() options {
	return options{
		ledgerKey: strategy.DefaultLedgerKey,
		logger:    zap.NewNop(),
		registry:  registry.Default,
		now:       time.Now,
	}
}

// Option configures a Storage.
type Option func(*options)

// WithCascade selects the cascading save strategy, which saves related
// models before resolving them to ids.
func WithCascade(enabled bool) Option {
	return func(o *options) { o.cascade = enabled }
}

// WithHydrate selects the hydrating get strategy, which loads related models
// in place of foreign-key ids.
func WithHydrate(enabled bool) Option {
	return func(o *options) { o.hydrate = enabled }
}

// WithSoftDelete selects the soft delete strategy: deletions are recorded in
// the ledger and records kept until confirmed.
func WithSoftDelete(enabled bool) Option {
	return func(o *options) { o.softDelete = enabled }
}

// WithLedgerKey sets the reserved key of the delete-set ledger.
func WithLedgerKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.ledgerKey = key
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRegistry sets the type registry records are decoded with.
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithClock sets the time source used for model timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
