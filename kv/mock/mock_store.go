/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of kv.Store
package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/kv"
)

var _ kv.Store = (*Store)(nil)

// Store is an in-memory kv.Store. Errors can be injected per operation.
type Store struct {
	mu          sync.RWMutex
	data        map[string][]byte
	getError    error
	setError    error
	deleteError error
}

// New creates a new empty Store
func New() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// WithGetError makes Get operations return an error
func (m *Store) WithGetError(err error) *Store {
	m.getError = err
	return m
}

// WithSetError makes Set operations return an error
func (m *Store) WithSetError(err error) *Store {
	m.setError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *Store) WithDeleteError(err error) *Store {
	m.deleteError = err
	return m
}

// Get retrieves a copy of the value stored under key
func (m *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getError != nil {
		return nil, m.getError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.data[key]
	if !exists {
		return nil, errors.NewNotFoundError("key", key)
	}
	return append([]byte(nil), value...), nil
}

// Set stores a copy of value under key
func (m *Store) Set(ctx context.Context, key string, value []byte) error {
	if m.setError != nil {
		return m.setError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key
func (m *Store) Delete(ctx context.Context, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// Helper methods for testing

// Keys returns all stored keys in sorted order
func (m *Store) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of stored keys
func (m *Store) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *Store) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte)
}
