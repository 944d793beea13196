/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package relstore

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/kv"
	"github.com/suparena/relstore/models"
	"github.com/suparena/relstore/registry"
	"github.com/suparena/relstore/strategy"
)

func init() {
	registry.Default.RegisterCatalogue(models.Catalogue())
}

// Storage persists models in a kv.Store. It picks a save, get and delete
// strategy for every call from its options; With derives a Storage with
// different choices over the same store.
//
// Storage performs no locking. It assumes a single writer per store.
type Storage struct {
	store kv.Store
	opts  options
}

var (
	_ strategy.Saver  = (*Storage)(nil)
	_ strategy.Getter = (*Storage)(nil)
)

// New creates a Storage over store
func New(store kv.Store, opts ...Option) *Storage {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Storage{store: store, opts: o}
}

// With returns a Storage sharing the same store with opts applied on top of
// the current options.
func (s *Storage) With(opts ...Option) *Storage {
	o := s.opts
	for _, opt := range opts {
		opt(&o)
	}
	return &Storage{store: s.store, opts: o}
}

// Store returns the underlying key-value store
func (s *Storage) Store() kv.Store {
	return s.store
}

func (s *Storage) saveStrategy() strategy.SaveStrategy {
	if s.opts.cascade {
		return strategy.NewCascadingSave(s)
	}
	return strategy.BaseSave{}
}

func (s *Storage) getStrategy() strategy.GetStrategy {
	if s.opts.hydrate {
		return strategy.NewHydratingGet(s)
	}
	return strategy.BaseGet{}
}

func (s *Storage) deleteStrategy() strategy.DeleteStrategy {
	if s.opts.softDelete {
		return strategy.NewSoftDelete(s.store, s.opts.ledgerKey)
	}
	return strategy.ImmediateDelete{}
}

// Save persists model and returns the stored copy with its id assigned and
// every foreign key resolved to an id. model itself is not modified.
func (s *Storage) Save(ctx context.Context, model models.Model) (models.Model, error) {
	saved, err := s.saveStrategy().Save(ctx, model)
	if err != nil {
		return nil, err
	}

	if v, ok := saved.(models.Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	typeName := saved.TypeName()
	if !s.opts.registry.Has(typeName) {
		return nil, errors.NewUnknownTypeError(typeName)
	}
	if saved.GetID() == 0 {
		id, err := s.nextID(ctx, typeName)
		if err != nil {
			return nil, err
		}
		saved.SetID(id)
	} else if err := s.advanceSequence(ctx, typeName, saved.GetID()); err != nil {
		return nil, err
	}
	if t, ok := saved.(models.Timestamped); ok {
		t.Touch(s.opts.now())
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", typeName, err)
	}

	key := recordKey(typeName, saved.GetID())
	if err := s.store.Set(ctx, key, data); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := s.addToIndex(ctx, typeName, saved.GetID()); err != nil {
		return nil, err
	}

	s.opts.logger.Debug("saved model", zap.String("type", typeName), zap.Int64("id", int64(saved.GetID())))
	return saved, nil
}

// Get loads the model of typeName stored under id. A missing record fails
// with errors.NotFoundError.
func (s *Storage) Get(ctx context.Context, typeName string, id models.ID) (models.Model, error) {
	model, err := s.opts.registry.New(typeName)
	if err != nil {
		return nil, err
	}

	key := recordKey(typeName, id)
	data, err := s.store.Get(ctx, key)
	if errors.IsNotFound(err) {
		return nil, errors.NewNotFoundError(typeName, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, model); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}

	if s.opts.hydrate {
		var seen bool
		ctx, seen = enterHydration(ctx, typeName, id)
		if seen {
			s.opts.logger.Warn("reference cycle, returning unhydrated model",
				zap.String("type", typeName), zap.Int64("id", int64(id)))
			return model, nil
		}
	}
	return s.getStrategy().Get(ctx, model)
}

// List loads every model of typeName in id order.
func (s *Storage) List(ctx context.Context, typeName string) ([]models.Model, error) {
	if !s.opts.registry.Has(typeName) {
		return nil, errors.NewUnknownTypeError(typeName)
	}

	ids, err := s.readIndex(ctx, typeName)
	if err != nil {
		return nil, err
	}

	result := make([]models.Model, 0, len(ids))
	for _, id := range ids {
		model, err := s.Get(ctx, typeName, id)
		if err != nil {
			if s.staleIndexEntry(typeName, id, err) {
				continue
			}
			return nil, err
		}
		result = append(result, model)
	}
	return result, nil
}

// staleIndexEntry reports whether err is about the listed record itself rather
// than a related one it references. Such entries are skipped and logged.
func (s *Storage) staleIndexEntry(typeName string, id models.ID, err error) bool {
	var nf *errors.NotFoundError
	if !errors.As(err, &nf) || nf.Key != recordKey(typeName, id) {
		return false
	}
	s.opts.logger.Warn("index references a missing record",
		zap.String("type", typeName), zap.Int64("id", int64(id)))
	return true
}

// Delete deletes model through the delete strategy. The record is removed now
// unless the strategy defers removal until the deletion is confirmed.
func (s *Storage) Delete(ctx context.Context, model models.Model) error {
	if model.GetID() == 0 {
		return errors.NewPreconditionError("delete", fmt.Sprintf("cannot delete an unsaved %s", model.TypeName()))
	}

	ds := s.deleteStrategy()
	if _, err := ds.Delete(ctx, model); err != nil {
		return err
	}
	if !ds.Deferred() {
		if err := s.purge(ctx, model.TypeName(), model.GetID()); err != nil {
			return err
		}
	}

	s.opts.logger.Debug("deleted model",
		zap.String("type", model.TypeName()),
		zap.Int64("id", int64(model.GetID())),
		zap.Bool("deferred", ds.Deferred()))
	return nil
}

// DeleteSets returns the models pending remote deletion. It is always empty
// without soft delete.
func (s *Storage) DeleteSets(ctx context.Context) (models.DeleteSets, error) {
	return s.deleteStrategy().DeleteSets(ctx)
}

// ConfirmDelete acknowledges remote deletion of sets. With soft delete, the
// records of confirmed ids that were pending are purged and the ids leave the
// ledger; ids that were not pending are ignored.
func (s *Storage) ConfirmDelete(ctx context.Context, sets models.DeleteSets) error {
	ds := s.deleteStrategy()
	if !ds.Deferred() {
		return ds.ConfirmDelete(ctx, sets)
	}

	pending, err := ds.DeleteSets(ctx)
	if err != nil {
		return err
	}

	typeNames := make([]string, 0, len(sets))
	for typeName := range sets {
		typeNames = append(typeNames, typeName)
	}
	sort.Strings(typeNames)

	purged := 0
	for _, typeName := range typeNames {
		for _, id := range sets[typeName] {
			if !pending.Contains(typeName, id) {
				continue
			}
			if err := s.purge(ctx, typeName, id); err != nil {
				return err
			}
			purged++
		}
	}

	if err := ds.ConfirmDelete(ctx, sets); err != nil {
		return err
	}
	s.opts.logger.Debug("confirmed deletions", zap.Int("purged", purged))
	return nil
}

// LowGet reads a raw value from the underlying store.
func (s *Storage) LowGet(ctx context.Context, key string) ([]byte, error) {
	return s.store.Get(ctx, key)
}

// LowSet writes a raw value to the underlying store.
func (s *Storage) LowSet(ctx context.Context, key string, value []byte) error {
	return s.store.Set(ctx, key, value)
}

func (s *Storage) purge(ctx context.Context, typeName string, id models.ID) error {
	key := recordKey(typeName, id)
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return s.removeFromIndex(ctx, typeName, id)
}

func (s *Storage) nextID(ctx context.Context, typeName string) (models.ID, error) {
	last, err := s.readSequence(ctx, typeName)
	if err != nil {
		return 0, err
	}
	next := last + 1
	if err := s.writeSequence(ctx, typeName, next); err != nil {
		return 0, err
	}
	return next, nil
}

// advanceSequence moves the sequence of typeName up to id so that ids handed
// out later never collide with an explicitly assigned one.
func (s *Storage) advanceSequence(ctx context.Context, typeName string, id models.ID) error {
	last, err := s.readSequence(ctx, typeName)
	if err != nil {
		return err
	}
	if id <= last {
		return nil
	}
	return s.writeSequence(ctx, typeName, id)
}

func (s *Storage) readSequence(ctx context.Context, typeName string) (models.ID, error) {
	key := sequenceKey(typeName)
	data, err := s.store.Get(ctx, key)
	if errors.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var last models.ID
	if err := json.Unmarshal(data, &last); err != nil {
		return 0, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return last, nil
}

func (s *Storage) writeSequence(ctx context.Context, typeName string, id models.ID) error {
	key := sequenceKey(typeName)
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Storage) readIndex(ctx context.Context, typeName string) ([]models.ID, error) {
	key := indexKey(typeName)
	data, err := s.store.Get(ctx, key)
	if errors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var ids []models.ID
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	slices.Sort(ids)
	return slices.Compact(ids), nil
}

func (s *Storage) writeIndex(ctx context.Context, typeName string, ids []models.ID) error {
	key := indexKey(typeName)
	if len(ids) == 0 {
		ids = []models.ID{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Storage) addToIndex(ctx context.Context, typeName string, id models.ID) error {
	ids, err := s.readIndex(ctx, typeName)
	if err != nil {
		return err
	}
	i, found := slices.BinarySearch(ids, id)
	if found {
		return nil
	}
	return s.writeIndex(ctx, typeName, slices.Insert(ids, i, id))
}

func (s *Storage) removeFromIndex(ctx context.Context, typeName string, id models.ID) error {
	ids, err := s.readIndex(ctx, typeName)
	if err != nil {
		return err
	}
	i, found := slices.BinarySearch(ids, id)
	if !found {
		return nil
	}
	return s.writeIndex(ctx, typeName, slices.Delete(ids, i, i+1))
}
