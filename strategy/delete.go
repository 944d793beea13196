/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strategy

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/kv"
	"github.com/suparena/relstore/models"
)

// DefaultLedgerKey is the reserved key the delete-set ledger is stored under.
const DefaultLedgerKey = "deleted_sets"

// ImmediateDelete keeps no ledger. Removing the record is left to the storage.
type ImmediateDelete struct{}

var _ DeleteStrategy = ImmediateDelete{}

func (ImmediateDelete) Delete(ctx context.Context, model models.Model) (models.Model, error) {
	return model, nil
}

func (ImmediateDelete) DeleteSets(ctx context.Context) (models.DeleteSets, error) {
	return models.DeleteSets{}, nil
}

func (ImmediateDelete) ConfirmDelete(ctx context.Context, sets models.DeleteSets) error {
	return nil
}

func (ImmediateDelete) Deferred() bool { return false }

// SoftDelete records deletions in a ledger document under ledgerKey and keeps
// the records until a remote system confirms them.
//
// The ledger is updated with an unlocked read-modify-write; concurrent
// writers on one store can lose updates.
type SoftDelete struct {
	store     kv.Store
	ledgerKey string
}

var _ DeleteStrategy = (*SoftDelete)(nil)

// NewSoftDelete creates a SoftDelete over store. An empty ledgerKey selects
// DefaultLedgerKey.
func NewSoftDelete(store kv.Store, ledgerKey string) *SoftDelete {
	if ledgerKey == "" {
		ledgerKey = DefaultLedgerKey
	}
	return &SoftDelete{store: store, ledgerKey: ledgerKey}
}

// LedgerKey returns the reserved key of the ledger document
func (s *SoftDelete) LedgerKey() string {
	return s.ledgerKey
}

func (s *SoftDelete) Deferred() bool { return true }

// DeleteSets returns the current ledger. An absent ledger key yields an empty
// ledger; any other store failure is returned unchanged.
func (s *SoftDelete) DeleteSets(ctx context.Context) (models.DeleteSets, error) {
	data, err := s.store.Get(ctx, s.ledgerKey)
	if errors.IsNotFound(err) {
		return models.DeleteSets{}, nil
	}
	if err != nil {
		return nil, err
	}

	sets := models.DeleteSets{}
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("failed to decode delete sets at %q: %w", s.ledgerKey, err)
	}
	if sets == nil {
		sets = models.DeleteSets{}
	}
	sets.Normalize()
	return sets, nil
}

func (s *SoftDelete) setDeleteSets(ctx context.Context, sets models.DeleteSets) error {
	data, err := json.Marshal(sets)
	if err != nil {
		return fmt.Errorf("failed to encode delete sets: %w", err)
	}
	return s.store.Set(ctx, s.ledgerKey, data)
}

// Delete marks model as pending deletion and returns it unchanged. The
// model's record is not touched.
func (s *SoftDelete) Delete(ctx context.Context, model models.Model) (models.Model, error) {
	if model.GetID() == 0 {
		return nil, errors.NewPreconditionError("delete", fmt.Sprintf(
			"cannot soft delete an unsaved %s", model.TypeName()))
	}

	sets, err := s.DeleteSets(ctx)
	if err != nil {
		return nil, err
	}
	sets.SoftDelete(model.TypeName(), model.GetID())
	if err := s.setDeleteSets(ctx, sets); err != nil {
		return nil, err
	}
	return model, nil
}

// ConfirmDelete removes every acknowledged (type, id) pair from the ledger.
// Ids that are not pending are ignored, so confirming twice is harmless.
func (s *SoftDelete) ConfirmDelete(ctx context.Context, confirmed models.DeleteSets) error {
	sets, err := s.DeleteSets(ctx)
	if err != nil {
		return err
	}
	for typeName, ids := range confirmed {
		for _, id := range ids {
			sets.Remove(typeName, id)
		}
	}
	return s.setDeleteSets(ctx, sets)
}
