/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strategy

import (
	"context"
	"fmt"
	"reflect"

	"github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/models"
)

// resolveFunc returns the id to store for a related model.
type resolveFunc func(ctx context.Context, field string, related models.Model) (models.ID, error)

// BaseSave requires every related model to be persisted already.
type BaseSave struct{}

var _ SaveStrategy = BaseSave{}

// Save returns a copy of model whose foreign keys hold plain ids. A related
// model without an id is a precondition violation.
func (BaseSave) Save(ctx context.Context, model models.Model) (models.Model, error) {
	return saveRelations(ctx, model, func(ctx context.Context, field string, related models.Model) (models.ID, error) {
		if related.GetID() == 0 {
			return 0, errors.NewPreconditionError("save", fmt.Sprintf(
				"%s.%s references an unsaved %s", model.TypeName(), field, related.TypeName()))
		}
		return related.GetID(), nil
	})
}

// CascadingSave persists related models through the owning storage before
// resolving them to ids.
type CascadingSave struct {
	storage Saver
}

var _ SaveStrategy = (*CascadingSave)(nil)

// NewCascadingSave creates a CascadingSave bound to storage
func NewCascadingSave(storage Saver) *CascadingSave {
	return &CascadingSave{storage: storage}
}

// Save returns a copy of model whose foreign keys hold plain ids. Every
// related model instance is saved first, so edits to already persisted
// related models are written too. An instance reachable through several
// foreign keys of the same graph is saved once.
func (s *CascadingSave) Save(ctx context.Context, model models.Model) (models.Model, error) {
	ctx, saved := withSavedModels(ctx)
	return saveRelations(ctx, model, func(ctx context.Context, field string, related models.Model) (models.ID, error) {
		tracked := reflect.ValueOf(related).Kind() == reflect.Pointer
		if tracked {
			if id, ok := saved[related]; ok {
				return id, nil
			}
		}

		result, err := s.storage.Save(ctx, related)
		if err != nil {
			return 0, err
		}
		if result.GetID() == 0 {
			return 0, errors.NewPreconditionError("save", fmt.Sprintf(
				"storage returned %s without an id for %s.%s", related.TypeName(), model.TypeName(), field))
		}
		if tracked {
			saved[related] = result.GetID()
		}
		return result.GetID(), nil
	})
}

type savedModelsKey struct{}

// savedModels maps related instances already saved by the current cascade to
// their ids. Keys are pointers.
type savedModels map[models.Model]models.ID

func withSavedModels(ctx context.Context) (context.Context, savedModels) {
	if saved, ok := ctx.Value(savedModelsKey{}).(savedModels); ok {
		return ctx, saved
	}
	saved := savedModels{}
	return context.WithValue(ctx, savedModelsKey{}, saved), saved
}

func saveRelations(ctx context.Context, model models.Model, resolve resolveFunc) (models.Model, error) {
	modelCopy := model.Copy()
	for _, field := range models.FKFieldNames(model) {
		rel := model.Relation(field)
		if rel == nil {
			return nil, errors.NewPreconditionError("save", fmt.Sprintf(
				"%s declares foreign key %q without a relation", model.TypeName(), field))
		}

		resolved := models.Relation{}
		if id, ok := rel.ID(); ok {
			resolved = models.RelID(id)
		} else if related := rel.Model(); related != nil {
			id, err := resolve(ctx, field, related)
			if err != nil {
				return nil, err
			}
			resolved = models.RelID(id)
		}
		*modelCopy.Relation(field) = resolved
	}
	return modelCopy, nil
}
