/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strategy

import (
	"context"

	"github.com/suparena/relstore/models"
)

// BaseGet leaves foreign keys as raw ids.
type BaseGet struct{}

var _ GetStrategy = BaseGet{}

func (BaseGet) Get(ctx context.Context, model models.Model) (models.Model, error) {
	return model, nil
}

// HydratingGet replaces foreign-key ids with the entities they reference.
type HydratingGet struct {
	storage Getter
}

var _ GetStrategy = (*HydratingGet)(nil)

// NewHydratingGet creates a HydratingGet bound to storage
func NewHydratingGet(storage Getter) *HydratingGet {
	return &HydratingGet{storage: storage}
}

// Get returns a copy of model with every id-valued foreign key loaded. Null
// fields and fields already holding a model are left alone, so hydrating
// twice is a no-op. A dangling reference fails with the storage's not-found
// error.
func (s *HydratingGet) Get(ctx context.Context, model models.Model) (models.Model, error) {
	result := model.Copy()
	fields := result.Fields()
	for _, field := range models.FKFieldNames(result) {
		rel := result.Relation(field)
		if rel == nil {
			continue
		}
		id, ok := rel.ID()
		if !ok {
			continue
		}
		related, err := s.storage.Get(ctx, fields[field].Target, id)
		if err != nil {
			return nil, err
		}
		*rel = models.RelModel(related)
	}
	return result, nil
}
