/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strategy

import (
	"context"

	"github.com/suparena/relstore/models"
)

// Saver persists a model and returns the stored copy with its id populated.
// The cascading save strategy recurses through it.
type Saver interface {
	Save(ctx context.Context, model models.Model) (models.Model, error)
}

// Getter loads a model by type name and id, failing with a not-found error
// when no record exists. The hydrating get strategy recurses through it.
type Getter interface {
	Get(ctx context.Context, typeName string, id models.ID) (models.Model, error)
}

// SaveStrategy turns a model into its persistable form.
type SaveStrategy interface {
	Save(ctx context.Context, model models.Model) (models.Model, error)
}

// GetStrategy post-processes a freshly loaded model.
type GetStrategy interface {
	Get(ctx context.Context, model models.Model) (models.Model, error)
}

// DeleteStrategy governs whether deletion is immediate or deferred into the
// delete-set ledger.
type DeleteStrategy interface {
	Delete(ctx context.Context, model models.Model) (models.Model, error)
	DeleteSets(ctx context.Context) (models.DeleteSets, error)
	ConfirmDelete(ctx context.Context, sets models.DeleteSets) error
	// Deferred reports whether records must be kept until their deletion is
	// confirmed.
	Deferred() bool
}
