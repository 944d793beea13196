/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package relstore

import (
	"context"

	"github.com/suparena/relstore/models"
)

type hydrationKey struct{}

// hydrationFrame is one model on the current hydration path.
type hydrationFrame struct {
	typeName string
	id       models.ID
	parent   *hydrationFrame
}

// enterHydration records (typeName, id) on the hydration path carried by ctx.
// It reports true when the model is already being hydrated further up, which
// means the stored references form a cycle.
func enterHydration(ctx context.Context, typeName string, id models.ID) (context.Context, bool) {
	parent, _ := ctx.Value(hydrationKey{}).(*hydrationFrame)
	for f := parent; f != nil; f = f.parent {
		if f.typeName == typeName && f.id == id {
			return ctx, true
		}
	}
	return context.WithValue(ctx, hydrationKey{}, &hydrationFrame{typeName: typeName, id: id, parent: parent}), false
}
