/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strategy

import (
	"context"
	"fmt"

	"github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/models"
)

// memStorage is a minimal Saver and Getter keeping models by type and id.
type memStorage struct {
	records map[string]map[models.ID]models.Model
	nextID  models.ID
	saves   int
	saveErr error
}

func newMemStorage() *memStorage {
	return &memStorage{records: make(map[string]map[models.ID]models.Model)}
}

func (m *memStorage) Save(ctx context.Context, model models.Model) (models.Model, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	m.saves++
	saved := model.Copy()
	if saved.GetID() == 0 {
		m.nextID++
		saved.SetID(m.nextID)
	}
	bucket := m.records[saved.TypeName()]
	if bucket == nil {
		bucket = make(map[models.ID]models.Model)
		m.records[saved.TypeName()] = bucket
	}
	bucket[saved.GetID()] = saved
	return saved, nil
}

func (m *memStorage) Get(ctx context.Context, typeName string, id models.ID) (models.Model, error) {
	model, ok := m.records[typeName][id]
	if !ok {
		return nil, errors.NewNotFoundError(typeName, fmt.Sprintf("%s/%d", typeName, id))
	}
	return model.Copy(), nil
}
