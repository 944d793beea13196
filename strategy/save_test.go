/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strategy

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/models"
)

func TestBaseSaveResolvesSavedRelations(t *testing.T) {
	group := &models.Group{Base: models.Base{ID: 5}, Label: "prod"}
	host := &models.Host{Address: "example.com", Group: models.RelModel(group)}

	saved, err := BaseSave{}.Save(context.Background(), host)
	require.NoError(t, err)

	id, ok := saved.(*models.Host).Group.ID()
	require.True(t, ok)
	assert.Equal(t, models.ID(5), id)

	assert.Same(t, group, host.Group.Model(), "input model must not be mutated")
	assert.NotSame(t, host, saved)
}

func TestBaseSavePassesIDsAndNulls(t *testing.T) {
	host := &models.Host{Address: "example.com", Group: models.RelID(3)}

	saved, err := BaseSave{}.Save(context.Background(), host)
	require.NoError(t, err)

	out := saved.(*models.Host)
	id, ok := out.Group.ID()
	require.True(t, ok)
	assert.Equal(t, models.ID(3), id)
	assert.True(t, out.SshConfig.IsNull())
}

func TestBaseSaveRejectsUnsavedRelation(t *testing.T) {
	host := &models.Host{Address: "example.com", Group: models.RelModel(&models.Group{Label: "new"})}

	_, err := BaseSave{}.Save(context.Background(), host)
	require.Error(t, err)
	assert.True(t, errors.IsPrecondition(err))
	assert.False(t, errors.IsNotFound(err))
}

func TestCascadingSavePersistsRelated(t *testing.T) {
	storage := newMemStorage()
	group := &models.Group{Label: "new"}
	host := &models.Host{Address: "example.com", Group: models.RelModel(group)}

	saved, err := NewCascadingSave(storage).Save(context.Background(), host)
	require.NoError(t, err)

	id, ok := saved.(*models.Host).Group.ID()
	require.True(t, ok)
	assert.NotZero(t, id)

	stored, err := storage.Get(context.Background(), models.GroupType, id)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.(*models.Group).Label)

	assert.Zero(t, group.ID, "related input model must not be mutated")
	assert.Same(t, group, host.Group.Model())
}

func TestCascadingSaveSkipsIDsAndNulls(t *testing.T) {
	storage := newMemStorage()
	host := &models.Host{Address: "example.com", Group: models.RelID(8)}

	saved, err := NewCascadingSave(storage).Save(context.Background(), host)
	require.NoError(t, err)

	assert.Zero(t, storage.saves)
	assert.True(t, saved.(*models.Host).SshConfig.IsNull())
	id, _ := saved.(*models.Host).Group.ID()
	assert.Equal(t, models.ID(8), id)
}

func TestCascadingSavePropagatesStorageErrors(t *testing.T) {
	storage := newMemStorage()
	boom := stderrors.New("disk full")
	storage.saveErr = boom

	host := &models.Host{Address: "example.com", Group: models.RelModel(&models.Group{})}
	_, err := NewCascadingSave(storage).Save(context.Background(), host)
	assert.Same(t, boom, err)
}

func TestCascadingSaveReusesInstancesWithinOneCall(t *testing.T) {
	storage := newMemStorage()
	group := &models.Group{Label: "shared"}
	ctx, _ := withSavedModels(context.Background())
	cascade := NewCascadingSave(storage)

	first, err := cascade.Save(ctx, &models.Host{Address: "a.example.com", Group: models.RelModel(group)})
	require.NoError(t, err)
	second, err := cascade.Save(ctx, &models.Host{Address: "b.example.com", Group: models.RelModel(group)})
	require.NoError(t, err)

	assert.Equal(t, 1, storage.saves)
	firstID, _ := first.(*models.Host).Group.ID()
	secondID, _ := second.(*models.Host).Group.ID()
	assert.Equal(t, firstID, secondID)

	// a fresh call saves the instance again so edits are written
	_, err = cascade.Save(context.Background(), &models.Host{Address: "c.example.com", Group: models.RelModel(group)})
	require.NoError(t, err)
	assert.Equal(t, 2, storage.saves)
}
