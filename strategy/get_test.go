/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/models"
)

func TestBaseGetIsIdentity(t *testing.T) {
	host := &models.Host{Group: models.RelID(1)}

	got, err := BaseGet{}.Get(context.Background(), host)
	require.NoError(t, err)
	assert.Same(t, host, got)
}

func TestHydratingGet(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	group, err := storage.Save(ctx, &models.Group{Label: "prod"})
	require.NoError(t, err)

	host := &models.Host{Base: models.Base{ID: 10}, Group: models.RelID(group.GetID())}
	strategy := NewHydratingGet(storage)

	hydrated, err := strategy.Get(ctx, host)
	require.NoError(t, err)

	out := hydrated.(*models.Host)
	require.NotNil(t, out.Group.Model())
	assert.Equal(t, "prod", out.Group.Model().(*models.Group).Label)
	assert.True(t, out.SshConfig.IsNull(), "null relations stay null")

	_, stillID := host.Group.ID()
	assert.True(t, stillID, "input model must not be mutated")

	again, err := strategy.Get(ctx, hydrated)
	require.NoError(t, err)
	assert.Same(t, out.Group.Model(), again.(*models.Host).Group.Model(), "hydrating twice is a no-op")
}

func TestHydratingGetDanglingReference(t *testing.T) {
	host := &models.Host{Group: models.RelID(404)}

	_, err := NewHydratingGet(newMemStorage()).Get(context.Background(), host)
	assert.True(t, errors.IsNotFound(err), "got %v", err)
}
