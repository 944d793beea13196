/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/relstore/errors"
)

func TestRelationForms(t *testing.T) {
	null := Relation{}
	assert.True(t, null.IsNull())
	assert.True(t, RelID(0).IsNull())
	assert.True(t, RelModel(nil).IsNull())

	id, ok := RelID(5).ID()
	assert.True(t, ok)
	assert.Equal(t, ID(5), id)

	group := &Group{Base: Base{ID: 9}}
	held := RelModel(group)
	_, ok = held.ID()
	assert.False(t, ok, "a relation holding a model is not resolved")
	assert.Same(t, group, held.Model())
	assert.Equal(t, ID(9), held.RefID())
}

func TestRelationJSON(t *testing.T) {
	host := &Host{
		Base:      Base{ID: 1},
		Address:   "example.com",
		Group:     RelID(3),
		SshConfig: RelModel(&SshConfig{Base: Base{ID: 4}}),
	}

	data, err := json.Marshal(host)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"label":"","address":"example.com","group":3,"ssh_config":4}`, string(data))

	var decoded Host
	require.NoError(t, json.Unmarshal(data, &decoded))
	gid, ok := decoded.Group.ID()
	require.True(t, ok)
	assert.Equal(t, ID(3), gid)

	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"group":null}`), &decoded))
	assert.True(t, decoded.Group.IsNull())

	assert.Error(t, json.Unmarshal([]byte(`{"group":"three"}`), &decoded))
}

func TestRelationToUnsavedModelDoesNotEncode(t *testing.T) {
	host := &Host{Address: "example.com", Group: RelModel(&Group{Label: "new"})}
	_, err := json.Marshal(host)
	assert.Error(t, err)
}

func TestCopyIsIndependent(t *testing.T) {
	group := &Group{Base: Base{ID: 2}}
	host := &Host{Base: Base{ID: 1}, Label: "web", Group: RelModel(group)}

	c := host.Copy().(*Host)
	*c.Relation("group") = RelID(2)
	c.Label = "db"

	assert.Same(t, group, host.Group.Model(), "original relation must be untouched")
	assert.Equal(t, "web", host.Label)
}

func TestFKFieldNames(t *testing.T) {
	assert.Equal(t, []string{"group", "ssh_config"}, FKFieldNames(&Host{}))
	assert.Equal(t, []string{"host", "tag"}, FKFieldNames(&TagHost{}))
	assert.Empty(t, FKFieldNames(&Tag{}))

	for name, f := range (&Group{}).Fields() {
		if f.ForeignKey {
			assert.NotNil(t, (&Group{}).Relation(name), "field %s", name)
		}
	}
}

func TestCatalogueMatchesTypeNames(t *testing.T) {
	for name, ctor := range Catalogue() {
		m := ctor()
		assert.Equal(t, name, m.TypeName())
		for _, field := range FKFieldNames(m) {
			assert.NotNil(t, m.Relation(field), "%s.%s has no relation accessor", name, field)
			_, known := Catalogue()[m.Fields()[field].Target]
			assert.True(t, known, "%s.%s targets an unknown type", name, field)
		}
	}
}

func TestHostValidate(t *testing.T) {
	tests := []struct {
		address string
		valid   bool
	}{
		{"example.com", true},
		{"10.0.0.1", true},
		{"::1", true},
		{"", false},
		{"not a host!", false},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			err := (&Host{Address: tt.address}).Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.IsValidationError(err), "got %v", err)
			}
		})
	}
}

func TestGroupValidate(t *testing.T) {
	g := &Group{Base: Base{ID: 3}, ParentGroup: RelID(3)}
	assert.True(t, errors.IsValidationError(g.Validate()))

	g.ParentGroup = RelID(4)
	assert.NoError(t, g.Validate())
}

func TestSshConfigValidate(t *testing.T) {
	assert.NoError(t, (&SshConfig{Port: 22}).Validate())
	assert.True(t, errors.IsValidationError((&SshConfig{Port: 70000}).Validate()))
}

func TestTouch(t *testing.T) {
	var b Base
	first := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	b.Touch(first)
	require.NotNil(t, b.CreatedAt)
	created := *b.CreatedAt

	later := first.Add(time.Hour)
	b.Touch(later)
	assert.Equal(t, created, *b.CreatedAt)
	assert.Equal(t, later, time.Time(*b.UpdatedAt))
}
