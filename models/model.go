/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/go-openapi/strfmt"
)

// ID identifies a persisted model within its type. Zero means the model has
// not been saved yet.
type ID int64

// Field describes one attribute of a model. Foreign keys name the model type
// they reference in Target.
type Field struct {
	Name       string
	ForeignKey bool
	Target     string
}

// Model is a typed record persisted through the key-value store.
type Model interface {
	// TypeName is the entity type name used for keys, the ledger and the registry.
	TypeName() string
	GetID() ID
	SetID(id ID)
	// Fields maps field name to metadata. The returned map is shared and must
	// not be modified.
	Fields() map[string]Field
	// Relation returns a pointer to the named foreign-key field, or nil when
	// the model has no such foreign key.
	Relation(field string) *Relation
	// Copy returns an independent shallow duplicate. Foreign-key values are
	// copied; related models they hold are shared.
	Copy() Model
}

// Validator is implemented by models that check their own attributes before
// they are saved.
type Validator interface {
	Validate() error
}

// Timestamped is implemented by models that track creation and update times.
type Timestamped interface {
	Touch(now time.Time)
}

// FKFieldNames returns the foreign-key field names of m in sorted order.
func FKFieldNames(m Model) []string {
	var names []string
	for name, f := range m.Fields() {
		if f.ForeignKey {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Relation is the value of a foreign-key field. It is null, a resolved id, or
// a related model instance. The zero Relation is null.
type Relation struct {
	id    ID
	model Model
}

// RelID returns a relation resolved to id. A zero id yields a null relation.
func RelID(id ID) Relation {
	return Relation{id: id}
}

// RelModel returns a relation holding m. A nil m yields a null relation.
func RelModel(m Model) Relation {
	if m == nil {
		return Relation{}
	}
	return Relation{model: m}
}

// IsNull reports whether the relation references nothing.
func (r Relation) IsNull() bool {
	return r.model == nil && r.id == 0
}

// ID returns the plain identifier when the relation is resolved.
func (r Relation) ID() (ID, bool) {
	if r.model != nil || r.id == 0 {
		return 0, false
	}
	return r.id, true
}

// Model returns the related instance, if the relation holds one.
func (r Relation) Model() Model {
	return r.model
}

// RefID returns the identifier the relation points at regardless of form:
// the plain id, or the id of the held model (zero if it is unsaved).
func (r Relation) RefID() ID {
	if r.model != nil {
		return r.model.GetID()
	}
	return r.id
}

func (r Relation) String() string {
	switch {
	case r.model != nil:
		return fmt.Sprintf("%s(%d)", r.model.TypeName(), r.model.GetID())
	case r.id != 0:
		return fmt.Sprintf("#%d", r.id)
	default:
		return "null"
	}
}

// MarshalJSON encodes the relation as its identifier or null. A relation
// holding an unsaved model cannot be encoded.
func (r Relation) MarshalJSON() ([]byte, error) {
	if r.IsNull() {
		return []byte("null"), nil
	}
	id := r.RefID()
	if id == 0 {
		return nil, fmt.Errorf("relation to unsaved %s cannot be encoded", r.model.TypeName())
	}
	return json.Marshal(int64(id))
}

// UnmarshalJSON decodes an identifier or null.
func (r *Relation) UnmarshalJSON(data []byte) error {
	var id *int64
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("relation must be an integer id or null: %w", err)
	}
	*r = Relation{}
	if id != nil {
		r.id = ID(*id)
	}
	return nil
}

// Base carries the attributes shared by every entity.
type Base struct {
	ID        ID               `json:"id"`
	CreatedAt *strfmt.DateTime `json:"created_at,omitempty"`
	UpdatedAt *strfmt.DateTime `json:"updated_at,omitempty"`
}

func (b *Base) GetID() ID {
	return b.ID
}

func (b *Base) SetID(id ID) {
	b.ID = id
}

// Touch stamps UpdatedAt and, on first save, CreatedAt. It replaces the
// pointers rather than writing through them so copies never share updates.
func (b *Base) Touch(now time.Time) {
	ts := strfmt.DateTime(now.UTC())
	if b.CreatedAt == nil {
		created := ts
		b.CreatedAt = &created
	}
	b.UpdatedAt = &ts
}

func fieldSet(fields ...Field) map[string]Field {
	set := make(map[string]Field, len(fields))
	for _, f := range fields {
		set[f.Name] = f
	}
	return set
}

func fk(name, target string) Field {
	return Field{Name: name, ForeignKey: true, Target: target}
}

func attr(name string) Field {
	return Field{Name: name}
}
