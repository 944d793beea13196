/*
Package models defines the entities relstore persists and the metadata the
persistence strategies work from.

Every entity implements Model: a type name, an ID (zero until saved), a field
metadata map marking foreign keys and their target type, pointer access to
each foreign-key field, and Copy.

A foreign-key field holds a Relation, which is exactly one of:

	models.Relation{}              // null
	models.RelID(7)                // resolved identifier
	models.RelModel(&models.Group{...}) // related instance, saved or not

Only identifiers are ever encoded; a Relation holding a model encodes as that
model's id and fails if the model is unsaved.

DeleteSets is the soft-delete ledger document: entity type name to the sorted
ids pending remote confirmation.
*/
package models
