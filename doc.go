/*
Package relstore is a small object-relational layer over a flat key-value
store. It keeps interrelated entities (hosts, groups, ssh configs, identities,
keys, tags) as JSON records, resolves foreign keys on the way in and out, and
tracks deletions in a soft-delete ledger until a remote service confirms them.

Every operation runs through a strategy chosen from the Storage options:

  - Save: base (related models must have ids) or cascading (related models
    are saved first)
  - Get: base (foreign keys stay ids) or hydrating (ids become entities)
  - Delete: immediate (record removed) or soft (id recorded in the ledger,
    record kept until ConfirmDelete)

Basic Usage:

	store, _ := file.Open("store.yaml")
	storage := relstore.New(store, relstore.WithSoftDelete(true))

	group, _ := storage.Save(ctx, &models.Group{Label: "prod"})
	host, _ := storage.With(relstore.WithCascade(true)).Save(ctx, &models.Host{
	    Address: "example.com",
	    Group:   models.RelModel(group),
	})

	_ = storage.Delete(ctx, host)
	pending, _ := storage.DeleteSets(ctx)   // {"Host": [1]}
	_ = storage.ConfirmDelete(ctx, pending) // purges the record

Records live under "<Type>/<id>", with a per-type id sequence and index next
to them. The ledger lives under strategy.DefaultLedgerKey unless WithLedgerKey
says otherwise.

Storage does no locking; the ledger update is a read-modify-write and assumes
a single writer per store.
*/
package relstore
