/*
Package strategy implements the persistence pipeline every model flows
through on its way into and out of the key-value store.

Save strategies turn foreign-key fields into plain ids on a copy of the
model; the input is never mutated:

	BaseSave{}                 // related models must already have ids
	NewCascadingSave(storage)  // saves related models first

Get strategies post-process a loaded record:

	BaseGet{}                  // ids stay ids
	NewHydratingGet(storage)   // ids are replaced by the loaded entities

Delete strategies decide what deletion means:

	ImmediateDelete{}                       // storage removes the record now
	NewSoftDelete(store, DefaultLedgerKey)  // record kept, id added to the ledger

The soft-delete ledger is a DeleteSets document under a reserved key. A
missing key reads as an empty ledger. ConfirmDelete removes ids a remote
system has acknowledged; unknown ids are ignored.

Strategies hold no state besides their collaborators and can be built per call
or reused. A related model without an id handed to BaseSave fails with an
errors.PreconditionError; every storage failure other than the missing ledger
key is returned as is.
*/
package strategy
