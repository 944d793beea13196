/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"slices"
	"sort"
)

// DeleteSets maps an entity type name to the sorted, unique ids of its
// soft-deleted models. Presence means "deleted locally, not yet confirmed
// removed remotely"; absence does not tell never-deleted from confirmed.
type DeleteSets map[string][]ID

// SoftDelete records id under typeName. It reports whether the id was added.
func (d DeleteSets) SoftDelete(typeName string, id ID) bool {
	ids := d[typeName]
	i, found := slices.BinarySearch(ids, id)
	if found {
		return false
	}
	d[typeName] = slices.Insert(ids, i, id)
	return true
}

// Remove drops id from typeName's bucket, deleting the bucket once empty.
// Removing an absent id is a no-op that reports false.
func (d DeleteSets) Remove(typeName string, id ID) bool {
	ids := d[typeName]
	i, found := slices.BinarySearch(ids, id)
	if !found {
		return false
	}
	ids = slices.Delete(ids, i, i+1)
	if len(ids) == 0 {
		delete(d, typeName)
	} else {
		d[typeName] = ids
	}
	return true
}

// Contains reports whether id is pending deletion under typeName.
func (d DeleteSets) Contains(typeName string, id ID) bool {
	_, found := slices.BinarySearch(d[typeName], id)
	return found
}

// Len returns the total number of pending ids.
func (d DeleteSets) Len() int {
	n := 0
	for _, ids := range d {
		n += len(ids)
	}
	return n
}

// Types returns the bucket names in sorted order.
func (d DeleteSets) Types() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy.
func (d DeleteSets) Clone() DeleteSets {
	c := make(DeleteSets, len(d))
	for name, ids := range d {
		c[name] = slices.Clone(ids)
	}
	return c
}

// Normalize sorts every bucket, drops duplicates and removes empty buckets.
// Documents written by other tools are normalized after decoding.
func (d DeleteSets) Normalize() {
	for name, ids := range d {
		if len(ids) == 0 {
			delete(d, name)
			continue
		}
		slices.Sort(ids)
		d[name] = slices.Compact(ids)
	}
}
