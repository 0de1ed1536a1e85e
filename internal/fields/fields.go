// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fields holds the editable list of key/value entries the user
// builds before signing.
//
// The list never touches the network. Out-of-range indexes are ignored
// rather than panicking, because indexes only come from the rendered list and
// a stale one must not crash the UI.
package fields

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-dag-signer/models"
)

// List is an ordered, concurrency-safe sequence of [models.FieldEntry].
type List struct {
	mu         sync.RWMutex
	entries    []models.FieldEntry
	predefined []string
}

// New returns a list holding exactly one empty entry. predefined is the set
// of names offered by [List.SelectPredefined].
func New(predefined ...string) *List {
	return &List{
		entries:    []models.FieldEntry{{}},
		predefined: slices.Clone(predefined),
	}
}

// Add appends an empty entry and returns a snapshot of the updated list.
func (l *List) Add() []models.FieldEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, models.FieldEntry{})
	return slices.Clone(l.entries)
}

// RemoveAt deletes entry i; later entries shift down by one.
func (l *List) RemoveAt(i int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.inRange(i) {
		return false
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	return true
}

// SetName sets the name of entry i.
func (l *List) SetName(i int, name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.inRange(i) {
		return false
	}
	l.entries[i].FieldName = name
	return true
}

// SetValue sets the value of entry i.
func (l *List) SetValue(i int, value string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.inRange(i) {
		return false
	}
	l.entries[i].FieldValue = value
	return true
}

// SetField updates the half of entry i selected by key.
func (l *List) SetField(i int, key models.FieldKey, v string) bool {
	switch key {
	case models.FieldKeyName:
		return l.SetName(i, v)
	case models.FieldKeyValue:
		return l.SetValue(i, v)
	default:
		return false
	}
}

// SelectPredefined sets the name of entry i to one of the predefined names.
// Names outside the predefined set are rejected.
func (l *List) SelectPredefined(i int, name string) bool {
	if !slices.Contains(l.predefined, name) {
		return false
	}
	return l.SetName(i, name)
}

// Predefined returns the names offered for quick selection.
func (l *List) Predefined() []string {
	return slices.Clone(l.predefined)
}

// Entries returns a copy of the current entries.
func (l *List) Entries() []models.FieldEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.entries)
}

// Len returns the number of entries.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}

func (l *List) inRange(i int) bool {
	return i >= 0 && i < len(l.entries)
}
