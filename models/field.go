// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldEntry is one user-supplied key/value pair of the signing form.
// Duplicate names are allowed in the list; the payload reduction decides
// which value wins.
type FieldEntry struct {
	// FieldName is the key the value is stored under in the signing payload.
	FieldName string `json:"fieldName"`

	// FieldValue is the value stored under FieldName.
	FieldValue string `json:"fieldValue"`
}

// FieldKey selects which half of a [FieldEntry] an update targets.
type FieldKey int

const (
	// FieldKeyName targets [FieldEntry.FieldName].
	FieldKeyName FieldKey = iota

	// FieldKeyValue targets [FieldEntry.FieldValue].
	FieldKeyValue
)

// String returns the form input name of the key.
func (k FieldKey) String() string {
	switch k {
	case FieldKeyName:
		return "fieldName"
	case FieldKeyValue:
		return "fieldValue"
	default:
		return "unknown"
	}
}
