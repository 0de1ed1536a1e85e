// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dag-signer/internal/config"
	"github.com/MKhiriev/go-dag-signer/models"
)

func entries(pairs ...string) []models.FieldEntry {
	out := make([]models.FieldEntry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.FieldEntry{FieldName: pairs[i], FieldValue: pairs[i+1]})
	}
	return out
}

func defaultEncoder() *PayloadEncoder {
	return NewPayloadEncoder(config.ClientSigning{KeyOrder: config.KeyOrderInsertion, Charset: config.CharsetLatin1})
}

// ── Reduce ───────────────────────────────────────────────────────────────────

func TestReduce_LastWriteWins(t *testing.T) {
	payload := defaultEncoder().Reduce(entries("k", "1", "k", "2"))

	require.Equal(t, 1, payload.Len())
	v, ok := payload.Get("k")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestReduce_DuplicateKeepsFirstPosition(t *testing.T) {
	payload := defaultEncoder().Reduce(entries("a", "1", "b", "2", "a", "3"))

	assert.Equal(t, []string{"a", "b"}, payload.Keys())
	assert.Equal(t, map[string]string{"a": "3", "b": "2"}, payload.Map())
}

func TestReduce_InsertionModeFollowsPropertyOrder(t *testing.T) {
	payload := defaultEncoder().Reduce(entries("name", "x", "10", "c", "01", "d", "2", "b", "4294967295", "e"))

	assert.Equal(t, []string{"2", "10", "name", "01", "4294967295"}, payload.Keys())
}

func TestReduce_SortedMode(t *testing.T) {
	enc := NewPayloadEncoder(config.ClientSigning{KeyOrder: config.KeyOrderSorted})

	payload := enc.Reduce(entries("name", "Alice", "age", "30", "Zed", "z"))

	assert.Equal(t, []string{"Zed", "age", "name"}, payload.Keys())
}

func TestReduce_SortedModeIsOrderInsensitive(t *testing.T) {
	enc := NewPayloadEncoder(config.ClientSigning{KeyOrder: config.KeyOrderSorted})

	a, err := enc.Encode(enc.Reduce(entries("name", "Alice", "age", "30")))
	require.NoError(t, err)
	b, err := enc.Encode(enc.Reduce(entries("age", "30", "name", "Alice")))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestReduce_EmptyList(t *testing.T) {
	payload := defaultEncoder().Reduce(nil)

	assert.Zero(t, payload.Len())
}

// ── Encode ───────────────────────────────────────────────────────────────────

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		signing config.ClientSigning
		fields  []models.FieldEntry
		want    string
		wantErr error
	}{
		{
			name:   "scenario payload",
			fields: entries("name", "Alice", "age", "30"),
			want:   "eyJuYW1lIjoiQWxpY2UiLCJhZ2UiOiIzMCJ9",
		},
		{
			name:   "duplicate names",
			fields: entries("k", "1", "k", "2"),
			want:   "eyJrIjoiMiJ9",
		},
		{
			name:   "array index keys first",
			fields: entries("name", "x", "10", "c", "01", "d", "2", "b"),
			want:   "eyIyIjoiYiIsIjEwIjoiYyIsIm5hbWUiOiJ4IiwiMDEiOiJkIn0=",
		},
		{
			name: "empty list",
			want: "e30=",
		},
		{
			name:   "empty name and value",
			fields: entries("", ""),
			want:   "eyIiOiIifQ==",
		},
		{
			name:   "no html escaping",
			fields: entries("<a>", "&"),
			want:   "eyI8YT4iOiImIn0=",
		},
		{
			name:   "control characters",
			fields: entries("q", "\"\\\n\x01"),
			want:   "eyJxIjoiXCJcXFxuXHUwMDAxIn0=",
		},
		{
			name:   "latin1 accents",
			fields: entries("café", "é"),
			want:   "eyJjYWbpIjoi6SJ9",
		},
		{
			name:    "latin1 rejects emoji",
			fields:  entries("emoji", "😀"),
			wantErr: ErrPayloadNotLatin1,
		},
		{
			name:    "utf8 accents",
			signing: config.ClientSigning{Charset: config.CharsetUTF8},
			fields:  entries("café", "é"),
			want:    "eyJjYWbDqSI6IsOpIn0=",
		},
		{
			name:    "utf8 emoji",
			signing: config.ClientSigning{Charset: config.CharsetUTF8},
			fields:  entries("emoji", "😀"),
			want:    "eyJlbW9qaSI6IvCfmIAifQ==",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			enc := NewPayloadEncoder(tt.signing)

			// Act
			got, err := enc.Encode(enc.Reduce(tt.fields))

			// Assert
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPayloadEncoder_UnknownModesFallBack(t *testing.T) {
	enc := NewPayloadEncoder(config.ClientSigning{KeyOrder: "random", Charset: "ascii"})

	assert.Equal(t, config.KeyOrderInsertion, enc.keyOrder)
	assert.Equal(t, config.CharsetLatin1, enc.charset)
}

func TestArrayIndex(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"0", true},
		{"42", true},
		{"4294967294", true},
		{"4294967295", false},
		{"01", false},
		{"-1", false},
		{"+1", false},
		{"1.5", false},
		{"", false},
		{"abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, ok := arrayIndex(tt.key)
			assert.Equal(t, tt.want, ok)
		})
	}
}
