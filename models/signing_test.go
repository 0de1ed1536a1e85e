// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigningPayload_SetKeepsFirstPosition(t *testing.T) {
	p := NewSigningPayload()
	p.Set("name", "Alice")
	p.Set("age", "30")
	p.Set("name", "Bob")

	assert.Equal(t, []string{"name", "age"}, p.Keys())
	assert.Equal(t, 2, p.Len())
	v, ok := p.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Bob", v)
}

func TestSigningPayload_ZeroValueSet(t *testing.T) {
	var p SigningPayload
	p.Set("k", "v")

	assert.Equal(t, `{"k":"v"}`, string(p.AppendJSON(nil)))
}

func TestSigningPayload_AppendJSON(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{name: "plain", key: "name", value: "Alice", want: `{"name":"Alice"}`},
		{name: "html is not escaped", key: "tag", value: "<b>&</b>", want: `{"tag":"<b>&</b>"}`},
		{name: "quotes and backslash", key: "q", value: `a"b\c`, want: `{"q":"a\"b\\c"}`},
		{name: "short escapes", key: "ws", value: "\b\f\n\r\t", want: `{"ws":"\b\f\n\r\t"}`},
		{name: "control characters", key: "c", value: "\x01\x1f", want: `{"c":"\u0001\u001f"}`},
		{name: "non ascii kept", key: "city", value: "Zürich", want: `{"city":"Zürich"}`},
		{name: "invalid utf8 replaced", key: "bad", value: "a\xffb", want: "{\"bad\":\"a�b\"}"},
		{name: "empty", key: "", value: "", want: `{"":""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSigningPayload()
			p.Set(tt.key, tt.value)

			assert.Equal(t, tt.want, string(p.AppendJSON(nil)))
		})
	}
}

func TestSigningPayload_EmptyObject(t *testing.T) {
	assert.Equal(t, "{}", string(NewSigningPayload().AppendJSON(nil)))
}

func TestSigningPayload_CloneIsIndependent(t *testing.T) {
	p := NewSigningPayload()
	p.Set("a", "1")

	c := p.Clone()
	c.Set("a", "2")
	c.Set("b", "3")

	v, _ := p.Get("a")
	assert.Equal(t, "1", v)
	assert.Equal(t, []string{"a"}, p.Keys())
}

func TestSigningPayload_Reordered(t *testing.T) {
	p := NewSigningPayload()
	p.Set("b", "2")
	p.Set("a", "1")

	r := p.Reordered([]string{"a", "b"})

	assert.Equal(t, `{"a":"1","b":"2"}`, string(r.AppendJSON(nil)))
	assert.Equal(t, `{"b":"2","a":"1"}`, string(p.AppendJSON(nil)))
}

func TestSigningPayload_UnmarshalJSONKeepsOrder(t *testing.T) {
	var p SigningPayload
	require.NoError(t, json.Unmarshal([]byte(`{"z":"1","a":"2"}`), &p))

	assert.Equal(t, []string{"z", "a"}, p.Keys())
	assert.Equal(t, map[string]string{"z": "1", "a": "2"}, p.Map())
}

func TestSigningPayload_UnmarshalJSONErrors(t *testing.T) {
	var p SigningPayload

	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &p))
}

func TestSigningResult_FormatJSON(t *testing.T) {
	// Arrange
	p := NewSigningPayload()
	p.Set("name", "Alice")
	p.Set("age", "30")
	r := SigningResult{Payload: p, Proof: Proof{SignerID: "DAG1", Signature: "sig"}}

	// Act
	got, err := r.FormatJSON()

	// Assert
	require.NoError(t, err)
	want := `{
  "value": {
    "name": "Alice",
    "age": "30"
  },
  "proofs": [
    {
      "id": "DAG1",
      "signature": "sig"
    }
  ]
}`
	assert.Equal(t, want, got)
}

func TestSigningResult_CloneIsIndependent(t *testing.T) {
	p := NewSigningPayload()
	p.Set("a", "1")
	r := SigningResult{Payload: p, Proof: Proof{SignerID: "DAG1"}}

	c := r.Clone()
	c.Payload.Set("a", "changed")

	v, _ := r.Payload.Get("a")
	assert.Equal(t, "1", v)
}
