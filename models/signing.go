// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"unicode/utf8"
)

var errNotAnObject = errors.New("signing payload must be a JSON object")

// SigningPayload is the mapping derived from the field list: the content
// that actually gets signed. Keys keep the order chosen when the payload was
// reduced, and that order is the one written by AppendJSON.
type SigningPayload struct {
	keys   []string
	values map[string]string
}

// NewSigningPayload returns an empty payload.
func NewSigningPayload() SigningPayload {
	return SigningPayload{values: make(map[string]string)}
}

// Set stores value under key. A new key is appended to the key order, an
// existing key keeps its position and takes the new value.
func (p *SigningPayload) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p SigningPayload) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns a copy of the keys in payload order.
func (p SigningPayload) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of distinct keys.
func (p SigningPayload) Len() int {
	return len(p.keys)
}

// Map returns a plain copy of the payload without ordering.
func (p SigningPayload) Map() map[string]string {
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy sharing no memory with p.
func (p SigningPayload) Clone() SigningPayload {
	return SigningPayload{keys: p.Keys(), values: p.Map()}
}

// Reordered returns a copy of p whose key order is keys. keys must be a
// permutation of p.Keys().
func (p SigningPayload) Reordered(keys []string) SigningPayload {
	out := p.Clone()
	out.keys = append(out.keys[:0], keys...)
	return out
}

// AppendJSON appends the compact JSON object text of p to dst. Output is
// byte-compatible with a browser's JSON.stringify for the same key order:
// no HTML escaping and lowercase \u escapes for control characters only.
func (p SigningPayload) AppendJSON(dst []byte) []byte {
	dst = append(dst, '{')
	for i, k := range p.keys {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendJSONString(dst, k)
		dst = append(dst, ':')
		dst = appendJSONString(dst, p.values[k])
	}
	return append(dst, '}')
}

// MarshalJSON implements json.Marshaler preserving key order.
func (p SigningPayload) MarshalJSON() ([]byte, error) {
	return p.AppendJSON(nil), nil
}

// UnmarshalJSON implements json.Unmarshaler preserving the key order of
// the document.
func (p *SigningPayload) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errNotAnObject
	}

	out := NewSigningPayload()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var value string
		if err = dec.Decode(&value); err != nil {
			return err
		}
		out.Set(key, value)
	}

	*p = out
	return nil
}

const hexDigits = "0123456789abcdef"

func appendJSONString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"':
				dst = append(dst, '\\', '"')
			case '\\':
				dst = append(dst, '\\', '\\')
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			default:
				if c < 0x20 {
					dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
				} else {
					dst = append(dst, c)
				}
			}
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = utf8.AppendRune(dst, utf8.RuneError)
		} else {
			dst = append(dst, s[i:i+size]...)
		}
		i += size
	}
	return append(dst, '"')
}

// Proof pairs the signer address with the signature it returned.
type Proof struct {
	SignerID  string `json:"id"`
	Signature string `json:"signature"`
}

// SigningResult is a payload together with its proof. It exists only after a
// successful signature and is cleared when the wallet disconnects.
type SigningResult struct {
	Payload SigningPayload
	Proof   Proof
}

// Clone returns a deep copy of r.
func (r SigningResult) Clone() SigningResult {
	return SigningResult{Payload: r.Payload.Clone(), Proof: r.Proof}
}

// SignedDocument is the display form of a [SigningResult].
type SignedDocument struct {
	Value  SigningPayload `json:"value"`
	Proofs []Proof        `json:"proofs"`
}

// Document converts r to its display form.
func (r SigningResult) Document() SignedDocument {
	return SignedDocument{
		Value:  r.Payload.Clone(),
		Proofs: []Proof{r.Proof},
	}
}

// FormatJSON renders the display form with two-space indentation.
func (r SigningResult) FormatJSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Document()); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
