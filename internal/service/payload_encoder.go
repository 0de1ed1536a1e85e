// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/base64"
	"fmt"
	"math"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/MKhiriev/go-dag-signer/internal/config"
	"github.com/MKhiriev/go-dag-signer/models"
)

// PayloadEncoder reduces field entries into a signing payload and encodes
// it for the provider.
type PayloadEncoder struct {
	keyOrder string
	charset  string
}

// NewPayloadEncoder creates an encoder. Unknown modes fall back to
// insertion order and Latin-1.
func NewPayloadEncoder(cfg config.ClientSigning) *PayloadEncoder {
	e := &PayloadEncoder{keyOrder: config.KeyOrderInsertion, charset: config.CharsetLatin1}
	if cfg.KeyOrder == config.KeyOrderSorted {
		e.keyOrder = config.KeyOrderSorted
	}
	if cfg.Charset == config.CharsetUTF8 {
		e.charset = config.CharsetUTF8
	}
	return e
}

// Reduce folds entries in list order into a payload. A repeated name keeps
// the position of its first occurrence and the value of its last one.
//
// In insertion mode the keys follow JavaScript property order: keys that
// are array indexes come first in ascending numeric order, the rest keep
// insertion order. In sorted mode keys are ordered bytewise.
func (e *PayloadEncoder) Reduce(entries []models.FieldEntry) models.SigningPayload {
	payload := models.NewSigningPayload()
	for _, entry := range entries {
		payload.Set(entry.FieldName, entry.FieldValue)
	}

	keys := payload.Keys()
	if e.keyOrder == config.KeyOrderSorted {
		slices.Sort(keys)
	} else {
		keys = propertyOrder(keys)
	}

	return payload.Reordered(keys)
}

// Encode returns base64 of the payload's JSON text.
func (e *PayloadEncoder) Encode(payload models.SigningPayload) (string, error) {
	text := payload.AppendJSON(nil)

	if e.charset == config.CharsetUTF8 {
		return base64.StdEncoding.EncodeToString(text), nil
	}

	raw, err := latin1Bytes(text)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// latin1Bytes maps every code point of text to one byte, the way btoa
// treats a string.
func latin1Bytes(text []byte) ([]byte, error) {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRune(text[i:])
		if r > 0xFF {
			return nil, fmt.Errorf("%w: %q at byte %d", ErrPayloadNotLatin1, r, i)
		}
		out = append(out, byte(r))
		i += size
	}
	return out, nil
}

func propertyOrder(keys []string) []string {
	var indexes []uint64
	byIndex := make(map[uint64]string)
	rest := make([]string, 0, len(keys))

	for _, k := range keys {
		if n, ok := arrayIndex(k); ok {
			indexes = append(indexes, n)
			byIndex[n] = k
			continue
		}
		rest = append(rest, k)
	}

	slices.Sort(indexes)
	out := make([]string, 0, len(keys))
	for _, n := range indexes {
		out = append(out, byIndex[n])
	}
	return append(out, rest...)
}

// arrayIndex reports whether k is the canonical decimal form of an integer
// in [0, 2^32-2].
func arrayIndex(k string) (uint64, bool) {
	n, err := strconv.ParseUint(k, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return 0, false
	}
	if strconv.FormatUint(n, 10) != k {
		return 0, false
	}
	return n, true
}
