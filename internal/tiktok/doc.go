package tiktok

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
)

// Doc is a loosely-typed upstream JSON value: map[string]any, []any,
// string, json.Number, bool or nil. Upstream shapes differ per endpoint
// and only a few fields are read, so nothing is decoded into structs.
type Doc = any

// decodeDoc parses data keeping numbers as json.Number so 64-bit ids and
// counters survive untouched.
func decodeDoc(data []byte) (Doc, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var d Doc
	if err := dec.Decode(&d); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	return d, nil
}

// Get walks path through d. String elements index objects, int elements
// index arrays. Any missing or mistyped step yields nil.
func Get(d Doc, path ...any) Doc {
	for _, p := range path {
		switch k := p.(type) {
		case string:
			m, ok := d.(map[string]any)
			if !ok {
				return nil
			}
			d = m[k]
		case int:
			s, ok := d.([]any)
			if !ok || k < 0 || k >= len(s) {
				return nil
			}
			d = s[k]
		default:
			return nil
		}
	}
	return d
}

// Has reports whether d is an object holding a non-null key.
func Has(d Doc, key string) bool {
	m, ok := d.(map[string]any)
	if !ok {
		return false
	}
	v, ok := m[key]
	return ok && v != nil
}

// List returns the array at path, or nil.
func List(d Doc, path ...any) []Doc {
	s, _ := Get(d, path...).([]any)
	return s
}

// String returns the string at path. Numbers are rendered as their
// literal text since ids arrive either way.
func String(d Doc, path ...any) *string {
	switch v := Get(d, path...).(type) {
	case string:
		return &v
	case json.Number:
		s := v.String()
		return &s
	}
	return nil
}

// Int returns the integer at path. Numeric strings are accepted.
func Int(d Doc, path ...any) *int64 {
	switch v := Get(d, path...).(type) {
	case json.Number:
		return parseInt(v.String())
	case string:
		return parseInt(v)
	case float64:
		n := int64(v)
		return &n
	case int:
		n := int64(v)
		return &n
	case int64:
		return &v
	}
	return nil
}

func parseInt(s string) *int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n := int64(f)
		return &n
	}
	return nil
}

// Bool returns the boolean at path. Numbers map to n != 0.
func Bool(d Doc, path ...any) *bool {
	switch v := Get(d, path...).(type) {
	case bool:
		return &v
	case json.Number:
		if n := parseInt(v.String()); n != nil {
			b := *n != 0
			return &b
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
