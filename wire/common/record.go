package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Value Definition
// --------------------------------------------------------------------------

// Kind identifies the scalar type stored in a Value.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	default:
		return "unknown"
	}
}

// Value is a scalar record value, either a string or an integer.
// The Kind field selects which of the other fields is meaningful.
type Value struct {
	Kind Kind
	Str  string
	Int  int64
}

// String creates a new string Value
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Int creates a new integer Value
func Int(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

// Text returns the textual form of the value. This is the form written
// into formats without native type support (e.g. XML element text).
func (v Value) Text() string {
	if v.Kind == KindInt {
		return strconv.FormatInt(v.Int, 10)
	}
	return v.Str
}

// Equal reports whether two values have the same kind and content
func (v Value) Equal(other Value) bool {
	return v == other
}

// --------------------------------------------------------------------------
// Record Definition
// --------------------------------------------------------------------------

// Record is an ordered mapping from unique string keys to scalar values.
// It is the unit of data serialized and transmitted as the first message
// of an exchange. Insertion order is preserved for encoders that care
// about it; equality does not depend on order.
type Record struct {
	keys   []string
	values map[string]Value
}

// NewRecord creates a new empty Record
func NewRecord() *Record {
	return &Record{
		values: make(map[string]Value),
	}
}

// Set inserts or overwrites the value for the given key. A new key is
// appended to the iteration order, an existing key keeps its position.
func (r *Record) Set(key string, value Value) *Record {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

// Get returns the value for the given key
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the keys in insertion order
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of fields in the record
func (r *Record) Len() int {
	return len(r.keys)
}

// Equal reports whether two records contain the same keys with the same
// values. Key order is ignored.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if len(r.values) != len(other.values) {
		return false
	}
	for key, v := range r.values {
		ov, ok := other.values[key]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the record
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, key := range r.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", key, r.values[key].Text()))
	}
	sb.WriteString("}")
	return sb.String()
}

// --------------------------------------------------------------------------
// Sample Payloads
// --------------------------------------------------------------------------

// SampleText is the text payload sent as the second message of the
// default exchange.
const SampleText = "Hello, this is a sample text file content."

// SampleRecord returns the record sent as the first message of the
// default exchange.
func SampleRecord() *Record {
	return NewRecord().
		Set("name", String("John")).
		Set("age", Int(30)).
		Set("city", String("New York"))
}
