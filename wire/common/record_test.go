package common

import (
	"reflect"
	"testing"
)

// TestRecordSetGet tests basic field insertion and lookup
func TestRecordSetGet(t *testing.T) {
	r := NewRecord().
		Set("name", String("John")).
		Set("age", Int(30))

	v, ok := r.Get("name")
	if !ok {
		t.Fatal("Expected key 'name' to exist")
	}
	if !v.Equal(String("John")) {
		t.Errorf("Expected String(John), got %+v", v)
	}

	v, ok = r.Get("age")
	if !ok {
		t.Fatal("Expected key 'age' to exist")
	}
	if !v.Equal(Int(30)) {
		t.Errorf("Expected Int(30), got %+v", v)
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Expected key 'missing' to be absent")
	}

	if r.Len() != 2 {
		t.Errorf("Expected length 2, got %d", r.Len())
	}
}

// TestRecordKeyOrder tests that insertion order is preserved and that
// overwriting a key keeps its original position
func TestRecordKeyOrder(t *testing.T) {
	r := NewRecord().
		Set("name", String("John")).
		Set("age", Int(30)).
		Set("city", String("New York"))

	want := []string{"name", "age", "city"}
	if got := r.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected keys %v, got %v", want, got)
	}

	// Overwrite must not move the key or grow the record
	r.Set("age", Int(31))
	if got := r.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected keys %v after overwrite, got %v", want, got)
	}
	if r.Len() != 3 {
		t.Errorf("Expected length 3 after overwrite, got %d", r.Len())
	}
	if v, _ := r.Get("age"); !v.Equal(Int(31)) {
		t.Errorf("Expected Int(31) after overwrite, got %+v", v)
	}
}

// TestRecordEqual tests that equality ignores key order but not values
func TestRecordEqual(t *testing.T) {
	a := NewRecord().
		Set("name", String("John")).
		Set("age", Int(30))
	b := NewRecord().
		Set("age", Int(30)).
		Set("name", String("John"))

	if !a.Equal(b) {
		t.Error("Expected records with same fields in different order to be equal")
	}

	// Different value
	c := NewRecord().
		Set("name", String("John")).
		Set("age", Int(31))
	if a.Equal(c) {
		t.Error("Expected records with different values to differ")
	}

	// Same kind boundary: Int(30) vs String("30")
	d := NewRecord().
		Set("name", String("John")).
		Set("age", String("30"))
	if a.Equal(d) {
		t.Error("Expected Int(30) and String(30) fields to differ")
	}

	// Different key set
	e := NewRecord().Set("name", String("John"))
	if a.Equal(e) {
		t.Error("Expected records with different key sets to differ")
	}
}

// TestValueText tests the textual form used by string-only encodings
func TestValueText(t *testing.T) {
	if got := String("New York").Text(); got != "New York" {
		t.Errorf("Expected 'New York', got %q", got)
	}
	if got := Int(30).Text(); got != "30" {
		t.Errorf("Expected '30', got %q", got)
	}
	if got := Int(-7).Text(); got != "-7" {
		t.Errorf("Expected '-7', got %q", got)
	}
}

// TestSampleRecord tests the default exchange payload
func TestSampleRecord(t *testing.T) {
	r := SampleRecord()

	want := []string{"name", "age", "city"}
	if got := r.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected keys %v, got %v", want, got)
	}

	if got := r.String(); got != "{name: John, age: 30, city: New York}" {
		t.Errorf("Unexpected sample record rendering: %s", got)
	}
}
