package serializer

import (
	"errors"
	"testing"

	"github.com/SimonPrato11/client-server-project/wire/common"
)

// losslessSerializers is a map of serializer name to factory function for
// the formats that guarantee full round-trip equality
var losslessSerializers = map[string]func() ISerializer{
	"JSON":   NewJSONSerializer,
	"Binary": NewBinarySerializer,
}

// testRecords creates a set of test records with different shapes
func testRecords() []*common.Record {
	return []*common.Record{
		// Empty record
		common.NewRecord(),

		// The canonical sample record
		common.SampleRecord(),

		// Strings only
		common.NewRecord().
			Set("host", common.String("localhost")).
			Set("role", common.String("sender")),

		// Integers only, including negative and zero
		common.NewRecord().
			Set("count", common.Int(0)).
			Set("offset", common.Int(-42)).
			Set("limit", common.Int(1<<40)),

		// Values that need escaping in text formats
		common.NewRecord().
			Set("quote", common.String(`he said "hi" & left`)).
			Set("angle", common.String("<tag>")).
			Set("empty", common.String("")),
	}
}

// TestSerializerRoundTrip tests that records can be serialized and
// deserialized without loss in the binary and json formats
func TestSerializerRoundTrip(t *testing.T) {
	records := testRecords()

	for name, factory := range losslessSerializers {
		t.Run(name, func(t *testing.T) {
			s := factory()

			for i, record := range records {
				data, err := s.Serialize(record)
				if err != nil {
					t.Errorf("Failed to serialize record %d: %v", i, err)
					continue
				}

				var result common.Record
				if err := s.Deserialize(data, &result); err != nil {
					t.Errorf("Failed to deserialize record %d: %v", i, err)
					continue
				}

				if !record.Equal(&result) {
					t.Errorf("Record %d doesn't match after round trip:\nOriginal: %v\nResult: %v",
						i, record, &result)
				}
			}
		})
	}
}

// TestJSONOutput tests the exact document produced for the sample record
func TestJSONOutput(t *testing.T) {
	s := NewJSONSerializer()

	data, err := s.Serialize(common.SampleRecord())
	if err != nil {
		t.Fatalf("Failed to serialize sample record: %v", err)
	}

	want := `{"name":"John","age":30,"city":"New York"}`
	if string(data) != want {
		t.Errorf("Unexpected json output:\nExpected: %s\nGot: %s", want, data)
	}
}

// TestXMLOutput tests the element structure produced for the sample record
func TestXMLOutput(t *testing.T) {
	s := NewXMLSerializer()

	data, err := s.Serialize(common.SampleRecord())
	if err != nil {
		t.Fatalf("Failed to serialize sample record: %v", err)
	}

	want := `<dictionary><name>John</name><age>30</age><city>New York</city></dictionary>`
	if string(data) != want {
		t.Errorf("Unexpected xml output:\nExpected: %s\nGot: %s", want, data)
	}
}

// TestXMLRoundTripWithCoercion tests that the xml format round-trips the
// sample record under the fixed "age" coercion rule
func TestXMLRoundTripWithCoercion(t *testing.T) {
	s := NewXMLSerializer()
	record := common.SampleRecord()

	data, err := s.Serialize(record)
	if err != nil {
		t.Fatalf("Failed to serialize: %v", err)
	}

	var result common.Record
	if err := s.Deserialize(data, &result); err != nil {
		t.Fatalf("Failed to deserialize: %v", err)
	}

	if !record.Equal(&result) {
		t.Errorf("Sample record doesn't match after xml round trip:\nOriginal: %v\nResult: %v",
			record, &result)
	}
}

// TestXMLLossyIntegers tests that integer values outside the "age" tag
// come back as strings. This is the documented lossy behavior of the xml
// format, not a defect.
func TestXMLLossyIntegers(t *testing.T) {
	s := NewXMLSerializer()
	record := common.NewRecord().
		Set("age", common.Int(30)).
		Set("height", common.Int(180))

	data, err := s.Serialize(record)
	if err != nil {
		t.Fatalf("Failed to serialize: %v", err)
	}

	var result common.Record
	if err := s.Deserialize(data, &result); err != nil {
		t.Fatalf("Failed to deserialize: %v", err)
	}

	age, ok := result.Get("age")
	if !ok || age.Kind != common.KindInt || age.Int != 30 {
		t.Errorf("Expected age to decode as Int(30), got %+v", age)
	}

	height, ok := result.Get("height")
	if !ok || height.Kind != common.KindString || height.Str != "180" {
		t.Errorf("Expected height to decode as String(\"180\"), got %+v", height)
	}
}

// TestDeserializeMalformed tests that truncated or invalid input yields
// an error instead of a partial record
func TestDeserializeMalformed(t *testing.T) {
	cases := map[string]struct {
		serializer ISerializer
		data       []byte
	}{
		"JSONTruncated":   {NewJSONSerializer(), []byte(`{"name":"Jo`)},
		"JSONNotAnObject": {NewJSONSerializer(), []byte(`[1,2,3]`)},
		"JSONFloatValue":  {NewJSONSerializer(), []byte(`{"pi":3.14}`)},
		"BinaryTooShort":  {NewBinarySerializer(), []byte{0, 0}},
		"BinaryTruncated": {NewBinarySerializer(), []byte{0, 0, 0, 2, 0, 0, 0, 0, 4}},
		"XMLWrongRoot":    {NewXMLSerializer(), []byte(`<record><a>1</a></record>`)},
		"XMLBadAge":       {NewXMLSerializer(), []byte(`<dictionary><age>old</age></dictionary>`)},
		"XMLUnterminated": {NewXMLSerializer(), []byte(`<dictionary><a>1</a>`)},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var record common.Record
			if err := tc.serializer.Deserialize(tc.data, &record); err == nil {
				t.Errorf("Expected error for malformed input %q, got none", tc.data)
			}
		})
	}
}

// TestParseFormat tests the closed format enumeration
func TestParseFormat(t *testing.T) {
	valid := map[string]Format{
		"binary": FormatBinary,
		"json":   FormatJSON,
		"xml":    FormatXML,
	}

	for s, want := range valid {
		f, err := ParseFormat(s)
		if err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", s, err)
		}
		if f != want {
			t.Errorf("ParseFormat(%q) = %v, expected %v", s, f, want)
		}
		if f.String() != s {
			t.Errorf("Format(%v).String() = %q, expected %q", f, f.String(), s)
		}
	}

	if _, err := ParseFormat("yaml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ParseFormat(\"yaml\") = %v, expected ErrUnsupportedFormat", err)
	}
}

// TestForFormat tests the serializer factory dispatch
func TestForFormat(t *testing.T) {
	for _, f := range []Format{FormatBinary, FormatJSON, FormatXML} {
		s, err := ForFormat(f)
		if err != nil {
			t.Errorf("ForFormat(%v) failed: %v", f, err)
		}
		if s == nil {
			t.Errorf("ForFormat(%v) returned nil serializer", f)
		}
	}

	if _, err := ForFormat(Format(99)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ForFormat(99) = %v, expected ErrUnsupportedFormat", err)
	}
}
