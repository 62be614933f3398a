package serializer

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for format values outside the closed
// enumeration. Unknown formats fail at parse time, before any socket is
// opened.
var ErrUnsupportedFormat = errors.New("unsupported serialization format")

// --------------------------------------------------------------------------
// Format Definition
// --------------------------------------------------------------------------

// Format selects the encoding strategy applied to a Record
type Format uint8

const (
	FormatBinary Format = iota
	FormatJSON
	FormatXML
)

// String returns the string representation of a Format
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ParseFormat converts the configuration string form into a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "binary":
		return FormatBinary, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected binary, json or xml)", ErrUnsupportedFormat, s)
	}
}

// --------------------------------------------------------------------------
// Serializer Factory
// --------------------------------------------------------------------------

// ForFormat returns the serializer implementing the given format
func ForFormat(f Format) (ISerializer, error) {
	switch f {
	case FormatBinary:
		return NewBinarySerializer(), nil
	case FormatJSON:
		return NewJSONSerializer(), nil
	case FormatXML:
		return NewXMLSerializer(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, f)
	}
}
