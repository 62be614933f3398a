package serializer

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/SimonPrato11/client-server-project/wire/common"
)

// NewXMLSerializer creates a new serializer using xml encoding
func NewXMLSerializer() ISerializer {
	return &xmlSerializerImpl{}
}

// xmlSerializerImpl implements the ISerializer interface using xml encoding.
//
// The output is a <dictionary> root element with one child element per
// field, child tag = key, child text = the value's string form. XML
// carries no type information, so decoding applies a fixed coercion
// rule: the tag literally named "age" is parsed as an integer, every
// other tag decodes as a string. This is intentionally lossy, callers
// needing full round-trip fidelity must use the binary or json format.
//
// Record keys must be valid XML element names.
type xmlSerializerImpl struct {
}

// ageTag is the only tag decoded as an integer (fixed coercion rule, not
// a general type inference mechanism)
const ageTag = "age"

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (x xmlSerializerImpl) Serialize(record *common.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<dictionary>")

	for _, key := range record.Keys() {
		value, _ := record.Get(key)

		buf.WriteByte('<')
		buf.WriteString(key)
		buf.WriteByte('>')

		if err := xml.EscapeText(&buf, []byte(value.Text())); err != nil {
			return nil, fmt.Errorf("failed to encode value for key %q: %v", key, err)
		}

		buf.WriteString("</")
		buf.WriteString(key)
		buf.WriteByte('>')
	}

	buf.WriteString("</dictionary>")
	return buf.Bytes(), nil
}

func (x xmlSerializerImpl) Deserialize(b []byte, record *common.Record) error {
	dec := xml.NewDecoder(bytes.NewReader(b))

	// Read the root element
	root, err := nextStartElement(dec)
	if err != nil {
		return fmt.Errorf("failed to decode xml: %v", err)
	}
	if root.Name.Local != "dictionary" {
		return fmt.Errorf("expected <dictionary> root element, got <%s>", root.Name.Local)
	}

	*record = *common.NewRecord()

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return fmt.Errorf("unexpected end of xml document")
		}
		if err != nil {
			return fmt.Errorf("failed to decode xml: %v", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			key := t.Name.Local

			var text string
			if err := dec.DecodeElement(&text, &t); err != nil {
				return fmt.Errorf("failed to decode element <%s>: %v", key, err)
			}

			if key == ageTag {
				i, err := strconv.ParseInt(text, 10, 64)
				if err != nil {
					return fmt.Errorf("element <%s> is not an integer: %v", key, err)
				}
				record.Set(key, common.Int(i))
			} else {
				record.Set(key, common.String(text))
			}
		case xml.EndElement:
			// Closing </dictionary>
			return nil
		}
	}
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// nextStartElement skips tokens until the next start element
func nextStartElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}
