package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/SimonPrato11/client-server-project/wire/common"
)

// NewJSONSerializer creates a new serializer using json encoding
func NewJSONSerializer() ISerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the ISerializer interface using json encoding.
// Fields are written in record order; decoding does not depend on order.
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) Serialize(record *common.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range record.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %v", key, err)
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')

		value, _ := record.Get(key)
		switch value.Kind {
		case common.KindInt:
			fmt.Fprintf(&buf, "%d", value.Int)
		case common.KindString:
			valueJSON, err := json.Marshal(value.Str)
			if err != nil {
				return nil, fmt.Errorf("failed to encode value for key %q: %v", key, err)
			}
			buf.Write(valueJSON)
		default:
			return nil, fmt.Errorf("unsupported value kind %s for key %q", value.Kind, key)
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (j jsonSerializerImpl) Deserialize(b []byte, record *common.Record) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode json: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected json object, got %v", tok)
	}

	*record = *common.NewRecord()

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode json key: %v", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", keyTok)
		}

		valueTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode json value for key %q: %v", key, err)
		}

		switch v := valueTok.(type) {
		case string:
			record.Set(key, common.String(v))
		case json.Number:
			i, err := v.Int64()
			if err != nil {
				return fmt.Errorf("non-integer number for key %q: %v", key, err)
			}
			record.Set(key, common.Int(i))
		default:
			return fmt.Errorf("unsupported json value %v for key %q", valueTok, key)
		}
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to decode json: %v", err)
	}

	return nil
}
