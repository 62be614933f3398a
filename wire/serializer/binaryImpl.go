package serializer

import (
	"encoding/binary"
	"fmt"

	"github.com/SimonPrato11/client-server-project/wire/common"
)

// NewBinarySerializer creates a new serializer using a custom binary format
// optimized for speed and efficiency
func NewBinarySerializer() ISerializer {
	return &binarySerializerImpl{}
}

// binarySerializerImpl implements ISerializer using a custom binary format.
//
// Layout: a 4 byte big-endian field count, then per field a kind byte,
// a length-prefixed key and the value (length-prefixed string bytes or
// an 8 byte big-endian integer). Lossless for string and integer scalars.
type binarySerializerImpl struct {
}

// Value kind markers on the wire
const (
	binKindString byte = 0
	binKindInt    byte = 1
)

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (s binarySerializerImpl) Serialize(record *common.Record) ([]byte, error) {
	keys := record.Keys()

	// Calculate total size needed
	totalSize := s.sizeBytes(record)
	result := make([]byte, totalSize)

	// Write field count
	binary.BigEndian.PutUint32(result[0:4], uint32(len(keys)))
	pos := 4

	for _, key := range keys {
		value, _ := record.Get(key)

		// Write kind byte
		switch value.Kind {
		case common.KindString:
			result[pos] = binKindString
		case common.KindInt:
			result[pos] = binKindInt
		default:
			return nil, fmt.Errorf("unsupported value kind %s for key %q", value.Kind, key)
		}
		pos++

		// Write key length and key data
		keyBytes := []byte(key)
		binary.BigEndian.PutUint32(result[pos:pos+4], uint32(len(keyBytes)))
		pos += 4
		copy(result[pos:pos+len(keyBytes)], keyBytes)
		pos += len(keyBytes)

		// Write value
		switch value.Kind {
		case common.KindString:
			strBytes := []byte(value.Str)
			binary.BigEndian.PutUint32(result[pos:pos+4], uint32(len(strBytes)))
			pos += 4
			copy(result[pos:pos+len(strBytes)], strBytes)
			pos += len(strBytes)
		case common.KindInt:
			binary.BigEndian.PutUint64(result[pos:pos+8], uint64(value.Int))
			pos += 8
		}
	}

	return result, nil
}

func (s binarySerializerImpl) Deserialize(data []byte, record *common.Record) error {
	// Check minimum size (field count)
	if len(data) < 4 {
		return fmt.Errorf("data too short for record header")
	}

	count := binary.BigEndian.Uint32(data[0:4])
	pos := 4

	*record = *common.NewRecord()

	for i := uint32(0); i < count; i++ {
		// Read kind byte
		if pos+1 > len(data) {
			return fmt.Errorf("data too short for field %d kind", i)
		}
		kind := data[pos]
		pos++

		// Read key
		if pos+4 > len(data) {
			return fmt.Errorf("data too short for field %d key length", i)
		}
		keyLen := binary.BigEndian.Uint32(data[pos : pos+4])
		pos += 4

		if pos+int(keyLen) > len(data) {
			return fmt.Errorf("data too short for field %d key data", i)
		}
		key := string(data[pos : pos+int(keyLen)])
		pos += int(keyLen)

		// Read value
		switch kind {
		case binKindString:
			if pos+4 > len(data) {
				return fmt.Errorf("data too short for field %q value length", key)
			}
			strLen := binary.BigEndian.Uint32(data[pos : pos+4])
			pos += 4

			if pos+int(strLen) > len(data) {
				return fmt.Errorf("data too short for field %q value data", key)
			}
			record.Set(key, common.String(string(data[pos:pos+int(strLen)])))
			pos += int(strLen)
		case binKindInt:
			if pos+8 > len(data) {
				return fmt.Errorf("data too short for field %q integer value", key)
			}
			record.Set(key, common.Int(int64(binary.BigEndian.Uint64(data[pos:pos+8]))))
			pos += 8
		default:
			return fmt.Errorf("unknown value kind %d for field %q", kind, key)
		}
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// sizeBytes calculates the total size needed for serialization
func (s binarySerializerImpl) sizeBytes(record *common.Record) int {
	// 4 bytes for field count
	size := 4

	for _, key := range record.Keys() {
		value, _ := record.Get(key)

		// 1 byte kind + 4 bytes key length + key bytes
		size += 1 + 4 + len(key)

		switch value.Kind {
		case common.KindString:
			size += 4 + len(value.Str) // 4 bytes for length + string bytes
		case common.KindInt:
			size += 8 // uint64
		}
	}

	return size
}
