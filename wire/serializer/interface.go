package serializer

import "github.com/SimonPrato11/client-server-project/wire/common"

// ISerializer is the interface for all record serializers
type ISerializer interface {
	// Serialize serializes a Record into a byte array
	// It returns the serialized byte array and an error if any
	Serialize(record *common.Record) ([]byte, error)
	// Deserialize deserializes a byte array into a Record
	// It takes a byte array and a pointer to a Record as parameters
	// It returns an error if any
	Deserialize(b []byte, record *common.Record) error
}
