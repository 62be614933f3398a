// Package serializer provides record serialization for the exchange
// system. It defines a common interface and multiple implementations for
// converting between Record objects and byte arrays.
//
// The package focuses on:
//   - Providing a consistent interface for the closed set of formats
//   - Failing fast on unknown format values instead of returning nothing
//   - Lossless round trips for the binary and json formats
//
// Key Components:
//
//   - ISerializer: Core interface that all serializer implementations must satisfy.
//
//   - Format: Closed enumeration over binary, json and xml. ParseFormat
//     converts the configuration string form, ForFormat returns the
//     matching implementation. Unknown values yield ErrUnsupportedFormat.
//
//   - binarySerializerImpl: Custom length-prefixed binary format. Compact,
//     fully self-describing and lossless for string and integer scalars.
//
//   - jsonSerializerImpl: UTF-8 JSON object output. Lossless for string
//     and integer scalars; field order is preserved on encode but decoding
//     does not depend on it.
//
//   - xmlSerializerImpl: <dictionary> element output. Lossy by
//     construction: decoding coerces only the tag named "age" to an
//     integer, all other tags decode as strings.
//
// Thread Safety:
//
//	All serializer implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	Serializers are typically created once and reused throughout the application:
//
//	  s, err := serializer.ForFormat(serializer.FormatJSON)
//	  data, err := s.Serialize(record)
//	  // ... send data ...
//	  var received common.Record
//	  err = s.Deserialize(receivedData, &received)
package serializer
