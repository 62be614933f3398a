// Package wire provides the complete point-to-point exchange between
// one sending and one receiving peer over a stream connection. It acts
// as the communication layer carrying one serialized record and one
// optionally encrypted text payload per connection.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures and utilities used across the system,
//     including the Record data model, configuration structures, and logging.
//
//   - serializer: Record serialization with multiple format options
//     (Binary, JSON, XML) for converting between Record objects and byte arrays.
//
//   - transport: Network communication abstractions with a pluggable TCP
//     implementation and length-prefixed message framing.
//
//   - crypt: The symmetric encryption capability (key generation,
//     encrypt, decrypt) used for the text message.
//
//   - envelope: The key+ciphertext framing convention for the encrypted
//     text message.
//
//   - client: The sending orchestrator producing the two-message exchange.
//
//   - server: The receiving orchestrator accepting one connection and
//     disposing the exchange to the console or a file.
package wire
