// Package common provides core data structures and utilities shared across
// the exchange system. It defines the record data model, configuration
// structures and the logging setup used by all other packages.
//
// The package focuses on:
//   - The Record data model transmitted as the first message of an exchange
//   - Configuration structures for the sending and receiving peers
//   - Loading and validating the shared JSON configuration file
//   - Named zerolog loggers with a single console writer
//
// Key Components:
//
//   - Record: Ordered mapping from unique string keys to scalar values
//     (strings and integers). Preserves insertion order for encoders that
//     care about it; equality is order-insensitive.
//
//   - Value: Tagged scalar union carried by a Record, either a string or
//     an integer, with a common textual form for lossy encodings.
//
//   - ExchangeConfig: The settings both peers read from the JSON
//     configuration file (record format, text encryption, receiver output).
//     Both ends must agree on format and encryption, the wire protocol
//     does not negotiate them.
//
//   - ClientConfig / ServerConfig: Full per-peer configuration including
//     endpoint, socket tuning, timeouts and log level.
package common
