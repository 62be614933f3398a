// Package server implements the receiving side of an exchange. It
// accepts exactly one connection, receives the serialized record and
// the text payload in order, recovers the text (envelope split and
// decryption when configured) and writes the result to the console or
// a file.
//
// The server is single-shot: after one exchange Serve returns and the
// listening socket is closed. The record format is not negotiated on
// the wire, so the raw record bytes are passed through unchanged, both
// peers must be configured with the same dictionary_format.
package server
