// Package client implements the sending side of an exchange. It
// composes a serializer, a client transport and the crypto capability
// into the fixed two-message flow: serialized record first, text
// payload (plain or enveloped) second.
//
// The client holds no state beyond its collaborators and the open
// connection; a single Send call performs one complete exchange.
package client
