// Package base implements the transport-medium-independent parts of the
// exchange connection: message framing, the single-connection lifecycle
// on both roles and teardown that is safe to run on every exit path.
//
// Concrete transports (e.g. tcp) inject small connector implementations
// (IClientConnector, IServerConnector) that only know how to dial or
// listen on their medium; everything else lives here.
//
// Framing: every message is preceded by a 4 byte big-endian payload
// length and read back with io.ReadFull, so one Send always maps to one
// Receive regardless of how the stream fragments the bytes. Frames above
// maxFrameSize are rejected on both sides.
package base
