// Package transport defines the interfaces and abstractions for the
// exchange connection. It provides a common contract that all transport
// implementations must fulfill, keeping the orchestrators
// protocol-agnostic.
//
// The package focuses on:
//   - Defining clear interfaces for the client and server connection roles
//   - Ordered delivery of discrete, length-prefixed messages
//   - Guaranteed, idempotent connection teardown on every exit path
//
// Key Components:
//
//   - IClientTransport: Interface for the sending side, covering the
//     connect, ordered send, close lifecycle.
//
//   - IServerTransport: Interface for the receiving side, covering the
//     bind, single accept, ordered receive, close lifecycle.
//
//   - ErrConnect / ErrBind: Sentinel errors separating dial failures
//     from bind failures, so callers can report them distinctly.
//
// There are no retries and no reconnection: any transport error at any
// point surfaces to the orchestrator and the connection moves to its
// closed state.
package transport
