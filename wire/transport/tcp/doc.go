// Package tcp provides the TCP implementation of the exchange transport
// interfaces. It contains only the medium-specific pieces (dialing,
// listening and socket tuning), the connection lifecycle and framing
// live in the base package.
package tcp
