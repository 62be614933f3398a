package transport

import (
	"errors"
	"net"

	"github.com/SimonPrato11/client-server-project/wire/common"
)

// ErrConnect marks a failed outbound connection attempt (refused,
// timeout, resolution failure)
var ErrConnect = errors.New("connect failed")

// ErrBind marks a failed bind or listen on the server endpoint, e.g.
// because the port is already in use
var ErrBind = errors.New("bind failed")

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IClientTransport is the interface for the sending side of one
// exchange connection. Messages are framed and delivered in call order.
type IClientTransport interface {
	// Connect establishes the connection with the given configuration
	Connect(config common.ClientConfig) error
	// Send writes one complete framed message to the connection
	Send(msg []byte) error
	// Close closes the connection. It is idempotent and must run on
	// every exit path.
	Close() error
}

// --------------------------------------------------------------------------
// Server Transport
// --------------------------------------------------------------------------

// IServerTransport is the interface for the receiving side of one
// exchange connection. The lifecycle is Listen, Accept (exactly one
// inbound connection), a fixed number of Receive calls, Close.
type IServerTransport interface {
	// Listen binds the listening socket. Fails with ErrBind if the
	// endpoint is unavailable.
	Listen(config common.ServerConfig) error
	// Addr returns the bound listener address. Only valid after Listen.
	Addr() net.Addr
	// Accept waits for the single inbound connection
	Accept() error
	// Receive reads the next framed message from the accepted connection
	Receive() ([]byte, error)
	// Close closes the accepted connection and the listening socket. It
	// is idempotent and must run on every exit path.
	Close() error
}
