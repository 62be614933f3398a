package base

import (
	"fmt"
	"net"
	"time"

	"github.com/SimonPrato11/client-server-project/wire/common"
	"github.com/SimonPrato11/client-server-project/wire/transport"
)

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IServerConnector defines the interface for transport-specific server operations
type IServerConnector interface {
	// Listen creates a listener and returns it
	Listen(config common.ServerConfig) (net.Listener, error)

	// GetName returns the name of the transport type (e.g., "tcp")
	GetName() string

	// UpgradeConnection applies protocol-specific settings to an accepted connection
	UpgradeConnection(conn net.Conn, config common.ServerConfig) error
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// serverTransport implements the core server transport functionality.
// It serves exactly one inbound connection and is then done.
type serverTransport struct {
	connector IServerConnector
	config    common.ServerConfig
	listener  net.Listener
	conn      net.Conn
}

// -----------------------------------------------------------
// Transport Factory Method
// -----------------------------------------------------------

// NewBaseServerTransport creates a new base server transport with the specified connector
func NewBaseServerTransport(connector IServerConnector) transport.IServerTransport {
	return &serverTransport{
		connector: connector,
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IServerTransport)
// --------------------------------------------------------------------------

func (t *serverTransport) Listen(config common.ServerConfig) error {
	t.config = config

	listener, err := t.connector.Listen(config)
	if err != nil {
		return fmt.Errorf("%w: %s via %s: %v", transport.ErrBind, config.Transport.Endpoint, t.connector.GetName(), err)
	}

	t.listener = listener
	Logger.Info().Str("endpoint", listener.Addr().String()).Str("transport", t.connector.GetName()).Msg("listening for incoming connection")
	return nil
}

func (t *serverTransport) Addr() net.Addr {
	if t.listener == nil {
		return nil
	}
	return t.listener.Addr()
}

func (t *serverTransport) Accept() error {
	if t.listener == nil {
		return fmt.Errorf("transport is not listening")
	}

	conn, err := t.listener.Accept()
	if err != nil {
		return fmt.Errorf("accept failed: %v", err)
	}

	// Apply protocol-specific settings
	if err := t.connector.UpgradeConnection(conn, t.config); err != nil {
		conn.Close()
		return fmt.Errorf("failed to upgrade accepted connection: %v", err)
	}

	t.conn = conn
	Logger.Info().Str("peer", conn.RemoteAddr().String()).Msg("accepted connection")
	return nil
}

func (t *serverTransport) Receive() ([]byte, error) {
	if t.conn == nil {
		return nil, fmt.Errorf("no accepted connection")
	}

	// Set read timeout
	if t.config.TimeoutSecond > 0 {
		timeout := time.Duration(t.config.TimeoutSecond) * time.Second
		if err := t.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, fmt.Errorf("failed to set read deadline: %v", err)
		}
	}

	data, err := readFrame(t.conn)
	if err != nil {
		return nil, fmt.Errorf("failed to receive message: %v", err)
	}

	countMessageReceived(t.connector.GetName(), len(data))
	Logger.Debug().Int("bytes", len(data)).Msg("received message")
	return data, nil
}

func (t *serverTransport) Close() error {
	var firstErr error

	if t.conn != nil {
		if err := t.conn.Close(); err != nil {
			firstErr = err
		}
		t.conn = nil
	}

	if t.listener != nil {
		if err := t.listener.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		t.listener = nil
		Logger.Info().Msg("connection closed")
	}

	return firstErr
}
