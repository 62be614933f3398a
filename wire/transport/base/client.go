package base

import (
	"fmt"
	"net"
	"time"

	"github.com/SimonPrato11/client-server-project/wire/common"
	"github.com/SimonPrato11/client-server-project/wire/transport"
)

var Logger = common.GetLogger("transport")

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IClientConnector defines the interface for transport-specific connection operations
type IClientConnector interface {
	// Connect establishes a single connection to the given endpoint
	Connect(endpoint string) (net.Conn, error)

	// GetName returns the name of the transport type (e.g., "tcp")
	GetName() string

	// UpgradeConnection applies protocol-specific settings to an established connection
	UpgradeConnection(conn net.Conn, config common.ClientConfig) error
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// clientTransport implements the core client transport functionality
// independent of the specific transport medium. It owns exactly one
// connection for the lifetime of an exchange.
type clientTransport struct {
	connector IClientConnector
	config    common.ClientConfig
	conn      net.Conn
}

// -----------------------------------------------------------
// Transport Factory Method
// -----------------------------------------------------------

// NewBaseClientTransport creates a new base client transport with the specified connector
func NewBaseClientTransport(connector IClientConnector) transport.IClientTransport {
	return &clientTransport{
		connector: connector,
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IClientTransport)
// --------------------------------------------------------------------------

func (t *clientTransport) Connect(config common.ClientConfig) error {
	if config.Transport.Endpoint == "" {
		return fmt.Errorf("%w: no endpoint provided", transport.ErrConnect)
	}

	t.config = config

	conn, err := t.connector.Connect(config.Transport.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: %s via %s: %v", transport.ErrConnect, config.Transport.Endpoint, t.connector.GetName(), err)
	}

	// Apply protocol-specific settings
	if err := t.connector.UpgradeConnection(conn, config); err != nil {
		conn.Close()
		return fmt.Errorf("%w: failed to upgrade connection to %s: %v", transport.ErrConnect, config.Transport.Endpoint, err)
	}

	t.conn = conn
	Logger.Info().Str("endpoint", config.Transport.Endpoint).Str("transport", t.connector.GetName()).Msg("connected to server")
	return nil
}

func (t *clientTransport) Send(msg []byte) error {
	if t.conn == nil {
		return fmt.Errorf("connection is closed")
	}

	// Set write timeout
	if t.config.TimeoutSecond > 0 {
		timeout := time.Duration(t.config.TimeoutSecond) * time.Second
		if err := t.conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
			return fmt.Errorf("failed to set write deadline: %v", err)
		}
	}

	if err := writeFrame(t.conn, msg); err != nil {
		return fmt.Errorf("failed to send message: %v", err)
	}

	countMessageSent(t.connector.GetName(), len(msg))
	Logger.Debug().Int("bytes", len(msg)).Msg("sent message")
	return nil
}

func (t *clientTransport) Close() error {
	if t.conn == nil {
		return nil
	}

	err := t.conn.Close()
	t.conn = nil
	Logger.Info().Msg("connection closed")
	return err
}
