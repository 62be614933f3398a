package tcp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/SimonPrato11/client-server-project/wire/common"
	"github.com/SimonPrato11/client-server-project/wire/transport"
)

// serverTestConfig returns a server configuration bound to an ephemeral port
func serverTestConfig() common.ServerConfig {
	return common.ServerConfig{
		Transport: common.TransportConf{
			Endpoint: "127.0.0.1:0",
			TCPConf:  common.TCPConf{TCPNoDelay: true},
		},
		TimeoutSecond: 5,
	}
}

// TestTCPExchange tests the ordered two-message flow over a real loopback connection
func TestTCPExchange(t *testing.T) {
	server := NewTCPServerTransport()
	if err := server.Listen(serverTestConfig()); err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	defer server.Close()

	messages := [][]byte{
		[]byte(`{"name":"John","age":30,"city":"New York"}`),
		[]byte("Hello, this is a sample text file content."),
	}

	clientErr := make(chan error, 1)
	go func() {
		client := NewTCPClientTransport()
		config := common.ClientConfig{
			Transport: common.TransportConf{
				Endpoint: server.Addr().String(),
				TCPConf:  common.TCPConf{TCPNoDelay: true},
			},
			TimeoutSecond: 5,
		}

		if err := client.Connect(config); err != nil {
			clientErr <- err
			return
		}
		defer client.Close()

		for _, msg := range messages {
			if err := client.Send(msg); err != nil {
				clientErr <- err
				return
			}
		}
		clientErr <- nil
	}()

	if err := server.Accept(); err != nil {
		t.Fatalf("Failed to accept: %v", err)
	}

	for i, want := range messages {
		got, err := server.Receive()
		if err != nil {
			t.Fatalf("Failed to receive message %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Message %d doesn't match:\nExpected: %s\nGot: %s", i, want, got)
		}
	}

	if err := <-clientErr; err != nil {
		t.Fatalf("Client failed: %v", err)
	}
}

// TestListenOnBusyPort tests that binding an occupied endpoint fails with ErrBind
func TestListenOnBusyPort(t *testing.T) {
	first := NewTCPServerTransport()
	if err := first.Listen(serverTestConfig()); err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	defer first.Close()

	second := NewTCPServerTransport()
	config := serverTestConfig()
	config.Transport.Endpoint = first.Addr().String()

	err := second.Listen(config)
	if !errors.Is(err, transport.ErrBind) {
		t.Errorf("Expected ErrBind for busy port, got %v", err)
	}
}

// TestConnectRefused tests that dialing a closed endpoint fails with ErrConnect
func TestConnectRefused(t *testing.T) {
	// Bind and immediately close to get a port that refuses connections
	probe := NewTCPServerTransport()
	if err := probe.Listen(serverTestConfig()); err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	endpoint := probe.Addr().String()
	probe.Close()

	client := NewTCPClientTransport()
	err := client.Connect(common.ClientConfig{
		Transport: common.TransportConf{Endpoint: endpoint},
	})
	if !errors.Is(err, transport.ErrConnect) {
		t.Errorf("Expected ErrConnect for closed endpoint, got %v", err)
	}
}

// TestCloseIsIdempotent tests that both transports tolerate repeated Close calls
func TestCloseIsIdempotent(t *testing.T) {
	server := NewTCPServerTransport()
	if err := server.Listen(serverTestConfig()); err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	if err := server.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := server.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}

	client := NewTCPClientTransport()
	if err := client.Close(); err != nil {
		t.Errorf("Close of unconnected client failed: %v", err)
	}
}
