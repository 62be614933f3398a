package server

import (
	"fmt"
	"net"
	"os"

	"github.com/SimonPrato11/client-server-project/wire/common"
	"github.com/SimonPrato11/client-server-project/wire/crypt"
	"github.com/SimonPrato11/client-server-project/wire/envelope"
	"github.com/SimonPrato11/client-server-project/wire/transport"
)

var Logger = common.GetLogger("server")

// Exchange is the result of one served connection: the raw record bytes
// as transmitted (the record format is not negotiated on the wire, so
// the server does not re-deserialize them) and the recovered text.
type Exchange struct {
	RecordBytes []byte
	Text        string
}

// NewExchangeServer creates a new exchange server.
// It takes a config, a server transport and a cipher as parameters.
//
// Usage:
//
//	s := server.NewExchangeServer(
//		config,
//		tcp.NewTCPServerTransport(),
//		crypt.NewXChaCha20Cipher(),
//	)
//
//	if err := s.Listen(); err != nil {
//		return err
//	}
//	exchange, err := s.Serve()
func NewExchangeServer(
	config common.ServerConfig,
	transport transport.IServerTransport,
	cipher crypt.ICipher,
) *ExchangeServer {
	return &ExchangeServer{
		config:    config,
		transport: transport,
		cipher:    cipher,
	}
}

// ExchangeServer accepts exactly one connection, receives the
// two-message exchange and disposes it to the configured output
type ExchangeServer struct {
	config    common.ServerConfig
	transport transport.IServerTransport
	cipher    crypt.ICipher
}

// Listen binds the listening socket. Fails with transport.ErrBind
// before any connection is accepted when the endpoint is unavailable.
func (s *ExchangeServer) Listen() error {
	return s.transport.Listen(s.config)
}

// Addr returns the bound listener address. Only valid after Listen.
func (s *ExchangeServer) Addr() net.Addr {
	return s.transport.Addr()
}

// Close releases the connection and the listening socket. Serve already
// closes on every exit path, Close covers servers that never get to
// Serve. Safe to call multiple times.
func (s *ExchangeServer) Close() error {
	return s.transport.Close()
}

// Serve handles the single exchange: accept one connection, receive the
// record message and the text message in order, recover the text
// (splitting and decrypting the envelope when encryption is
// configured), write the result to the configured output and close the
// connection. The connection and the listener are closed on every exit
// path.
func (s *ExchangeServer) Serve() (*Exchange, error) {
	defer s.transport.Close()

	if err := s.transport.Accept(); err != nil {
		return nil, err
	}

	// Message 1: the serialized record
	recordBytes, err := s.transport.Receive()
	if err != nil {
		return nil, fmt.Errorf("failed to receive record: %v", err)
	}
	Logger.Info().Int("bytes", len(recordBytes)).Str("format", s.config.Exchange.DictionaryFormat).Msg("received record")

	// Message 2: the text payload
	textBytes, err := s.transport.Receive()
	if err != nil {
		return nil, fmt.Errorf("failed to receive text: %v", err)
	}

	text, err := s.recoverText(textBytes)
	if err != nil {
		return nil, err
	}
	Logger.Info().Bool("encrypted", s.config.Exchange.EncryptTextFile).Msg("received text")

	exchange := &Exchange{
		RecordBytes: recordBytes,
		Text:        text,
	}

	if err := s.writeOutput(exchange); err != nil {
		return exchange, err
	}

	return exchange, nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// recoverText interprets the second message: envelope split and
// decryption when encryption is configured, plain UTF-8 otherwise
func (s *ExchangeServer) recoverText(textBytes []byte) (string, error) {
	if !s.config.Exchange.EncryptTextFile {
		return string(textBytes), nil
	}

	key, ciphertext, err := envelope.Open(textBytes)
	if err != nil {
		return "", err
	}

	text, err := s.cipher.Decrypt(ciphertext, key)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt text: %v", err)
	}

	return text, nil
}

// writeOutput disposes the exchange per the server_output configuration
func (s *ExchangeServer) writeOutput(exchange *Exchange) error {
	if s.config.Exchange.ServerOutput == common.OutputFile {
		content := make([]byte, 0, len(exchange.RecordBytes)+1+len(exchange.Text))
		content = append(content, exchange.RecordBytes...)
		content = append(content, '\n')
		content = append(content, exchange.Text...)

		if err := os.WriteFile(s.config.Exchange.ServerOutputFile, content, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %v", err)
		}

		Logger.Info().Str("file", s.config.Exchange.ServerOutputFile).Msg("wrote exchange to file")
		return nil
	}

	// Console output
	fmt.Printf("Received dictionary: %s\n", exchange.RecordBytes)
	fmt.Printf("Received text: %s\n", exchange.Text)
	return nil
}
