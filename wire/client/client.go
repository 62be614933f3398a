package client

import (
	"fmt"

	"github.com/SimonPrato11/client-server-project/wire/common"
	"github.com/SimonPrato11/client-server-project/wire/crypt"
	"github.com/SimonPrato11/client-server-project/wire/envelope"
	"github.com/SimonPrato11/client-server-project/wire/serializer"
	"github.com/SimonPrato11/client-server-project/wire/transport"
)

var Logger = common.GetLogger("client")

// NewExchangeClient creates a new exchange client and connects it.
// The function takes a config, a transport, a serializer and a cipher
// as parameters. The caller must Close the client on every exit path.
//
// Usage:
//
//	c, err := client.NewExchangeClient(
//		config,
//		tcp.NewTCPClientTransport(),
//		serializer.NewJSONSerializer(),
//		crypt.NewXChaCha20Cipher(),
//	)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	err = c.Send(common.SampleRecord(), common.SampleText)
func NewExchangeClient(
	config common.ClientConfig,
	transport transport.IClientTransport,
	serializer serializer.ISerializer,
	cipher crypt.ICipher,
) (*ExchangeClient, error) {
	if err := transport.Connect(config); err != nil {
		return nil, err
	}

	return &ExchangeClient{
		config:     config,
		transport:  transport,
		serializer: serializer,
		cipher:     cipher,
	}, nil
}

// ExchangeClient produces the two-message exchange: the serialized
// record followed by the text payload, optionally encrypted
type ExchangeClient struct {
	config     common.ClientConfig
	transport  transport.IClientTransport
	serializer serializer.ISerializer
	cipher     crypt.ICipher
}

// Send transmits one complete exchange: the record as message 1, the
// text as message 2. When encryption is configured, message 2 carries
// the envelope of a fresh key and the ciphertext instead of the
// plaintext.
func (c *ExchangeClient) Send(record *common.Record, text string) error {
	// Message 1: the serialized record
	data, err := c.serializer.Serialize(record)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %v", err)
	}
	if err := c.transport.Send(data); err != nil {
		return err
	}
	Logger.Info().Str("record", record.String()).Msg("sent record")

	// Message 2: the text payload
	msg, err := c.textMessage(text)
	if err != nil {
		return err
	}
	if err := c.transport.Send(msg); err != nil {
		return err
	}
	Logger.Info().Bool("encrypted", c.config.Exchange.EncryptTextFile).Msg("sent text")

	return nil
}

// Close closes the underlying connection. Safe to call multiple times.
func (c *ExchangeClient) Close() error {
	return c.transport.Close()
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// textMessage builds the second message: the plain UTF-8 text, or the
// key+ciphertext envelope when encryption is enabled
func (c *ExchangeClient) textMessage(text string) ([]byte, error) {
	if !c.config.Exchange.EncryptTextFile {
		return []byte(text), nil
	}

	key, err := c.cipher.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %v", err)
	}

	ciphertext, err := c.cipher.Encrypt(text, key)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt text: %v", err)
	}

	return envelope.Seal(key, ciphertext)
}
