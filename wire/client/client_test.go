package client

import (
	"testing"

	"github.com/SimonPrato11/client-server-project/wire/common"
	"github.com/SimonPrato11/client-server-project/wire/crypt"
	"github.com/SimonPrato11/client-server-project/wire/envelope"
	"github.com/SimonPrato11/client-server-project/wire/serializer"
)

// captureTransport records sent messages instead of writing to a socket
type captureTransport struct {
	connected bool
	closed    bool
	messages  [][]byte
}

func (t *captureTransport) Connect(config common.ClientConfig) error {
	t.connected = true
	return nil
}

func (t *captureTransport) Send(msg []byte) error {
	t.messages = append(t.messages, msg)
	return nil
}

func (t *captureTransport) Close() error {
	t.closed = true
	return nil
}

// TestSendPlaintext tests the two-message flow without encryption
func TestSendPlaintext(t *testing.T) {
	capture := &captureTransport{}
	config := common.ClientConfig{
		Exchange: common.ExchangeConfig{DictionaryFormat: "json"},
	}

	c, err := NewExchangeClient(config, capture, serializer.NewJSONSerializer(), crypt.NewXChaCha20Cipher())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	if !capture.connected {
		t.Fatal("Expected transport to be connected")
	}

	if err := c.Send(common.SampleRecord(), common.SampleText); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(capture.messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(capture.messages))
	}

	wantRecord := `{"name":"John","age":30,"city":"New York"}`
	if string(capture.messages[0]) != wantRecord {
		t.Errorf("Message 1 doesn't match:\nExpected: %s\nGot: %s", wantRecord, capture.messages[0])
	}
	if string(capture.messages[1]) != common.SampleText {
		t.Errorf("Message 2 doesn't match:\nExpected: %s\nGot: %s", common.SampleText, capture.messages[1])
	}

	if err := c.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if !capture.closed {
		t.Error("Expected transport to be closed")
	}
}

// TestSendEncrypted tests that message 2 carries a well-formed envelope
// that decrypts back to the original text
func TestSendEncrypted(t *testing.T) {
	capture := &captureTransport{}
	cipher := crypt.NewXChaCha20Cipher()
	config := common.ClientConfig{
		Exchange: common.ExchangeConfig{DictionaryFormat: "json", EncryptTextFile: true},
	}

	c, err := NewExchangeClient(config, capture, serializer.NewJSONSerializer(), cipher)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if err := c.Send(common.SampleRecord(), common.SampleText); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(capture.messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(capture.messages))
	}

	key, ciphertext, err := envelope.Open(capture.messages[1])
	if err != nil {
		t.Fatalf("Message 2 is not a valid envelope: %v", err)
	}

	text, err := cipher.Decrypt(ciphertext, key)
	if err != nil {
		t.Fatalf("Failed to decrypt message 2: %v", err)
	}
	if text != common.SampleText {
		t.Errorf("Decrypted text doesn't match:\nExpected: %s\nGot: %s", common.SampleText, text)
	}
}
