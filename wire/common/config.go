package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrConfig marks a fatal configuration failure (missing file, invalid
// content, out-of-range values). No network activity may happen after
// this error is returned.
var ErrConfig = errors.New("invalid configuration")

// --------------------------------------------------------------------------
// Exchange configuration (loaded from the JSON config file)
// --------------------------------------------------------------------------

// Valid values for ExchangeConfig.ServerOutput
const (
	OutputConsole = "console"
	OutputFile    = "file"
)

// ExchangeConfig holds the settings both peers read from the JSON
// configuration file. Sender and receiver must agree on
// DictionaryFormat and EncryptTextFile, the wire protocol does not
// negotiate them.
type ExchangeConfig struct {
	// DictionaryFormat selects the record encoding: binary, json or xml
	DictionaryFormat string `mapstructure:"dictionary_format"`
	// EncryptTextFile enables the key+ciphertext envelope for the text message
	EncryptTextFile bool `mapstructure:"encrypt_text_file"`
	// ServerOutput selects where the receiver writes the exchange: console or file
	ServerOutput string `mapstructure:"server_output"`
	// ServerOutputFile is the target path when ServerOutput is "file"
	ServerOutputFile string `mapstructure:"server_output_file"`
}

// LoadExchangeConfig reads and validates the JSON configuration file at
// the given path. Any failure is wrapped in ErrConfig and is fatal for
// the caller before any socket is opened.
func LoadExchangeConfig(path string) (*ExchangeConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrConfig, path, err)
	}

	config := &ExchangeConfig{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrConfig, path, err)
	}

	// Default to console output if unset
	if config.ServerOutput == "" {
		config.ServerOutput = OutputConsole
	}

	switch config.DictionaryFormat {
	case "binary", "json", "xml":
	default:
		return nil, fmt.Errorf("%w: invalid dictionary_format %q (expected binary, json or xml)", ErrConfig, config.DictionaryFormat)
	}

	switch config.ServerOutput {
	case OutputConsole:
	case OutputFile:
		if config.ServerOutputFile == "" {
			return nil, fmt.Errorf("%w: server_output is %q but server_output_file is unset", ErrConfig, OutputFile)
		}
	default:
		return nil, fmt.Errorf("%w: invalid server_output %q (expected console or file)", ErrConfig, config.ServerOutput)
	}

	return config, nil
}

// --------------------------------------------------------------------------
// Socket configuration structs
// --------------------------------------------------------------------------

// SocketConf holds socket buffer settings shared by all stream transports
type SocketConf struct {
	WriteBufferSize int
	ReadBufferSize  int
}

// TCPConf holds TCP-specific tuning options
type TCPConf struct {
	TCPNoDelay      bool
	TCPKeepAliveSec int
	TCPLingerSec    int
}

// TransportConf holds the endpoint and socket settings for one peer
type TransportConf struct {
	// Endpoint is the address to dial (client) or bind (server), e.g. "localhost:12345"
	Endpoint string
	SocketConf
	TCPConf
}

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds all configuration parameters for the sending peer
type ClientConfig struct {
	Transport TransportConf
	Exchange  ExchangeConfig

	// TimeoutSecond bounds each blocking socket operation, 0 disables deadlines
	TimeoutSecond int

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Client")
	addField("Endpoint", c.Transport.Endpoint)
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))

	addSection("Exchange")
	addField("Dictionary Format", c.Exchange.DictionaryFormat)
	addField("Encrypt Text", fmt.Sprintf("%t", c.Exchange.EncryptTextFile))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}

// --------------------------------------------------------------------------
// Server configuration struct
// --------------------------------------------------------------------------

// ServerConfig holds all configuration parameters for the receiving peer
type ServerConfig struct {
	Transport TransportConf
	Exchange  ExchangeConfig

	// TimeoutSecond bounds each blocking socket operation, 0 disables deadlines
	TimeoutSecond int

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the server configuration
func (c *ServerConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Server")
	addField("Endpoint", c.Transport.Endpoint)
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))

	addSection("Exchange")
	addField("Dictionary Format", c.Exchange.DictionaryFormat)
	addField("Encrypt Text", fmt.Sprintf("%t", c.Exchange.EncryptTextFile))
	addField("Output", c.Exchange.ServerOutput)
	if c.Exchange.ServerOutput == OutputFile {
		addField("Output File", c.Exchange.ServerOutputFile)
	}

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
