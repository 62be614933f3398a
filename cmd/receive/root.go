package receive

import (
	cmdUtil "github.com/SimonPrato11/client-server-project/cmd/util"
	"github.com/SimonPrato11/client-server-project/wire/common"
	"github.com/SimonPrato11/client-server-project/wire/crypt"
	"github.com/SimonPrato11/client-server-project/wire/server"
	"github.com/SimonPrato11/client-server-project/wire/transport/tcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	receiveCmdConfig = &common.ServerConfig{}
	ReceiveCmd       = &cobra.Command{
		Use:     "receive",
		Short:   "Accept one sender connection and receive the exchange",
		Long:    `Bind the configured endpoint, accept exactly one sender connection and receive the two-message exchange: the serialized record followed by the text payload (decrypted when the configuration says so). The result is written to the console or to the configured output file. Settings come from the JSON configuration file, command line flags and environment variables with the COURIER_<flag> format (e.g. COURIER_ENDPOINT=0.0.0.0:12345).`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(cmdUtil.InitConfig)

	// add flags
	cmdUtil.SetupExchangeFlags(ReceiveCmd)
}

// processConfig reads the configuration from the config file, command
// line flags and environment variables and converts them to the server
// configuration. Any failure here aborts before the endpoint is bound.
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := cmdUtil.BindCommandFlags(cmd); err != nil {
		return err
	}

	if err := common.SetLogLevel(viper.GetString("log-level")); err != nil {
		return err
	}

	// load the shared exchange configuration file
	exchange, err := cmdUtil.LoadExchange()
	if err != nil {
		return err
	}

	receiveCmdConfig.Transport = cmdUtil.GetTransportConf()
	receiveCmdConfig.Exchange = *exchange
	receiveCmdConfig.TimeoutSecond = viper.GetInt("timeout")
	receiveCmdConfig.LogLevel = viper.GetString("log-level")

	return nil
}

// run binds the endpoint and serves the single exchange
func run(_ *cobra.Command, _ []string) error {
	s := server.NewExchangeServer(
		*receiveCmdConfig,
		tcp.NewTCPServerTransport(),
		crypt.NewXChaCha20Cipher(),
	)

	if err := s.Listen(); err != nil {
		return err
	}

	_, err := s.Serve()
	return err
}
