package send

import (
	cmdUtil "github.com/SimonPrato11/client-server-project/cmd/util"
	"github.com/SimonPrato11/client-server-project/wire/client"
	"github.com/SimonPrato11/client-server-project/wire/common"
	"github.com/SimonPrato11/client-server-project/wire/crypt"
	"github.com/SimonPrato11/client-server-project/wire/serializer"
	"github.com/SimonPrato11/client-server-project/wire/transport/tcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	sendCmdConfig = &common.ClientConfig{}
	SendCmd       = &cobra.Command{
		Use:     "send",
		Short:   "Connect to a receiver and send the sample exchange",
		Long:    `Connect to a receiver and send the two-message exchange: the sample record serialized in the configured format, followed by the sample text (encrypted when the configuration says so). Settings come from the JSON configuration file, command line flags and environment variables with the COURIER_<flag> format (e.g. COURIER_ENDPOINT=localhost:12345).`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(cmdUtil.InitConfig)

	// add flags
	cmdUtil.SetupExchangeFlags(SendCmd)
}

// processConfig reads the configuration from the config file, command
// line flags and environment variables and converts them to the client
// configuration. Any failure here aborts before a socket is opened.
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

	sendCmdConfig.Transport = cmdUtil.GetTransportConf()
	sendCmdConfig.Exchange = *exchange
	sendCmdConfig.TimeoutSecond = viper.GetInt("timeout")
	sendCmdConfig.LogLevel = viper.GetString("log-level")

	return nil
}

// run connects to the receiver and performs one exchange
func run(_ *cobra.Command, _ []string) error {
	format, err := serializer.ParseFormat(sendCmdConfig.Exchange.DictionaryFormat)
	if err != nil {
		return err
	}

	s, err := serializer.ForFormat(format)
	if err != nil {
		return err
	}

	c, err := client.NewExchangeClient(
		*sendCmdConfig,
		tcp.NewTCPClientTransport(),
		s,
		crypt.NewXChaCha20Cipher(),
	)
	if err != nil {
		return err
	}
	defer c.Close()

	return c.Send(common.SampleRecord(), common.SampleText)
}
