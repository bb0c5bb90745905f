package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PressureTank/idiomatic/backend/config"
)

func RootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	config.BindEnv(v)

	cmd := &cobra.Command{
		Use:           "idiomatic",
		Short:         "Small examples of idiomatic Go",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String(config.KeyLogLevel, v.GetString(config.KeyLogLevel), "log level (debug, info, warn, error)")
	flags.String(config.KeyStore, v.GetString(config.KeyStore), "user store (memory or sqlite)")
	flags.String(config.KeySQLiteDSN, v.GetString(config.KeySQLiteDSN), "sqlite data source name")
	v.BindPFlags(flags)

	cmd.AddCommand(StyleCmd())
	cmd.AddCommand(WeatherCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(DivideCmd())
	cmd.AddCommand(UsersCmd(v))

	return cmd
}

func InitAndExecute() {
	cmd := RootCmd()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
