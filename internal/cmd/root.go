package cmd

import (
	"errors"
	"strings"

	. "github.com/defval/di"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ely.by/mapskins/internal/di"
	"ely.by/mapskins/internal/version"
)

var configFile string

var RootCmd = &cobra.Command{
	Use:           "mapskins",
	Short:         "Resolves players skins through the configured chain of providers",
	Version:       version.Version(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func newContainer() (*Container, error) {
	return di.New()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to the config file (config.yml in the data dir or in the working dir by default)")
}

func initConfig() error {
	viper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	if configFile != "" {
		viper.SetConfigFile(configFile)
		return viper.ReadInConfig()
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	if dataDir := viper.GetString("data_dir"); dataDir != "" {
		viper.AddConfigPath(dataDir)
	}
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	var notFoundErr viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFoundErr) {
		return err
	}

	return nil
}
