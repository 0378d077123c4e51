package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "jaxb2gen",
	Short: "Incremental driver for the XJC schema-to-source compiler",
	Long: `jaxb2gen drives the external XJC binding compiler incrementally:
  - detects whether generated sources are stale against their schema
    and binding inputs (local files, archive entries, remote resources)
  - assembles the exact, order-sensitive XJC argument vector
  - invokes XJC and maintains a marker file recording the last
    successful generation

Regeneration is conservative: whenever an input's timestamp cannot be
determined, the sources are treated as stale.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.jaxb2gen.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".jaxb2gen")
	}

	viper.AutomaticEnv()

	// Defaults mirror the XJC plugin's parameter defaults.
	viper.SetDefault("output_dir", "generated-sources/jaxb")
	viper.SetDefault("base_dir", ".")
	viper.SetDefault("stale_file", ".jaxb2gen/stale-flag")
	viper.SetDefault("clear_output_dir", true)
	viper.SetDefault("fail_on_no_schemas", true)
	viper.SetDefault("generate_episode", true)
	viper.SetDefault("sources.dirs", []string{"src/main/xsd"})
	viper.SetDefault("bindings.dirs", []string{"src/main/xjb"})
	viper.SetDefault("tool.command", "xjc")
	viper.SetDefault("xjc.source_type", "xmlschema")
	viper.SetDefault("xjc.encoding", "UTF-8")
	viper.SetDefault("staleness.probe_timeout", 0)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	logging.SetVerbose(verbose)
}
