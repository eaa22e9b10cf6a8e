package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hugo-lorenzo-mato/crashcatch/internal/config"
	"github.com/hugo-lorenzo-mato/crashcatch/internal/logging"
)

var (
	cfgFile    string
	logLevel   string
	logFormat  string
	reportPath string

	cfg    *config.Config
	logger *logging.Logger

	// Shared viper instance so persistent flags participate in config
	// precedence.
	vip = viper.New()

	// Version info - set via SetVersion()
	appVersion string
	appCommit  string
	appDate    string
)

var rootCmd = &cobra.Command{
	Use:   "crashcatch",
	Short: "Crash-reporting wrapper for program entry points",
	Long: `crashcatch wraps a program's entry point so that any fault escaping it
runs registered cleanup callbacks, writes a plain-text diagnostic report,
and terminates the process with a failure status.

The demo subcommand exercises the full crash path end to end.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initConfig()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func SetVersion(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: .crashcatch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "auto",
		"log format (auto, text, json)")
	rootCmd.PersistentFlags().StringVar(&reportPath, "report", "",
		"crash report path (default: crashcatch.log)")

	// Bind flags to viper (errors are nil when flag exists)
	_ = vip.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = vip.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = vip.BindPFlag("report.path", rootCmd.PersistentFlags().Lookup("report"))
}

func initConfig() error {
	loader := config.NewLoaderWithViper(vip)
	if cfgFile != "" {
		loader.WithConfigFile(cfgFile)
	}

	loaded, err := loader.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	logger = logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	return nil
}
