package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/crashcatch/internal/crash"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a deliberately crashing entry point",
	Long: `demo wraps a small entry point that prints a greeting, registers a
cleanup callback, and then fails. It exercises the full crash path:
callback execution, report writing, and failure exit status.`,
	RunE: func(_ *cobra.Command, args []string) error {
		catcher := newCatcher()
		return catcher.Wrap(demoMain)(args)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// newCatcher builds the crash wrapper from the loaded configuration.
func newCatcher() *crash.Catcher {
	extra := make(map[string]any, len(cfg.Report.Extra))
	for k, v := range cfg.Report.Extra {
		extra[k] = v
	}

	return crash.New(crash.Options{
		Path:      cfg.Report.Path,
		Message:   cfg.Report.Message,
		Title:     cfg.Report.Title,
		Postamble: cfg.Report.Postamble,
		Overwrite: cfg.Report.Overwrite,
		Extra:     extra,
		Logger:    logger.Logger,
	})
}

// demoMain mirrors the classic crash-catcher demo: greet, enter a critical
// section with a registered cleanup, then fail before it can unregister.
func demoMain(args []string) error {
	fmt.Println("Hello world")

	crash.SetData("invoked_at", time.Now().Format(time.RFC3339))
	crash.SetData("demo_args", args)

	crash.RegisterCallback(func() { fmt.Println("Cleaning up...") }, "")

	return errors.New("Oh no, the app has crashed!")
}
