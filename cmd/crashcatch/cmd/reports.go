package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/crashcatch/internal/crash"
)

var reportsLatest bool

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List crash reports for the configured report path",
	RunE: func(_ *cobra.Command, _ []string) error {
		if reportsLatest {
			return showLatestReport()
		}
		return listReports()
	},
}

func init() {
	reportsCmd.Flags().BoolVar(&reportsLatest, "latest", false,
		"print the contents of the newest report")
	rootCmd.AddCommand(reportsCmd)
}

func listReports() error {
	reports, err := crash.ListReports(cfg.Report.Path)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Printf("No crash reports found for %s\n", cfg.Report.Path)
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Crash reports (%d)", len(reports))))
	for _, r := range reports {
		fmt.Printf("%s  %s\n",
			pathStyle.Render(r.Path),
			metaStyle.Render(fmt.Sprintf("%s, %d bytes", r.ModTime.Format("2006-01-02 15:04:05"), r.Size)))
	}
	return nil
}

func showLatestReport() error {
	latest, err := crash.LatestReport(cfg.Report.Path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(latest.Path)
	if err != nil {
		return fmt.Errorf("reading report: %w", err)
	}

	fmt.Println(headerStyle.Render(latest.Path))
	fmt.Print(string(data))
	return nil
}
