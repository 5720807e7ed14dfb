package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"splatradar/internal/config"
	"splatradar/internal/pipeline"
)

func main() {
	root := &cobra.Command{
		Use:   "splat-radar",
		Short: "Daily GitHub scanner for new 3D Gaussian Splatting viewers",
	}

	root.AddCommand(scanCmd(), showCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func scanCmd() *cobra.Command {
	var skipAnalysis bool
	var configFile, outputDir, latestFile string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Search GitHub for new repos, analyze them, write the daily report",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.FindingsDir = outputDir
			}
			if latestFile != "" {
				cfg.LatestFile = latestFile
			}

			return pipeline.Run(context.Background(), cfg, logger, pipeline.Options{
				SkipAnalysis: skipAnalysis,
			})
		},
	}
	cmd.Flags().BoolVar(&skipAnalysis, "skip-analysis", false, "Write the report without calling the LLM")
	cmd.Flags().StringVar(&configFile, "config", "", "Optional YAML config file (queries, paths, model)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for dated reports (default findings)")
	cmd.Flags().StringVar(&latestFile, "latest-file", "", "Path for the latest-report copy (default latest_report.md)")
	return cmd
}

func showCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the most recent report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(cfg.LatestFile)
			if err != nil {
				return fmt.Errorf("no report found at %s: %w", cfg.LatestFile, err)
			}
			fmt.Print(string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "Optional YAML config file")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.Load()
	if path != "" {
		if err := cfg.ApplyFile(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
