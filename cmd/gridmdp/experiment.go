package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridmdp/experiment"
	"github.com/katalvlaran/gridmdp/report"
)

func experimentCommand(root *rootFlags) *cobra.Command {
	var (
		configPath  string
		csvPath     string
		parquetPath string
		htmlPath    string
		color       bool
	)

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Run a gamma × mode × noise sweep and export the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			cfg := experiment.Default()
			if configPath != "" {
				if cfg, err = experiment.LoadConfig(configPath); err != nil {
					return err
				}
			}
			logger.Debug("config loaded", "gammas", cfg.Gammas, "modes", cfg.Modes, "noises", cfg.Noises, "trials", cfg.Trials)

			runs, err := experiment.Run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			if err := report.WriteReport(cmd.OutOrStdout(), runs, report.WithColor(color)); err != nil {
				return err
			}

			records := experiment.Records(runs)
			if csvPath != "" {
				if err := writeFile(csvPath, func(f *os.File) error { return report.WriteCSV(f, records) }); err != nil {
					return err
				}
				logger.Info("wrote csv", "path", csvPath, "rows", len(records))
			}
			if parquetPath != "" {
				if err := report.WriteParquet(parquetPath, records); err != nil {
					return err
				}
				logger.Info("wrote parquet", "path", parquetPath, "rows", len(records))
			}
			if htmlPath != "" {
				charts := report.Charts{
					Title:   "gridmdp experiment",
					Records: records,
					Traces:  experiment.Traces(runs),
				}
				if len(runs) > 0 {
					last := runs[len(runs)-1]
					charts.Grid, charts.Values = last.Grid, last.Result.Values
				}
				if err := writeFile(htmlPath, func(f *os.File) error { return report.WriteCharts(f, charts) }); err != nil {
					return err
				}
				logger.Info("wrote charts", "path", htmlPath)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML experiment config (default: reference sweep)")
	f.StringVar(&csvPath, "csv", "", "Write one CSV row per run")
	f.StringVar(&parquetPath, "parquet", "", "Write runs as zstd Parquet")
	f.StringVar(&htmlPath, "html", "", "Write an HTML page with charts")
	f.BoolVar(&color, "color", false, "Colour the text report")
	return cmd
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
