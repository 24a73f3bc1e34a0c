package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:          "gridmdp",
		Short:        "Solve grid-world MDPs with value and policy iteration",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log at debug level")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")

	cmd.AddCommand(solveCommand(flags), experimentCommand(flags))
	return cmd
}

// logger builds the command logger on stderr.
func (f *rootFlags) logger(w io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	switch f.logFormat {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q (want text or json)", f.logFormat)
}
