// Package cli provides the flowmon-reader command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohit83k/flowmon-reader/internal/config"
	"github.com/mohit83k/flowmon-reader/internal/flowmon"
	"github.com/mohit83k/flowmon-reader/internal/logger"
)

var errNoPath = errors.New("a report path is required: pass it as an argument or with --file")

// NewRootCommand builds the flowmon-reader command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flowmon-reader [path]",
		Short: "Print per-flow statistics and IPv4 classification from an ns-3 flow-monitor report.",
		Long: `Print per-flow statistics and IPv4 classification from an ns-3 flow-monitor report. ` +
			`The FlowStats and Ipv4FlowClassifier sections are printed in document order. ` +
			`Logs go to stderr and, when FLOWMON_LOG_FILE is set, to that file.`,
		Example: "  flowmon-reader manet-routing-compare.flowmon\n" +
			"  flowmon-reader -f manet-routing-compare.flowmon --log-level debug",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().StringP("file", "f", "", "path to the flow-monitor XML report")
	cmd.Flags().String("log-level", "", "log level, overrides FLOWMON_LOG_LEVEL")
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path, err := reportPath(cmd, args)
	if err != nil {
		return err
	}

	cfg := config.Load()
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}

	log, err := logger.NewLogrusLoggerTo(cmd.ErrOrStderr(), cfg.LogFilePath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()
	// From here on failures are reported through the logger.
	cmd.SilenceErrors = true

	reader := flowmon.NewReader(cmd.OutOrStdout(), log)
	if err := reader.Read(path); err != nil {
		log.WithFields(map[string]any{"path": path}).Error(err)
		return err
	}
	return nil
}

// reportPath resolves the single input path. There is no default.
func reportPath(cmd *cobra.Command, args []string) (string, error) {
	flagPath, _ := cmd.Flags().GetString("file")
	switch {
	case len(args) == 1 && flagPath != "" && args[0] != flagPath:
		return "", fmt.Errorf("conflicting report paths %q and %q", args[0], flagPath)
	case len(args) == 1:
		return args[0], nil
	case flagPath != "":
		return flagPath, nil
	default:
		return "", errNoPath
	}
}
