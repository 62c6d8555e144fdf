// Package cli implements the insulin command line interface.
//
// The CLI runs either model service in the foreground and provides
// offline tooling for the similarity scorer and checkpoint inspection.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/logging"
)

const (
	name           = "insulin"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// shared flags
var (
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"o"},
		Usage:   "Output format (json, yaml)",
		Value:   "json",
	}

	modelFlag = &cli.StringFlag{
		Name:    "model",
		Usage:   "Path to the model checkpoint file",
		Sources: cli.EnvVars("MODEL_PATH"),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Value:   "info",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: "Protein model serving tools",
		Description: fmt.Sprintf(`Protein model serving tools

Version: %s
Commit:  %s
Built:   %s

predict-server  - serve protein to SMILES prediction (default port %d)
generate-server - serve similar sequence generation (default port %d)
score           - score the similarity of two sequences offline
inspect         - inspect a model checkpoint file`,
			version, commit, date, predictPortDefault, generatePortDefault),
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			predictServerCmd(),
			generateServerCmd(),
			scoreCmd(),
			inspectCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
