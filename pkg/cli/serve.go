package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/api"
)

const (
	predictPortDefault  = api.PredictPort
	generatePortDefault = api.GeneratePort
)

func predictServerCmd() *cli.Command {
	return &cli.Command{
		Name:                  "predict-server",
		EnableShellCompletion: true,
		Usage:                 "Serve protein to SMILES prediction",
		Description: `Run the prediction service in the foreground.

Loads the checkpoint at startup and exposes:
  POST /predict    - predict a SMILES string for a 50-residue sequence
  GET  /model_info - checkpoint diagnostics
  GET  /health     - health probe with model_loaded flag

A missing checkpoint is fatal; the process exits non-zero.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "HTTP listen port",
				Sources: cli.EnvVars("PORT"),
				Value:   predictPortDefault,
			},
			modelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.ServePredict(ctx, api.Options{
				Port:      int(cmd.Int("port")),
				ModelPath: cmd.String("model"),
			})
		},
	}
}

func generateServerCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate-server",
		EnableShellCompletion: true,
		Usage:                 "Serve similar protein sequence generation",
		Description: `Run the sequence generation service in the foreground.

Loads the checkpoint at startup and exposes:
  POST /generate   - generate and rank similar sequences
  GET  /model_info - checkpoint diagnostics
  GET  /health     - health probe with model_loaded flag

A missing checkpoint is fatal; the process exits non-zero.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "HTTP listen port",
				Sources: cli.EnvVars("PORT"),
				Value:   generatePortDefault,
			},
			modelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.ServeGenerate(ctx, api.Options{
				Port:      int(cmd.Int("port")),
				ModelPath: cmd.String("model"),
			})
		},
	}
}
