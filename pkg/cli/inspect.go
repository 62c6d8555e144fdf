package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/checkpoint"
	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/serializers"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		Usage:                 "Inspect a model checkpoint file",
		ArgsUsage:             "CHECKPOINT",
		Description: `Load a checkpoint file and report its resolved shape without starting
a service. The shape distinguishes an archive with a callable inference
entry point (script_module) from a raw parameter mapping (state_dict or
legacy_pickle).`,
		Flags: []cli.Flag{
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializers.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly 1 checkpoint path, got %d", cmd.Args().Len())
			}
			return runInspect(cmd.Args().First(), outFormat, nil)
		},
	}
}

// runInspect loads the checkpoint and writes its diagnostics. A nil output
// writes to stdout.
func runInspect(path string, format serializers.Format, output io.Writer) error {
	model, err := checkpoint.Load(path)
	if err != nil {
		return err
	}
	return serializers.NewWriter(format, output).Serialize(model.Info())
}
