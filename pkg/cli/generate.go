package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/cli/config"
	"github.com/opsrisk-lab/lossfolio/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdGenerate() *cli.Command {
	var (
		generatorCfg config.Generator
		taxonomyCfg  config.Taxonomy
		output       string
	)

	flags := joinFlags(
		generatorCfg.Flags(),
		taxonomyCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output CSV path (default: stdout)",
				Destination: &output,
			},
		},
	)

	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a synthetic loss-event dataset",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			taxonomy, err := taxonomyCfg.Configure()
			if err != nil {
				return err
			}

			cfg, err := generatorCfg.Configure(c, taxonomy)
			if err != nil {
				return err
			}

			logger.Info("Generating loss dataset", slog.Any("config", cfg))

			ds, err := usecase.NewGenerator().Generate(ctx, cfg)
			if err != nil {
				return goerr.Wrap(err, "generation failed")
			}

			if err := writeDataset(ctx, output, ds); err != nil {
				return goerr.Wrap(err, "failed to write dataset")
			}

			if output != "" {
				logger.Info("Dataset written",
					slog.String("path", output),
					slog.Int("rows", ds.Len()),
				)
			}
			return nil
		},
	}
}
