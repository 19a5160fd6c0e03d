package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/cli/config"
	"github.com/opsrisk-lab/lossfolio/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdPipeline() *cli.Command {
	var (
		generatorCfg config.Generator
		taxonomyCfg  config.Taxonomy
		policyCfg    config.Policy
		output       string
	)

	flags := joinFlags(
		generatorCfg.Flags(),
		taxonomyCfg.Flags(),
		policyCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output CSV path for the enriched dataset (default: stdout)",
				Destination: &output,
			},
		},
	)

	return &cli.Command{
		Name:  "pipeline",
		Usage: "Generate, validate and insure a dataset in one run",
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

			policy, err := policyCfg.Configure()
			if err != nil {
				return err
			}

			ds, err := usecase.NewGenerator().Generate(ctx, cfg)
			if err != nil {
				return goerr.Wrap(err, "generation failed")
			}

			report := usecase.NewValidator(taxonomy).ValidateAndSummarize(ctx, ds)
			fmt.Print(report.Render())

			summary, err := usecase.NewMitigator().ApplyInsurance(ctx, ds, policy)
			if err != nil {
				return goerr.Wrap(err, "mitigation failed")
			}

			if err := writeDataset(ctx, output, ds); err != nil {
				return goerr.Wrap(err, "failed to write enriched dataset")
			}

			logger.Info("Pipeline complete",
				slog.Int("rows", ds.Len()),
				slog.Any("policy", policy),
				slog.Any("summary", summary),
			)
			return nil
		},
	}
}
