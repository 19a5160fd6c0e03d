package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/cli/config"
	"github.com/opsrisk-lab/lossfolio/pkg/repository"
	"github.com/opsrisk-lab/lossfolio/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdInsure() *cli.Command {
	var (
		policyCfg config.Policy
		input     string
		output    string
	)

	flags := joinFlags(
		policyCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Input CSV path",
				Required:    true,
				Destination: &input,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output CSV path for the enriched dataset (default: stdout)",
				Destination: &output,
			},
		},
	)

	return &cli.Command{
		Name:  "insure",
		Usage: "Apply an excess-of-loss policy and compute aggregate losses",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			policy, err := policyCfg.Configure()
			if err != nil {
				return err
			}

			ds, _, err := repository.NewCSVFile(input).Load(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load dataset",
					goerr.V("path", input))
			}

			summary, err := usecase.NewMitigator().ApplyInsurance(ctx, ds, policy)
			if err != nil {
				return goerr.Wrap(err, "mitigation failed")
			}

			if err := writeDataset(ctx, output, ds); err != nil {
				return goerr.Wrap(err, "failed to write enriched dataset")
			}

			logger.Info("Aggregate losses",
				slog.Float64("gross", summary.Gross),
				slog.Float64("insured", summary.Insured),
				slog.Float64("net", summary.Net),
			)
			return nil
		},
	}
}
