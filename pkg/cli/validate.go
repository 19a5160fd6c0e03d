package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/cli/config"
	"github.com/opsrisk-lab/lossfolio/pkg/repository"
	"github.com/opsrisk-lab/lossfolio/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var (
		taxonomyCfg config.Taxonomy
		input       string
	)

	flags := joinFlags(
		taxonomyCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Input CSV path",
				Required:    true,
				Destination: &input,
			},
		},
	)

	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a loss dataset and print descriptive statistics",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			taxonomy, err := taxonomyCfg.Configure()
			if err != nil {
				return err
			}

			ds, findings, err := repository.NewCSVFile(input).Load(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load dataset",
					goerr.V("path", input))
			}

			report := usecase.NewValidator(taxonomy).ValidateAndSummarize(ctx, ds)

			// Loader findings come first: they describe the file itself
			report.Checks = append(findings, report.Checks...)

			// Violations are reported, not fatal
			fmt.Print(report.Render())
			return nil
		},
	}
}
