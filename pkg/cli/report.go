package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
	"github.com/opsrisk-lab/lossfolio/pkg/repository"
	"github.com/opsrisk-lab/lossfolio/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var (
		input      string
		bucket     string
		byCategory bool
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Print grouped aggregation views over a loss dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Input CSV path",
				Required:    true,
				Destination: &input,
			},
			&cli.StringFlag{
				Name:        "bucket",
				Usage:       "Time bucket (daily, weekly, monthly, quarterly)",
				Value:       "monthly",
				Destination: &bucket,
			},
			&cli.BoolFlag{
				Name:        "by-category",
				Usage:       "Group by risk category instead of time bucket",
				Destination: &byCategory,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ds, _, err := repository.NewCSVFile(input).Load(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load dataset",
					goerr.V("path", input))
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

			if byCategory {
				rows, err := usecase.TotalsByCategory(ds)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, "Risk Category\tCount\tGross\tInsured\tNet")
				for _, row := range rows {
					fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\n",
						row.Category, row.Count, row.Gross, row.Insured, row.Net)
				}
				return w.Flush()
			}

			rows, err := usecase.AggregateByBucket(ds, types.TimeBucket(bucket))
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "Bucket\tCount\tGross\tInsured\tNet")
			for _, row := range rows {
				fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\n",
					row.Start.Format("2006-01-02"), row.Count, row.Gross, row.Insured, row.Net)
			}
			return w.Flush()
		},
	}
}
