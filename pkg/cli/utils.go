package cli

import (
	"context"
	"os"

	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
	"github.com/opsrisk-lab/lossfolio/pkg/repository"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// writeDataset writes a dataset as CSV to the given path, or to stdout
// when the path is empty
func writeDataset(ctx context.Context, path string, ds *model.LossDataset) error {
	csvFile := repository.NewCSVFile(path)
	if path == "" {
		return csvFile.Write(ctx, os.Stdout, ds)
	}
	return csvFile.Save(ctx, ds)
}
