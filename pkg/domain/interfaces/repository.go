package interfaces

import (
	"context"

	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
)

// Repository stores whole datasets keyed by ID
type Repository interface {
	PutDataset(ctx context.Context, dataset *model.LossDataset) error
	GetDataset(ctx context.Context, id types.DatasetID) (*model.LossDataset, error)
	ListDatasets(ctx context.Context) ([]*model.LossDataset, error)
}

// DatasetFile reads and writes the tabular persisted form of a dataset.
// Load returns row-level schema findings alongside the dataset so the
// validator can report them; only hard I/O or structural failures are
// returned as errors.
type DatasetFile interface {
	Load(ctx context.Context) (*model.LossDataset, []model.CheckResult, error)
	Save(ctx context.Context, dataset *model.LossDataset) error
}
