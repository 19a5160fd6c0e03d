package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/interfaces"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
)

// Memory implements Repository with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	datasets map[types.DatasetID]*model.LossDataset
	order    []types.DatasetID
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		datasets: make(map[types.DatasetID]*model.LossDataset),
	}
}

// PutDataset stores a dataset
func (m *Memory) PutDataset(ctx context.Context, dataset *model.LossDataset) error {
	if dataset == nil {
		return goerr.New("dataset is nil")
	}
	if dataset.ID == "" {
		return goerr.New("dataset ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.datasets[dataset.ID]; !exists {
		m.order = append(m.order, dataset.ID)
	}
	m.datasets[dataset.ID] = dataset
	return nil
}

// GetDataset retrieves a dataset by ID
func (m *Memory) GetDataset(ctx context.Context, id types.DatasetID) (*model.LossDataset, error) {
	if id == "" {
		return nil, goerr.New("dataset ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	ds, exists := m.datasets[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrDatasetNotFound, "no such dataset",
			goerr.V("id", id))
	}
	return ds, nil
}

// ListDatasets lists stored datasets in insertion order
func (m *Memory) ListDatasets(ctx context.Context) ([]*model.LossDataset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.LossDataset, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.datasets[id])
	}
	return result, nil
}
