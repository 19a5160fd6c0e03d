package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
	"github.com/opsrisk-lab/lossfolio/pkg/repository"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("put and get", func(t *testing.T) {
		repo := repository.NewMemory()
		ds := model.NewLossDataset()
		gt.NoError(t, repo.PutDataset(ctx, ds))

		got, err := repo.GetDataset(ctx, ds.ID)
		gt.NoError(t, err)
		gt.Equal(t, got.ID, ds.ID)
	})

	t.Run("get unknown dataset", func(t *testing.T) {
		repo := repository.NewMemory()
		_, err := repo.GetDataset(ctx, "missing")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDatasetNotFound))
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		repo := repository.NewMemory()
		a := model.NewLossDataset()
		b := model.NewLossDataset()
		gt.NoError(t, repo.PutDataset(ctx, a))
		gt.NoError(t, repo.PutDataset(ctx, b))

		all, err := repo.ListDatasets(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(all), 2)
		gt.Equal(t, all[0].ID, a.ID)
		gt.Equal(t, all[1].ID, b.ID)
	})

	t.Run("error on nil dataset", func(t *testing.T) {
		repo := repository.NewMemory()
		gt.Error(t, repo.PutDataset(ctx, nil))
	})
}
