package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
)

func testDataset() *model.LossDataset {
	day := func(d int) time.Time {
		return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
	}
	ds := model.NewLossDataset()
	ds.Events = []*model.LossEvent{
		{ID: 1, Date: day(20), RiskCategory: "Internal Fraud", LossAmount: 300, RootCause: "People"},
		{ID: 2, Date: day(5), RiskCategory: "External Fraud", LossAmount: 100, RootCause: "External Events"},
		{ID: 3, Date: day(12), RiskCategory: "Internal Fraud", LossAmount: 50, RootCause: "Process"},
	}
	return ds
}

func TestLossDatasetSortByDate(t *testing.T) {
	ds := testDataset()
	ds.SortByDate()

	gt.Equal(t, ds.Events[0].ID, types.LossID(2))
	gt.Equal(t, ds.Events[1].ID, types.LossID(3))
	gt.Equal(t, ds.Events[2].ID, types.LossID(1))
}

func TestLossDatasetGrossTotal(t *testing.T) {
	ds := testDataset()
	gt.Equal(t, ds.GrossTotal(), 450.0)

	empty := model.NewLossDataset()
	gt.Equal(t, empty.GrossTotal(), 0.0)
}

func TestLossDatasetFilters(t *testing.T) {
	ds := testDataset()

	t.Run("by category", func(t *testing.T) {
		fraud := ds.FilterByCategory("Internal Fraud")
		gt.Equal(t, fraud.Len(), 2)
		gt.Equal(t, fraud.GrossTotal(), 350.0)
	})

	t.Run("by root cause", func(t *testing.T) {
		process := ds.FilterByRootCause("Process")
		gt.Equal(t, process.Len(), 1)
		gt.Equal(t, process.Events[0].ID, types.LossID(3))
	})

	t.Run("no match yields empty dataset", func(t *testing.T) {
		none := ds.FilterByCategory("Damage to Physical Assets")
		gt.Equal(t, none.Len(), 0)
	})
}

func TestLossEventValidate(t *testing.T) {
	date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid event", func(t *testing.T) {
		ev := model.LossEvent{ID: 1, Date: date, LossAmount: 10}
		gt.NoError(t, ev.Validate())
	})

	t.Run("error when ID is not positive", func(t *testing.T) {
		ev := model.LossEvent{ID: 0, Date: date, LossAmount: 10}
		gt.Error(t, ev.Validate())
	})

	t.Run("error when date is zero", func(t *testing.T) {
		ev := model.LossEvent{ID: 1, LossAmount: 10}
		gt.Error(t, ev.Validate())
	})

	t.Run("error when amount is not positive", func(t *testing.T) {
		ev := model.LossEvent{ID: 1, Date: date, LossAmount: 0}
		gt.Error(t, ev.Validate())
	})
}
