package usecase_test

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
	"github.com/opsrisk-lab/lossfolio/pkg/usecase"
)

func checkByName(report *model.ValidationReport, name string) *model.CheckResult {
	for i := range report.Checks {
		if report.Checks[i].Name == name {
			return &report.Checks[i]
		}
	}
	return nil
}

func TestValidateAndSummarize(t *testing.T) {
	ctx := context.Background()
	validator := usecase.NewValidator(nil)

	t.Run("clean dataset passes every check", func(t *testing.T) {
		ds := model.NewLossDataset()
		day := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
		ds.Events = []*model.LossEvent{
			{ID: 1, Date: day, RiskCategory: "Internal Fraud", LossAmount: 100, Description: "a", RootCause: "People"},
			{ID: 2, Date: day.AddDate(0, 0, 1), RiskCategory: "External Fraud", LossAmount: 200, Description: "b", RootCause: "Process"},
		}

		report := validator.ValidateAndSummarize(ctx, ds)
		gt.False(t, report.HasFailures())
		for _, c := range report.Checks {
			gt.Equal(t, c.Status, model.CheckPass)
		}
	})

	t.Run("empty dataset reports no data without statistics", func(t *testing.T) {
		ds := model.NewLossDataset()
		report := validator.ValidateAndSummarize(ctx, ds)
		gt.V(t, report.Stats).Nil()
		gt.False(t, report.HasFailures())

		size := checkByName(report, "dataset size")
		gt.V(t, size).NotNil()
		gt.Equal(t, size.Status, model.CheckWarn)
		gt.B(t, strings.Contains(report.Render(), "no data")).True()
	})

	t.Run("duplicate Loss ID is reported, not dropped", func(t *testing.T) {
		ds := model.NewLossDataset()
		day := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
		ds.Events = []*model.LossEvent{
			{ID: 7, Date: day, RiskCategory: "Internal Fraud", LossAmount: 100, Description: "a", RootCause: "People"},
			{ID: 7, Date: day, RiskCategory: "Internal Fraud", LossAmount: 150, Description: "b", RootCause: "People"},
			{ID: 8, Date: day, RiskCategory: "Internal Fraud", LossAmount: 200, Description: "c", RootCause: "People"},
		}

		report := validator.ValidateAndSummarize(ctx, ds)
		gt.True(t, report.HasFailures())

		unique := checkByName(report, "unique Loss ID")
		gt.V(t, unique).NotNil()
		gt.Equal(t, unique.Status, model.CheckFail)
		gt.B(t, strings.Contains(unique.Detail, "1 duplicated ID(s)")).True()
		gt.B(t, strings.Contains(unique.Detail, "7")).True()

		// The duplicate row still contributes to statistics
		gt.Equal(t, report.Stats.Count, 3)
		gt.Equal(t, report.Rows, 3)
	})

	t.Run("non-positive amounts fail but statistics remain computable", func(t *testing.T) {
		ds := model.NewLossDataset()
		day := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
		ds.Events = []*model.LossEvent{
			{ID: 1, Date: day, RiskCategory: "Internal Fraud", LossAmount: -5, Description: "a", RootCause: "People"},
			{ID: 2, Date: day, RiskCategory: "Internal Fraud", LossAmount: 100, Description: "b", RootCause: "People"},
		}

		report := validator.ValidateAndSummarize(ctx, ds)
		amounts := checkByName(report, "positive amounts")
		gt.V(t, amounts).NotNil()
		gt.Equal(t, amounts.Status, model.CheckFail)
		gt.V(t, report.Stats).NotNil()
	})

	t.Run("missing optional values warn", func(t *testing.T) {
		ds := model.NewLossDataset()
		day := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
		ds.Events = []*model.LossEvent{
			{ID: 1, Date: day, LossAmount: 100},
		}

		report := validator.ValidateAndSummarize(ctx, ds)
		optional := checkByName(report, "optional fields")
		gt.V(t, optional).NotNil()
		gt.Equal(t, optional.Status, model.CheckWarn)
	})

	t.Run("values outside the taxonomy warn", func(t *testing.T) {
		ds := model.NewLossDataset()
		day := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
		ds.Events = []*model.LossEvent{
			{ID: 1, Date: day, RiskCategory: "Market Risk", LossAmount: 100, Description: "a", RootCause: "People"},
		}

		report := validator.ValidateAndSummarize(ctx, ds)
		taxonomy := checkByName(report, "taxonomy")
		gt.V(t, taxonomy).NotNil()
		gt.Equal(t, taxonomy.Status, model.CheckWarn)
	})

	t.Run("missing critical values fail", func(t *testing.T) {
		ds := model.NewLossDataset()
		ds.Events = []*model.LossEvent{
			{ID: 0, Date: time.Time{}, RiskCategory: "Internal Fraud", LossAmount: 0, Description: "a", RootCause: "People"},
		}

		report := validator.ValidateAndSummarize(ctx, ds)
		critical := checkByName(report, "critical fields")
		gt.V(t, critical).NotNil()
		gt.Equal(t, critical.Status, model.CheckFail)
	})

	t.Run("nil dataset fails", func(t *testing.T) {
		report := validator.ValidateAndSummarize(ctx, nil)
		gt.True(t, report.HasFailures())
	})
}

func TestStatistics(t *testing.T) {
	ctx := context.Background()
	validator := usecase.NewValidator(nil)

	build := func(amounts ...float64) *model.LossDataset {
		ds := model.NewLossDataset()
		day := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		for i, a := range amounts {
			ds.Events = append(ds.Events, &model.LossEvent{
				ID:           types.LossID(i + 1),
				Date:         day.AddDate(0, 0, i),
				RiskCategory: "Internal Fraud",
				LossAmount:   a,
				Description:  "x",
				RootCause:    "People",
			})
		}
		return ds
	}

	almost := func(a, b float64) bool {
		return math.Abs(a-b) < 1e-9
	}

	t.Run("known values", func(t *testing.T) {
		report := validator.ValidateAndSummarize(ctx, build(10, 20, 30, 40))
		stats := report.Stats
		gt.V(t, stats).NotNil()

		gt.Equal(t, stats.Count, 4)
		gt.B(t, almost(stats.Mean, 25)).True()
		gt.B(t, almost(stats.Median, 25)).True()
		gt.Equal(t, stats.Min, 10.0)
		gt.Equal(t, stats.Max, 40.0)
		// sample standard deviation of 10,20,30,40
		gt.B(t, almost(stats.StdDev, math.Sqrt(500.0/3.0))).True()
	})

	t.Run("odd row count uses the middle value as median", func(t *testing.T) {
		report := validator.ValidateAndSummarize(ctx, build(5, 1, 9))
		gt.B(t, almost(report.Stats.Median, 5)).True()
	})

	t.Run("right-skewed data has positive skewness", func(t *testing.T) {
		report := validator.ValidateAndSummarize(ctx, build(1, 1, 1, 2, 2, 3, 50))
		gt.B(t, report.Stats.Skewness > 0).True()
	})
}
