package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/m-mizutani/ctxlog"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
	"gonum.org/v1/gonum/stat"
)

// Validator performs schema and integrity checks on a dataset and
// computes descriptive statistics over loss amounts. It never mutates
// the dataset and never stops at the first violation: every check is
// reported independently.
type Validator struct {
	taxonomy *model.Taxonomy
}

// NewValidator creates a new Validator. A nil taxonomy means the
// built-in default vocabulary.
func NewValidator(taxonomy *model.Taxonomy) *Validator {
	if taxonomy == nil {
		taxonomy = model.DefaultTaxonomy()
	}
	return &Validator{taxonomy: taxonomy}
}

// maxExamples bounds how many offending IDs a check detail lists
const maxExamples = 5

// ValidateAndSummarize runs every check and computes statistics.
// Violations are collected into the report, not returned as errors; an
// empty dataset yields a "no data" condition with nil statistics.
func (v *Validator) ValidateAndSummarize(ctx context.Context, ds *model.LossDataset) *model.ValidationReport {
	logger := ctxlog.From(ctx)

	if ds == nil {
		report := model.NewValidationReport("", 0)
		report.Add("dataset", model.CheckFail, "dataset is nil")
		return report
	}

	report := model.NewValidationReport(ds.ID, ds.Len())

	if ds.Len() == 0 {
		report.Add("dataset size", model.CheckWarn, "no data: dataset has no rows")
		logger.Warn("validating empty dataset", slog.String("dataset_id", ds.ID.String()))
		return report
	}
	report.Add("dataset size", model.CheckPass, fmt.Sprintf("%d rows", ds.Len()))

	v.checkCriticalFields(report, ds)
	v.checkAmounts(report, ds)
	v.checkUniqueIDs(report, ds)
	v.checkOptionalFields(ctx, report, ds)
	v.checkTaxonomy(report, ds)

	report.Stats = summarize(ds.Amounts())

	logger.Info("validation complete",
		slog.String("report_id", report.ID.String()),
		slog.String("dataset_id", ds.ID.String()),
		slog.Bool("has_failures", report.HasFailures()),
	)

	return report
}

// checkCriticalFields flags missing values in Loss ID, Date and Loss
// Amount. Missing here means the zero value: unset ID, zero time, zero
// amount.
func (v *Validator) checkCriticalFields(report *model.ValidationReport, ds *model.LossDataset) {
	var missingID, missingDate, missingAmount int
	for _, ev := range ds.Events {
		if ev.ID == 0 {
			missingID++
		}
		if ev.Date.IsZero() {
			missingDate++
		}
		if ev.LossAmount == 0 || math.IsNaN(ev.LossAmount) {
			missingAmount++
		}
	}

	if missingID == 0 && missingDate == 0 && missingAmount == 0 {
		report.Add("critical fields", model.CheckPass, "")
		return
	}
	report.Add("critical fields", model.CheckFail,
		fmt.Sprintf("missing values: Loss ID=%d, Date=%d, Loss Amount=%d",
			missingID, missingDate, missingAmount))
}

// checkAmounts flags non-positive loss amounts
func (v *Validator) checkAmounts(report *model.ValidationReport, ds *model.LossDataset) {
	var bad int
	var examples []types.LossID
	for _, ev := range ds.Events {
		if !(ev.LossAmount > 0) {
			bad++
			if len(examples) < maxExamples {
				examples = append(examples, ev.ID)
			}
		}
	}

	if bad == 0 {
		report.Add("positive amounts", model.CheckPass, "")
		return
	}
	report.Add("positive amounts", model.CheckFail,
		fmt.Sprintf("%d non-positive loss amount(s), e.g. IDs %v", bad, examples))
}

// checkUniqueIDs enforces the primary-key property of Loss ID
func (v *Validator) checkUniqueIDs(report *model.ValidationReport, ds *model.LossDataset) {
	seen := make(map[types.LossID]int, ds.Len())
	for _, ev := range ds.Events {
		seen[ev.ID]++
	}

	var duplicates []types.LossID
	for id, n := range seen {
		if n > 1 {
			duplicates = append(duplicates, id)
		}
	}

	if len(duplicates) == 0 {
		report.Add("unique Loss ID", model.CheckPass, "")
		return
	}

	sort.Slice(duplicates, func(i, j int) bool { return duplicates[i] < duplicates[j] })
	shown := duplicates
	if len(shown) > maxExamples {
		shown = shown[:maxExamples]
	}
	report.Add("unique Loss ID", model.CheckFail,
		fmt.Sprintf("%d duplicated ID(s): %v", len(duplicates), shown))
}

// checkOptionalFields logs tolerated missing values in the descriptive
// columns. These are warnings, not failures.
func (v *Validator) checkOptionalFields(ctx context.Context, report *model.ValidationReport, ds *model.LossDataset) {
	var missingDesc, missingCategory, missingCause int
	for _, ev := range ds.Events {
		if ev.Description == "" {
			missingDesc++
		}
		if ev.RiskCategory == "" {
			missingCategory++
		}
		if ev.RootCause == "" {
			missingCause++
		}
	}

	if missingDesc == 0 && missingCategory == 0 && missingCause == 0 {
		report.Add("optional fields", model.CheckPass, "")
		return
	}

	detail := fmt.Sprintf("missing values tolerated: Description=%d, Risk Category=%d, Root Cause=%d",
		missingDesc, missingCategory, missingCause)
	report.Add("optional fields", model.CheckWarn, detail)
	ctxlog.From(ctx).Warn("dataset has missing optional values",
		slog.Int("description", missingDesc),
		slog.Int("risk_category", missingCategory),
		slog.Int("root_cause", missingCause),
	)
}

// checkTaxonomy warns about category or cause values outside the
// configured vocabulary
func (v *Validator) checkTaxonomy(report *model.ValidationReport, ds *model.LossDataset) {
	unknown := map[string]bool{}
	for _, ev := range ds.Events {
		if ev.RiskCategory != "" && !v.taxonomy.HasCategory(ev.RiskCategory) {
			unknown["category "+ev.RiskCategory.String()] = true
		}
		if ev.RootCause != "" && !v.taxonomy.HasRootCause(ev.RootCause) {
			unknown["root cause "+ev.RootCause.String()] = true
		}
	}

	if len(unknown) == 0 {
		report.Add("taxonomy", model.CheckPass, "")
		return
	}

	values := make([]string, 0, len(unknown))
	for val := range unknown {
		values = append(values, val)
	}
	sort.Strings(values)
	if len(values) > maxExamples {
		values = values[:maxExamples]
	}
	report.Add("taxonomy", model.CheckWarn,
		fmt.Sprintf("%d value(s) outside taxonomy, e.g. %v", len(unknown), values))
}

// summarize computes descriptive statistics over the given amounts.
// Returns nil for an empty slice.
func summarize(amounts []float64) *model.Statistics {
	if len(amounts) == 0 {
		return nil
	}

	sorted := make([]float64, len(amounts))
	copy(sorted, amounts)
	sort.Float64s(sorted)

	return &model.Statistics{
		Count:          len(amounts),
		Mean:           stat.Mean(amounts, nil),
		Median:         median(sorted),
		Min:            sorted[0],
		Max:            sorted[len(sorted)-1],
		StdDev:         stat.StdDev(amounts, nil),
		Skewness:       stat.Skew(amounts, nil),
		ExcessKurtosis: stat.ExKurtosis(amounts, nil),
	}
}

// median of an already-sorted slice; averages the two middle values for
// even lengths
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
