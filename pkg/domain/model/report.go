package model

import (
	"fmt"
	"strings"

	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
)

// CheckStatus is the outcome of a single validation check
type CheckStatus string

const (
	// CheckPass means the check found no problem
	CheckPass CheckStatus = "PASS"
	// CheckWarn means a tolerated condition was found and logged
	CheckWarn CheckStatus = "WARN"
	// CheckFail means a schema or integrity violation was found
	CheckFail CheckStatus = "FAIL"
)

// CheckResult is one independently reported validation outcome
type CheckResult struct {
	Name   string
	Status CheckStatus
	Detail string
}

// Statistics holds descriptive statistics over LossAmount
type Statistics struct {
	Count          int
	Mean           float64
	Median         float64
	Min            float64
	Max            float64
	StdDev         float64
	Skewness       float64
	ExcessKurtosis float64
}

// ValidationReport collects every check outcome plus descriptive
// statistics for one dataset. Stats is nil when the dataset has no rows
// (reported as a "no data" condition, not an error).
type ValidationReport struct {
	ID        types.ReportID
	DatasetID types.DatasetID
	Rows      int
	Checks    []CheckResult
	Stats     *Statistics
}

// NewValidationReport creates an empty report for a dataset
func NewValidationReport(datasetID types.DatasetID, rows int) *ValidationReport {
	return &ValidationReport{
		ID:        types.NewReportID(),
		DatasetID: datasetID,
		Rows:      rows,
	}
}

// Add appends a check outcome
func (r *ValidationReport) Add(name string, status CheckStatus, detail string) {
	r.Checks = append(r.Checks, CheckResult{Name: name, Status: status, Detail: detail})
}

// HasFailures reports whether any check failed
func (r *ValidationReport) HasFailures() bool {
	for _, c := range r.Checks {
		if c.Status == CheckFail {
			return true
		}
	}
	return false
}

// Render formats the report for human consumption
func (r *ValidationReport) Render() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Validation report %s\n", r.ID)
	fmt.Fprintf(&sb, "Dataset: %s (%d rows)\n\n", r.DatasetID, r.Rows)

	fmt.Fprintf(&sb, "Checks:\n")
	for _, c := range r.Checks {
		fmt.Fprintf(&sb, "  [%s] %s", c.Status, c.Name)
		if c.Detail != "" {
			fmt.Fprintf(&sb, ": %s", c.Detail)
		}
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	if r.Stats == nil {
		fmt.Fprintf(&sb, "Statistics: no data\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "Loss amount statistics (n=%d):\n", r.Stats.Count)
	fmt.Fprintf(&sb, "  mean:            %.2f\n", r.Stats.Mean)
	fmt.Fprintf(&sb, "  median:          %.2f\n", r.Stats.Median)
	fmt.Fprintf(&sb, "  min:             %.2f\n", r.Stats.Min)
	fmt.Fprintf(&sb, "  max:             %.2f\n", r.Stats.Max)
	fmt.Fprintf(&sb, "  std dev:         %.2f\n", r.Stats.StdDev)
	fmt.Fprintf(&sb, "  skewness:        %.4f\n", r.Stats.Skewness)
	fmt.Fprintf(&sb, "  excess kurtosis: %.4f\n", r.Stats.ExcessKurtosis)

	return sb.String()
}
