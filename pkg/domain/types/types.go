package types

import (
	"fmt"

	"github.com/google/uuid"
)

// LossID identifies a single loss event within a dataset.
// Generated datasets assign IDs from a monotonic counter starting at 1.
type LossID int

// Int returns the int representation
func (id LossID) Int() int {
	return int(id)
}

// String returns the string representation
func (id LossID) String() string {
	return fmt.Sprintf("%d", id)
}

// DatasetID identifies a loss dataset
type DatasetID string

// String returns the string representation
func (id DatasetID) String() string {
	return string(id)
}

// NewDatasetID creates a new DatasetID
func NewDatasetID() DatasetID {
	return DatasetID(uuid.New().String())
}

// ReportID identifies a validation run
type ReportID string

// String returns the string representation
func (id ReportID) String() string {
	return string(id)
}

// NewReportID creates a new ReportID
func NewReportID() ReportID {
	return ReportID(uuid.New().String())
}

// RiskCategory is an operational-risk event category
type RiskCategory string

// String returns the string representation
func (c RiskCategory) String() string {
	return string(c)
}

// RootCause is the underlying cause attributed to a loss event
type RootCause string

// String returns the string representation
func (c RootCause) String() string {
	return string(c)
}
