package model

import (
	"sort"
	"time"

	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
)

// LossDataset is an ordered collection of loss events. Row order is not
// necessarily chronological; use SortByDate when a consumer needs it.
// The dataset is owned by the pipeline that created it and is mutated
// only by the mitigation calculator.
type LossDataset struct {
	ID     types.DatasetID
	Events []*LossEvent

	// Generation metadata. Zero values for datasets loaded from a file.
	GeneratedAt time.Time
	HorizonFrom time.Time
	HorizonTo   time.Time
	Seed        uint64
}

// NewLossDataset creates an empty dataset with a fresh DatasetID
func NewLossDataset() *LossDataset {
	return &LossDataset{
		ID: types.NewDatasetID(),
	}
}

// Len returns the number of events
func (d *LossDataset) Len() int {
	return len(d.Events)
}

// Amounts returns the loss amounts in row order
func (d *LossDataset) Amounts() []float64 {
	amounts := make([]float64, len(d.Events))
	for i, ev := range d.Events {
		amounts[i] = ev.LossAmount
	}
	return amounts
}

// GrossTotal returns the sum of all loss amounts
func (d *LossDataset) GrossTotal() float64 {
	var total float64
	for _, ev := range d.Events {
		total += ev.LossAmount
	}
	return total
}

// SortByDate sorts events chronologically in place
func (d *LossDataset) SortByDate() {
	sort.SliceStable(d.Events, func(i, j int) bool {
		return d.Events[i].Date.Before(d.Events[j].Date)
	})
}

// FilterByCategory returns a new dataset containing only events of the
// given risk category. Events are shared, not copied.
func (d *LossDataset) FilterByCategory(category types.RiskCategory) *LossDataset {
	out := &LossDataset{ID: d.ID}
	for _, ev := range d.Events {
		if ev.RiskCategory == category {
			out.Events = append(out.Events, ev)
		}
	}
	return out
}

// FilterByRootCause returns a new dataset containing only events with
// the given root cause. Events are shared, not copied.
func (d *LossDataset) FilterByRootCause(cause types.RootCause) *LossDataset {
	out := &LossDataset{ID: d.ID}
	for _, ev := range d.Events {
		if ev.RootCause == cause {
			out.Events = append(out.Events, ev)
		}
	}
	return out
}
