package usecase

import (
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
)

// Read-only aggregation views for presentation layers. For events that
// have not been through the mitigation calculator, the insured portion
// is zero and the full amount counts as retained.

// AggregateByBucket groups events into calendar buckets and sums their
// gross, insured and net amounts. Rows are ordered by bucket start.
func AggregateByBucket(ds *model.LossDataset, bucket types.TimeBucket) ([]model.BucketRow, error) {
	if ds == nil {
		return nil, goerr.New("dataset is nil",
			goerr.T(model.ErrTagConfiguration))
	}
	if !bucket.IsValid() {
		return nil, goerr.New("unknown time bucket",
			goerr.V("bucket", bucket),
			goerr.T(model.ErrTagConfiguration))
	}

	rows := map[time.Time]*model.BucketRow{}
	for _, ev := range ds.Events {
		start := bucket.Truncate(ev.Date)
		row, ok := rows[start]
		if !ok {
			row = &model.BucketRow{Start: start}
			rows[start] = row
		}
		accumulate(&row.Count, &row.Gross, &row.Insured, &row.Net, ev)
	}

	out := make([]model.BucketRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// TotalsByCategory sums events per risk category, ordered by category
func TotalsByCategory(ds *model.LossDataset) ([]model.CategoryRow, error) {
	if ds == nil {
		return nil, goerr.New("dataset is nil",
			goerr.T(model.ErrTagConfiguration))
	}

	rows := map[types.RiskCategory]*model.CategoryRow{}
	for _, ev := range ds.Events {
		row, ok := rows[ev.RiskCategory]
		if !ok {
			row = &model.CategoryRow{Category: ev.RiskCategory}
			rows[ev.RiskCategory] = row
		}
		accumulate(&row.Count, &row.Gross, &row.Insured, &row.Net, ev)
	}

	out := make([]model.CategoryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func accumulate(count *int, gross, insured, net *float64, ev *model.LossEvent) {
	*count++
	*gross += ev.LossAmount
	if ev.Mitigated {
		*insured += ev.InsuredLoss
		*net += ev.RetainedLoss
	} else {
		*net += ev.LossAmount
	}
}
