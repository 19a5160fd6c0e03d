package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
)

// Mitigator applies an excess-of-loss policy to a dataset
type Mitigator struct{}

// NewMitigator creates a new Mitigator instance
func NewMitigator() *Mitigator {
	return &Mitigator{}
}

// ApplyInsurance computes the insured and retained portion of every
// event under the policy, appends them to the events in place, and
// returns the aggregate summary. Each row depends only on its own
// amount and the fixed policy; the aggregates are plain sums, so
// Gross = Insured + Net holds exactly.
func (m *Mitigator) ApplyInsurance(ctx context.Context, ds *model.LossDataset, policy model.Policy) (*model.AggregateSummary, error) {
	if err := policy.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid insurance policy")
	}
	if ds == nil {
		return nil, goerr.New("dataset is nil",
			goerr.T(model.ErrTagConfiguration))
	}

	var gross, insured float64
	for _, ev := range ds.Events {
		payout := policy.Payout(ev.LossAmount)
		ev.InsuredLoss = payout
		ev.RetainedLoss = ev.LossAmount - payout
		ev.Mitigated = true

		gross += ev.LossAmount
		insured += payout
	}

	summary := &model.AggregateSummary{
		Gross:   gross,
		Insured: insured,
		Net:     gross - insured,
	}

	ctxlog.From(ctx).Info("applied excess-of-loss policy",
		slog.String("dataset_id", ds.ID.String()),
		slog.Any("policy", policy),
		slog.Any("summary", summary),
	)

	return summary, nil
}
