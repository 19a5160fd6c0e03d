package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/types"
)

// LossEvent is a single operational-risk loss event.
// InsuredLoss and RetainedLoss are derived fields set only by the
// mitigation calculator; Mitigated marks their presence.
type LossEvent struct {
	ID           types.LossID
	Date         time.Time
	RiskCategory types.RiskCategory
	LossAmount   float64
	Description  string
	RootCause    types.RootCause

	InsuredLoss  float64
	RetainedLoss float64
	Mitigated    bool
}

// Validate validates the loss event
func (e *LossEvent) Validate() error {
	if e.ID <= 0 {
		return goerr.New("loss ID must be positive",
			goerr.V("id", e.ID))
	}
	if e.Date.IsZero() {
		return goerr.New("loss date is required",
			goerr.V("id", e.ID))
	}
	if e.LossAmount <= 0 {
		return goerr.New("loss amount must be positive",
			goerr.V("id", e.ID),
			goerr.V("amount", e.LossAmount))
	}
	return nil
}
