package model_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/opsrisk-lab/lossfolio/pkg/domain/model"
)

func TestPolicyValidate(t *testing.T) {
	t.Run("valid policy", func(t *testing.T) {
		p := model.Policy{Deductible: 100, Cover: 500}
		gt.NoError(t, p.Validate())
	})

	t.Run("zero terms are valid", func(t *testing.T) {
		p := model.Policy{Deductible: 0, Cover: 0}
		gt.NoError(t, p.Validate())
	})

	t.Run("unlimited cover is valid", func(t *testing.T) {
		p := model.Policy{Deductible: 0, Cover: math.Inf(1)}
		gt.NoError(t, p.Validate())
	})

	t.Run("error when deductible is negative", func(t *testing.T) {
		p := model.Policy{Deductible: -1, Cover: 100}
		err := p.Validate()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagConfiguration)).True()
	})

	t.Run("error when cover is negative", func(t *testing.T) {
		p := model.Policy{Deductible: 100, Cover: -1}
		err := p.Validate()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagConfiguration)).True()
	})
}

func TestPolicyPayout(t *testing.T) {
	p := model.Policy{Deductible: 100, Cover: 100}

	t.Run("no recovery at or below deductible", func(t *testing.T) {
		gt.Equal(t, p.Payout(50), 0.0)
		gt.Equal(t, p.Payout(100), 0.0)
		gt.Equal(t, p.Payout(0), 0.0)
	})

	t.Run("full excess recovered inside the layer", func(t *testing.T) {
		gt.Equal(t, p.Payout(150), 50.0)
		gt.Equal(t, p.Payout(200), 100.0)
	})

	t.Run("capped at cover above the layer", func(t *testing.T) {
		gt.Equal(t, p.Payout(300), 100.0)
		gt.Equal(t, p.Payout(1e9), 100.0)
	})

	t.Run("payout plus retained equals the loss exactly", func(t *testing.T) {
		for _, x := range []float64{0, 50, 100, 150, 200, 300, 12345.67} {
			payout := p.Payout(x)
			gt.Equal(t, payout+(x-payout), x)
		}
	})

	t.Run("non-decreasing in the loss amount", func(t *testing.T) {
		prev := p.Payout(0)
		for x := 1.0; x <= 400; x++ {
			cur := p.Payout(x)
			gt.B(t, cur >= prev).True()
			prev = cur
		}
	})

	t.Run("bounded by cover and by the excess", func(t *testing.T) {
		for _, x := range []float64{0, 99, 100, 101, 199, 200, 201, 5000} {
			payout := p.Payout(x)
			gt.B(t, payout >= 0).True()
			gt.B(t, payout <= p.Cover).True()
			gt.B(t, payout <= math.Max(x-p.Deductible, 0)).True()
		}
	})

	t.Run("zero cover pays nothing", func(t *testing.T) {
		zero := model.Policy{Deductible: 0, Cover: 0}
		gt.Equal(t, zero.Payout(1000), 0.0)
	})

	t.Run("unlimited cover pays the full excess", func(t *testing.T) {
		unlimited := model.Policy{Deductible: 100, Cover: math.Inf(1)}
		gt.Equal(t, unlimited.Payout(100000), 99900.0)
	})
}
