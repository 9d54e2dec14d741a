package promotion

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
)

type staticProvider []*Promotion

func (s staticProvider) ActivePromotionsFor(_ context.Context, code string) ([]*Promotion, error) {
	var out []*Promotion
	for _, p := range s {
		if p.ProductCode == code {
			out = append(out, p)
		}
	}
	return out, nil
}

type failingProvider struct{}

func (failingProvider) ActivePromotionsFor(context.Context, string) ([]*Promotion, error) {
	return nil, errors.New("store offline")
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve_LaterStartWins(t *testing.T) {
	early := New(KindPercentage, types.NewMoneyFromInt(10), "DESK-1", day(2026, 3, 1), day(2026, 3, 31))
	late := New(KindPercentage, types.NewMoneyFromInt(20), "DESK-1", day(2026, 3, 10), day(2026, 3, 20))

	r := NewResolver(staticProvider{early, late})
	got, err := r.Resolve(context.Background(), "DESK-1", day(2026, 3, 15))

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, late.ID, got.ID)
}

func TestResolve_SameStartLowestIDWins(t *testing.T) {
	a := New(KindPercentage, types.NewMoneyFromInt(10), "PEN", day(2026, 1, 1), day(2026, 12, 31))
	b := New(KindFixedPrice, types.NewMoneyFromInt(1), "PEN", day(2026, 1, 1), day(2026, 12, 31))
	a.ID = id.MustParse("00000000-0000-7000-8000-000000000002")
	b.ID = id.MustParse("00000000-0000-7000-8000-000000000001")

	got, err := NewResolver(staticProvider{a, b}).Resolve(context.Background(), "PEN", day(2026, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	got, err = NewResolver(staticProvider{b, a}).Resolve(context.Background(), "PEN", day(2026, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestResolve_WindowIsInclusive(t *testing.T) {
	p := New(KindTwoForOne, types.Zero(), "CHAIR", day(2026, 5, 1), day(2026, 5, 31))
	r := NewResolver(staticProvider{p})

	tests := []struct {
		name string
		on   time.Time
		want bool
	}{
		{"day before start", day(2026, 4, 30), false},
		{"start day", day(2026, 5, 1), true},
		{"end day late evening", day(2026, 5, 31).Add(23 * time.Hour), true},
		{"day after end", day(2026, 6, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(context.Background(), "CHAIR", tt.on)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got != nil)
		})
	}
}

func TestResolve_InactiveAndOtherProductsIgnored(t *testing.T) {
	inactive := New(KindPercentage, types.NewMoneyFromInt(50), "LAMP", day(2026, 1, 1), day(2026, 12, 31))
	inactive.Active = false
	other := New(KindPercentage, types.NewMoneyFromInt(50), "DESK", day(2026, 1, 1), day(2026, 12, 31))

	got, err := NewResolver(staticProvider{inactive, other}).Resolve(context.Background(), "LAMP", day(2026, 2, 2))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolve_ProviderError(t *testing.T) {
	_, err := NewResolver(failingProvider{}).Resolve(context.Background(), "LAMP", day(2026, 2, 2))
	assert.ErrorContains(t, err, "store offline")
}

func TestValidate(t *testing.T) {
	base := func() *Promotion {
		return New(KindPercentage, types.NewMoneyFromInt(10), "PEN", day(2026, 1, 1), day(2026, 1, 31))
	}

	tests := []struct {
		name   string
		mutate func(p *Promotion)
		field  string
	}{
		{"missing product", func(p *Promotion) { p.ProductCode = "" }, "productCode"},
		{"unknown kind", func(p *Promotion) { p.Kind = "BOGO" }, "kind"},
		{"negative magnitude", func(p *Promotion) { p.Magnitude = types.NewMoneyFromInt(-1) }, "magnitude"},
		{"reversed window", func(p *Promotion) { p.EndDate = day(2025, 12, 31) }, "endDate"},
		{"non boolean condition", func(p *Promotion) { p.Condition = "quantity + 1" }, "condition"},
		{"syntax error", func(p *Promotion) { p.Condition = "quantity >=" }, "condition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			tt.mutate(p)
			err := p.Validate(context.Background())

			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok, "expected AppError, got %v", err)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tt.field, appErr.Details["field"])
		})
	}

	p := base()
	p.EndDate = p.StartDate
	assert.NoError(t, p.Validate(context.Background()), "single-day window")
}

func TestEligible_Condition(t *testing.T) {
	p := New(KindPercentage, types.NewMoneyFromInt(10), "PAPER", day(2026, 1, 1), day(2026, 1, 31))
	p.Condition = "quantity >= 10 && unit_price < 5.0"
	require.NoError(t, p.Validate(context.Background()))

	ok, err := p.Eligible(12, types.MustMoney("4.50"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Eligible(3, types.MustMoney("4.50"))
	require.NoError(t, err)
	assert.False(t, ok)

	p.Condition = ""
	ok, err = p.Eligible(1, types.Zero())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEligible_UncompiledIsReadOnly(t *testing.T) {
	p := New(KindPercentage, types.NewMoneyFromInt(15), "CHAIR", day(2026, 1, 1), day(2026, 1, 31))
	p.Condition = "quantity >= 4"

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := p.Eligible(i, types.NewMoneyFromInt(50))
			assert.NoError(t, err)
			results[i] = ok
		}(i)
	}
	wg.Wait()

	for i, ok := range results {
		assert.Equal(t, i >= 4, ok, "quantity %d", i)
	}
	assert.Nil(t, p.cond)
}
