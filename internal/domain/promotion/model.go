// Package promotion provides time-bounded discount rules and their resolution.
package promotion

import (
	"context"
	"time"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/clock"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
)

// Kind is the discount rule of a promotion.
type Kind string

const (
	// KindPercentage discounts magnitude percent of the gross amount.
	KindPercentage Kind = "PERCENTAGE"
	// KindTwoForOne makes every second unit free.
	KindTwoForOne Kind = "TWO_FOR_ONE"
	// KindFixedPrice sells every unit at magnitude.
	KindFixedPrice Kind = "FIXED_PRICE"
)

// Promotion is a discount rule tied to one product for an inclusive date window.
type Promotion struct {
	ID          id.ID       `json:"id"`
	Description string      `json:"description"`
	Kind        Kind        `json:"kind"`
	Magnitude   types.Money `json:"magnitude"`
	ProductCode string      `json:"productCode"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	Active      bool        `json:"active"`

	// Condition is an optional CEL expression over quantity and unit_price.
	Condition string `json:"condition,omitempty"`

	cond *condition
}

// New creates an active promotion with a generated id.
func New(kind Kind, magnitude types.Money, productCode string, start, end time.Time) *Promotion {
	return &Promotion{
		ID:          id.New(),
		Kind:        kind,
		Magnitude:   magnitude,
		ProductCode: productCode,
		StartDate:   start,
		EndDate:     end,
		Active:      true,
	}
}

// Validate checks the promotion and compiles its condition.
func (p *Promotion) Validate(ctx context.Context) error {
	if p.ProductCode == "" {
		return apperror.NewValidation("product code is required").
			WithDetail("field", "productCode")
	}
	if !IsValidKind(p.Kind) {
		return apperror.NewValidation("invalid promotion kind").
			WithDetail("field", "kind").
			WithDetail("value", string(p.Kind))
	}
	if p.Magnitude.IsNegative() {
		return apperror.NewValidation("magnitude cannot be negative").
			WithDetail("field", "magnitude")
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return apperror.NewValidation("validity window is required").
			WithDetail("field", "startDate")
	}
	if clock.Date(p.EndDate).Before(clock.Date(p.StartDate)) {
		return apperror.NewValidation("end date precedes start date").
			WithDetail("field", "endDate")
	}

	if p.Condition == "" {
		p.cond = nil
		return nil
	}
	cond, err := compileCondition(p.Condition)
	if err != nil {
		return apperror.NewValidation("invalid promotion condition").
			WithDetail("field", "condition").
			WithDetail("reason", err.Error())
	}
	p.cond = cond
	return nil
}

// Covers reports whether the promotion is active on the calendar day of onDate.
// Both window ends are inclusive.
func (p *Promotion) Covers(onDate time.Time) bool {
	if !p.Active {
		return false
	}
	day := clock.Date(onDate)
	return !day.Before(clock.Date(p.StartDate)) && !day.After(clock.Date(p.EndDate))
}

// Eligible evaluates the condition for a line. Without a condition every line is eligible.
// It never mutates p; a promotion that skipped Validate compiles its condition per call.
func (p *Promotion) Eligible(quantity int, unitPrice types.Money) (bool, error) {
	if p.Condition == "" {
		return true, nil
	}
	cond := p.cond
	if cond == nil {
		var err error
		if cond, err = compileCondition(p.Condition); err != nil {
			return false, err
		}
	}
	return cond.eval(quantity, unitPrice)
}

// Clone returns a copy sharing the compiled condition, which is safe for concurrent use.
func (p *Promotion) Clone() *Promotion {
	c := *p
	return &c
}

// precedes reports whether p wins a tie-break against q: latest start first, then lowest id.
func (p *Promotion) precedes(q *Promotion) bool {
	ps, qs := clock.Date(p.StartDate), clock.Date(q.StartDate)
	if !ps.Equal(qs) {
		return ps.After(qs)
	}
	return id.Less(p.ID, q.ID)
}

// IsValidKind reports whether k is one of the closed set.
func IsValidKind(k Kind) bool {
	switch k {
	case KindPercentage, KindTwoForOne, KindFixedPrice:
		return true
	}
	return false
}
