// Package payout handles settlements of store earnings to the owner.
package payout

import (
	"context"
	"strings"
	"time"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
	"storeadmin/internal/core/types"
)

// Status is the settlement state.
type Status string

const (
	StatusRequested  Status = "requested"
	StatusProcessing Status = "processing"
	StatusPaid       Status = "paid"
	StatusFailed     Status = "failed"
)

var transitions = map[Status][]Status{
	StatusRequested:  {StatusProcessing, StatusFailed},
	StatusProcessing: {StatusPaid, StatusFailed},
}

// Method is the payment rail used for the settlement.
type Method string

const (
	MethodBankTransfer Method = "bank_transfer"
	MethodUPI          Method = "upi"
)

// Valid reports whether m is a supported method.
func (m Method) Valid() bool {
	return m == MethodBankTransfer || m == MethodUPI
}

// Payout is one settlement request.
type Payout struct {
	entity.Base

	Reference   string      `db:"reference" json:"reference"`
	Status      Status      `db:"status" json:"status"`
	Method      Method      `db:"method" json:"method"`
	Amount      types.Money `db:"amount" json:"amount"`
	Currency    string      `db:"currency" json:"currency"`
	RequestedAt time.Time   `db:"requested_at" json:"requestedAt"`
	PaidAt      *time.Time  `db:"paid_at" json:"paidAt,omitempty"`
}

// Request creates a payout in the requested state.
func Request(storeID id.ID, amount types.Money, currency string, method Method) *Payout {
	base := entity.NewBase(storeID)
	return &Payout{
		Base:        base,
		Reference:   id.ShortCode("PAY", base.ID),
		Status:      StatusRequested,
		Method:      method,
		Amount:      amount,
		Currency:    strings.ToUpper(strings.TrimSpace(currency)),
		RequestedAt: base.CreatedAt,
	}
}

// Validate implements entity.Validatable.
func (p *Payout) Validate(ctx context.Context) error {
	if !p.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").WithDetail("field", "amount")
	}
	if len(p.Currency) != 3 {
		return apperror.NewValidation("currency must be an ISO 4217 code").WithDetail("field", "currency")
	}
	if !p.Method.Valid() {
		return apperror.NewValidation("unknown payout method").WithDetail("field", "method")
	}
	return nil
}

// TransitionTo moves the payout to next, stamping PaidAt on settlement.
func (p *Payout) TransitionTo(next Status, at time.Time) error {
	for _, allowed := range transitions[p.Status] {
		if allowed == next {
			p.Status = next
			if next == StatusPaid {
				p.PaidAt = &at
			}
			return nil
		}
	}
	return apperror.NewInvalidTransition("payout", string(p.Status), string(next))
}

// Clone returns an independent copy.
func (p *Payout) Clone() *Payout {
	c := *p
	if p.PaidAt != nil {
		t := *p.PaidAt
		c.PaidAt = &t
	}
	return &c
}
