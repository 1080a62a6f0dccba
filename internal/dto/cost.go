package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cost Request DTOs

// AddCostRequest represents the request payload for recording an expense
type AddCostRequest struct {
	Description string           `json:"description" validate:"required,min=1,max=255"`
	Category    string           `json:"category" validate:"required,category"`
	UserID      int64            `json:"userid" validate:"required,gt=0"`
	Sum         *decimal.Decimal `json:"sum" validate:"required,gte=0"`
	OccurredAt  *time.Time       `json:"occurred_at,omitempty"`
	// CreatedAt is accepted as an alias of OccurredAt for older clients
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Timestamp returns the client supplied time of the expense, if any
func (r *AddCostRequest) Timestamp() *time.Time {
	if r.OccurredAt != nil {
		return r.OccurredAt
	}
	return r.CreatedAt
}
