package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cost is a single expense record owned by a user. Costs are immutable once created.
type Cost struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Category    Category        `gorm:"type:varchar(20);not null" json:"category"`
	UserID      int64           `gorm:"column:user_id;not null;index:idx_costs_user_occurred,priority:1" json:"userid"`
	Sum         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"sum"`
	OccurredAt  time.Time       `gorm:"not null;index:idx_costs_user_occurred,priority:2" json:"occurred_at"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

func (c *Cost) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.OccurredAt.IsZero() {
		c.OccurredAt = c.CreatedAt
	}
	// stored in UTC so range predicates compare consistently on every driver
	c.OccurredAt = c.OccurredAt.UTC()

	return c.Validate()
}

func (c *Cost) Validate() error {
	if c.Description == "" {
		return errors.New("description is required")
	}

	if !c.Category.IsValid() {
		return fmt.Errorf("invalid category: %s", c.Category)
	}

	if c.UserID <= 0 {
		return errors.New("user id must be positive")
	}

	if c.Sum.IsNegative() {
		return errors.New("sum cannot be negative")
	}

	return nil
}

func (c *Cost) TableName() string {
	return "costs"
}
