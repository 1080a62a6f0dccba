package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CostItem is the projection of a cost inside a monthly report
type CostItem struct {
	Sum         decimal.Decimal
	Description string
	Day         int
}

type costItemJSON struct {
	Sum         json.Number `json:"sum"`
	Description string      `json:"description"`
	Day         int         `json:"day"`
}

// MarshalJSON renders the sum as a JSON number rather than a quoted string
func (i CostItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(costItemJSON{
		Sum:         json.Number(i.Sum.String()),
		Description: i.Description,
		Day:         i.Day,
	})
}

func (i *CostItem) UnmarshalJSON(data []byte) error {
	var raw costItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	sum, err := decimal.NewFromString(raw.Sum.String())
	if err != nil {
		return fmt.Errorf("invalid sum %q: %w", raw.Sum, err)
	}

	i.Sum = sum
	i.Description = raw.Description
	i.Day = raw.Day
	return nil
}

// CategoryCosts holds the items of one taxonomy category.
// It serializes as a single-key object: {"food": [...]}.
type CategoryCosts struct {
	Category Category
	Items    []CostItem
}

func (cc CategoryCosts) MarshalJSON() ([]byte, error) {
	items := cc.Items
	if items == nil {
		items = []CostItem{}
	}
	return json.Marshal(map[string][]CostItem{string(cc.Category): items})
}

func (cc *CategoryCosts) UnmarshalJSON(data []byte) error {
	var raw map[string][]CostItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw) != 1 {
		return fmt.Errorf("category entry must have exactly one key, got %d", len(raw))
	}

	for name, items := range raw {
		cc.Category = Category(name)
		cc.Items = items
		if cc.Items == nil {
			cc.Items = []CostItem{}
		}
	}
	return nil
}

// ReportCosts is the ordered per-category breakdown of a monthly report
type ReportCosts []CategoryCosts

// Items returns the items recorded for a category, or nil if the category is absent
func (rc ReportCosts) Items(category Category) []CostItem {
	for _, cc := range rc {
		if cc.Category == category {
			return cc.Items
		}
	}
	return nil
}

// MatchesTaxonomy reports whether the breakdown has exactly one entry per
// taxonomy category, in taxonomy order
func (rc ReportCosts) MatchesTaxonomy(taxonomy []Category) bool {
	if len(rc) != len(taxonomy) {
		return false
	}
	for i, c := range taxonomy {
		if rc[i].Category != c {
			return false
		}
	}
	return true
}

// Value implements driver.Valuer interface
func (rc ReportCosts) Value() (driver.Value, error) {
	if rc == nil {
		rc = ReportCosts{}
	}
	bytes, err := json.Marshal(rc)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (rc *ReportCosts) Scan(value interface{}) error {
	if value == nil {
		*rc = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ReportCosts", value)
	}

	if len(bytes) == 0 {
		*rc = nil
		return nil
	}

	return json.Unmarshal(bytes, rc)
}

// MonthlyReport is the spending breakdown of one user for one calendar month
type MonthlyReport struct {
	UserID int64       `json:"userid"`
	Year   int         `json:"year"`
	Month  int         `json:"month"`
	Costs  ReportCosts `json:"costs"`
}

// Report is the persisted form of a monthly report for a closed period.
// Rows are write-once per (user_id, year, month).
type Report struct {
	ID        uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	UserID    int64       `gorm:"column:user_id;not null;uniqueIndex:idx_reports_user_period,priority:1" json:"userid"`
	Year      int         `gorm:"not null;uniqueIndex:idx_reports_user_period,priority:2" json:"year"`
	Month     int         `gorm:"not null;uniqueIndex:idx_reports_user_period,priority:3" json:"month"`
	Costs     ReportCosts `gorm:"type:text;not null" json:"costs"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
}

// NewReport builds the persisted form of a monthly report
func NewReport(mr *MonthlyReport) *Report {
	return &Report{
		UserID: mr.UserID,
		Year:   mr.Year,
		Month:  mr.Month,
		Costs:  mr.Costs,
	}
}

// ToMonthlyReport returns the stored report as served to clients
func (r *Report) ToMonthlyReport() *MonthlyReport {
	return &MonthlyReport{
		UserID: r.UserID,
		Year:   r.Year,
		Month:  r.Month,
		Costs:  r.Costs,
	}
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (r *Report) TableName() string {
	return "reports"
}
