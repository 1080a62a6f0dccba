package events

import (
	"encoding/json"
	"time"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

const CostCreatedEventType = "cost.created"

// CostCreatedMessage announces a newly stored cost to downstream consumers
type CostCreatedMessage struct {
	Type        string          `json:"type"`
	CostID      string          `json:"cost_id"`
	UserID      int64           `json:"userid"`
	Category    models.Category `json:"category"`
	Sum         decimal.Decimal `json:"sum"`
	Description string          `json:"description"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Timestamp   time.Time       `json:"timestamp"`
}

func NewCostCreatedMessage(cost *models.Cost) *CostCreatedMessage {
	return &CostCreatedMessage{
		Type:        CostCreatedEventType,
		CostID:      cost.ID.String(),
		UserID:      cost.UserID,
		Category:    cost.Category,
		Sum:         cost.Sum,
		Description: cost.Description,
		OccurredAt:  cost.OccurredAt,
		Timestamp:   time.Now().UTC(),
	}
}

func (m *CostCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func CostCreatedMessageFromJSON(data []byte) (*CostCreatedMessage, error) {
	var msg CostCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
