package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// RequestLog is an append-only record of an HTTP request handled by the service
type RequestLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Level     string    `gorm:"type:varchar(10);not null" json:"level"`
	Service   string    `gorm:"type:varchar(100);not null" json:"service"`
	Method    string    `gorm:"type:varchar(10);not null" json:"method"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Status    int       `gorm:"not null;default:0" json:"status"`
	TraceID   string    `gorm:"type:varchar(64)" json:"trace_id,omitempty"`
	Message   string    `gorm:"type:text" json:"msg"`
	CreatedAt time.Time `gorm:"not null;index" json:"time"`
}

// NewRequestLog builds an info-level entry for a handled request
func NewRequestLog(service, method, url string, status int, traceID string) *RequestLog {
	level := LogLevelInfo
	if status >= 500 {
		level = LogLevelError
	} else if status >= 400 {
		level = LogLevelWarn
	}

	return &RequestLog{
		Level:   level,
		Service: service,
		Method:  method,
		URL:     url,
		Status:  status,
		TraceID: traceID,
		Message: fmt.Sprintf("Request received: %s %s", method, url),
	}
}

func (rl *RequestLog) String() string {
	return fmt.Sprintf("RequestLog[%s %s %s -> %d, Time: %s]",
		rl.Level, rl.Method, rl.URL, rl.Status, rl.CreatedAt.Format(time.RFC3339))
}

func (rl *RequestLog) TableName() string {
	return "request_logs"
}

func (rl *RequestLog) BeforeCreate(tx *gorm.DB) error {
	if rl.ID == uuid.Nil {
		rl.ID = uuid.New()
	}

	if rl.CreatedAt.IsZero() {
		rl.CreatedAt = time.Now().UTC()
	}
	return nil
}
