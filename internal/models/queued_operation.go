package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// OperationType represents the kind of mutation buffered while offline
type OperationType string

const (
	OperationCreate OperationType = "create"
	OperationUpdate OperationType = "update"
	OperationDelete OperationType = "delete"
)

// OperationPayload represents the mutation body carried by a queued operation
type OperationPayload map[string]interface{}

// Value implements driver.Valuer interface for OperationPayload
func (p OperationPayload) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner interface for OperationPayload
func (p *OperationPayload) Scan(value interface{}) error {
	if value == nil {
		*p = make(OperationPayload)
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, p)
}

// QueuedOperation is a mutating call buffered while connectivity is absent.
// Row order (auto-increment ID) is enqueue order.
type QueuedOperation struct {
	gorm.Model
	OpID        string           `json:"op_id" gorm:"uniqueIndex;not null"`
	Type        OperationType    `json:"type" gorm:"not null"`
	TargetTable string           `json:"target_table" gorm:"not null"`
	Payload     OperationPayload `json:"payload" gorm:"type:json"`
	EnqueuedAt  time.Time        `json:"enqueued_at"`
	RetryCount  int              `json:"retry_count" gorm:"default:0"`
}

// ShouldDrop returns true once the operation has exhausted the replay ceiling
func (o *QueuedOperation) ShouldDrop(maxRetries int) bool {
	return o.RetryCount >= maxRetries
}

// TableName specifies the table name for GORM
func (QueuedOperation) TableName() string {
	return "queued_operations"
}
