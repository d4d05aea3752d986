package model

import "time"

type SuppressionReason string

const (
	SuppressionReasonInvalidNumber    SuppressionReason = "invalid_number"
	SuppressionReasonOptedOut         SuppressionReason = "opted_out"
	SuppressionReasonRepeatedFailures SuppressionReason = "repeated_failures"
	SuppressionReasonManual           SuppressionReason = "manual"
)

// Suppression blocks all sends to a recipient until the row is removed.
type Suppression struct {
	ID           int64             `gorm:"primaryKey;autoIncrement;<-:create"`
	Recipient    string            `gorm:"column:recipient;size:32;uniqueIndex:idx_suppression_recipient"`
	Reason       SuppressionReason `gorm:"column:reason;size:32"`
	SuppressedAt time.Time         `gorm:"column:suppressed_at"`
}

func (Suppression) TableName() string { return "suppressions" }
