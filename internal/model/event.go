package model

import "time"

type EventType string

const (
	EventTypeSent      EventType = "sent"
	EventTypeFailed    EventType = "failed"
	EventTypeBounced   EventType = "bounced"
	EventTypeDelivered EventType = "delivered"
)

// Event is an append-only log entry tied to a send record. The dispatch path
// only ever inserts rows here.
type Event struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;<-:create"`
	SendRecordID int64     `gorm:"column:send_record_id;not null;index:idx_event_send_record;<-:create"`
	Type         EventType `gorm:"column:type;size:32;<-:create"`
	Payload      string    `gorm:"column:payload;type:text;<-:create"`
	CreatedAt    time.Time `gorm:"column:created_at;<-:create"`

	SendRecord SendRecord `gorm:"foreignKey:SendRecordID"`
}

func (Event) TableName() string { return "events" }
