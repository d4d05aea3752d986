package repository

import (
	"context"

	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	ListBySendRecordID(sendRecordID int64) ([]model.Event, error)
}

type Event struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &Event{db: db}
}

func (r *Event) Create(ctx context.Context, event *model.Event) error {
	db := GetTx(ctx, r.db)
	return db.Create(event).Error
}

func (r *Event) ListBySendRecordID(sendRecordID int64) ([]model.Event, error) {
	var events []model.Event

	err := r.db.Where("send_record_id = ?", sendRecordID).
		Order("created_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	return events, nil
}
