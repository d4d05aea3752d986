package repository

import (
	"context"
	"errors"

	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrSendRecordNotFound = errors.New("SEND_RECORD_NOT_FOUND")
var ErrSendRecordDuplicate = errors.New("SEND_RECORD_DUPLICATE")
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

type SendRecordRepository interface {
	Create(ctx context.Context, record *model.SendRecord) error
	GetByID(id int64) (*model.SendRecord, error)
	GetByIdempotencyKey(key string) (*model.SendRecord, error)
	GetByRecipient(recipient string, limit, offset int) ([]model.SendRecord, error)
	UpdateFromPending(ctx context.Context, record *model.SendRecord) error
}

type SendRecord struct {
	db *gorm.DB
}

func NewSendRecordRepository(db *gorm.DB) SendRecordRepository {
	return &SendRecord{db: db}
}

func (r *SendRecord) Create(ctx context.Context, record *model.SendRecord) error {
	db := GetTx(ctx, r.db)
	err := db.Create(record).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrSendRecordDuplicate
	}

	return err
}

func (r *SendRecord) GetByID(id int64) (*model.SendRecord, error) {
	var record model.SendRecord

	err := r.db.Where("id = ?", id).First(&record).Error
	if err == nil {
		return &record, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSendRecordNotFound
	}

	return nil, err
}

func (r *SendRecord) GetByIdempotencyKey(key string) (*model.SendRecord, error) {
	var record model.SendRecord

	err := r.db.Where("idempotency_key = ?", key).First(&record).Error
	if err == nil {
		return &record, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSendRecordNotFound
	}

	return nil, err
}

func (r *SendRecord) GetByRecipient(recipient string, limit, offset int) ([]model.SendRecord, error) {
	var records []model.SendRecord

	err := r.db.Where("recipient = ?", recipient).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// UpdateFromPending applies the update only while the record is still PENDING.
// A zero row count means the record already reached a terminal status.
func (r *SendRecord) UpdateFromPending(ctx context.Context, record *model.SendRecord) error {
	db := GetTx(ctx, r.db)
	result := db.Model(record).
		Where("id = ? AND status = ?", record.ID, model.SendStatusPending).
		Updates(record)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
