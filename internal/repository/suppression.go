package repository

import (
	"context"
	"errors"

	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type SuppressionRepository interface {
	Exists(recipient string) (bool, error)
	Create(ctx context.Context, suppression *model.Suppression) error
}

type Suppression struct {
	db *gorm.DB
}

func NewSuppressionRepository(db *gorm.DB) SuppressionRepository {
	return &Suppression{db: db}
}

func (r *Suppression) Exists(recipient string) (bool, error) {
	var count int64

	err := r.db.Model(&model.Suppression{}).
		Where("recipient = ?", recipient).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create is idempotent: suppressing an already-suppressed recipient is a no-op.
func (r *Suppression) Create(ctx context.Context, suppression *model.Suppression) error {
	db := GetTx(ctx, r.db)
	err := db.Create(suppression).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return nil
	}

	return err
}
