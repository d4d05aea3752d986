package service

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"github.com/Behyna/sms-services/dispatcher/internal/repository"
	"go.uber.org/zap"
)

type SuppressionService interface {
	IsSuppressed(ctx context.Context, recipient string) (bool, error)
	Suppress(ctx context.Context, cmd SuppressCommand) error
}

type suppression struct {
	suppressionRepo repository.SuppressionRepository
	logger          *zap.Logger
}

func NewSuppressionService(suppressionRepo repository.SuppressionRepository, logger *zap.Logger) SuppressionService {
	return &suppression{suppressionRepo: suppressionRepo, logger: logger}
}

func (s *suppression) IsSuppressed(ctx context.Context, recipient string) (bool, error) {
	exists, err := s.suppressionRepo.Exists(recipient)
	if err != nil {
		s.logger.Error("Failed to check suppression list",
			zap.Error(err),
			zap.String("recipient", recipient))
		return false, ErrDatabase
	}

	return exists, nil
}

// Suppress is idempotent: suppressing an already-suppressed recipient is a
// no-op, not an error.
func (s *suppression) Suppress(ctx context.Context, cmd SuppressCommand) error {
	entry := &model.Suppression{
		Recipient:    cmd.Recipient,
		Reason:       cmd.Reason,
		SuppressedAt: time.Now(),
	}

	if err := s.suppressionRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to add suppression entry",
			zap.Error(err),
			zap.String("recipient", cmd.Recipient),
			zap.String("reason", string(cmd.Reason)))
		return ErrDatabase
	}

	s.logger.Info("Recipient suppressed",
		zap.String("recipient", cmd.Recipient),
		zap.String("reason", string(cmd.Reason)))

	return nil
}
