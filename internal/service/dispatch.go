package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Behyna/sms-services/dispatcher/internal/config"
	"github.com/Behyna/sms-services/dispatcher/internal/constants"
	"github.com/Behyna/sms-services/dispatcher/internal/metrics"
	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"github.com/Behyna/sms-services/dispatcher/internal/repository"
	"github.com/Behyna/sms-services/dispatcher/pkg/smsgateway"
	"go.uber.org/zap"
)

type DispatchService interface {
	Dispatch(ctx context.Context, cmd DispatchCommand) (*model.SendRecord, error)
	GetSendByKey(ctx context.Context, idempotencyKey string) (*model.SendRecord, error)
	GetSends(ctx context.Context, query GetSendsQuery) ([]model.SendRecord, error)
}

type dispatch struct {
	sendRepo     repository.SendRecordRepository
	eventRepo    repository.EventRepository
	templateRepo repository.TemplateRepository
	txManager    repository.TxManager
	suppressions SuppressionService
	gateway      smsgateway.Gateway
	sending      config.Sending
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewDispatchService(sendRepo repository.SendRecordRepository, eventRepo repository.EventRepository,
	templateRepo repository.TemplateRepository, txManager repository.TxManager,
	suppressions SuppressionService, gateway smsgateway.Gateway, cfg *config.Config,
	m *metrics.Metrics, logger *zap.Logger) DispatchService {
	return &dispatch{
		sendRepo:     sendRepo,
		eventRepo:    eventRepo,
		templateRepo: templateRepo,
		txManager:    txManager,
		suppressions: suppressions,
		gateway:      gateway,
		sending:      cfg.Sending,
		metrics:      m,
		logger:       logger,
	}
}

// Dispatch runs the full pipeline for one logical notification. The gates
// (feature flag, recipient shape, suppression, template, duplicate) all fail
// before any record exists; from the pending insert onward every outcome
// leaves an auditable send record and event.
func (d *dispatch) Dispatch(ctx context.Context, cmd DispatchCommand) (*model.SendRecord, error) {
	start := time.Now()

	if !d.sending.Enabled {
		d.logger.Warn("Dispatch rejected, sending globally disabled",
			zap.String("templateKey", cmd.TemplateKey))
		return nil, NewServiceError(constants.ErrCodeSendingDisabled, ErrSendingDisabled)
	}

	language := cmd.Language
	if language == "" {
		language = d.sending.DefaultLanguage
	}

	recipient := smsgateway.NormalizeRecipient(cmd.Recipient)
	if !smsgateway.ValidateRecipient(recipient) {
		d.logger.Warn("Dispatch rejected, invalid recipient",
			zap.String("recipient", cmd.Recipient),
			zap.String("templateKey", cmd.TemplateKey))
		return nil, NewServiceError(constants.ErrCodeInvalidRecipient, ErrInvalidRecipient)
	}

	suppressed, err := d.suppressions.IsSuppressed(ctx, recipient)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	if suppressed {
		d.logger.Info("Dispatch blocked by suppression list",
			zap.String("recipient", recipient),
			zap.String("templateKey", cmd.TemplateKey))

		if d.metrics != nil {
			d.metrics.RecordSuppressionBlock()
		}

		return nil, NewServiceError(constants.ErrCodeRecipientSuppressed, ErrRecipientSuppressed)
	}

	template, err := d.templateRepo.FindActive(cmd.TemplateKey, language)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			d.logger.Warn("No active template",
				zap.String("templateKey", cmd.TemplateKey),
				zap.String("language", language))
			return nil, NewServiceError(constants.ErrCodeTemplateNotFound, ErrTemplateNotFound)
		}

		d.logger.Error("Failed to look up template",
			zap.Error(err),
			zap.String("templateKey", cmd.TemplateKey))
		return nil, NewServiceError(constants.ErrCodeInternalError, ErrDatabase)
	}

	idempotencyKey, err := DeriveIdempotencyKey(cmd.TemplateKey, recipient, cmd.Metadata)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	existing, err := d.sendRepo.GetByIdempotencyKey(idempotencyKey)
	if err == nil {
		d.logger.Info("Duplicate dispatch, returning existing record",
			zap.String("idempotencyKey", idempotencyKey),
			zap.Int64("sendID", existing.ID),
			zap.String("status", string(existing.Status)))

		if d.metrics != nil {
			d.metrics.RecordDuplicateHit()
		}

		return existing, nil
	}
	if !errors.Is(err, repository.ErrSendRecordNotFound) {
		d.logger.Error("Failed to check for duplicate dispatch",
			zap.Error(err),
			zap.String("idempotencyKey", idempotencyKey))
		return nil, NewServiceError(constants.ErrCodeInternalError, ErrDatabase)
	}

	body := Render(template.Body, cmd.Data)
	if template.MaxLength > 0 {
		// Over-long renders are truncated rather than rejected: delivery wins
		// over strict correctness, even if the cut lands mid-word.
		body = Truncate(body, template.MaxLength)
	}

	measurement := smsgateway.Measure(body)

	record := &model.SendRecord{
		IdempotencyKey: idempotencyKey,
		TemplateKey:    cmd.TemplateKey,
		Language:       language,
		Recipient:      recipient,
		Body:           body,
		Status:         model.SendStatusPending,
		Length:         measurement.Length,
		Parts:          measurement.Parts,
		Encoding:       string(measurement.Encoding),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := d.sendRepo.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrSendRecordDuplicate) {
			// Lost the insert race to a concurrent call with the same logical
			// event. Return the winner's record.
			winner, readErr := d.sendRepo.GetByIdempotencyKey(idempotencyKey)
			if readErr != nil {
				d.logger.Error("Failed to re-read record after insert race",
					zap.Error(readErr),
					zap.String("idempotencyKey", idempotencyKey))
				return nil, NewServiceError(constants.ErrCodeInternalError, ErrDatabase)
			}

			d.logger.Info("Concurrent duplicate dispatch, returning existing record",
				zap.String("idempotencyKey", idempotencyKey),
				zap.Int64("sendID", winner.ID))

			if d.metrics != nil {
				d.metrics.RecordDuplicateHit()
			}

			return winner, nil
		}

		d.logger.Error("Failed to persist pending send record",
			zap.Error(err),
			zap.String("idempotencyKey", idempotencyKey))
		return nil, NewServiceError(constants.ErrCodeInternalError, ErrDatabase)
	}

	if d.metrics != nil {
		d.metrics.RecordMessageParts(record.Parts)
	}

	result, sendErr := d.gateway.Send(ctx, recipient, body, cmd.Metadata)
	if sendErr != nil {
		deliveryErr := d.recordDeliveryFailure(ctx, record, sendErr)

		if d.metrics != nil {
			d.metrics.RecordDispatch(string(record.Status), time.Since(start))
		}

		return nil, deliveryErr
	}

	d.recordDeliverySuccess(ctx, record, result)

	if d.metrics != nil {
		d.metrics.RecordDispatch(string(model.SendStatusSent), time.Since(start))
	}

	return record, nil
}

func (d *dispatch) GetSendByKey(ctx context.Context, idempotencyKey string) (*model.SendRecord, error) {
	record, err := d.sendRepo.GetByIdempotencyKey(idempotencyKey)
	if err != nil {
		if errors.Is(err, repository.ErrSendRecordNotFound) {
			return nil, NewServiceError(constants.ErrCodeSendNotFound, ErrSendNotFound)
		}

		return nil, NewServiceError(constants.ErrCodeInternalError, ErrDatabase)
	}

	return record, nil
}

func (d *dispatch) GetSends(ctx context.Context, query GetSendsQuery) ([]model.SendRecord, error) {
	records, err := d.sendRepo.GetByRecipient(smsgateway.NormalizeRecipient(query.Recipient), query.Limit, query.Offset)
	if err != nil {
		d.logger.Error("Failed to list send records",
			zap.Error(err),
			zap.String("recipient", query.Recipient))
		return nil, NewServiceError(constants.ErrCodeInternalError, ErrDatabase)
	}

	return records, nil
}

func (d *dispatch) recordDeliverySuccess(ctx context.Context, record *model.SendRecord, result smsgateway.Result) {
	sentAt := time.Now()
	record.Status = model.SendStatusSent
	record.ProviderMsgID = &result.ProviderID
	record.SentAt = &sentAt
	record.UpdatedAt = sentAt

	payload, _ := json.Marshal(map[string]any{
		"provider_msg_id": result.ProviderID,
		"length":          result.Length,
		"parts":           result.Parts,
	})

	event := &model.Event{
		SendRecordID: record.ID,
		Type:         model.EventTypeSent,
		Payload:      string(payload),
		CreatedAt:    sentAt,
	}

	err := d.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := d.sendRepo.UpdateFromPending(ctx, record); err != nil {
			return err
		}

		return d.eventRepo.Create(ctx, event)
	})
	if err != nil {
		// The provider accepted the message; losing the status update is an
		// audit gap, not a delivery failure.
		d.logger.Error("Failed to record successful delivery",
			zap.Error(err),
			zap.Int64("sendID", record.ID),
			zap.String("providerMsgID", result.ProviderID))
		return
	}

	d.logger.Info("Notification sent",
		zap.Int64("sendID", record.ID),
		zap.String("providerMsgID", result.ProviderID),
		zap.Int("parts", result.Parts))
}

// recordDeliveryFailure persists the terminal status and event for a failed
// delivery, then returns the delivery error for the caller to handle. An
// INVALID_NUMBER rejection marks the record bounced and suppresses the
// recipient so nothing is sent to it again.
func (d *dispatch) recordDeliveryFailure(ctx context.Context, record *model.SendRecord, sendErr error) error {
	now := time.Now()
	errMsg := sendErr.Error()
	code := smsgateway.CodeOf(sendErr)

	record.LastError = &errMsg
	record.UpdatedAt = now

	eventType := model.EventTypeFailed
	if code == smsgateway.ErrorCodeInvalidNumber {
		record.Status = model.SendStatusBounced
		eventType = model.EventTypeBounced
	} else {
		record.Status = model.SendStatusFailed
	}

	payload, _ := json.Marshal(map[string]any{
		"error": errMsg,
		"code":  code,
	})

	event := &model.Event{
		SendRecordID: record.ID,
		Type:         eventType,
		Payload:      string(payload),
		CreatedAt:    now,
	}

	err := d.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := d.sendRepo.UpdateFromPending(ctx, record); err != nil {
			return err
		}

		return d.eventRepo.Create(ctx, event)
	})
	if err != nil {
		d.logger.Error("Failed to record delivery failure",
			zap.Error(err),
			zap.Int64("sendID", record.ID))
	}

	if code == smsgateway.ErrorCodeInvalidNumber {
		suppressCmd := SuppressCommand{Recipient: record.Recipient, Reason: model.SuppressionReasonInvalidNumber}
		if err := d.suppressions.Suppress(ctx, suppressCmd); err != nil {
			d.logger.Error("Failed to suppress bounced recipient",
				zap.Error(err),
				zap.String("recipient", record.Recipient))
		}
	}

	d.logger.Warn("Notification delivery failed",
		zap.Int64("sendID", record.ID),
		zap.String("status", string(record.Status)),
		zap.String("code", code),
		zap.Error(sendErr))

	if d.metrics != nil && code != "" {
		d.metrics.RecordDeliveryError(code)
	}

	return NewServiceError(constants.ErrCodeDeliveryError, sendErr)
}
