package v1

import (
	"strings"

	"github.com/Behyna/sms-services/dispatcher/internal/constants"
	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"github.com/Behyna/sms-services/dispatcher/internal/publishers"
	"github.com/Behyna/sms-services/dispatcher/internal/service"
	"github.com/Behyna/sms-services/dispatcher/pkg/smsgateway"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger       *zap.Logger
	service      service.DispatchService
	suppressions service.SuppressionService
	publisher    publishers.DispatchPublisher
	validate     *validator.Validate
}

func NewHandler(logger *zap.Logger, service service.DispatchService, suppressions service.SuppressionService,
	publisher publishers.DispatchPublisher, validate *validator.Validate) *Handler {
	return &Handler{
		logger:       logger,
		service:      service,
		suppressions: suppressions,
		publisher:    publisher,
		validate:     validate,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) Dispatch(c *fiber.Ctx) error {
	ctx := c.UserContext()

	request, err := h.parseDispatchRequest(c)
	if request == nil {
		return err
	}

	record, err := h.service.Dispatch(ctx, buildDispatchCommand(request))
	if err != nil {
		h.logger.Error("Dispatch failed",
			zap.Error(err),
			zap.String("templateKey", request.TemplateKey),
			zap.String("recipient", request.Recipient),
		)

		return err
	}

	return c.Status(fiber.StatusCreated).JSON(NewSendRecordResponse(record))
}

func (h *Handler) DispatchAsync(c *fiber.Ctx) error {
	ctx := c.UserContext()

	request, err := h.parseDispatchRequest(c)
	if request == nil {
		return err
	}

	if err := h.publisher.PublishDispatch(ctx, buildDispatchCommand(request)); err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(QueuedResponse{Status: "queued"})
}

func (h *Handler) GetSend(c *fiber.Ctx) error {
	ctx := c.UserContext()

	record, err := h.service.GetSendByKey(ctx, c.Params("key"))
	if err != nil {
		return err
	}

	return c.JSON(NewSendRecordResponse(record))
}

func (h *Handler) GetSends(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request GetSendsRequest
	if err := c.QueryParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	if err := h.validate.Struct(request); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": err.Error(),
		})
	}

	if request.Limit <= 0 || request.Limit > 100 {
		request.Limit = 20
	}

	records, err := h.service.GetSends(ctx, service.GetSendsQuery{
		Recipient: request.Recipient,
		Limit:     request.Limit,
		Offset:    request.Offset,
	})
	if err != nil {
		return err
	}

	responses := make([]SendRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, NewSendRecordResponse(&records[i]))
	}

	return c.JSON(responses)
}

func (h *Handler) Suppress(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SuppressRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	if err := h.validate.Struct(request); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": err.Error(),
		})
	}

	err := h.suppressions.Suppress(ctx, service.SuppressCommand{
		Recipient: smsgateway.NormalizeRecipient(request.Recipient),
		Reason:    model.SuppressionReason(request.Reason),
	})
	if err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// buildDispatchCommand folds the optional tax id into the template variables
// so invoice templates can render it without a dedicated field downstream.
func buildDispatchCommand(request *DispatchRequest) service.DispatchCommand {
	data := request.Data
	if request.TaxID != "" {
		if data == nil {
			data = make(map[string]string, 1)
		}
		data["tax_id"] = request.TaxID
	}

	return service.DispatchCommand{
		TemplateKey: request.TemplateKey,
		Language:    request.Language,
		Recipient:   request.Recipient,
		Data:        data,
		Metadata:    request.Metadata,
	}
}

// parseDispatchRequest writes the error response itself on bad input and
// returns a nil request; callers must bail out when the request is nil.
func (h *Handler) parseDispatchRequest(c *fiber.Ctx) (*DispatchRequest, error) {
	var request DispatchRequest

	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	if err := h.validate.Struct(request); err != nil {
		var fields []string
		for _, fieldErr := range err.(validator.ValidationErrors) {
			fields = append(fields, fieldErr.Field())
		}

		h.logger.Warn("Invalid dispatch request", zap.Strings("fields", fields))

		return nil, c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": "invalid fields: " + strings.Join(fields, ", "),
		})
	}

	return &request, nil
}
