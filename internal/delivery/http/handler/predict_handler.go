package handler

import (
	"bytes"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/price-predictor/internal/delivery/http/middleware"
	"github.com/price-predictor/internal/domain"
	"github.com/price-predictor/internal/pkg/errors"
	"github.com/price-predictor/internal/pkg/utils"
	"github.com/price-predictor/internal/usecase"
	"github.com/price-predictor/internal/usecase/dto"
	"go.uber.org/zap"
)

// PredictHandler - обработчик формы и JSON API предсказания
type PredictHandler struct {
	predictionUC *usecase.PredictionUseCase
	views        *Views
	logger       *zap.Logger
}

// NewPredictHandler - создание нового PredictHandler
func NewPredictHandler(predictionUC *usecase.PredictionUseCase, views *Views, logger *zap.Logger) *PredictHandler {
	return &PredictHandler{
		predictionUC: predictionUC,
		views:        views,
		logger:       logger,
	}
}

// ShowForm - GET /: пустая форма
func (h *PredictHandler) ShowForm(c *fiber.Ctx) error {
	outcome := h.predictionUC.Handle(h.requestContext(c), nil)
	return h.render(c, nil, outcome)
}

// SubmitForm - POST /: валидация, запрос к сервису и отрисовка формы или результата
func (h *PredictHandler) SubmitForm(c *fiber.Ctx) error {
	raw, err := rawInputFromForm(c)
	if err != nil {
		h.logger.Warn("Failed to parse form", zap.Error(err))
		raw = dto.RawInput{}
	}

	outcome := h.predictionUC.Handle(h.requestContext(c), raw)
	return h.render(c, raw, outcome)
}

// Predict godoc
// @Summary Оценка цены за м²
// @Description Проверяет описание объекта и запрашивает оценку у сервиса предсказания. Значения полей могут быть строками или числами.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param request body dto.PredictRequest true "Описание объекта"
// @Success 200 {object} utils.SuccessResponse{data=dto.PredictResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/predict [post]
func (h *PredictHandler) Predict(c *fiber.Ctx) error {
	raw, err := dto.RawInputFromJSON(c.Body())
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		}))
	}

	outcome := h.predictionUC.Handle(h.requestContext(c), raw)

	switch outcome.Kind {
	case domain.OutcomeSuccess:
		return utils.SendSuccess(c, dto.PredictResponse{
			Input:  *outcome.Input,
			Result: *outcome.Result,
		}, &utils.Meta{RequestID: middleware.GetRequestID(c)})
	case domain.OutcomeFormInvalid:
		details := make(map[string]interface{}, len(outcome.FieldErrors))
		for field, reason := range outcome.FieldErrors {
			details[field] = reason
		}
		return utils.SendError(c, errors.ErrFormInvalid.WithDetails(details))
	case domain.OutcomeUnauthorized:
		return utils.SendError(c, errors.ErrUnauthorized)
	case domain.OutcomeUnexpectedResponse:
		return utils.SendError(c, errors.ErrUnexpectedResponse)
	case domain.OutcomeTransportFailure:
		return utils.SendError(c, errors.TransportFailure(outcome.Detail))
	default:
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
}

func (h *PredictHandler) requestContext(c *fiber.Ctx) context.Context {
	return usecase.WithRequestID(c.UserContext(), middleware.GetRequestID(c))
}

// render отрисовывает вид, выбранный Outcome. Ответ всегда 200:
// повторный показ формы с ошибкой не является сбоем сервера.
func (h *PredictHandler) render(c *fiber.Ctx, raw dto.RawInput, outcome domain.Outcome) error {
	var data interface{}
	if outcome.View() == domain.ViewResult {
		data = newResultPage(outcome)
	} else {
		data = newFormPage(raw, outcome)
	}

	var buf bytes.Buffer
	if err := h.views.Render(&buf, outcome.View(), data); err != nil {
		h.logger.Error("Failed to render view", zap.String("view", outcome.View()), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// rawInputFromForm собирает только присланные поля, чтобы отличать
// отсутствующее значение от пустого.
func rawInputFromForm(c *fiber.Ctx) (dto.RawInput, error) {
	raw := make(dto.RawInput, len(dto.FormFields))

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for _, field := range dto.FormFields {
			if values, ok := form.Value[field]; ok && len(values) > 0 {
				raw[field] = values[0]
			}
		}
		return raw, nil
	}

	args := c.Request().PostArgs()
	for _, field := range dto.FormFields {
		if args.Has(field) {
			raw[field] = string(args.Peek(field))
		}
	}
	return raw, nil
}
