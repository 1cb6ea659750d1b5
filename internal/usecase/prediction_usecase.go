package usecase

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/price-predictor/internal/domain"
	"github.com/price-predictor/internal/domain/repository"
	"github.com/price-predictor/internal/pkg/errors"
	"github.com/price-predictor/internal/usecase/dto"
)

type requestIDKey struct{}

// WithRequestID кладёт идентификатор запроса в контекст для логов
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// PredictionUseCase - use case для получения оценки цены за м²
type PredictionUseCase struct {
	predictionRepo repository.PredictionRepository
	logger         *zap.Logger
}

// NewPredictionUseCase - создание нового PredictionUseCase
func NewPredictionUseCase(
	predictionRepo repository.PredictionRepository,
	logger *zap.Logger,
) *PredictionUseCase {
	return &PredictionUseCase{
		predictionRepo: predictionRepo,
		logger:         logger,
	}
}

// Handle обрабатывает один запрос и всегда возвращает ровно один Outcome.
// raw == nil - первый показ формы: ни валидация, ни вызов сервиса не выполняются.
func (uc *PredictionUseCase) Handle(ctx context.Context, raw dto.RawInput) domain.Outcome {
	if raw == nil {
		return domain.EmptyFormOutcome()
	}

	features, fieldErrors := ValidateInput(raw)
	if len(fieldErrors) > 0 {
		outcome := domain.FormInvalidOutcome(errors.ErrFormInvalid.Message, fieldErrors)
		uc.logOutcome(ctx, outcome, zap.Int("field_errors", len(fieldErrors)))
		return outcome
	}

	result, err := uc.predictionRepo.Predict(ctx, features)
	outcome := classify(features, result, err)
	uc.logOutcome(ctx, outcome)
	return outcome
}

func classify(features domain.PropertyFeatures, result *domain.PredictionResult, err error) domain.Outcome {
	if err == nil {
		if result == nil {
			return domain.UnexpectedResponseOutcome(errors.ErrUnexpectedResponse.Message)
		}
		return domain.SuccessOutcome(features, *result)
	}

	switch {
	case stderrors.Is(err, errors.ErrUnauthorized):
		return domain.UnauthorizedOutcome(errors.ErrUnauthorized.Message)
	case stderrors.Is(err, errors.ErrUnexpectedResponse):
		return domain.UnexpectedResponseOutcome(errors.ErrUnexpectedResponse.Message)
	}

	detail := err.Error()
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && appErr.Code == errors.CodeTransportFailure {
		detail = errors.TransportDetail(appErr)
	}
	return domain.TransportFailureOutcome(errors.TransportFailure(detail).Message, detail)
}

func (uc *PredictionUseCase) logOutcome(ctx context.Context, outcome domain.Outcome, extra ...zap.Field) {
	fields := append([]zap.Field{
		zap.String("request_id", requestID(ctx)),
		zap.String("outcome", outcome.Kind.String()),
	}, extra...)

	switch outcome.Kind {
	case domain.OutcomeSuccess:
		uc.logger.Info("Prediction completed", append(fields,
			zap.Float64("prix_m2_estime", outcome.Result.PrixM2Estime),
			zap.String("ville_modele", outcome.Result.VilleModele))...)
	case domain.OutcomeFormInvalid:
		uc.logger.Info("Prediction form rejected", fields...)
	case domain.OutcomeTransportFailure:
		uc.logger.Error("Prediction failed", append(fields, zap.String("detail", outcome.Detail))...)
	default:
		uc.logger.Warn("Prediction failed", fields...)
	}
}
