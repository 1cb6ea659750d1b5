package repository

import (
	"context"

	"github.com/price-predictor/internal/domain"
)

// PredictionRepository определяет методы для работы с удалённым сервисом предсказания
type PredictionRepository interface {
	// Predict отправляет описание объекта и возвращает оценку цены за м².
	// Ошибки классифицированы через internal/pkg/errors:
	// ErrUnauthorized, ErrUnexpectedResponse или TransportFailure.
	Predict(ctx context.Context, features domain.PropertyFeatures) (*domain.PredictionResult, error)
}
