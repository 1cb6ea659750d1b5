package dto

import (
	"time"

	"github.com/price-predictor/internal/domain"
)

// PredictResponse - успешный ответ JSON API: исходные данные и предсказание
type PredictResponse struct {
	Input  domain.PropertyFeatures `json:"input"`
	Result domain.PredictionResult `json:"result"`
}

// HealthResponse - ответ health-check
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
