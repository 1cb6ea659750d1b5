package predictionapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/price-predictor/internal/config"
	"github.com/price-predictor/internal/domain"
	"github.com/price-predictor/internal/domain/repository"
	"github.com/price-predictor/internal/pkg/errors"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// requiredKeys - ключи, без которых ответ считается неожиданным
var requiredKeys = []string{"prix_m2_estime", "ville_modele", "model"}

type client struct {
	httpClient *http.Client
	endpoint   string
	authHeader string
	timeout    time.Duration
	logger     *zap.Logger
}

// NewPredictionClient создает новый клиент для сервиса предсказания
func NewPredictionClient(cfg *config.PredictionAPIConfig, logger *zap.Logger) repository.PredictionRepository {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		endpoint:   cfg.Endpoint(),
		authHeader: BasicAuthHeader(cfg.Username, cfg.Password),
		timeout:    timeout,
		logger:     logger,
	}
}

// BasicAuthHeader возвращает значение заголовка Authorization для Basic-аутентификации
func BasicAuthHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// Predict отправляет описание объекта в сервис предсказания.
// Повторных попыток нет: любая ошибка возвращается вызывающему.
func (c *client) Predict(ctx context.Context, features domain.PropertyFeatures) (*domain.PredictionResult, error) {
	body, err := json.Marshal(features)
	if err != nil {
		c.logger.Error("Failed to marshal prediction request", zap.Error(err))
		return nil, errors.TransportFailure(fmt.Sprintf("failed to marshal request: %v", err))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.TransportFailure(fmt.Sprintf("failed to create request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.authHeader)

	c.logger.Debug("Calling prediction API",
		zap.String("endpoint", c.endpoint),
		zap.String("type_local", features.TypeLocal))

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request",
			zap.String("endpoint", c.endpoint),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err))
		return nil, errors.TransportFailure(err.Error())
	}
	defer resp.Body.Close()

	// 401 проверяется до общей проверки статуса
	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn("Prediction API rejected credentials", zap.String("endpoint", c.endpoint))
		return nil, errors.ErrUnauthorized
	}

	if resp.StatusCode >= http.StatusBadRequest {
		detail := fmt.Sprintf("%d %s for url: %s", resp.StatusCode, http.StatusText(resp.StatusCode), c.endpoint)
		c.logger.Error("Prediction API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("endpoint", c.endpoint))
		return nil, errors.TransportFailure(detail)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response", zap.Error(err))
		return nil, errors.TransportFailure(fmt.Sprintf("failed to read response: %v", err))
	}

	result, err := decodePrediction(raw)
	if err != nil {
		c.logger.Warn("Prediction API returned unexpected payload",
			zap.Int("status_code", resp.StatusCode),
			zap.Error(err))
		return nil, errors.ErrUnexpectedResponse
	}

	c.logger.Debug("Prediction API call successful",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
		zap.String("ville_modele", result.VilleModele),
		zap.String("model", result.Model))

	return result, nil
}

// decodePrediction проверяет, что тело является JSON-объектом со всеми
// обязательными ключами нужного типа. Лишние ключи игнорируются.
func decodePrediction(raw []byte) (*domain.PredictionResult, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if fields == nil {
		return nil, fmt.Errorf("response is not a JSON object")
	}

	for _, key := range requiredKeys {
		v, ok := fields[key]
		if !ok {
			return nil, fmt.Errorf("missing key %q", key)
		}
		if string(bytes.TrimSpace(v)) == "null" {
			return nil, fmt.Errorf("key %q is null", key)
		}
	}

	var result domain.PredictionResult
	if err := json.Unmarshal(fields["prix_m2_estime"], &result.PrixM2Estime); err != nil {
		return nil, fmt.Errorf("prix_m2_estime: %w", err)
	}
	if err := json.Unmarshal(fields["ville_modele"], &result.VilleModele); err != nil {
		return nil, fmt.Errorf("ville_modele: %w", err)
	}
	if err := json.Unmarshal(fields["model"], &result.Model); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	return &result, nil
}
