package usecase

import (
	"strconv"
	"strings"

	"github.com/price-predictor/internal/domain"
	"github.com/price-predictor/internal/pkg/validator"
	"github.com/price-predictor/internal/usecase/dto"
)

const (
	reasonRequired    = "This field is required."
	reasonWholeNumber = "Enter a whole number."
)

// ValidateInput проверяет поля формы и собирает все ошибки сразу.
// Возвращает PropertyFeatures только если ошибок нет; иначе - карту field -> причина.
func ValidateInput(raw dto.RawInput) (domain.PropertyFeatures, map[string]string) {
	fieldErrors := make(map[string]string)
	var req dto.PredictRequest

	req.SurfaceBati = requiredInt(raw, dto.FieldSurfaceBati, fieldErrors)
	req.NombrePieces = requiredInt(raw, dto.FieldNombrePieces, fieldErrors)
	req.TypeLocal = strings.TrimSpace(raw[dto.FieldTypeLocal])
	req.SurfaceTerrain = defaultedInt(raw, dto.FieldSurfaceTerrain, domain.DefaultSurfaceTerrain, fieldErrors)
	req.NombreLots = defaultedInt(raw, dto.FieldNombreLots, domain.DefaultNombreLots, fieldErrors)

	// Ошибки разбора важнее правил min/oneof для того же поля
	for field, reason := range validator.FieldErrors(validator.Validate(&req)) {
		if _, exists := fieldErrors[field]; !exists {
			fieldErrors[field] = reason
		}
	}

	if len(fieldErrors) > 0 {
		return domain.PropertyFeatures{}, fieldErrors
	}

	return domain.PropertyFeatures{
		SurfaceBati:    req.SurfaceBati,
		NombrePieces:   req.NombrePieces,
		TypeLocal:      req.TypeLocal,
		SurfaceTerrain: req.SurfaceTerrain,
		NombreLots:     req.NombreLots,
	}, nil
}

func requiredInt(raw dto.RawInput, field string, fieldErrors map[string]string) int {
	value := strings.TrimSpace(raw[field])
	if value == "" {
		fieldErrors[field] = reasonRequired
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		fieldErrors[field] = reasonWholeNumber
		return 0
	}
	return n
}

// defaultedInt подставляет def для пустого значения. Для surface_terrain def=0,
// и правило omitempty в PredictRequest пропускает проверку минимума.
func defaultedInt(raw dto.RawInput, field string, def int, fieldErrors map[string]string) int {
	value := strings.TrimSpace(raw[field])
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		fieldErrors[field] = reasonWholeNumber
		return def
	}
	return n
}
