package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Имена полей формы; совпадают с ключами JSON, который уходит в сервис предсказания
const (
	FieldSurfaceBati    = "surface_bati"
	FieldNombrePieces   = "nombre_pieces"
	FieldTypeLocal      = "type_local"
	FieldSurfaceTerrain = "surface_terrain"
	FieldNombreLots     = "nombre_lots"
)

// FormFields - все поля формы в порядке отображения
var FormFields = []string{
	FieldSurfaceBati,
	FieldNombrePieces,
	FieldTypeLocal,
	FieldSurfaceTerrain,
	FieldNombreLots,
}

// RawInput - значения полей в том виде, в каком они пришли. nil означает первый показ формы.
type RawInput map[string]string

// RawInputFromJSON converts a JSON object whose values are strings, numbers
// or null into RawInput. Unknown keys are dropped.
func RawInputFromJSON(body []byte) (RawInput, error) {
	var values map[string]json.RawMessage
	if err := json.Unmarshal(body, &values); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if values == nil {
		return nil, fmt.Errorf("body is not a JSON object")
	}

	raw := make(RawInput, len(FormFields))
	for _, field := range FormFields {
		v, ok := values[field]
		if !ok {
			continue
		}
		s, err := scalarString(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		raw[field] = s
	}
	return raw, nil
}

func scalarString(v json.RawMessage) (string, error) {
	var value interface{}
	if err := json.Unmarshal(v, &value); err != nil {
		return "", err
	}
	switch t := value.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("unsupported value %s", string(v))
	}
}

// PredictRequest - типизированные значения формы с правилами проверки.
// surface_terrain использует omitempty: подставленный 0 не проверяется на минимум.
type PredictRequest struct {
	SurfaceBati    int    `json:"surface_bati" validate:"min=20"`
	NombrePieces   int    `json:"nombre_pieces" validate:"min=1"`
	TypeLocal      string `json:"type_local" validate:"required,oneof=maison appartement"`
	SurfaceTerrain int    `json:"surface_terrain" validate:"omitempty,min=20"`
	NombreLots     int    `json:"nombre_lots" validate:"min=1"`
}
