package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/price-predictor/internal/domain"
	"github.com/price-predictor/internal/usecase"
	"github.com/price-predictor/internal/usecase/dto"
)

func validRawInput() dto.RawInput {
	return dto.RawInput{
		dto.FieldSurfaceBati:    "100",
		dto.FieldNombrePieces:   "3",
		dto.FieldTypeLocal:      "appartement",
		dto.FieldSurfaceTerrain: "50",
		dto.FieldNombreLots:     "1",
	}
}

func withField(field, value string) dto.RawInput {
	raw := validRawInput()
	raw[field] = value
	return raw
}

func withoutField(field string) dto.RawInput {
	raw := validRawInput()
	delete(raw, field)
	return raw
}

func TestValidateInput_Valid(t *testing.T) {
	features, fieldErrors := usecase.ValidateInput(validRawInput())

	assert.Nil(t, fieldErrors)
	assert.Equal(t, domain.PropertyFeatures{
		SurfaceBati:    100,
		NombrePieces:   3,
		TypeLocal:      "appartement",
		SurfaceTerrain: 50,
		NombreLots:     1,
	}, features)
}

func TestValidateInput_SingleFieldViolations(t *testing.T) {
	tests := []struct {
		name   string
		raw    dto.RawInput
		field  string
		reason string
	}{
		{name: "surface_bati below minimum", raw: withField(dto.FieldSurfaceBati, "19"), field: dto.FieldSurfaceBati, reason: "Ensure this value is greater than or equal to 20."},
		{name: "surface_bati negative", raw: withField(dto.FieldSurfaceBati, "-5"), field: dto.FieldSurfaceBati, reason: "Ensure this value is greater than or equal to 20."},
		{name: "surface_bati empty", raw: withField(dto.FieldSurfaceBati, ""), field: dto.FieldSurfaceBati, reason: "This field is required."},
		{name: "surface_bati missing", raw: withoutField(dto.FieldSurfaceBati), field: dto.FieldSurfaceBati, reason: "This field is required."},
		{name: "surface_bati not a number", raw: withField(dto.FieldSurfaceBati, "abc"), field: dto.FieldSurfaceBati, reason: "Enter a whole number."},
		{name: "surface_bati decimal", raw: withField(dto.FieldSurfaceBati, "20.5"), field: dto.FieldSurfaceBati, reason: "Enter a whole number."},
		{name: "nombre_pieces zero", raw: withField(dto.FieldNombrePieces, "0"), field: dto.FieldNombrePieces, reason: "Ensure this value is greater than or equal to 1."},
		{name: "nombre_pieces missing", raw: withoutField(dto.FieldNombrePieces), field: dto.FieldNombrePieces, reason: "This field is required."},
		{name: "type_local unknown", raw: withField(dto.FieldTypeLocal, "chateau"), field: dto.FieldTypeLocal, reason: "Select a valid choice. chateau is not one of the available choices."},
		{name: "type_local wrong case", raw: withField(dto.FieldTypeLocal, "Maison"), field: dto.FieldTypeLocal, reason: "Select a valid choice. Maison is not one of the available choices."},
		{name: "type_local missing", raw: withoutField(dto.FieldTypeLocal), field: dto.FieldTypeLocal, reason: "This field is required."},
		{name: "surface_terrain below minimum", raw: withField(dto.FieldSurfaceTerrain, "10"), field: dto.FieldSurfaceTerrain, reason: "Ensure this value is greater than or equal to 20."},
		{name: "surface_terrain not a number", raw: withField(dto.FieldSurfaceTerrain, "big"), field: dto.FieldSurfaceTerrain, reason: "Enter a whole number."},
		{name: "nombre_lots zero", raw: withField(dto.FieldNombreLots, "0"), field: dto.FieldNombreLots, reason: "Ensure this value is greater than or equal to 1."},
		{name: "nombre_lots not a number", raw: withField(dto.FieldNombreLots, "un"), field: dto.FieldNombreLots, reason: "Enter a whole number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features, fieldErrors := usecase.ValidateInput(tt.raw)

			assert.Equal(t, map[string]string{tt.field: tt.reason}, fieldErrors)
			assert.Equal(t, domain.PropertyFeatures{}, features)
		})
	}
}

func TestValidateInput_SurfaceTerrainDefaultsToZero(t *testing.T) {
	for name, raw := range map[string]dto.RawInput{
		"missing":    withoutField(dto.FieldSurfaceTerrain),
		"empty":      withField(dto.FieldSurfaceTerrain, ""),
		"whitespace": withField(dto.FieldSurfaceTerrain, "   "),
		"zero":       withField(dto.FieldSurfaceTerrain, "0"),
	} {
		t.Run(name, func(t *testing.T) {
			features, fieldErrors := usecase.ValidateInput(raw)

			assert.Nil(t, fieldErrors)
			assert.Equal(t, 0, features.SurfaceTerrain)
		})
	}
}

func TestValidateInput_NombreLotsDefaultsToOne(t *testing.T) {
	features, fieldErrors := usecase.ValidateInput(withoutField(dto.FieldNombreLots))

	assert.Nil(t, fieldErrors)
	assert.Equal(t, 1, features.NombreLots)

	features, fieldErrors = usecase.ValidateInput(withField(dto.FieldNombreLots, ""))
	assert.Nil(t, fieldErrors)
	assert.Equal(t, 1, features.NombreLots)
}

func TestValidateInput_CollectsAllErrors(t *testing.T) {
	_, fieldErrors := usecase.ValidateInput(dto.RawInput{
		dto.FieldSurfaceBati:    "",
		dto.FieldNombrePieces:   "-1",
		dto.FieldTypeLocal:      "",
		dto.FieldSurfaceTerrain: "-10",
		dto.FieldNombreLots:     "0",
	})

	assert.Len(t, fieldErrors, 5)
	for _, field := range dto.FormFields {
		assert.Contains(t, fieldErrors, field)
	}
}

func TestValidateInput_TrimsWhitespace(t *testing.T) {
	features, fieldErrors := usecase.ValidateInput(dto.RawInput{
		dto.FieldSurfaceBati:  " 80 ",
		dto.FieldNombrePieces: "2\n",
		dto.FieldTypeLocal:    " maison ",
		dto.FieldNombreLots:   "2",
	})

	assert.Nil(t, fieldErrors)
	assert.Equal(t, domain.PropertyFeatures{SurfaceBati: 80, NombrePieces: 2, TypeLocal: "maison", NombreLots: 2}, features)
}

func TestRawInputFromJSON(t *testing.T) {
	raw, err := dto.RawInputFromJSON([]byte(`{"surface_bati":100,"nombre_pieces":"3","type_local":"maison","surface_terrain":null,"ignored":"x"}`))

	assert.NoError(t, err)
	assert.Equal(t, dto.RawInput{
		dto.FieldSurfaceBati:    "100",
		dto.FieldNombrePieces:   "3",
		dto.FieldTypeLocal:      "maison",
		dto.FieldSurfaceTerrain: "",
	}, raw)

	_, err = dto.RawInputFromJSON([]byte(`[1]`))
	assert.Error(t, err)

	_, err = dto.RawInputFromJSON([]byte(`null`))
	assert.Error(t, err)

	_, err = dto.RawInputFromJSON([]byte(`{"surface_bati":{"a":1}}`))
	assert.Error(t, err)
}
