package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/price-predictor/internal/domain"
	"github.com/price-predictor/internal/usecase/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// Views - наборы шаблонов для формы и результата
type Views struct {
	sets map[string]*template.Template
}

// NewViews парсит встроенные шаблоны. Каждый вид собирается отдельно,
// потому что оба определяют блок "content".
func NewViews() (*Views, error) {
	sets := make(map[string]*template.Template, 2)
	for _, view := range []string{domain.ViewForm, domain.ViewResult} {
		tmpl, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+view+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s view: %w", view, err)
		}
		sets[view] = tmpl
	}
	return &Views{sets: sets}, nil
}

// Render выполняет шаблон вида view
func (v *Views) Render(w io.Writer, view string, data interface{}) error {
	tmpl, ok := v.sets[view]
	if !ok {
		return fmt.Errorf("unknown view %q", view)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}

// Choice - вариант выпадающего списка
type Choice struct {
	Value string
	Label string
}

// FormField - поле формы для шаблона
type FormField struct {
	Name    string
	Label   string
	Value   string
	Error   string
	Min     int
	Choices []Choice
}

// FormPage - данные шаблона формы
type FormPage struct {
	Title   string
	Message string
	Fields  []FormField
}

// ResultPage - данные шаблона результата
type ResultPage struct {
	Title  string
	Input  domain.PropertyFeatures
	Result domain.PredictionResult
}

var fieldLabels = map[string]string{
	dto.FieldSurfaceBati:    "Surface bâtie (m²)",
	dto.FieldNombrePieces:   "Nombre de pièces",
	dto.FieldTypeLocal:      "Type de local",
	dto.FieldSurfaceTerrain: "Surface terrain (m²)",
	dto.FieldNombreLots:     "Nombre de lots",
}

var fieldMinimums = map[string]int{
	dto.FieldSurfaceBati:    domain.MinSurfaceBati,
	dto.FieldNombrePieces:   domain.MinNombrePieces,
	dto.FieldSurfaceTerrain: domain.MinSurfaceTerrain,
	dto.FieldNombreLots:     domain.MinNombreLots,
}

var typeLocalChoices = []Choice{
	{Value: domain.TypeLocalMaison, Label: "Maison"},
	{Value: domain.TypeLocalAppartement, Label: "Appartement"},
}

// newFormPage собирает страницу формы: введённые значения сохраняются,
// для первого показа nombre_lots заполняется значением по умолчанию.
func newFormPage(raw dto.RawInput, outcome domain.Outcome) FormPage {
	fields := make([]FormField, 0, len(dto.FormFields))
	for _, name := range dto.FormFields {
		field := FormField{
			Name:  name,
			Label: fieldLabels[name],
			Min:   fieldMinimums[name],
			Error: outcome.FieldErrors[name],
		}
		if raw == nil {
			if name == dto.FieldNombreLots {
				field.Value = fmt.Sprint(domain.DefaultNombreLots)
			}
		} else {
			field.Value = raw[name]
		}
		if name == dto.FieldTypeLocal {
			field.Choices = typeLocalChoices
		}
		fields = append(fields, field)
	}

	return FormPage{
		Title:   "Estimation du prix au m²",
		Message: outcome.Message,
		Fields:  fields,
	}
}

func newResultPage(outcome domain.Outcome) ResultPage {
	return ResultPage{
		Title:  "Résultat de l'estimation",
		Input:  *outcome.Input,
		Result: *outcome.Result,
	}
}
