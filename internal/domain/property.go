package domain

// Типы объектов недвижимости, которые принимает модель
const (
	TypeLocalMaison      = "maison"
	TypeLocalAppartement = "appartement"
)

// Нижние границы полей формы
const (
	MinSurfaceBati    = 20
	MinNombrePieces   = 1
	MinSurfaceTerrain = 20
	MinNombreLots     = 1

	DefaultSurfaceTerrain = 0
	DefaultNombreLots     = 1
)

// PropertyFeatures - проверенное описание объекта, отправляемое в сервис предсказания.
// Имена json-полей являются контрактом с удалённым сервисом.
type PropertyFeatures struct {
	SurfaceBati    int    `json:"surface_bati"`
	NombrePieces   int    `json:"nombre_pieces"`
	TypeLocal      string `json:"type_local"`
	SurfaceTerrain int    `json:"surface_terrain"`
	NombreLots     int    `json:"nombre_lots"`
}

// PredictionResult - ответ сервиса предсказания
type PredictionResult struct {
	PrixM2Estime float64 `json:"prix_m2_estime"`
	VilleModele  string  `json:"ville_modele"`
	Model        string  `json:"model"`
}
