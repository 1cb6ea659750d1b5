// Package docs registers the Swagger specification of the Price Predictor API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка состояния сервиса",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.HealthResponse"}
                    }
                }
            }
        },
        "/api/v1/predict": {
            "post": {
                "description": "Проверяет описание объекта и запрашивает оценку у сервиса предсказания. Значения полей могут быть строками или числами.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Prediction"],
                "summary": "Оценка цены за м²",
                "parameters": [
                    {
                        "description": "Описание объекта",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.PredictRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/utils.SuccessResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.PredictResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/utils.ErrorResponse"}
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {"$ref": "#/definitions/utils.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.PredictionResult": {
            "type": "object",
            "properties": {
                "model": {"type": "string"},
                "prix_m2_estime": {"type": "number"},
                "ville_modele": {"type": "string"}
            }
        },
        "domain.PropertyFeatures": {
            "type": "object",
            "properties": {
                "nombre_lots": {"type": "integer"},
                "nombre_pieces": {"type": "integer"},
                "surface_bati": {"type": "integer"},
                "surface_terrain": {"type": "integer"},
                "type_local": {"type": "string"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "dto.PredictRequest": {
            "type": "object",
            "required": ["type_local"],
            "properties": {
                "nombre_lots": {"type": "integer", "minimum": 1},
                "nombre_pieces": {"type": "integer", "minimum": 1},
                "surface_bati": {"type": "integer", "minimum": 20},
                "surface_terrain": {"type": "integer"},
                "type_local": {"type": "string", "enum": ["maison", "appartement"]}
            }
        },
        "dto.PredictResponse": {
            "type": "object",
            "properties": {
                "input": {"$ref": "#/definitions/domain.PropertyFeatures"},
                "result": {"$ref": "#/definitions/domain.PredictionResult"}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "message": {"type": "string"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "time_ms": {"type": "number"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Price Predictor API",
	Description:      "Форма и JSON API для оценки цены за м² через удалённый сервис предсказания.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
