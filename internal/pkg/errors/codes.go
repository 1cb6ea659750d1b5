package errors

import "net/http"

const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeFormInvalid        = "FORM_INVALID"
	CodeUnauthorized       = "PREDICTION_UNAUTHORIZED"
	CodeUnexpectedResponse = "PREDICTION_UNEXPECTED_RESPONSE"
	CodeTransportFailure   = "PREDICTION_TRANSPORT_FAILURE"
	CodeInternalServer     = "INTERNAL_SERVER_ERROR"
)

var (
	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrFormInvalid = New(
		CodeFormInvalid,
		"Form invalid — check fields.",
		http.StatusBadRequest,
	)

	// ErrUnauthorized - удалённый сервис ответил 401
	ErrUnauthorized = New(
		CodeUnauthorized,
		"Invalid credentials for the API.",
		http.StatusBadGateway,
	)

	// ErrUnexpectedResponse - ответ не содержит обязательных ключей
	ErrUnexpectedResponse = New(
		CodeUnexpectedResponse,
		"Unexpected response from the API.",
		http.StatusBadGateway,
	)

	ErrTransportFailure = New(
		CodeTransportFailure,
		"Error communicating with the prediction service",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// TransportFailure - сетевая ошибка, таймаут или статус 4xx/5xx (кроме 401).
// detail сохраняется в Details["detail"] для классификации без разбора строки.
func TransportFailure(detail string) *AppError {
	return ErrTransportFailure.
		WithDetails(map[string]interface{}{"detail": detail}).
		WithMessage(ErrTransportFailure.Message + ": " + detail)
}

// TransportDetail извлекает detail из ошибки, созданной TransportFailure.
func TransportDetail(err *AppError) string {
	if err == nil {
		return ""
	}
	if d, ok := err.Details["detail"].(string); ok {
		return d
	}
	return err.Message
}
