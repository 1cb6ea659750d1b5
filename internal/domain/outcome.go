package domain

// OutcomeKind - вариант результата обработки одного запроса
type OutcomeKind int

const (
	OutcomeEmptyForm OutcomeKind = iota
	OutcomeSuccess
	OutcomeFormInvalid
	OutcomeUnauthorized
	OutcomeUnexpectedResponse
	OutcomeTransportFailure
)

var outcomeKindNames = map[OutcomeKind]string{
	OutcomeEmptyForm:          "empty_form",
	OutcomeSuccess:            "success",
	OutcomeFormInvalid:        "form_invalid",
	OutcomeUnauthorized:       "unauthorized",
	OutcomeUnexpectedResponse: "unexpected_response",
	OutcomeTransportFailure:   "transport_failure",
}

func (k OutcomeKind) String() string {
	if name, ok := outcomeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Имена шаблонов представления
const (
	ViewForm   = "form"
	ViewResult = "result"
)

// Outcome is the single result of one request cycle. Build it only through the
// constructors below so that exactly one variant is populated.
type Outcome struct {
	Kind    OutcomeKind
	Message string

	// FormInvalid
	FieldErrors map[string]string

	// Success
	Input  *PropertyFeatures
	Result *PredictionResult

	// TransportFailure
	Detail string
}

func EmptyFormOutcome() Outcome {
	return Outcome{Kind: OutcomeEmptyForm}
}

func SuccessOutcome(input PropertyFeatures, result PredictionResult) Outcome {
	return Outcome{Kind: OutcomeSuccess, Input: &input, Result: &result}
}

func FormInvalidOutcome(message string, fieldErrors map[string]string) Outcome {
	return Outcome{Kind: OutcomeFormInvalid, Message: message, FieldErrors: fieldErrors}
}

func UnauthorizedOutcome(message string) Outcome {
	return Outcome{Kind: OutcomeUnauthorized, Message: message}
}

func UnexpectedResponseOutcome(message string) Outcome {
	return Outcome{Kind: OutcomeUnexpectedResponse, Message: message}
}

func TransportFailureOutcome(message, detail string) Outcome {
	return Outcome{Kind: OutcomeTransportFailure, Message: message, Detail: detail}
}

// IsSuccess сообщает, получено ли предсказание
func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

// View - какой шаблон показывать: результат только при успехе, иначе форма
func (o Outcome) View() string {
	if o.IsSuccess() {
		return ViewResult
	}
	return ViewForm
}
