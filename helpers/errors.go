package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind clasifica el origen de un error para decidir cómo presentarlo.
type ErrorKind string

const (
	// KindValidation agrupa errores de formulario asociados a campos.
	KindValidation ErrorKind = "validation"
	// KindNetwork indica que el gateway no respondió (sin status HTTP).
	KindNetwork ErrorKind = "network"
	// KindHTTP corresponde a respuestas con status fuera del rango 2xx.
	KindHTTP ErrorKind = "http"
	// KindApplication es un fallo reportado dentro de una respuesta 200 (success=false).
	KindApplication ErrorKind = "application"
	// KindInternal cubre cualquier otro error no clasificado.
	KindInternal ErrorKind = "internal"
	// KindCanceled indica que quien hizo la petición la abandonó antes de la respuesta.
	KindCanceled ErrorKind = "canceled"
)

// StatusClientClosedRequest se usa para peticiones canceladas por el cliente.
const StatusClientClosedRequest = 499

const canceledMessage = "La petición fue cancelada."

// Mensajes de usuario por status HTTP.
var statusMessages = map[int]string{
	0:                              "No se pudo conectar con el servidor. Verifique su conexión a internet.",
	http.StatusBadRequest:          "Datos inválidos enviados al servidor.",
	http.StatusUnauthorized:        "No autorizado. Inicie sesión nuevamente.",
	http.StatusForbidden:           "No tiene permisos para realizar esta acción.",
	http.StatusNotFound:            "Recurso no encontrado.",
	http.StatusInternalServerError: "Error interno del servidor.",
}

// AppError representa un error controlado con código HTTP y mensaje funcional.
type AppError struct {
	Status  int
	Kind    ErrorKind
	Message string
	Fields  map[string]FieldError
	Err     error
}

// FieldError describe un error de validación de un campo concreto.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap permite extraer el error original cuando exista.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError construye un AppError con mensaje y status.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Kind: kindForStatus(status), Message: message, Err: err}
}

// NewValidationError construye el error 400 que bloquea el envío de un formulario.
func NewValidationError(fields map[string]FieldError) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Kind:    KindValidation,
		Message: "El formulario contiene errores",
		Fields:  fields,
	}
}

// AsAppError convierte cualquier error en AppError con status 500 por defecto.
func AsAppError(err error, defaultMessage string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{Status: StatusClientClosedRequest, Kind: KindCanceled, Message: canceledMessage, Err: err}
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return fromHTTPError(he)
	}
	msg := defaultMessage
	if msg == "" {
		msg = "error inesperado"
	}
	return &AppError{Status: http.StatusInternalServerError, Kind: KindInternal, Message: msg, Err: err}
}

// MessageForStatus retorna el mensaje de usuario asociado al status.
// El mensaje del backend tiene prioridad cuando viene informado.
func MessageForStatus(status int, backendMessage string) string {
	if trimmed := strings.TrimSpace(backendMessage); trimmed != "" {
		return trimmed
	}
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	if status >= 500 {
		return statusMessages[http.StatusInternalServerError]
	}
	return "Ocurrió un error inesperado."
}

// IsKind indica si err es un AppError del tipo indicado.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

func fromHTTPError(he *HTTPError) *AppError {
	status := he.Status
	kind := KindHTTP
	if status == 0 {
		kind = KindNetwork
		status = http.StatusBadGateway
	}
	return &AppError{
		Status:  status,
		Kind:    kind,
		Message: MessageForStatus(he.Status, he.Message),
		Err:     he,
	}
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == 0:
		return KindNetwork
	case status >= 400:
		return KindHTTP
	default:
		return KindInternal
	}
}
