package requestresponse

import "net/http"

// APIResponseDTO es el sobre común de todas las respuestas JSON del MID.
// RequestId permite cruzar la respuesta con los logs del gateway.
type APIResponseDTO struct {
	Success   bool        `json:"Success"`
	Status    int         `json:"Status"`
	Message   string      `json:"Message"`
	Data      interface{} `json:"Data"`
	RequestID string      `json:"RequestId,omitempty"`
}

// New arma la respuesta; Success se deriva del status (2xx).
func New(status int, message string, data interface{}) APIResponseDTO {
	ok := status >= http.StatusOK && status < http.StatusMultipleChoices
	if message == "" {
		message = "Error"
		if ok {
			message = "OK"
		}
	}
	return APIResponseDTO{Success: ok, Status: status, Message: message, Data: data}
}

// NewSuccess construye una respuesta exitosa.
func NewSuccess(status int, message string, data interface{}) APIResponseDTO {
	r := New(status, message, data)
	r.Success = true
	return r
}

// NewError construye una respuesta de error.
func NewError(status int, message string, data interface{}) APIResponseDTO {
	r := New(status, message, data)
	r.Success = false
	if message == "" {
		r.Message = "Error"
	}
	return r
}

// WithRequestID adjunta el identificador de correlación.
func (r APIResponseDTO) WithRequestID(id string) APIResponseDTO {
	r.RequestID = id
	return r
}
