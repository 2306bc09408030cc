package helpers

import (
	"net/http"

	internaldto "github.com/udistrital/agua_mid/internal/dto"
	"github.com/udistrital/agua_mid/models/requestresponse"
)

// Ok construye una respuesta estándar exitosa.
func Ok(data interface{}) internaldto.APIResponseDTO {
	return requestresponse.NewSuccess(http.StatusOK, "OK", data)
}

// Created construye la respuesta de un recurso creado.
func Created(data interface{}) internaldto.APIResponseDTO {
	return requestresponse.NewSuccess(http.StatusCreated, "Registro creado", data)
}

// Fail construye una respuesta estándar de error.
func Fail(status int, message string) internaldto.APIResponseDTO {
	return FailWithData(status, message, nil)
}

// FailWithData construye una respuesta de error con detalle (p. ej. errores por campo).
func FailWithData(status int, message string, data interface{}) internaldto.APIResponseDTO {
	if status <= 0 {
		status = http.StatusInternalServerError
	}
	return requestresponse.NewError(status, message, data)
}
