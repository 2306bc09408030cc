package dto

import (
	"github.com/udistrital/agua_mid/models/requestresponse"
)

// APIResponseDTO reutiliza el DTO estándar expuesto por requestresponse.
// Alias para mantener compatibilidad con consumidores existentes.
type APIResponseDTO = requestresponse.APIResponseDTO

// PageDTO representa una colección paginada.
type PageDTO[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListQuery son los filtros comunes de los listados y reportes.
type ListQuery struct {
	Estado     string
	Q          string
	Desde      string
	Hasta      string
	Eliminados bool
	Page       int
	Size       int
}

// Actor identifica a quien hace la petición a partir del token.
type Actor struct {
	OrganizationID string
	UserID         string
}
