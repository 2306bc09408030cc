package dto

import (
	"github.com/udistrital/agua_mid/internal/validation"
	"github.com/udistrital/agua_mid/models"
)

// RutaRequest es el payload de creación y edición de rutas.
type RutaRequest struct {
	validation.RouteForm
	OrganizationID    string `json:"organizationId"`
	ResponsibleUserID string `json:"responsibleUserId"`
}

// RutaView es la ruta con su etiqueta de estado.
type RutaView struct {
	models.Route
	StatusLabel string `json:"statusLabel"`
	BadgeClass  string `json:"badgeClass"`
}
