package dto

import (
	"github.com/udistrital/agua_mid/internal/validation"
	"github.com/udistrital/agua_mid/models"
)

// ProgramaRequest es el payload de creación y edición de programas.
type ProgramaRequest struct {
	validation.ProgramForm
	OrganizationID    string `json:"organizationId"`
	ResponsibleUserID string `json:"responsibleUserId"`
}

// EstadoRequest solicita una transición de estado.
type EstadoRequest struct {
	Status string `json:"status"`
}

// AguaRequest registra la anotación local de agua entregada.
type AguaRequest struct {
	Status string `json:"status"`
}

// ProgramaView es el programa con su etiqueta y clase visual ya resueltas.
type ProgramaView struct {
	models.DistributionProgram
	WaterStatus string `json:"waterStatus,omitempty"`
	StatusLabel string `json:"statusLabel"`
	BadgeClass  string `json:"badgeClass"`
	DisplayDate string `json:"displayDate"`
}

// ProgramaEnriquecidoView agrega los nombres de las referencias del programa.
type ProgramaEnriquecidoView struct {
	ProgramaView
	ScheduleName string `json:"scheduleName"`
	RouteName    string `json:"routeName"`
	ZoneName     string `json:"zoneName"`
	StreetName   string `json:"streetName"`
}
