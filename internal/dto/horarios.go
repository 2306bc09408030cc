package dto

import (
	"github.com/udistrital/agua_mid/internal/validation"
	"github.com/udistrital/agua_mid/models"
)

// HorarioRequest es el payload de creación y edición de horarios.
type HorarioRequest struct {
	validation.ScheduleForm
	OrganizationID string `json:"organizationId"`
}

// HorarioView es el horario con su etiqueta de estado y duración legible.
type HorarioView struct {
	models.Schedule
	StatusLabel   string `json:"statusLabel"`
	BadgeClass    string `json:"badgeClass"`
	DurationLabel string `json:"durationLabel"`
}

// HorarioReferencias son los datos que necesita el formulario de horarios.
type HorarioReferencias struct {
	Organization *models.Organization `json:"organization"`
	Routes       []models.Route       `json:"routes"`
}
