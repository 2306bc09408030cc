package models

// Estados de programa de distribución.
const (
	ProgramStatusActive     = "ACTIVE"
	ProgramStatusPlanned    = "PLANNED"
	ProgramStatusInProgress = "IN_PROGRESS"
	ProgramStatusCompleted  = "COMPLETED"
	ProgramStatusCancelled  = "CANCELLED"
)

// Estados de rutas y horarios.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Anotación local de agua entregada, nunca enviada al gateway.
const (
	WaterGiven    = "CON_AGUA"
	WaterNotGiven = "SIN_AGUA"
)

// Días de la semana aceptados en horarios.
var WeekDays = []string{"LUNES", "MARTES", "MIERCOLES", "JUEVES", "VIERNES", "SABADO", "DOMINGO"}
