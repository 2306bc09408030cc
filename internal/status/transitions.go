package status

import "github.com/udistrital/agua_mid/models"

// Endpoint identifica el tipo de llamada que aplica una transición.
type Endpoint int

const (
	// EndpointGeneric usa el endpoint genérico de cambio de estado.
	EndpointGeneric Endpoint = iota
	// EndpointActivate restaura el programa a PLANNED.
	EndpointActivate
	// EndpointDeactivate cancela el programa.
	EndpointDeactivate
)

var programTransitions = map[string][]string{
	models.ProgramStatusPlanned:    {models.ProgramStatusInProgress, models.ProgramStatusCancelled},
	models.ProgramStatusActive:     {models.ProgramStatusInProgress, models.ProgramStatusCancelled},
	models.ProgramStatusInProgress: {models.ProgramStatusCompleted, models.ProgramStatusCancelled},
	models.ProgramStatusCancelled:  {models.ProgramStatusPlanned},
}

// CanTransition valida la máquina de estados del programa.
func CanTransition(from, to string) bool {
	for _, allowed := range programTransitions[normalize(from)] {
		if allowed == normalize(to) {
			return true
		}
	}
	return false
}

// IsProgramStatus indica si el valor pertenece al enumerado de programas.
func IsProgramStatus(v string) bool {
	switch normalize(v) {
	case models.ProgramStatusActive, models.ProgramStatusPlanned, models.ProgramStatusInProgress,
		models.ProgramStatusCompleted, models.ProgramStatusCancelled:
		return true
	}
	return false
}

// EndpointFor decide el endpoint según el estado destino.
func EndpointFor(target string) Endpoint {
	switch normalize(target) {
	case models.ProgramStatusPlanned:
		return EndpointActivate
	case models.ProgramStatusCancelled:
		return EndpointDeactivate
	default:
		return EndpointGeneric
	}
}

// Conjuntos "activos" usados por el filtro de estado de los listados.
var (
	ProgramActiveSet = map[string]bool{
		models.ProgramStatusActive:     true,
		models.ProgramStatusPlanned:    true,
		models.ProgramStatusInProgress: true,
	}
	EntityActiveSet = map[string]bool{
		models.StatusActive: true,
	}
)
